// Package printutils provides utilities for printing colored output.
package printutils

import "github.com/fatih/color"

var (
	// ErrPrint is a wrapper for printing colored errors.
	ErrPrint = color.New(color.FgRed).FprintfFunc()
	// SuccessPrint is a wrapper for printing colored successes.
	SuccessPrint = color.New(color.FgGreen).FprintfFunc()
	// WarnPrint is a wrapper for printing colored warnings.
	WarnPrint = color.New(color.FgYellow).FprintfFunc()
	// HighlightStr is a wrapper for highlighting strings with color.
	HighlightStr = color.New(color.FgYellow).SprintFunc()

	// GreenStr, YellowStr, RedStr and MagentaStr colorize table cells by
	// severity.
	GreenStr   = color.New(color.FgGreen).SprintFunc()
	YellowStr  = color.New(color.FgYellow).SprintFunc()
	RedStr     = color.New(color.FgRed).SprintFunc()
	MagentaStr = color.New(color.FgMagenta).SprintFunc()
)
