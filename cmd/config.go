package cmd

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/mmangkad/dns-benchmark/pkg/config"
)

func configInit() error {
	exists, err := config.Exists()
	if err != nil {
		return err
	}
	if exists {
		path, _ := config.Path()
		return fmt.Errorf("config already exists at %s", path)
	}
	return config.Default().Save()
}

func configShow(w io.Writer) error {
	cfg := config.LoadOrDefault()
	content, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = w.Write(content)
	return err
}

// configSet persists the effective options, flags given on the command line
// override the currently stored values.
func configSet(effective config.Config) error {
	return effective.Save()
}

func configReset() error {
	return config.Default().Save()
}

func configPath(w io.Writer) error {
	path, err := config.Path()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, path)
	return err
}
