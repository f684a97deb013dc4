package main

import "github.com/mmangkad/dns-benchmark/cmd"

func main() {
	cmd.Execute()
}
