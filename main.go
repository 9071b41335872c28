package main

import (
	"os"

	"github.com/kyleking/cutecosmic/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
