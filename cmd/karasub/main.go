package main

import (
	"os"

	"github.com/karalab/karasub/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
