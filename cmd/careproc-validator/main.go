package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/careproc/validator/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		if !errors.Is(err, cli.ErrFindings) {
			fmt.Fprintln(os.Stderr, "careproc-validator:", err)
		}
		os.Exit(1)
	}
}
