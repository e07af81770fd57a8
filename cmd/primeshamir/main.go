package main

import (
	"fmt"
	"os"

	"github.com/wbrc/primeshamir/internal/cli"
)

func main() {
	err := cli.NewRootCommand(os.Stdin, os.Stdout, os.Stderr).Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
