// Command sortbench benchmarks classic sorting algorithms on one input list.
package main

import (
	"context"
	"os"

	"github.com/roach88/sortbench/internal/cli"
)

func main() {
	os.Exit(cli.Execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}
