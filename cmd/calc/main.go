package main

import (
	"os"

	"github.com/buildlab/calc/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
