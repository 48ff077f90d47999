package main

import (
	"os"

	"github.com/brettbedarf/fme/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
