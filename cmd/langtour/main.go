package main

import (
	"os"

	"github.com/marcodamonte/langtour/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
