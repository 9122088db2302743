// Command glamql is the CLI for the cosmetic assembly command language.
package main

import (
	"os"

	"github.com/glamstack/glamql/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
