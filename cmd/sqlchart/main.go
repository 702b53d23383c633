// Package main is the sqlchart entrypoint.
package main

import (
	"os"

	"github.com/leapstack-labs/sqlchart/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
