/*
main.go - Command-line pricing tool

PURPOSE:
  Prices a single robot shift from a JSON input document and prints
  {"value": N}, the same contract as POST /api/pay.

COMMANDS:
  robopay pay [--input input.json] [--breakdown]
  robopay segments [--input input.json]
  robopay scenarios
  robopay scenarios run <id> [--breakdown]

GLOBAL FLAGS:
  --config    YAML config file (break policy, strategy)
  --strategy  segments | minute_sweep, overrides config

SEE ALSO:
  - factory/input.go: Input document schema
  - config/config.go: Configuration keys
*/
package main

import (
	"os"

	"github.com/pterm/pterm"
)

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}
