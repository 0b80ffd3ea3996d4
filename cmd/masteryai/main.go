// Command masteryai is the entry point for the study library CLI.
package main

import (
	"fmt"
	"os"

	"github.com/markpy98/masteryai/internal/adapters/driving/cli"
)

// version is overridden at build time via -ldflags.
var version = "dev"

func main() {
	if err := cli.Execute(version); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
