// Command carbonpath is the sustainability compliance CLI: carbon
// footprint calculation, benchmark scoring, readiness aggregation, and
// funding matching.
package main

import (
	"fmt"
	"os"

	"github.com/enejokabir/carbonpath/internal/cli"
	"github.com/enejokabir/carbonpath/pkg/version"
)

func main() {
	os.Exit(run())
}

// run executes the root command and maps the outcome to an exit code.
// Separated from main so tests can exercise it without os.Exit.
func run() int {
	root := cli.NewRootCmd(version.GetVersion())
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
