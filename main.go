// rad-sync resolves a repository-sync invocation into a validated intent
// and hands it to the local node for execution.
package main

import (
	"fmt"
	"os"

	"rad-sync/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, "Run 'rad-sync --help' for usage.")
		os.Exit(1)
	}
}
