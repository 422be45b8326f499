// Command modelmap lists provider model catalogs and checks provider
// credential configuration from the terminal.
package main

import (
	"os"

	"github.com/mepankajsingh/modelmap/cmd/modelmap/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
