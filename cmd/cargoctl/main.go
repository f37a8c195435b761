// Command cargoctl runs container management tasks, migrations and the
// background worker outside the HTTP server.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
