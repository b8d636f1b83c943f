// link-guard watches chat messages for links impersonating well-known domains.
package main

import (
	"os"

	"github.com/stoik/link-guard/cmd/link-guard/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
