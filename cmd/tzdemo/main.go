// Command tzdemo exercises the containers: "demo" replays the reference scenarios and "load"
// stores lines read from stdin in a table and reports how its chains are filled.
package main

import (
	"os"

	"github.com/g-m-twostay/go-containers/internal/diag"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		diag.Log.WithError(err).Error("tzdemo failed")
		os.Exit(1)
	}
}
