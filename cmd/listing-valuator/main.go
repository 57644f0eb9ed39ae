// Package main is the entry point for the listing-valuator server.
package main

import (
	"os"

	"github.com/donaldgifford/listing-valuator/cmd/listing-valuator/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
