// Package main is the entry point for the lv CLI client.
package main

import (
	"github.com/donaldgifford/listing-valuator/cmd/lv/cmd"
)

func main() {
	cmd.Execute()
}
