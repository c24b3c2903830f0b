// Package main provides the flights CLI entry point.
package main

import (
	"os"

	"github.com/vsokolov/departures/internal/cli"
	"github.com/vsokolov/departures/internal/record"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	os.Exit(cli.Execute(record.FlightKind, Version))
}
