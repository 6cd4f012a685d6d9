package main

import (
	"context"
	"fmt"
	"os"

	"github.com/decnet100/acr-telemetry/internal/report"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	dbPath := os.Args[1]
	if _, err := os.Stat(dbPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: database not found: %s\n", dbPath)
		os.Exit(1)
	}

	if err := report.Run(context.Background(), dbPath, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "fieldreport error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Print(`fieldreport - telemetry field variability report

Usage:
  fieldreport <telemetry.db>

Analyzes the graphics and statics tables of a telemetry database and
writes a markdown report to stdout. Progress goes to stderr.
`)
}
