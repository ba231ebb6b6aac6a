// Command rbnconv converts the Referentie Bestand Nederlands lexicon (ORBN)
// into a linked lexicon store and derives exports from it.
//
// Subcommands:
//
//	convert   XML → store, optionally linked to ODWN synsets and exported to Lemon
//	lemon     store → Lemon turtle
//	mapping   feature-set → FrameNet spreadsheet → JSON
//	stats     polysemy and attribute distributions of a store
//	lexemes   FrameNet lexical-unit candidates for a store
//	publish   store → PostgreSQL catalog
//	lookup    query the PostgreSQL catalog
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
)

func main() {
	c := &cli{stdout: os.Stdout, stderr: os.Stderr}
	if err := c.rootCmd().ExecuteContext(context.Background()); err != nil {
		if c.log != nil {
			c.log.Error("command failed", slog.String("error", err.Error()))
		} else {
			fmt.Fprintln(os.Stderr, "rbnconv:", err)
		}
		os.Exit(1)
	}
}
