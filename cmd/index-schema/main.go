// Package main provides the CLI entrypoint for index-schema.
//
// index-schema checks search index definitions against a table schema:
//   - validate: accept or reject definition files
//   - resolve: show what a single dotted path resolves to
//   - plan: print the mapper to storage type plan of an accepted definition
//   - kinds: print which mapper types can index which storage kinds
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errRejected) {
			fmt.Fprintln(os.Stderr, err)
		}

		os.Exit(1)
	}
}
