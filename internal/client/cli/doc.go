// Package cli implements the interactive terminal client for the phonestock
// marketplace: a REPL with commands for signing in, browsing and filtering
// the catalog, adding listings, and marking items sold.
//
// The package depends on the session manager for authentication state and on
// the inventory service for catalog operations; both are interfaces so tests
// can run the REPL against stubs.
package cli
