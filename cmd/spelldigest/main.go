// Package main provides the entry point for the spelldigest CLI.
//
// spelldigest fetches a text document, checks every word against a remote
// spell-check service and prints the MD5 digest of the misspelled words
// followed by "@outsideinc.com".
//
// Usage:
//
//	spelldigest run
//	spelldigest run --sort --json
//	spelldigest history
//
// See --help for all available options.
package main

func main() {
	Execute()
}
