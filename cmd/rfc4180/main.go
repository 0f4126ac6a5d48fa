// Package main implements rfc4180, a command-line tool for strict CSV files.
package main

import (
	"os"

	"github.com/alecthomas/kong"
)

var version = "dev"

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("rfc4180"),
		kong.Description(`Parse, validate and inspect strict RFC 4180 CSV files.

Records must be separated by CRLF, fields by commas, and only printable
ASCII may appear outside double quotes.`),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)
	err := kctx.Run(&Context{Out: os.Stdout, In: os.Stdin})
	kctx.FatalIfErrorf(err)
}
