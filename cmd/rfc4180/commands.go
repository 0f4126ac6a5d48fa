package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"

	"github.com/shapestone/shape-rfc4180/pkg/csv"
)

// Context is passed to every command's Run method.
type Context struct {
	Out io.Writer
	In  io.Reader
}

// CLI is the command-line grammar.
type CLI struct {
	Version kong.VersionFlag `help:"Print version and exit."`

	Parse    parseCmd    `cmd:"" help:"Parse a CSV file and print its records."`
	Validate validateCmd `cmd:"" help:"Check CSV files and report the first error in each."`
	Sum      sumCmd      `cmd:"" help:"Sum integer fields per record or down one column."`
	Tokens   tokensCmd   `cmd:"" help:"Print the lexical tokens of a CSV file."`
	Grammar  grammarCmd  `cmd:"" help:"Verify and print the CSV grammar."`
}

// readInput reads name, or ctx.In when name is "-".
func readInput(ctx *Context, name string) (string, error) {
	if name == "-" {
		data, err := io.ReadAll(ctx.In)
		return string(data), err
	}
	data, err := os.ReadFile(name)
	return string(data), err
}

type parseCmd struct {
	File         string `arg:"" default:"-" help:"CSV file (read from stdin if omitted)."`
	Dump         bool   `help:"Dump the parsed table as a Go value."`
	MaxFieldSize int    `help:"Reject fields larger than this many bytes (0 for no limit)."`
	Lenient      bool   `help:"Drop disallowed characters inside quoted fields instead of failing."`
}

func (c *parseCmd) Run(ctx *Context) error {
	input, err := readInput(ctx, c.File)
	if err != nil {
		return err
	}

	opts := csv.DefaultOptions()
	opts.MaxFieldSize = c.MaxFieldSize
	opts.DropInvalidQuoted = c.Lenient

	table, err := csv.ParseWithOptions(input, opts)
	if err != nil {
		return fmt.Errorf("%s: %w", c.File, err)
	}

	if c.Dump {
		fmt.Fprintln(ctx.Out, repr.String(table, repr.Indent("  ")))
		return nil
	}

	for i, record := range table {
		quoted := make([]string, len(record))
		for j, field := range record {
			quoted[j] = strconv.Quote(field)
		}
		fmt.Fprintf(ctx.Out, "%d\t%s\n", i, strings.Join(quoted, ", "))
	}
	return nil
}

type validateCmd struct {
	Files []string `arg:"" type:"existingfile" help:"CSV files to check."`
}

func (c *validateCmd) Run(ctx *Context) error {
	invalid := 0
	for _, name := range c.Files {
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		err = csv.ValidateReader(f)
		f.Close()

		if err != nil {
			invalid++
			fmt.Fprintf(ctx.Out, "%s: %v\n", name, err)
			continue
		}
		fmt.Fprintf(ctx.Out, "%s: ok\n", name)
	}

	if invalid > 0 {
		return fmt.Errorf("%d of %d files invalid", invalid, len(c.Files))
	}
	return nil
}

type sumCmd struct {
	File       string `arg:"" default:"-" help:"CSV file (read from stdin if omitted)."`
	Column     int    `default:"-1" help:"Sum this 0-based column instead of each record."`
	SkipHeader bool   `help:"Ignore the first record."`
}

func (c *sumCmd) Run(ctx *Context) error {
	input, err := readInput(ctx, c.File)
	if err != nil {
		return err
	}

	doc, err := csv.ParseDocument(input)
	if err != nil {
		return fmt.Errorf("%s: %w", c.File, err)
	}
	if c.SkipHeader {
		doc = doc.WithHeaders()
	}

	if c.Column >= 0 {
		values, ok := doc.Column(c.Column)
		if !ok {
			return fmt.Errorf("column %d is missing from some records", c.Column)
		}
		total := 0
		for i, v := range values {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("record %d: %w", i, err)
			}
			total += n
		}
		fmt.Fprintf(ctx.Out, "Sum of column %d: %d\n", c.Column, total)
		return nil
	}

	for i, row := range doc.Records() {
		total := 0
		for _, v := range row.Fields() {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("record %d: %w", i, err)
			}
			total += n
		}
		fmt.Fprintf(ctx.Out, "Sum %d: %d\n", i, total)
	}
	return nil
}

type tokensCmd struct {
	File string `arg:"" default:"-" help:"CSV file (read from stdin if omitted)."`
}

func (c *tokensCmd) Run(ctx *Context) error {
	input, err := readInput(ctx, c.File)
	if err != nil {
		return err
	}
	for _, tok := range csv.Tokenize(input) {
		fmt.Fprintln(ctx.Out, tok)
	}
	return nil
}

type grammarCmd struct{}

func (c *grammarCmd) Run(ctx *Context) error {
	if err := csv.VerifyGrammar(); err != nil {
		return err
	}
	fmt.Fprint(ctx.Out, csv.Grammar())
	return nil
}
