// Copyright 2020, 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/UNO-SOFT/zlog/v2"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/ffcli"

	"github.com/UNO-SOFT/xlsxrows"
	"github.com/UNO-SOFT/xlsxrows/dbsource"
	"github.com/UNO-SOFT/xlsxrows/xlsx"
)

var verbose zlog.VerboseVar
var logger = zlog.NewLogger(zlog.MaybeConsoleHandler(&verbose, os.Stderr)).SLog()

func main() {
	if err := Main(); err != nil {
		logger.Error("MAIN", "error", err)
		os.Exit(1)
	}
}

func Main() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	envOpts := []ff.Option{ff.WithEnvVarPrefix("ROWS2XLSX")}

	var opts xlsx.Options
	var flagOut string
	newFlagSet := func(name string) *flag.FlagSet {
		flagSet := flag.NewFlagSet(name, flag.ContinueOnError)
		flagSet.StringVar(&flagOut, "o", "", "output file name (- is stdout)")
		flagSet.BoolVar(&opts.Strict, "strict", false, "fail on records with missing or unknown fields")
		flagSet.IntVar(&opts.CompressionLevel, "z", 0, "compression level (0: default, -2..9)")
		return flagSet
	}

	csvFS := newFlagSet("csv")
	flagEnc := csvFS.String("charset", xlsxrows.EncName, "csv charset name")
	csvCmd := ffcli.Command{Name: "csv", ShortUsage: "rows2xlsx csv [-charset X] [-o out.xlsx] in.csv",
		ShortHelp: "convert CSV (first row is the header)",
		FlagSet:   csvFS, Options: envOpts,
		Exec: func(ctx context.Context, args []string) error {
			var inp string
			if len(args) != 0 {
				inp = args[0]
			}
			cr, err := xlsxrows.OpenCsv(inp, *flagEnc)
			if err != nil {
				return fmt.Errorf("open %q: %w", inp, err)
			}
			defer cr.Close()
			src := xlsxrows.NewCSVSource(cr.Reader)
			header, err := src.Header()
			if err != nil {
				return err
			}
			w := xlsx.NewWriter(opts)
			if err = w.SetHeader(header); err != nil {
				return err
			}
			var rowI []any
			for {
				row, err := src.ReadValues()
				if err != nil {
					if errors.Is(err, io.EOF) {
						break
					}
					return err
				}
				rowI = rowI[:0]
				for _, s := range row {
					rowI = append(rowI, s)
				}
				if err = w.AppendRow(rowI...); err != nil {
					return err
				}
			}
			return pack(w, outName(flagOut, inp))
		},
	}

	jsonFS := newFlagSet("json")
	jsonCmd := ffcli.Command{Name: "json", ShortUsage: "rows2xlsx json [-o out.xlsx] in.json",
		ShortHelp: "convert a JSON array of objects, or newline delimited JSON objects",
		FlagSet:   jsonFS, Options: envOpts,
		Exec: func(ctx context.Context, args []string) error {
			var inp string
			if len(args) != 0 {
				inp = args[0]
			}
			r, err := openInput(inp)
			if err != nil {
				return err
			}
			defer r.Close()
			src, err := xlsxrows.NewJSONSource(r)
			if err != nil {
				return fmt.Errorf("%q: %w", inp, err)
			}
			w := xlsx.NewWriter(opts)
			if _, err = xlsxrows.Copy(w, src); err != nil {
				return err
			}
			return pack(w, outName(flagOut, inp))
		},
	}

	sqlFS := newFlagSet("sql")
	flagDriver := sqlFS.String("driver", "postgres", "database/sql driver name")
	flagDSN := sqlFS.String("dsn", os.Getenv("DATABASE_URL"), "database connection string")
	sqlCmd := ffcli.Command{Name: "sql", ShortUsage: "rows2xlsx sql [-dsn DSN] [-o out.xlsx] 'SELECT ...' [args...]",
		ShortHelp: "export the result of a query",
		FlagSet:   sqlFS, Options: envOpts,
		Exec: func(ctx context.Context, args []string) error {
			if len(args) == 0 {
				return flag.ErrHelp
			}
			db, err := sqlx.ConnectContext(ctx, *flagDriver, *flagDSN)
			if err != nil {
				return fmt.Errorf("connect %s: %w", *flagDriver, err)
			}
			defer db.Close()
			params := make([]any, len(args)-1)
			for i, a := range args[1:] {
				params[i] = a
			}
			rows, err := dbsource.Query(ctx, db, args[0], params...)
			if err != nil {
				return err
			}
			defer rows.Close()
			w := xlsx.NewWriter(opts)
			if err = w.SetHeader(rows.Columns()); err != nil {
				return err
			}
			n, err := xlsxrows.Copy(w, rows)
			if err != nil {
				return err
			}
			logger.Info("query", "rows", n, "columns", len(rows.Columns()))
			return pack(w, flagOut)
		},
	}

	dumpFS := flag.NewFlagSet("dump", flag.ContinueOnError)
	dumpCmd := ffcli.Command{Name: "dump", ShortUsage: "rows2xlsx dump in.xlsx",
		ShortHelp: "print the first sheet as CSV",
		FlagSet:   dumpFS,
		Exec: func(ctx context.Context, args []string) error {
			var rows [][]string
			var err error
			if len(args) == 0 || args[0] == "" || args[0] == "-" {
				rows, err = xlsx.Read(os.Stdin)
			} else {
				rows, err = xlsx.ReadFile(args[0])
			}
			if err != nil {
				return err
			}
			cw := csv.NewWriter(os.Stdout)
			if err = cw.WriteAll(rows); err != nil {
				return err
			}
			return cw.Error()
		},
	}

	rootFS := flag.NewFlagSet("rows2xlsx", flag.ContinueOnError)
	rootFS.Var(&verbose, "v", "logging verbosity")
	app := ffcli.Command{Name: "rows2xlsx", ShortUsage: "rows2xlsx [-v] <csv|json|sql|dump> ...",
		FlagSet: rootFS, Options: envOpts,
		Subcommands: []*ffcli.Command{&csvCmd, &jsonCmd, &sqlCmd, &dumpCmd},
		Exec:        func(ctx context.Context, args []string) error { return flag.ErrHelp },
	}
	if err := app.Parse(os.Args[1:]); err != nil {
		return err
	}
	opts.Logger = logger
	return app.Run(ctx)
}

func openInput(fn string) (io.ReadCloser, error) {
	if fn == "" || fn == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(fn)
}

// outName returns the output file name: the flag if given,
// else the input with its extension replaced, else stdout.
func outName(flagOut, inp string) string {
	if flagOut != "" || inp == "" || inp == "-" {
		return flagOut
	}
	return strings.TrimSuffix(inp, filepath.Ext(inp)) + ".xlsx"
}

func pack(w *xlsx.Writer, fn string) error {
	logger.Debug("pack", "file", fn, "dimensions", w.Dimensions())
	if fn == "" || fn == "-" {
		_, err := w.WriteTo(os.Stdout)
		return err
	}
	return w.Pack(fn)
}
