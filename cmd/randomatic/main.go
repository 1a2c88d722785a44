package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strconv"
	"unicode/utf8"

	"github.com/FGasper/randomatic"
	"github.com/MatusOllah/slogcolor"
	"github.com/samber/lo"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

const envPrefix = "RANDOMATIC_"

func main() {
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:  "randomatic",
		Usage: "generate random strings from a class pattern",
		Description: "Pattern identifiers: ? custom (--chars), a lower, A upper, 0 digits,\n" +
			"! special, * all. A lone number is a length over every class.",
		ArgsUsage: "[pattern] [length]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "chars",
				Aliases: []string{"c"},
				Usage:   "custom characters; alone they are the whole alphabet, with a pattern they fill '?'",
				Sources: cli.EnvVars(envPrefix + "CHARS"),
			},
			&cli.IntFlag{
				Name:    "count",
				Aliases: []string{"n"},
				Usage:   "number of strings to generate",
				Value:   1,
				Sources: cli.EnvVars(envPrefix + "COUNT"),
			},
			&cli.IntFlag{
				Name:    "workers",
				Aliases: []string{"w"},
				Usage:   "concurrent generators",
				Value:   4,
				Sources: cli.EnvVars(envPrefix + "WORKERS"),
			},
			&cli.BoolFlag{Name: "stats", Usage: "print per-character frequencies after the output"},
			&cli.BoolFlag{Name: "crlf", Usage: "terminate lines with \\r\\n"},
			&cli.BoolFlag{Name: "legacy", Usage: "build custom-alphabet masks the historical way"},
			&cli.BoolFlag{Name: "no-color", Usage: "disable colored output"},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "log debug details to stderr"},
		},
		Action: run,
		Commands: []*cli.Command{
			{
				Name:   "classes",
				Usage:  "list pattern identifiers and the random source in use",
				Action: listClasses,
			},
		},
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	out, errOut := writers(cmd)
	noColor := cmd.Bool("no-color") || !isTerminal(out)
	logger := newLogger(errOut, cmd.Bool("verbose"), noColor)

	req, err := requestFromArgs(cmd.Args().Slice(), cmd.String("chars"), cmd.IsSet("chars"))
	if err != nil {
		return err
	}

	count := cmd.Int("count")
	if count < 1 {
		return fmt.Errorf("count must be positive, got %d", count)
	}
	workers := min(max(cmd.Int("workers"), 1), count)

	var opts []randomatic.Option
	if cmd.Bool("legacy") {
		opts = append(opts, randomatic.WithLegacyMask())
	}
	gen := randomatic.NewGenerator(opts...)
	if !gen.IsCrypto() {
		logger.Warn("Secure random source unavailable; using math/rand.")
	}

	logger.Debug(
		"Resolved request.",
		"shape", req.Shape,
		"pattern", req.Pattern,
		"length", req.Length,
		"count", count,
		"workers", workers,
	)

	var t *tally
	if cmd.Bool("stats") {
		t = newTally()
	}

	results, err := generateBatch(ctx, gen, req, count, workers, t)
	if err != nil {
		return err
	}

	for _, s := range results {
		fmt.Fprintln(out, s)
	}
	if t != nil {
		printStats(out, t, noColor)
	}
	return nil
}

func listClasses(_ context.Context, cmd *cli.Command) error {
	out, _ := writers(cmd)
	for _, c := range randomatic.Classes() {
		letters := lo.Ternary(c.Letters == "", "(from --chars)", c.Letters)
		fmt.Fprintf(out, "%c  %-8s %s\n", c.Identifier, c.Name, letters)
	}
	fmt.Fprintf(out, "crypto: %t\n", randomatic.IsCrypto())
	return nil
}

// requestFromArgs maps positional arguments onto the generator call forms.
func requestFromArgs(args []string, chars string, charsSet bool) (randomatic.Request, error) {
	opts := randomatic.Options{Chars: chars}

	switch len(args) {
	case 0:
		if !charsSet {
			return randomatic.Request{}, errors.New("a pattern or length is required")
		}
		return randomatic.Parse("", opts)
	case 1:
		if n, err := strconv.ParseFloat(args[0], 64); err == nil {
			if charsSet {
				return randomatic.Parse(string(randomatic.Custom), n, opts)
			}
			return randomatic.Parse(n)
		}
		if charsSet {
			return randomatic.Parse(args[0], utf8.RuneCountInString(args[0]), opts)
		}
		return randomatic.Parse(args[0])
	case 2:
		if charsSet {
			return randomatic.Parse(args[0], args[1], opts)
		}
		return randomatic.Parse(args[0], args[1])
	default:
		return randomatic.Request{}, fmt.Errorf("expected at most 2 arguments, got %d", len(args))
	}
}

func writers(cmd *cli.Command) (out, errOut io.Writer) {
	root := cmd.Root()
	out = lo.Ternary[io.Writer](root.Writer != nil, root.Writer, os.Stdout)
	errOut = lo.Ternary[io.Writer](root.ErrWriter != nil, root.ErrWriter, os.Stderr)
	if root.Bool("crlf") {
		out = CRLFWriter{Out: out}
		errOut = CRLFWriter{Out: errOut}
	}
	return out, errOut
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func newLogger(w io.Writer, verbose, noColor bool) *slog.Logger {
	opts := *slogcolor.DefaultOptions
	opts.Level = lo.Ternary(verbose, slog.LevelDebug, slog.LevelInfo)
	opts.NoColor = noColor
	return slog.New(slogcolor.NewHandler(w, &opts))
}
