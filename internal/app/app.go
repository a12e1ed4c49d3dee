// Package app runs the vcf2seq command.
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"syscall"

	"github.com/mendelics/vcf2seq"
	"github.com/mendelics/vcf2seq/internal/cli"
)

// Exit codes.
const (
	ExitOK       = 0
	ExitFatal    = 1
	ExitUsage    = 2
	ExitWrite    = 3
	ExitCanceled = 130
)

// Run parses argv and runs vcf2seq with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// RunContext runs vcf2seq and returns the process exit code. Sequences go
// to the output file (or stdout); warnings are printed to stderr once the
// output is written.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet("vcf2seq")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		argv = []string{"-h"}
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(stdout)
			fs.Usage()
			return ExitOK
		}
		fmt.Fprintf(stderr, "vcf2seq: %v\n", err)
		fs.SetOutput(stderr)
		fs.Usage()
		return ExitUsage
	}

	if opts.Version {
		fmt.Fprintf(stdout, "vcf2seq version %s\n", cli.Version)
		return ExitOK
	}

	genome, err := vcf2seq.OpenGenome(opts.Genome)
	if err != nil {
		fmt.Fprintf(stderr, "vcf2seq: %v\n", err)
		return ExitFatal
	}
	defer genome.Close()
	genome.Alias = opts.Alias

	in, err := vcf2seq.OpenInput(opts.VCF)
	if err != nil {
		fmt.Fprintf(stderr, "vcf2seq: %v\n", err)
		return ExitFatal
	}
	defer in.Close()

	ev := vcf2seq.NewEvaluator(genome, opts.Size, opts.Blank)
	ev.Columns = opts.Columns

	pairs, err := ev.Run(ctx, in)
	if err != nil {
		if ctx.Err() != nil {
			return ExitCanceled
		}
		fmt.Fprintf(stderr, "vcf2seq: %v\n", err)
		return ExitFatal
	}

	recs := vcf2seq.Select(pairs, opts.Selection)
	if len(recs) == 0 {
		fmt.Fprintln(stderr, "vcf2seq: no sequence kept, nothing written")
	} else if err := writeOutput(outputPath(opts), stdout, recs); err != nil {
		if isBrokenPipe(err) {
			return ExitOK
		}
		fmt.Fprintf(stderr, "vcf2seq: %v\n", err)
		return ExitWrite
	}

	printWarnings(stderr, ev.Diag.Warnings(), opts.Quiet)
	return ExitOK
}

// outputPath returns the -output value, "-" for stdin input, or the name
// derived from the VCF file.
func outputPath(opts cli.Options) string {
	switch {
	case opts.Output != "":
		return opts.Output
	case opts.VCF == "-":
		return "-"
	default:
		return vcf2seq.DefaultOutput(opts.VCF)
	}
}

func writeOutput(path string, stdout io.Writer, recs []vcf2seq.SequenceRecord) error {
	if path == "-" {
		w := bufio.NewWriter(stdout)
		if err := vcf2seq.WriteRecords(w, recs); err != nil {
			return err
		}
		return w.Flush()
	}

	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(fh)
	if err := vcf2seq.WriteRecords(w, recs); err != nil {
		fh.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		fh.Close()
		return err
	}
	return fh.Close()
}

// printWarnings lists warnings after the output. In quiet mode only the
// warnings for variants left out are shown.
func printWarnings(w io.Writer, warnings []vcf2seq.Warning, quiet bool) {
	for _, wr := range warnings {
		if quiet && !wr.Kind.Dropped() {
			continue
		}
		fmt.Fprintln(w, wr.String())
	}
}

// isBrokenPipe reports whether an error is a broken pipe / closed pipe,
// as when a consumer like `head` closes stdout early.
func isBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
