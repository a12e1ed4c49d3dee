// Package cli parses the vcf2seq command line.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/mendelics/vcf2seq"
)

// Version of the vcf2seq command.
const Version = "1.0.0"

// Options holds all CLI flags and arguments.
type Options struct {
	VCF    string
	Genome string

	Size      int
	Selection vcf2seq.Selection
	Blank     byte
	Columns   []int
	Alias     bool

	Output string
	Quiet  bool

	Version bool
}

// NewFlagSet returns a FlagSet with ContinueOnError and the vcf2seq usage.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: fixed-length genomic sequences around VCF variants

Reads a VCF file and writes, for each variant allele, a sequence of exactly
-size bases centered on the variant, taken from the genome. The blank
character stands for a missing allele (pure insertions and deletions).
An ALT allele longer than -size is left out with a warning; a REF allele
longer than -size is cut down to its central -size bases.
Headers are formatted as "<chr>_<position>_<ref>_<alt>_<ref|alt>".

Version: %s

Usage: %s [flags] <vcf>
`, name, Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags. Flags may come before or after
// the VCF path.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	opt := Options{Blank: vcf2seq.DefaultBlank}
	var (
		help      bool
		selection string
		blank     string
		columns   columnList
	)

	fs.StringVar(&opt.Genome, "genome", "", "genome as FASTA, gzipped FASTA or 2bit file [*]")
	fs.StringVar(&opt.Genome, "g", "", "genome (shorthand)")
	fs.IntVar(&opt.Size, "size", vcf2seq.DefaultSize, "size of the output sequence")
	fs.IntVar(&opt.Size, "s", vcf2seq.DefaultSize, "size (shorthand)")
	fs.StringVar(&selection, "type", "alt", "output alt, ref or both")
	fs.StringVar(&selection, "t", "alt", "type (shorthand)")
	fs.StringVar(&blank, "blank", string(vcf2seq.DefaultBlank), "missing nucleotide character")
	fs.StringVar(&blank, "b", string(vcf2seq.DefaultBlank), "blank (shorthand)")
	fs.Var(&columns, "add-columns", "add VCF column(s) to headers, repeatable or comma separated (ex: '3,AA' adds columns 3 and 27; the first column is 1 or A)")
	fs.Var(&columns, "a", "add-columns (shorthand)")
	fs.StringVar(&opt.Output, "output", "", "output file, '-' for stdout (default: <vcf name>"+vcf2seq.OutputSuffix+")")
	fs.StringVar(&opt.Output, "o", "", "output (shorthand)")
	fs.BoolVar(&opt.Alias, "chr-alias", false, "match '1' with 'chr1' and 'MT' with 'chrM' when names differ")
	fs.BoolVar(&opt.Quiet, "quiet", false, "only report warnings for variants left out")
	fs.BoolVar(&opt.Quiet, "q", false, "quiet (shorthand)")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit")
	fs.BoolVar(&opt.Version, "v", false, "version (shorthand)")
	fs.BoolVar(&help, "h", false, "show this help message")

	var pos []string
	for {
		if err := fs.Parse(argv); err != nil {
			return opt, err
		}
		argv = fs.Args()
		if len(argv) == 0 {
			break
		}
		pos = append(pos, argv[0])
		argv = argv[1:]
	}

	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.Columns = columns

	// Validation
	switch {
	case len(pos) == 0:
		return opt, errors.New("a VCF file is required")
	case len(pos) > 1:
		return opt, fmt.Errorf("unexpected arguments: %s", strings.Join(pos[1:], " "))
	}
	opt.VCF = pos[0]
	if opt.Genome == "" {
		return opt, errors.New("--genome is required")
	}
	if opt.Size < 1 {
		return opt, fmt.Errorf("--size must be a positive integer (got %d)", opt.Size)
	}
	sel, err := vcf2seq.ParseSelection(selection)
	if err != nil {
		return opt, err
	}
	opt.Selection = sel
	if len(blank) != 1 {
		return opt, fmt.Errorf("--blank must be a single character (got %q)", blank)
	}
	if strings.ContainsAny(strings.ToUpper(blank), "ACGTN") {
		return opt, fmt.Errorf("--blank %q collides with a nucleotide", blank)
	}
	opt.Blank = blank[0]
	return opt, nil
}

// columnList collects repeatable, comma separated column references.
type columnList []int

func (c *columnList) String() string {
	if c == nil {
		return ""
	}
	parts := make([]string, len(*c))
	for i, n := range *c {
		parts[i] = fmt.Sprint(n)
	}
	return strings.Join(parts, ",")
}

func (c *columnList) Set(v string) error {
	for _, tok := range strings.Split(v, ",") {
		n, err := vcf2seq.ParseColumn(tok)
		if err != nil {
			return err
		}
		*c = append(*c, n)
	}
	return nil
}
