package vcf2seq

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Variant is one REF/ALT pair of a VCF row. Rows with several ALT alleles
// give one Variant per ALT.
type Variant struct {
	Chrom string
	Pos   int // 1-based, first base of REF
	Ref   Allele
	Alt   Allele

	// RefText and AltText keep the alleles as written in the VCF.
	RefText string
	AltText string

	Line int
}

// Anchor is the 0-based coordinate of the first REF base.
func (v Variant) Anchor() int { return v.Pos - 1 }

// Name is the "<chr>_<pos>_<ref>_<alt>" identifier used in headers.
func (v Variant) Name() string {
	return fmt.Sprintf("%s_%d_%s_%s", v.Chrom, v.Pos, v.RefText, v.AltText)
}

// Row is a data line of a VCF file.
type Row struct {
	Line   int
	Fields []string
	Chrom  string
	Pos    int
	Ref    string
	Alts   []string
}

// Variants expands the row into one Variant per ALT allele.
func (r Row) Variants(blank byte) []Variant {
	out := make([]Variant, 0, len(r.Alts))
	for _, alt := range r.Alts {
		out = append(out, Variant{
			Chrom:   r.Chrom,
			Pos:     r.Pos,
			Ref:     ParseAllele(r.Ref, blank),
			Alt:     ParseAllele(alt, blank),
			RefText: r.Ref,
			AltText: alt,
			Line:    r.Line,
		})
	}
	return out
}

// Columns returns the fields at the 1-based positions in idx.
func (r Row) Columns(idx []int) ([]string, error) {
	out := make([]string, 0, len(idx))
	for _, i := range idx {
		if i < 1 || i > len(r.Fields) {
			return nil, fmt.Errorf("%w: line %d has %d columns, column %d requested",
				ErrColumnRange, r.Line, len(r.Fields), i)
		}
		out = append(out, r.Fields[i-1])
	}
	return out, nil
}

// ParseRow splits one tab-separated VCF data line.
func ParseRow(line string, ln int) (Row, error) {
	f := strings.Split(line, "\t")
	if len(f) < 5 {
		return Row{}, fmt.Errorf("%w: line %d has %d columns, CHROM POS ID REF ALT expected",
			ErrBadRow, ln, len(f))
	}

	pos, err := strconv.ParseUint(f[1], 10, 0)
	if err != nil {
		return Row{}, fmt.Errorf("%w: line %d, found %q (are the header lines commented with '#'?)",
			ErrBadPosition, ln, f[1])
	}

	return Row{
		Line:   ln,
		Fields: f,
		Chrom:  f[0],
		Pos:    int(pos),
		Ref:    f[3],
		Alts:   strings.Split(f[4], ","),
	}, nil
}

// ReadVCF calls fn for each data row of r, in order. Empty lines and lines
// starting with '#' are skipped but still counted in line numbers.
// Cancellation via ctx is checked between lines.
func ReadVCF(ctx context.Context, r io.Reader, fn func(Row) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024
	sc.Buffer(make([]byte, 64*1024), maxLine)

	ln := 0
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		ln++

		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" || line[0] == '#' {
			continue
		}

		row, err := ParseRow(line, ln)
		if err != nil {
			return err
		}
		if err := fn(row); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("vcf scan: %w", err)
	}
	return nil
}

// ParseColumn converts a 1-based column number or spreadsheet letters
// ("A" is 1, "Z" is 26, "AA" is 27) into a column number.
func ParseColumn(tok string) (int, error) {
	tok = strings.TrimSpace(tok)
	if tok == "" {
		return 0, fmt.Errorf("empty column")
	}

	if n, err := strconv.Atoi(tok); err == nil {
		if n < 1 {
			return 0, fmt.Errorf("column %d: the first column is 1", n)
		}
		return n, nil
	}

	n := 0
	for _, c := range strings.ToUpper(tok) {
		if c < 'A' || c > 'Z' {
			return 0, fmt.Errorf("invalid column %q", tok)
		}
		n = n*26 + int(c-'A') + 1
	}
	return n, nil
}
