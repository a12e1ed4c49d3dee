package vcf2seq

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// Evaluator turns variants into fixed-length REF and ALT sequences read
// from a genome. It is not safe for concurrent use.
type Evaluator struct {
	Genome Genome
	K      int
	Blank  byte

	// Columns are 1-based VCF columns appended to every header.
	Columns []int

	Diag Diagnostics
}

// NewEvaluator returns an Evaluator producing windows of k bases.
func NewEvaluator(g Genome, k int, blank byte) *Evaluator {
	return &Evaluator{Genome: g, K: k, Blank: blank}
}

// Run evaluates every variant of a VCF stream in input order and returns
// the accepted pairs. Dropped variants leave a warning in e.Diag. The
// returned error is fatal for the whole run.
func (e *Evaluator) Run(ctx context.Context, r io.Reader) ([]Pair, error) {
	var pairs []Pair
	err := ReadVCF(ctx, r, func(row Row) error {
		extra, err := row.Columns(e.Columns)
		if err != nil {
			return err
		}
		for _, v := range row.Variants(e.Blank) {
			p, err := e.Evaluate(v, extra)
			if err != nil {
				return err
			}
			if p != nil {
				pairs = append(pairs, *p)
			}
		}
		return nil
	})
	return pairs, err
}

// Evaluate computes the windows of one variant. It returns nil without
// error when the variant is dropped.
func (e *Evaluator) Evaluate(v Variant, extra []string) (*Pair, error) {
	if err := e.checkBases(v); err != nil {
		return nil, err
	}

	if len(v.RefText) > e.K || len(v.AltText) > e.K {
		e.Diag.Warnf(LargeAlteration, v.Line,
			"large alteration (%s) longer than the sequence size (%d bp), it may be left out.",
			v.Name(), e.K)
	}

	pair := ComputeWindows(v.Ref, v.Alt, v.Anchor(), e.K)

	seqRef, seqAlt, err := WindowSequences(e.Genome, v.Chrom, pair)
	if err != nil {
		return nil, e.fatal(v, err)
	}

	if v.Ref.Len() > 0 {
		core := pair.Ref.Core
		found, err := e.Genome.Fetch(v.Chrom, core.Start, core.End)
		if err != nil {
			return nil, e.fatal(v, err)
		}
		if found != v.Ref.Text() {
			e.Diag.Warnf(RefMismatch, v.Line,
				"mismatch between REF and genome at line %d (%s:%d): REF on the vcf file %q, found on the genome %q. Please check if the given genome is appropriate.",
				v.Line, v.Chrom, v.Pos, v.Ref.Text(), found)
		}
	}

	switch {
	case len(seqRef) == e.K && len(seqAlt) == e.K:
		return &Pair{
			Variant: v,
			Ref:     SequenceRecord{Header: Header(v, KindRef, extra), Sequence: seqRef, Kind: KindRef},
			Alt:     SequenceRecord{Header: Header(v, KindAlt, extra), Sequence: seqAlt, Kind: KindAlt},
		}, nil
	case len(seqAlt) > e.K:
		e.Diag.Warnf(AltTooLong, v.Line,
			"ALT length (%d bp) larger than sequence (%d bp) at line %d, ignored.",
			len(seqAlt), e.K, v.Line)
	default:
		e.Diag.Warnf(LengthMismatch, v.Line,
			"sequence size not correct at line %d, ignored (REF %d, ALT %d, expected %d).",
			v.Line, len(seqRef), len(seqAlt), e.K)
	}
	return nil, nil
}

// checkBases rejects alleles whose first character is neither a nucleotide
// nor the blank marker.
func (e *Evaluator) checkBases(v Variant) error {
	for _, a := range []struct{ name, text string }{{"REF", v.RefText}, {"ALT", v.AltText}} {
		if a.text == "" {
			return fmt.Errorf("%w: empty %s allele at line %d", ErrInvalidBase, a.name, v.Line)
		}
		switch c := a.text[0]; c {
		case BASE_A, BASE_C, BASE_G, BASE_T, e.Blank:
		default:
			return fmt.Errorf("%w: %s base %q at line %d; you might set the blank character to %q or check the VCF file",
				ErrInvalidBase, a.name, c, v.Line, c)
		}
	}
	return nil
}

func (e *Evaluator) fatal(v Variant, err error) error {
	if !errors.Is(err, ErrChromNotFound) {
		return fmt.Errorf("line %d: %w", v.Line, err)
	}
	hint := ""
	if names := e.Genome.Names(); len(names) > 0 {
		hint = fmt.Sprintf(" (genome has e.g. %q)", names[0])
	}
	return fmt.Errorf("line %d: %w%s; chromosomes must be named the same way in the VCF and the genome",
		v.Line, err, hint)
}
