package vcf2seq

import (
	"fmt"
)

// WindowSequences reads both windows of pair from g.
//
// The REF window is one contiguous read over its span. The ALT window is
// its left flank, the literal ALT bases and its right flank.
func WindowSequences(g Genome, chr string, pair WindowPair) (seqRef, seqAlt string, err error) {
	span := pair.Ref.Span()
	seqRef, err = g.Fetch(chr, span.Start, span.End)
	if err != nil {
		return "", "", err
	}

	seqL, err := g.Fetch(chr, pair.Alt.Left.Start, pair.Alt.Left.End)
	if err != nil {
		return "", "", err
	}

	seqR, err := g.Fetch(chr, pair.Alt.Right.Start, pair.Alt.Right.End)
	if err != nil {
		return "", "", err
	}

	seqAlt = fmt.Sprintf("%s%s%s", seqL, pair.Alt.Insert, seqR)

	return seqRef, seqAlt, nil
}
