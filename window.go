package vcf2seq

// Interval is a half-open, 0-based genome interval.
type Interval struct {
	Start, End int
}

// Len is End-Start, or 0 for empty and inverted intervals.
func (iv Interval) Len() int {
	if iv.End <= iv.Start {
		return 0
	}
	return iv.End - iv.Start
}

// WindowSpec holds the three segment lengths of a window. Left and Right go
// negative when the allele alone is longer than the window.
type WindowSpec struct {
	Left   int
	Allele int
	Right  int
}

// Len is the planned window length.
func (s WindowSpec) Len() int { return s.Left + s.Allele + s.Right }

// Window places one allele inside a window of the genome.
//
// Core is read from the genome (REF windows); Insert is spliced literally
// (ALT windows). A window never uses both.
type Window struct {
	Spec   WindowSpec
	Left   Interval
	Core   Interval
	Insert string
	Right  Interval
}

// Span is the single genome interval covering a REF window, from the start
// of the left flank to the end of the right flank. With negative flanks it
// is the centered slice of an oversized reference allele.
func (w Window) Span() Interval { return Interval{w.Left.Start, w.Right.End} }

// WindowPair holds the REF and ALT windows of one variant allele pair.
type WindowPair struct {
	Ref Window
	Alt Window
}

// parity returns the base added to the right flank so that an odd
// remainder K-len still sums to K.
func parity(a Allele, k int) int {
	n := a.Len()
	if k&1 == 0 {
		if n&1 == 1 {
			return 1
		}
		return 0
	}
	if a.IsAbsent() || n&1 == 0 {
		return 1
	}
	return 0
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// ComputeSpec splits k around allele a. The left flank is
// floor((k-len)/2); the right flank gets the parity base.
func ComputeSpec(a Allele, k int) WindowSpec {
	n := a.Len()
	left := floorDiv(k-n, 2)
	return WindowSpec{Left: left, Allele: n, Right: left + parity(a, k)}
}

// ComputeWindows computes both windows for a variant whose first reference
// base sits at the 0-based anchor.
//
// Both left flanks end at the anchor. The REF right flank follows the
// genome allele, and the ALT right flank also starts where the reference
// allele ends, so the two windows stay aligned across indels.
func ComputeWindows(ref, alt Allele, anchor, k int) WindowPair {
	rs := ComputeSpec(ref, k)
	as := ComputeSpec(alt, k)

	refEnd := anchor + rs.Allele
	return WindowPair{
		Ref: Window{
			Spec:  rs,
			Left:  Interval{anchor - rs.Left, anchor},
			Core:  Interval{anchor, refEnd},
			Right: Interval{refEnd, refEnd + rs.Right},
		},
		Alt: Window{
			Spec:   as,
			Left:   Interval{anchor - as.Left, anchor},
			Core:   Interval{anchor, anchor},
			Insert: alt.Text(),
			Right:  Interval{refEnd, refEnd + as.Right},
		},
	}
}
