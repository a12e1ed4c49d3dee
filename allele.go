package vcf2seq

// Allele is either a run of bases or the absence of bases (the blank marker
// in VCF text: the REF of a pure insertion or the ALT of a pure deletion).
type Allele struct {
	bases  string
	absent bool
}

// Bases returns an allele made of the given bases.
func Bases(s string) Allele { return Allele{bases: s} }

// Absent returns the allele that contributes no bases.
func Absent() Allele { return Allele{absent: true} }

// ParseAllele reads VCF allele text, mapping the blank marker to Absent.
func ParseAllele(text string, blank byte) Allele {
	if len(text) == 1 && text[0] == blank {
		return Absent()
	}
	return Bases(text)
}

// IsAbsent reports whether the allele carries no bases.
func (a Allele) IsAbsent() bool { return a.absent }

// Len is the number of bases the allele contributes to a window.
func (a Allele) Len() int {
	if a.absent {
		return 0
	}
	return len(a.bases)
}

// Text returns the literal bases, "" when absent.
func (a Allele) Text() string {
	if a.absent {
		return ""
	}
	return a.bases
}

// Format renders the allele as it appears in VCF text.
func (a Allele) Format(blank byte) string {
	if a.absent {
		return string(blank)
	}
	return a.bases
}
