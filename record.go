package vcf2seq

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Kind tells which allele a record carries.
type Kind int

const (
	KindRef Kind = iota
	KindAlt
)

func (k Kind) String() string {
	if k == KindRef {
		return "ref"
	}
	return "alt"
}

// SequenceRecord is one header/sequence pair of the output.
type SequenceRecord struct {
	Header   string
	Sequence string
	Kind     Kind
}

// Pair holds the accepted REF and ALT records of a variant.
type Pair struct {
	Variant Variant
	Ref     SequenceRecord
	Alt     SequenceRecord
}

// Header builds ">{chr}_{pos}_{ref}_{alt}_{ref|alt}" followed by the extra
// column values, space separated.
func Header(v Variant, k Kind, extra []string) string {
	h := ">" + v.Name() + "_" + k.String()
	if len(extra) > 0 {
		h += " " + strings.Join(extra, " ")
	}
	return h
}

// Selection chooses which records are written.
type Selection int

const (
	SelectAlt Selection = iota
	SelectRef
	SelectBoth
)

// ParseSelection reads "alt", "ref" or "both".
func ParseSelection(s string) (Selection, error) {
	switch s {
	case "alt":
		return SelectAlt, nil
	case "ref":
		return SelectRef, nil
	case "both":
		return SelectBoth, nil
	}
	return 0, fmt.Errorf("invalid type %q: alt, ref or both", s)
}

func (s Selection) String() string {
	switch s {
	case SelectRef:
		return "ref"
	case SelectBoth:
		return "both"
	default:
		return "alt"
	}
}

// Select flattens pairs into records, keeping variant order. With
// SelectBoth each REF record comes right before its ALT record.
func Select(pairs []Pair, sel Selection) []SequenceRecord {
	n := len(pairs)
	if sel == SelectBoth {
		n *= 2
	}
	out := make([]SequenceRecord, 0, n)
	for _, p := range pairs {
		switch sel {
		case SelectRef:
			out = append(out, p.Ref)
		case SelectAlt:
			out = append(out, p.Alt)
		default:
			out = append(out, p.Ref, p.Alt)
		}
	}
	return out
}

// WriteRecords writes each record as a header line and a sequence line.
func WriteRecords(w io.Writer, recs []SequenceRecord) error {
	for _, r := range recs {
		if _, err := fmt.Fprintf(w, "%s\n%s\n", r.Header, r.Sequence); err != nil {
			return err
		}
	}
	return nil
}

// DefaultOutput derives "<name>-vcf2seq.fa" from the input path, in the
// current directory. A ".gz" suffix is dropped along with the extension.
func DefaultOutput(input string) string {
	base := strings.TrimSuffix(filepath.Base(input), ".gz")
	return strings.TrimSuffix(base, filepath.Ext(base)) + OutputSuffix
}
