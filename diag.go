package vcf2seq

import "fmt"

// WarningKind classifies recoverable problems.
type WarningKind int

const (
	LargeAlteration WarningKind = iota
	RefMismatch
	AltTooLong
	LengthMismatch
)

func (k WarningKind) String() string {
	switch k {
	case LargeAlteration:
		return "large-alteration"
	case RefMismatch:
		return "ref-mismatch"
	case AltTooLong:
		return "alt-too-long"
	case LengthMismatch:
		return "length-mismatch"
	default:
		return "unknown"
	}
}

// Dropped reports whether warnings of this kind mean a record was left out
// of the output.
func (k WarningKind) Dropped() bool {
	return k == AltTooLong || k == LengthMismatch
}

// Warning is a recoverable problem found while evaluating a variant.
type Warning struct {
	Kind    WarningKind
	Line    int
	Message string
}

func (w Warning) String() string { return "Warning: " + w.Message }

// Diagnostics collects warnings in the order they are raised.
type Diagnostics struct {
	warnings []Warning
}

// Warnf appends a warning.
func (d *Diagnostics) Warnf(kind WarningKind, line int, format string, a ...interface{}) {
	d.warnings = append(d.warnings, Warning{Kind: kind, Line: line, Message: fmt.Sprintf(format, a...)})
}

// Warnings returns the collected warnings.
func (d *Diagnostics) Warnings() []Warning { return d.warnings }

// Count returns how many warnings of kind were raised.
func (d *Diagnostics) Count(kind WarningKind) int {
	n := 0
	for _, w := range d.warnings {
		if w.Kind == kind {
			n++
		}
	}
	return n
}
