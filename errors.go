package vcf2seq

import "errors"

// Fatal conditions. Each aborts the whole run; callers match them with
// errors.Is.
var (
	ErrGenomeUnreadable = errors.New("genome unreadable")
	ErrChromNotFound    = errors.New("chromosome not found")
	ErrBadPosition      = errors.New("position is not a number")
	ErrBadRow           = errors.New("too few columns")
	ErrColumnRange      = errors.New("column out of range")
	ErrInvalidBase      = errors.New("invalid base")
)
