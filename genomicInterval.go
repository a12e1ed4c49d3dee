package vcf2seq

import (
	"bytes"
	"errors"
)

// Fetch returns the upper-cased bases of chr over [start, end). Empty and
// inverted intervals yield "" without touching the backend.
func (g *Reference) Fetch(chr string, start, end int) (string, error) {
	if chr == "" {
		return "", errors.New("cannot fetch from a blank chromosome")
	}

	name, length, err := g.resolve(chr)
	if err != nil {
		return "", err
	}

	start, end = clampInterval(start, end, length)
	if end <= start {
		return "", nil
	}

	seq, err := g.src.read(name, start, end)
	if err != nil {
		return "", err
	}

	return string(bytes.ToUpper(seq)), nil
}
