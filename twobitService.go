package vcf2seq

import (
	"bytes"
	"fmt"
	"os"
)

// twoBitSource serves a 2bit genome held in memory.
type twoBitSource struct {
	tb *TwoBit
}

func openTwoBit(path string) (*twoBitSource, error) {
	rdr, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenomeUnreadable, err)
	}
	return newTwoBitSource(rdr)
}

func newTwoBitSource(raw []byte) (*twoBitSource, error) {
	tb, err := NewTwoBit(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenomeUnreadable, err)
	}
	return &twoBitSource{tb: tb}, nil
}

func (s *twoBitSource) names() []string { return s.tb.Names() }

func (s *twoBitSource) length(name string) (int, bool) {
	n, err := s.tb.Length(name)
	return n, err == nil
}

func (s *twoBitSource) read(name string, start, end int) ([]byte, error) {
	return s.tb.ReadRange(name, start, end)
}

func (s *twoBitSource) Close() error { return nil }
