package vcf2seq

import (
	"fmt"
	"io"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

// memorySource holds every sequence of a genome in memory. Used for
// compressed FASTA, which cannot be read at random.
type memorySource map[string][]byte

func loadFASTA(r io.Reader) (memorySource, error) {
	src := make(memorySource)

	sc := seqio.NewScanner(fasta.NewReader(r, linear.NewSeq("", nil, alphabet.DNA)))
	for sc.Next() {
		s, ok := sc.Seq().(*linear.Seq)
		if !ok {
			return nil, fmt.Errorf("%w: unexpected sequence type %T", ErrGenomeUnreadable, sc.Seq())
		}
		b := make([]byte, len(s.Seq))
		for i, l := range s.Seq {
			b[i] = byte(l)
		}
		src[s.Name()] = b
	}
	if err := sc.Error(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenomeUnreadable, err)
	}

	return src, nil
}

func (m memorySource) names() []string {
	names := make([]string, 0, len(m))
	for n := range m {
		names = append(names, n)
	}
	return names
}

func (m memorySource) length(name string) (int, bool) {
	s, ok := m[name]
	return len(s), ok
}

func (m memorySource) read(name string, start, end int) ([]byte, error) {
	return append([]byte(nil), m[name][start:end]...), nil
}

func (m memorySource) Close() error { return nil }
