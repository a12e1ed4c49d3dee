package vcf2seq

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// Genome returns reference bases by chromosome and half-open 0-based
// interval. Intervals running past either end of a chromosome are clipped,
// so the result may be shorter than end-start.
type Genome interface {
	Fetch(chr string, start, end int) (string, error)
	Names() []string
}

// source is a genome storage backend. Callers guarantee
// 0 <= start < end <= length(name).
type source interface {
	names() []string
	length(name string) (int, bool)
	read(name string, start, end int) ([]byte, error)
	io.Closer
}

// Reference is a Genome backed by a FASTA, gzipped FASTA or 2bit file.
type Reference struct {
	src source

	// Alias lets "1" match "chr1" (and the reverse) and "MT" match "chrM"
	// when the exact name is missing.
	Alias bool
}

// OpenGenome opens a reference genome, choosing the backend from the file
// name: ".2bit" files use the 2bit reader, ".gz" files are loaded into
// memory, and anything else is read through a FASTA index (built next to
// the file when missing).
func OpenGenome(path string) (*Reference, error) {
	var (
		src source
		err error
	)
	switch {
	case strings.HasSuffix(path, ".2bit"):
		src, err = openTwoBit(path)
	case strings.HasSuffix(path, ".gz"):
		src, err = openGzipFASTA(path)
	default:
		src, err = openIndexedFASTA(path)
	}
	if err != nil {
		return nil, err
	}
	return &Reference{src: src}, nil
}

// NewMemoryGenome reads a whole FASTA stream into memory.
func NewMemoryGenome(r io.Reader) (*Reference, error) {
	src, err := loadFASTA(r)
	if err != nil {
		return nil, err
	}
	return &Reference{src: src}, nil
}

func openGzipFASTA(path string) (source, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenomeUnreadable, err)
	}
	defer fh.Close()

	gr, err := gzip.NewReader(fh)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrGenomeUnreadable, path, err)
	}
	defer gr.Close()

	return loadFASTA(gr)
}

// Names returns the sequence names of the genome, sorted.
func (g *Reference) Names() []string {
	names := g.src.names()
	sort.Strings(names)
	return names
}

// Close releases the underlying file.
func (g *Reference) Close() error {
	return g.src.Close()
}

// resolve finds the stored name and length for chr.
func (g *Reference) resolve(chr string) (string, int, error) {
	if n, ok := g.src.length(chr); ok {
		return chr, n, nil
	}
	if g.Alias {
		for _, name := range chromAliases(chr) {
			if n, ok := g.src.length(name); ok {
				return name, n, nil
			}
		}
	}
	return "", 0, fmt.Errorf("%w: %q", ErrChromNotFound, chr)
}

func chromAliases(chr string) []string {
	if bare := strings.TrimPrefix(chr, "chr"); bare != chr {
		if bare == "M" {
			return []string{bare, "MT"}
		}
		return []string{bare}
	}
	if chr == "MT" {
		return []string{"chrMT", "chrM"}
	}
	return []string{"chr" + chr}
}
