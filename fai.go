package vcf2seq

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/biogo/hts/fai"
)

// faiSource reads a plain FASTA file through its samtools-style index.
type faiSource struct {
	fh   *os.File
	idx  fai.Index
	file *fai.File
}

func openIndexedFASTA(path string) (*faiSource, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenomeUnreadable, err)
	}

	idx, err := loadIndex(path, fh)
	if err != nil {
		fh.Close()
		return nil, err
	}

	return &faiSource{fh: fh, idx: idx, file: fai.NewFile(fh, idx)}, nil
}

// loadIndex reads path.fai, or builds the index from fasta when the file
// does not exist yet and tries to save it for the next run.
func loadIndex(path string, fasta io.Reader) (fai.Index, error) {
	idxPath := path + ".fai"

	fh, err := os.Open(idxPath)
	switch {
	case err == nil:
		defer fh.Close()
		idx, err := fai.ReadFrom(fh)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrGenomeUnreadable, idxPath, err)
		}
		return idx, nil
	case !os.IsNotExist(err):
		return nil, fmt.Errorf("%w: %v", ErrGenomeUnreadable, err)
	}

	idx, err := fai.NewIndex(fasta)
	if err != nil {
		return nil, fmt.Errorf("%w: indexing %s: %v", ErrGenomeUnreadable, path, err)
	}

	if err := writeIndex(idxPath, idx); err != nil {
		log.Printf("could not save index %s, keeping it in memory: %v", idxPath, err)
	}

	return idx, nil
}

func writeIndex(path string, idx fai.Index) error {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fai.WriteTo(fh, idx); err != nil {
		fh.Close()
		os.Remove(path)
		return err
	}
	return fh.Close()
}

func (s *faiSource) names() []string {
	names := make([]string, 0, len(s.idx))
	for n := range s.idx {
		names = append(names, n)
	}
	return names
}

func (s *faiSource) length(name string) (int, bool) {
	rec, ok := s.idx[name]
	return rec.Length, ok
}

func (s *faiSource) read(name string, start, end int) ([]byte, error) {
	seq, err := s.file.SeqRange(name, start, end)
	if err != nil {
		return nil, err
	}
	return io.ReadAll(seq)
}

func (s *faiSource) Close() error {
	return s.fh.Close()
}
