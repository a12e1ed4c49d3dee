// Copyright 2015 Andrew E. Bruno. All rights reserved.
// Use of this source code is governed by a BSD style
// license that can be found in the LICENSE file.

package vcf2seq

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Block is a run of N bases in a 2bit sequence.
type Block struct {
	start int
	count int
}

// End - Return the end of the block
func (b Block) End() int {
	return b.start + b.count
}

// twoBitRecord is the decoded header of one sequence.
type twoBitRecord struct {
	dnaSize int
	nBlocks []Block
	packed  int64 // file offset of the packed bases
}

// TwoBit reads sequences from the 2bit compact randomly-accessible format.
// Soft-masking is ignored; all bases come back upper case.
type TwoBit struct {
	reader    io.ReadSeeker
	byteOrder binary.ByteOrder
	index     map[string]int64
	records   map[string]*twoBitRecord
}

// NewTwoBit parses the header and index of a 2bit stream.
func NewTwoBit(r io.ReadSeeker) (*TwoBit, error) {
	tb := &TwoBit{
		reader:  r,
		records: make(map[string]*twoBitRecord),
	}

	count, err := tb.parseHeader()
	if err != nil {
		return nil, err
	}

	if err := tb.parseIndex(count); err != nil {
		return nil, err
	}

	return tb, nil
}

func (tb *TwoBit) uint32() (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(tb.reader, buf[:]); err != nil {
		return 0, err
	}
	return tb.byteOrder.Uint32(buf[:]), nil
}

// parseHeader checks signature, version and reserved word, and returns the
// number of sequences.
func (tb *TwoBit) parseHeader() (int, error) {
	b := make([]byte, 16)
	if _, err := io.ReadFull(tb.reader, b); err != nil {
		return 0, fmt.Errorf("twobit: reading header: %v", err)
	}

	tb.byteOrder = binary.BigEndian
	if binary.BigEndian.Uint32(b[0:4]) != SIG {
		tb.byteOrder = binary.LittleEndian
		if binary.LittleEndian.Uint32(b[0:4]) != SIG {
			return 0, fmt.Errorf("twobit: invalid signature, not a 2bit file?")
		}
	}

	if v := tb.byteOrder.Uint32(b[4:8]); v != 0 {
		return 0, fmt.Errorf("twobit: unsupported version %d", v)
	}
	if r := tb.byteOrder.Uint32(b[12:16]); r != 0 {
		return 0, fmt.Errorf("twobit: reserved header word is %d", r)
	}

	return int(tb.byteOrder.Uint32(b[8:12])), nil
}

func (tb *TwoBit) parseIndex(count int) error {
	tb.index = make(map[string]int64, count)

	for i := 0; i < count; i++ {
		var size [1]byte
		if _, err := io.ReadFull(tb.reader, size[:]); err != nil {
			return fmt.Errorf("twobit: reading index: %v", err)
		}

		name := make([]byte, size[0])
		if _, err := io.ReadFull(tb.reader, name); err != nil {
			return fmt.Errorf("twobit: reading index: %v", err)
		}

		offset, err := tb.uint32()
		if err != nil {
			return fmt.Errorf("twobit: reading index: %v", err)
		}

		tb.index[string(name)] = int64(offset)
	}

	return nil
}

// parseBlocks reads a block count followed by the starts and sizes arrays.
func (tb *TwoBit) parseBlocks() ([]Block, error) {
	count, err := tb.uint32()
	if err != nil {
		return nil, err
	}

	blocks := make([]Block, count)
	for i := range blocks {
		v, err := tb.uint32()
		if err != nil {
			return nil, err
		}
		blocks[i].start = int(v)
	}
	for i := range blocks {
		v, err := tb.uint32()
		if err != nil {
			return nil, err
		}
		blocks[i].count = int(v)
	}

	return blocks, nil
}

// record returns the decoded header of sequence name, parsing it on first use.
func (tb *TwoBit) record(name string) (*twoBitRecord, error) {
	if rec, ok := tb.records[name]; ok {
		return rec, nil
	}

	offset, ok := tb.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrChromNotFound, name)
	}

	if _, err := tb.reader.Seek(offset, io.SeekStart); err != nil {
		return nil, err
	}

	size, err := tb.uint32()
	if err != nil {
		return nil, fmt.Errorf("twobit: reading dnaSize of %s: %v", name, err)
	}

	rec := &twoBitRecord{dnaSize: int(size)}

	if rec.nBlocks, err = tb.parseBlocks(); err != nil {
		return nil, fmt.Errorf("twobit: reading nBlocks of %s: %v", name, err)
	}
	// mask blocks only carry soft-masking
	if _, err = tb.parseBlocks(); err != nil {
		return nil, fmt.Errorf("twobit: reading mBlocks of %s: %v", name, err)
	}
	if reserved, err := tb.uint32(); err != nil || reserved != 0 {
		return nil, fmt.Errorf("twobit: bad reserved word in %s", name)
	}

	pos, err := tb.reader.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, err
	}
	rec.packed = pos

	tb.records[name] = rec
	return rec, nil
}

// Names - Returns the names of sequences in the 2bit file
func (tb *TwoBit) Names() []string {
	names := make([]string, 0, len(tb.index))
	for n := range tb.index {
		names = append(names, n)
	}
	return names
}

// Length - Returns the length for sequence with name
func (tb *TwoBit) Length(name string) (int, error) {
	rec, err := tb.record(name)
	if err != nil {
		return -1, err
	}
	return rec.dnaSize, nil
}

// ReadRange reads bases [start, end) of sequence name. N blocks are
// restored as 'N'.
func (tb *TwoBit) ReadRange(name string, start, end int) ([]byte, error) {
	rec, err := tb.record(name)
	if err != nil {
		return nil, err
	}

	if start < 0 || end > rec.dnaSize || end <= start {
		return nil, fmt.Errorf("twobit: invalid range %d-%d for %s", start, end, name)
	}

	// packed bytes holding the range, 4 bases per byte
	first, last := start/4, (end+3)/4
	if _, err := tb.reader.Seek(rec.packed+int64(first), io.SeekStart); err != nil {
		return nil, err
	}

	buf := make([]byte, last-first)
	if _, err := io.ReadFull(tb.reader, buf); err != nil {
		return nil, fmt.Errorf("twobit: reading %d dna bytes of %s: %v", len(buf), name, err)
	}

	dna := make([]byte, len(buf)*4)
	for i, base := range buf {
		for j := 3; j >= 0; j-- {
			dna[i*4+j] = BYTES2NT[int(base&0x3)]
			base >>= 2
		}
	}

	off := start - first*4
	seq := dna[off : off+end-start]

	for _, b := range rec.nBlocks {
		if b.End() <= start || b.start >= end {
			continue
		}
		from, to := b.start-start, b.End()-start
		if from < 0 {
			from = 0
		}
		if to > len(seq) {
			to = len(seq)
		}
		for i := from; i < to; i++ {
			seq[i] = BASE_N
		}
	}

	return seq, nil
}
