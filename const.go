// Copyright 2015 Andrew E. Bruno. All rights reserved.
// Use of this source code is governed by a BSD style
// license that can be found in the LICENSE file.

package vcf2seq

// SIG - 2bit file signature
const SIG = 0x1A412743

// Nucleotides accepted as the first base of REF and ALT.
const (
	BASE_A = 'A'
	BASE_C = 'C'
	BASE_G = 'G'
	BASE_T = 'T'
	BASE_N = 'N'
)

// BYTES2NT - 2bit code to nucleotide
var BYTES2NT = []byte{
	BASE_T,
	BASE_C,
	BASE_A,
	BASE_G,
}

// Defaults for the command line and the Evaluator.
const (
	DefaultSize  = 31
	DefaultBlank = '.'
	OutputSuffix = "-vcf2seq.fa"
)
