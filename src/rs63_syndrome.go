package rs63

// SPDX-FileCopyrightText: 2002 Phil Karn, KA9Q
// SPDX-FileCopyrightText: The Samoyed Authors

// computeSyndromes evaluates the received polynomial at each root of the
// generator, alpha**((FCR+i)*PRM).  The polynomial is block[pad:], the data
// symbols followed by the parity symbols, with block[pad] the highest order
// coefficient.
//
// The syndromes come back in index form.  syn_error is the OR of all of them
// in poly form so zero means the block is already a codeword.
func (f *Field) computeSyndromes(block *[NN]byte, pad int) (syn [NROOTS]byte, syn_error byte) {
	// form the syndromes; i.e., evaluate data(x) at roots of g(x)
	for i := range syn {
		syn[i] = block[pad]
	}

	for j := pad + 1; j < NN; j++ {
		for i := 0; i < NROOTS; i++ {
			if syn[i] == 0 {
				syn[i] = block[j]
			} else {
				syn[i] = block[j] ^ f.alpha_to[modnn(int(f.index_of[syn[i]])+(FCR+i)*PRM)]
			}
		}
	}

	// Convert syndromes to index form, checking for nonzero condition
	for i := range syn {
		syn_error |= syn[i]
		syn[i] = f.index_of[syn[i]]
	}

	return syn, syn_error
}
