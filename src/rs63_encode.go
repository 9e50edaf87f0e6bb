package rs63

// SPDX-FileCopyrightText: 2002 Phil Karn, KA9Q
// SPDX-FileCopyrightText: The Samoyed Authors

import (
	"fmt"
)

// Encode computes the NROOTS parity symbols for 1 to LOAD data symbols using
// the shared field.  See (*Field).Encode.
func Encode(data []byte, parity []byte) error {
	var f, err = defaultField()
	if err != nil {
		return err
	}

	return f.Encode(data, parity)
}

// Encode computes the NROOTS parity symbols for data into parity.
//
// A short block is a shortened code: the missing leading symbols are zero,
// and zero symbols leave the shift register unchanged, so they are not fed
// in at all.  Passenger bits of data are ignored and parity is written with
// none, ready for Decode.
func (f *Field) Encode(data []byte, parity []byte) error {
	if len(data) == 0 || len(data) > LOAD {
		return fmt.Errorf("%w: data length incompatible with block size and error correction symbols", ErrInputSize)
	}
	if len(parity) < NROOTS {
		return fmt.Errorf("%w: %d parity symbols, need %d", ErrInputSize, len(parity), NROOTS)
	}

	var bb [NROOTS]byte

	for i := range data {
		// feedback = INDEX_OF[data[i] ^ bb[0]]
		var feedback = f.index_of[(data[i]&SYMBOL_MASK)^bb[0]]

		if feedback != A0 { // feedback term is non-zero
			for j := 1; j < NROOTS; j++ {
				bb[j] ^= f.alpha_to[modnn(int(feedback)+int(f.genpoly[NROOTS-j]))]
			}
		}

		// Shift
		copy(bb[:], bb[1:])

		if feedback != A0 {
			bb[NROOTS-1] = f.alpha_to[modnn(int(feedback)+int(f.genpoly[0]))]
		} else {
			bb[NROOTS-1] = 0
		}
	}

	copy(parity, bb[:])

	return nil
}
