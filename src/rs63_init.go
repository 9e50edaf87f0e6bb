package rs63

// SPDX-FileCopyrightText: 2002 Phil Karn, KA9Q
// SPDX-FileCopyrightText: The Samoyed Authors

// The table construction and generator polynomial are based on Phil Karn's
// init_rs_char, the same code used for the FX.25 and IL2P codecs, cut down to
// the one field and code used here.

import (
	"fmt"
	"sync"
)

// Field holds the lookup tables for GF(2^6) and the RS(63,36) generator
// polynomial.  It is never modified after NewField returns, so one Field can
// be shared by any number of goroutines.
type Field struct {
	gfpoly   uint
	alpha_to [NN + 1]byte     // log to value, alpha_to[A0] = 0
	index_of [NN + 1]byte     // value to log, index_of[0] = A0
	genpoly  [NROOTS + 1]byte // generator polynomial, index form
	iprim    int              // prim-th root of 1, index form
}

// Step returns the element following sr in the multiplicative sequence
// generated by alpha, reducing by the fixed field polynomial.
func Step(sr uint) uint {
	return gf_step(sr, GFPOLY)
}

func gf_step(sr uint, gfpoly uint) uint {
	if sr == 0 {
		return 1
	}

	sr <<= 1
	if sr&(1<<SYM) != 0 {
		sr ^= gfpoly
	}

	return sr & NN
}

// Reduce an index sum into [0, NN).  Taken straight from Karn's modnn.
// 64 == 1 mod 63 so the high and low parts can be folded together.
func modnn(x int) int {
	for x >= NN {
		x -= NN
		x = (x >> MM) + (x & NN)
	}

	return x
}

/*-------------------------------------------------------------
 *
 * Name:	NewField
 *
 * Purpose:	Generate Galois field lookup tables and the RS code
 *		generator polynomial.
 *
 * Inputs:	gfpoly	- Field generator polynomial, including the x^6 term.
 *			  Always GFPOLY (0x43) for this application.
 *
 * Returns:	The field, or ErrNotPrimitive if the polynomial does not
 *		generate every nonzero element.
 *
 *--------------------------------------------------------------*/

func NewField(gfpoly uint) (*Field, error) {
	var f = new(Field)
	f.gfpoly = gfpoly

	f.index_of[0] = A0 // log(zero) = -inf
	f.alpha_to[A0] = 0 // alpha**-inf = 0

	var sr = gf_step(0, gfpoly)
	for i := 0; i < NN; i++ {
		f.index_of[sr] = byte(i)
		f.alpha_to[i] = byte(sr)
		sr = gf_step(sr, gfpoly)
	}

	if sr != uint(f.alpha_to[0]) {
		return nil, fmt.Errorf("%w: 0x%02x", ErrNotPrimitive, gfpoly)
	}

	// Coming back to 1 after 63 steps is not enough on its own.  A polynomial
	// of order 3, 7, 9 or 21 does that too, while leaving values unvisited.
	if f.index_of[0] != A0 {
		return nil, fmt.Errorf("%w: 0x%02x", ErrNotPrimitive, gfpoly)
	}
	for v := 1; v <= NN; v++ {
		if int(f.alpha_to[f.index_of[v]]) != v {
			return nil, fmt.Errorf("%w: 0x%02x", ErrNotPrimitive, gfpoly)
		}
	}

	// Find prim-th root of 1, used in decoding
	var iptmp = 1
	for iptmp%PRM != 0 {
		iptmp += NN
	}
	f.iprim = iptmp / PRM

	// Form RS code generator polynomial from its roots
	f.genpoly[0] = 1
	for i, root := 0, FCR*PRM; i < NROOTS; i, root = i+1, root+PRM {
		f.genpoly[i+1] = 1

		// Multiply genpoly[] by  @**(root + x)
		for j := i; j > 0; j-- {
			if f.genpoly[j] != 0 {
				f.genpoly[j] = f.genpoly[j-1] ^ f.alpha_to[modnn(int(f.index_of[f.genpoly[j]])+root)]
			} else {
				f.genpoly[j] = f.genpoly[j-1]
			}
		}
		// genpoly[0] can never be zero
		f.genpoly[0] = f.alpha_to[modnn(int(f.index_of[f.genpoly[0]])+root)]
	}
	// convert genpoly[] to index form for quicker encoding
	for i := range f.genpoly {
		f.genpoly[i] = f.index_of[f.genpoly[i]]
	}

	return f, nil
}

// AlphaTo returns alpha**i for i in [0, NN).  AlphaTo(A0) is 0, the
// discrete log of zero being A0.  Any other i is reduced mod NN first.
func (f *Field) AlphaTo(i int) byte {
	if i == A0 {
		return 0
	}
	if i < 0 || i > NN {
		i = (i%NN + NN) % NN
	}
	return f.alpha_to[i]
}

// IndexOf returns the discrete log of v.  IndexOf(0) is A0.
func (f *Field) IndexOf(v byte) byte {
	return f.index_of[v&SYMBOL_MASK]
}

// Iprim returns the index form of the PRM-th root of 1.
func (f *Field) Iprim() int {
	return f.iprim
}

func (f *Field) String() string {
	return fmt.Sprintf("GF(2^%d, 0x%02x) RS(%d,%d)", SYM, f.gfpoly, NN, LOAD)
}

// The process wide field behind the package level Decode and Encode.
// Built on first use and never written again.
var defaultField = sync.OnceValues(func() (*Field, error) {
	return NewField(GFPOLY)
})

// DefaultField returns the shared field for the fixed polynomial.
func DefaultField() (*Field, error) {
	return defaultField()
}
