// Package rs63 is a Reed-Solomon codec for the RS(63,36) code over GF(2^6).
//
// Each codeword is 63 six-bit symbols: up to 36 data symbols followed by 27
// parity symbols.  Up to 13 symbol errors can be corrected, or any mix of
// errors and erasures (known bad positions) where 2*errors + erasures <= 27.
//
// Symbols are stored one per byte.  Only the low 6 bits (the payload) take
// part in the arithmetic; the top 2 bits of a data byte (the passenger bits)
// are carried through a decode untouched.
package rs63

const SYM = 6 // Symbol size, bits.

const MM = SYM

const NN = (1 << SYM) - 1 // Symbols per block, 63.

const A0 = NN // Index form of zero, log(0) = -inf.

const NROOTS = 27 // Number of parity symbols, generator polynomial degree.

const LOAD = NN - NROOTS // Maximum number of data symbols, 36.

const FCR = 1 // First consecutive root of the generator, index form.

const PRM = 1 // Primitive element used to step between generator roots.

const GFPOLY = 0x43 // x^6 + x + 1

const SYMBOL_MASK byte = NN // Payload bits of a stored byte.

const PASSENGER_MASK = ^SYMBOL_MASK // Bits beyond the R-S symbol size.

// Uncorrectable is returned by Decode when the error pattern is beyond the
// correcting power of the code.  It is a normal outcome, not an error.
const Uncorrectable = -1
