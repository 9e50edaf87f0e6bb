package rs63

import "errors"

var (
	// ErrNotPrimitive means the field generator polynomial does not generate
	// all 63 nonzero elements.  The codec cannot be used at all.
	ErrNotPrimitive = errors.New("reed-solomon: Galois field polynomial not primitive")

	// ErrInputSize is returned for data, parity or correction buffers whose
	// length does not fit the block.
	ErrInputSize = errors.New("reed-solomon: input size")

	// ErrInputRange is returned for an erasure count or erasure position
	// outside the data+parity extent.
	ErrInputRange = errors.New("reed-solomon: input range")

	// ErrParitySymbolRange is returned when a parity byte has bits set beyond
	// the 6 bit symbol size.
	ErrParitySymbolRange = errors.New("reed-solomon: parity data contains information beyond R-S symbol size")

	// ErrSelfTestFailed is returned by SelfTest when a correctable trial was
	// not restored.
	ErrSelfTestFailed = errors.New("reed-solomon: self test failed")
)
