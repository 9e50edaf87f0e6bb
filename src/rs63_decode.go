package rs63

// SPDX-FileCopyrightText: 2002 Phil Karn, KA9Q
// SPDX-FileCopyrightText: The Samoyed Authors

import (
	"fmt"
)

/*-------------------------------------------------------------
 *
 * Name:	Decode
 *
 * Purpose:	Check and attempt to fix a received RS(63,36) codeword.
 *
 * Inputs:	data	 - Data symbols, one per byte.  The top 2 bits of
 *			   each byte are ignored and left as they are.
 *
 *		length	 - Number of data symbols, 1 to LOAD.  If parity is
 *			   nil this also counts the NROOTS parity symbols
 *			   following the data in the same buffer.
 *
 *		parity	 - NROOTS parity symbols, or nil, see above.
 *			   Must not have anything beyond the R-S symbol size.
 *
 *		eras_pos - Known erasures as positions into data+parity.
 *			   Only the first no_eras are used.  May be nil if
 *			   no_eras is 0.
 *
 *		no_eras	 - Number of erasures, 0 to NROOTS.
 *
 *		corr	 - Optional, at least NROOTS long.
 *
 * Outputs:	data, parity - Corrected in place.
 *
 *		eras_pos - Positions of all corrected symbols, as many as
 *			   fit.  Both the erasures passed in and errors found.
 *
 *		corr	 - Error value XORed in for each of those positions.
 *
 * Returns:	Number of symbols corrected, or Uncorrectable (-1).
 *		None of the buffers are touched for Uncorrectable.
 *		An error means the arguments themselves are wrong.
 *
 *--------------------------------------------------------------*/

func Decode(data []byte, length int, parity []byte, eras_pos []int, no_eras int, corr []byte) (int, error) {
	var f, err = defaultField()
	if err != nil {
		return Uncorrectable, err
	}

	return f.Decode(data, length, parity, eras_pos, no_eras, corr)
}

// Decode is the same as the package level Decode but uses the tables in f.
func (f *Field) Decode(data []byte, length int, parity []byte, eras_pos []int, no_eras int, corr []byte) (int, error) {
	var count, err = f.decode(data, length, parity, eras_pos, no_eras, corr)

	observeDecode(count, err)

	return count, err
}

func (f *Field) decode(data []byte, length int, parity []byte, eras_pos []int, no_eras int, corr []byte) (int, error) {
	var data_len, parity_buf, err = checkDecodeArgs(data, length, parity, eras_pos, no_eras, corr)
	if err != nil {
		return Uncorrectable, err
	}

	// Stage a full block.  Padding ('pad' unused symbols) begins at index 0.
	//
	//	<- - - - - - - - - - - 63 symbols - - - - - - - - - - - - ->
	//	+------------+--------------------+-------------------------+
	//	|  pad zeros |  data_len symbols  |  NROOTS parity symbols  |
	//	+------------+--------------------+-------------------------+

	var pad = LOAD - data_len
	var block [NN]byte

	for i := 0; i < data_len; i++ {
		block[pad+i] = data[i] & SYMBOL_MASK
	}
	copy(block[LOAD:], parity_buf[:NROOTS])

	if rs63_get_debug() >= 3 {
		logger.Debug("Received RS block.", "pad", pad, "data", data_len, "erasures", no_eras, "dump", hex_dump(block[:]))
	}

	var count, loc, cor = f.decodeBlock(&block, pad, eras_pos[:no_eras])

	if count < 0 {
		if rs63_get_debug() >= 2 {
			logger.Debug("FEC failed.  Too many errors.")
		}
		return Uncorrectable, nil
	}

	// Write back only the payload bits.
	for i := 0; i < data_len; i++ {
		data[i] = data[i]&PASSENGER_MASK | block[pad+i]
	}
	for i := 0; i < NROOTS; i++ {
		parity_buf[i] = parity_buf[i]&PASSENGER_MASK | block[LOAD+i]
	}

	for i := 0; i < count && i < len(eras_pos); i++ {
		eras_pos[i] = loc[i] - pad
	}
	if corr != nil {
		copy(corr, cor[:count])
	}

	if rs63_get_debug() >= 2 {
		if count == 0 {
			logger.Debug("FEC complete with no errors.")
		} else {
			var positions = make([]int, count)
			for i := range positions {
				positions[i] = loc[i] - pad
			}
			logger.Debug("FEC complete.", "fixed", count, "positions", positions)
		}
	}
	if rs63_get_debug() >= 3 && count > 0 {
		logger.Debug("Corrected RS block.", "dump", hex_dump(block[:]))
	}

	return count, nil
}

// checkDecodeArgs applies all of the structural checks up front, so that
// nothing is touched for bad arguments.  It returns the number of data
// symbols and the parity window.
func checkDecodeArgs(data []byte, length int, parity []byte, eras_pos []int, no_eras int, corr []byte) (int, []byte, error) {
	if length < IfThenElse(parity != nil, 1, NROOTS+1) {
		return 0, nil, fmt.Errorf("%w: must provide all parity and at least one non-parity symbol", ErrInputSize)
	}

	if parity == nil {
		if len(data) < length {
			return 0, nil, fmt.Errorf("%w: buffer has %d symbols, length is %d", ErrInputSize, len(data), length)
		}
		length -= NROOTS
		parity = data[length : length+NROOTS]
	}

	// It is possible to have as little as 1 non-parity (payload) symbol that
	// isn't a pad, and as many as LOAD.
	if length > LOAD {
		return 0, nil, fmt.Errorf("%w: data length incompatible with block size and error correction symbols", ErrInputSize)
	}

	if len(data) < length {
		return 0, nil, fmt.Errorf("%w: buffer has %d data symbols, length is %d", ErrInputSize, len(data), length)
	}

	if len(parity) < NROOTS {
		return 0, nil, fmt.Errorf("%w: %d parity symbols, need %d", ErrInputSize, len(parity), NROOTS)
	}

	if corr != nil && len(corr) < NROOTS {
		return 0, nil, fmt.Errorf("%w: correction buffer holds %d, need %d", ErrInputSize, len(corr), NROOTS)
	}

	if no_eras < 0 || no_eras > NROOTS {
		return 0, nil, fmt.Errorf("%w: number of erasures exceeds capacity (number of roots)", ErrInputRange)
	}

	if no_eras > len(eras_pos) {
		return 0, nil, fmt.Errorf("%w: %d erasures but only %d positions", ErrInputRange, no_eras, len(eras_pos))
	}

	for i := 0; i < no_eras; i++ {
		if eras_pos[i] < 0 || eras_pos[i] >= length+NROOTS {
			return 0, nil, fmt.Errorf("%w: erasure positions outside data+parity", ErrInputRange)
		}
	}

	for i := 0; i < NROOTS; i++ {
		if parity[i]&PASSENGER_MASK != 0 {
			return 0, nil, ErrParitySymbolRange
		}
	}

	return length, parity, nil
}

// decodeBlock runs the decoder proper on a staged block.  loc[] comes back
// as block positions.
func (f *Field) decodeBlock(block *[NN]byte, pad int, eras_pos []int) (count int, loc [NROOTS]int, cor [NROOTS]byte) {
	var syn, syn_error = f.computeSyndromes(block, pad)
	if syn_error == 0 {
		// if syndrome is zero, data[] is a codeword and there are no errors to correct.
		return 0, loc, cor
	}

	var lambda, deg_lambda = f.solveLocator(&syn, pad, eras_pos)

	var root [NROOTS]int
	root, loc, count = f.findRoots(&lambda, deg_lambda)

	if count != deg_lambda {
		// deg(lambda) unequal to number of roots => uncorrectable error detected
		return Uncorrectable, loc, cor
	}

	if deg_lambda == 0 {
		// Nonzero syndrome but nothing located.
		return Uncorrectable, loc, cor
	}

	var ok bool
	cor, ok = f.applyCorrections(block, pad, &syn, &lambda, deg_lambda, &root, &loc, count)
	if !ok {
		return Uncorrectable, loc, cor
	}

	return count, loc, cor
}
