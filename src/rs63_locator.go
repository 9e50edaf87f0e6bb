package rs63

// SPDX-FileCopyrightText: 2002 Phil Karn, KA9Q
// SPDX-FileCopyrightText: The Samoyed Authors

/*-------------------------------------------------------------
 *
 * Name:	solveLocator
 *
 * Purpose:	Berlekamp-Massey iteration for the error+erasure locator
 *		polynomial lambda(x).
 *
 * Inputs:	syn	 - Syndromes, index form.
 *
 *		pad	 - Number of unused data symbols at the start of the block.
 *
 *		eras_pos - Known erasures, as positions into data+parity.
 *			   Checked by the caller to be in range.
 *
 * Returns:	lambda in index form, and its degree.
 *
 * Description:	lambda starts out as the erasure locator, the product of
 *		(1 - X(k)x) over all erasures.  Each of the remaining
 *		NROOTS - len(eras_pos) steps folds in one more syndrome.
 *
 *--------------------------------------------------------------*/

func (f *Field) solveLocator(syn *[NROOTS]byte, pad int, eras_pos []int) (lambda [NROOTS + 1]byte, deg_lambda int) {
	var no_eras = len(eras_pos)

	var b [NROOTS + 1]byte
	var t [NROOTS + 1]byte

	lambda[0] = 1

	if no_eras > 0 {
		// Init lambda to be the erasure locator polynomial.  Convert erasure
		// positions from index into data, to index into Reed-Solomon block.
		lambda[1] = f.alpha_to[modnn(PRM*(NN-1-(eras_pos[0]+pad)))]
		for i := 1; i < no_eras; i++ {
			var u = modnn(PRM * (NN - 1 - (eras_pos[i] + pad)))
			for j := i + 1; j > 0; j-- {
				var tmp = f.index_of[lambda[j-1]]
				if tmp != A0 {
					lambda[j] ^= f.alpha_to[modnn(u+int(tmp))]
				}
			}
		}
	}

	for i := range b {
		b[i] = f.index_of[lambda[i]]
	}

	var el = no_eras

	for r := no_eras + 1; r <= NROOTS; r++ { // r is the step number
		// Compute discrepancy at the r-th step in poly-form
		var discr_r byte
		for i := 0; i < r; i++ {
			if lambda[i] != 0 && syn[r-i-1] != A0 {
				discr_r ^= f.alpha_to[modnn(int(f.index_of[lambda[i]])+int(syn[r-i-1]))]
			}
		}

		discr_r = f.index_of[discr_r] // Index form

		if discr_r == A0 {
			// B(x) <-- x*B(x)
			copy(b[1:], b[:NROOTS])
			b[0] = A0
			continue
		}

		// T(x) <-- lambda(x) - discr_r*x*b(x)
		t[0] = lambda[0]
		for i := 0; i < NROOTS; i++ {
			if b[i] != A0 {
				t[i+1] = lambda[i+1] ^ f.alpha_to[modnn(int(discr_r)+int(b[i]))]
			} else {
				t[i+1] = lambda[i+1]
			}
		}

		if 2*el <= r+no_eras-1 {
			el = r + no_eras - el

			// B(x) <-- inv(discr_r) * lambda(x)
			for i := range b {
				if lambda[i] == 0 {
					b[i] = A0
				} else {
					b[i] = byte(modnn(int(f.index_of[lambda[i]]) - int(discr_r) + NN))
				}
			}
		} else {
			// B(x) <-- x*B(x)
			copy(b[1:], b[:NROOTS])
			b[0] = A0
		}

		lambda = t
	}

	// Convert lambda to index form and compute deg(lambda(x))
	for i := range lambda {
		lambda[i] = f.index_of[lambda[i]]
		if lambda[i] != A0 {
			deg_lambda = i
		}
	}

	return lambda, deg_lambda
}
