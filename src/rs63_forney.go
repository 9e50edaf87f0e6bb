package rs63

// SPDX-FileCopyrightText: 2002 Phil Karn, KA9Q
// SPDX-FileCopyrightText: The Samoyed Authors

/*-------------------------------------------------------------
 *
 * Name:	applyCorrections
 *
 * Purpose:	Forney's algorithm.  Compute the error values and apply
 *		them to the block.
 *
 * Inputs:	block	- 63 symbol scratch block, modified in place.
 *
 *		pad	- Unused data symbols at the start of block.
 *
 *		syn	- Syndromes, index form.
 *
 *		lambda	- Error+erasure locator, index form, of degree
 *			  deg_lambda.  All of its roots are in root[] and loc[].
 *
 * Outputs:	cor	- Correction applied for each root, in the same order
 *			  as root[].  Zero where the located symbol was right.
 *
 * Returns:	false if the pattern turns out to be uncorrectable.  The
 *		block may already be partly modified in that case.
 *
 *--------------------------------------------------------------*/

func (f *Field) applyCorrections(block *[NN]byte, pad int, syn *[NROOTS]byte,
	lambda *[NROOTS + 1]byte, deg_lambda int,
	root *[NROOTS]int, loc *[NROOTS]int, count int) (cor [NROOTS]byte, ok bool) {
	// Compute err+eras evaluator poly omega(x) = s(x)*lambda(x) (modulo x**NROOTS)
	// in index form.  deg(omega) < deg(lambda).
	var omega [NROOTS + 1]byte
	var deg_omega = deg_lambda - 1

	for i := 0; i <= deg_omega; i++ {
		var tmp byte
		for j := i; j >= 0; j-- {
			if syn[i-j] != A0 && lambda[j] != A0 {
				tmp ^= f.alpha_to[modnn(int(syn[i-j])+int(lambda[j]))]
			}
		}
		omega[i] = f.index_of[tmp]
	}

	// Compute error values in poly-form.  num1 = omega(inv(X(l))),
	// num2 = inv(X(l))**(FCR-1) and den = lambda_pr(inv(X(l))) all in poly-form.
	for j := count - 1; j >= 0; j-- {
		var num1 byte
		for i := deg_omega; i >= 0; i-- {
			if omega[i] != A0 {
				num1 ^= f.alpha_to[modnn(int(omega[i])+i*root[j])]
			}
		}

		var num2 = f.alpha_to[modnn(root[j]*(FCR-1)+NN)]

		// lambda[i+1] for i even is the formal derivative lambda_pr of lambda[i]
		var den byte
		for i := min(deg_lambda, NROOTS-1) &^ 1; i >= 0; i -= 2 {
			if lambda[i+1] != A0 {
				den ^= f.alpha_to[modnn(int(lambda[i+1])+i*root[j])]
			}
		}

		if den == 0 {
			return cor, false
		}

		if num1 == 0 {
			continue // Erasure that was correct after all.
		}

		// A correction in the pad means the solution is bogus.  Those
		// symbols are known to be zero; they were never sent.
		if loc[j] < pad {
			return cor, false
		}

		cor[j] = f.alpha_to[modnn(int(f.index_of[num1])+int(f.index_of[num2])+NN-int(f.index_of[den]))]
		block[loc[j]] ^= cor[j]
	}

	return cor, true
}
