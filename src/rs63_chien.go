package rs63

// SPDX-FileCopyrightText: 2002 Phil Karn, KA9Q
// SPDX-FileCopyrightText: The Samoyed Authors

// findRoots is a Chien search for the roots of lambda, given in index form.
//
// Each term's exponent is stepped along rather than recomputed, so every
// nonzero element is tried at the cost of one add per term.  root[] gets the
// root in index form and loc[] the matching position in the 63 symbol block.
// The search stops once deg_lambda roots are found; a return count less than
// deg_lambda means lambda does not split over the field.
func (f *Field) findRoots(lambda *[NROOTS + 1]byte, deg_lambda int) (root [NROOTS]int, loc [NROOTS]int, count int) {
	var reg = *lambda

	for i, k := 1, f.iprim-1; i <= NN; i, k = i+1, modnn(k+f.iprim) {
		var q byte = 1 // lambda[0] is always 0
		for j := deg_lambda; j > 0; j-- {
			if reg[j] != A0 {
				reg[j] = byte(modnn(int(reg[j]) + j))
				q ^= f.alpha_to[reg[j]]
			}
		}

		if q != 0 {
			continue // Not a root
		}

		// store root (index-form) and error location number
		root[count] = i
		loc[count] = k

		// If we've already found max possible roots, abort the search to save time
		count++
		if count == deg_lambda {
			break
		}
	}

	return root, loc, count
}
