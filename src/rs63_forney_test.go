package rs63

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestApplyCorrections(t *testing.T) {
	var f = testField(t)

	var tests = []struct {
		name   string
		pad    int
		pos    int // block position of the single error
		wantOK bool
	}{
		{"in data", 0, 5, true},
		{"in parity", 3, LOAD + 2, true},
		{"first data symbol", 4, 4, true},
		{"in pad", 4, 3, false},
		{"start of pad", 1, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var block [NN]byte
			block[tt.pos] = 0x2b

			var syn, syn_error = f.computeSyndromes(&block, 0)
			require.NotZero(t, syn_error)

			var lambda, deg_lambda = f.solveLocator(&syn, tt.pad, nil)
			require.Equal(t, 1, deg_lambda)

			var root, loc, count = f.findRoots(&lambda, deg_lambda)
			require.Equal(t, 1, count)
			require.Equal(t, tt.pos, loc[0])

			var cor, ok = f.applyCorrections(&block, tt.pad, &syn, &lambda, deg_lambda, &root, &loc, count)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, byte(0x2b), cor[0])
				assert.Equal(t, [NN]byte{}, block)
			}
		})
	}
}

// (1 + Xx)^2 = 1 + X^2 x^2 has no odd terms, so its formal derivative is zero
// at every point and no error value can be computed.
func TestApplyCorrectionsRepeatedRoot(t *testing.T) {
	var f = testField(t)

	var lambda [NROOTS + 1]byte
	for i := range lambda {
		lambda[i] = A0
	}
	lambda[0] = 0  // 1
	lambda[2] = 10 // alpha^10, so X = alpha^5

	var syn = [NROOTS]byte{}
	var root = [NROOTS]int{NN - 5}
	var loc = [NROOTS]int{NN - 1 - 5}
	var block [NN]byte

	var _, ok = f.applyCorrections(&block, 0, &syn, &lambda, 2, &root, &loc, 1)
	assert.False(t, ok)
	assert.Equal(t, [NN]byte{}, block, "nothing applied")
}

// e(x) = (x - alpha^2)(x - alpha^3)...(x - alpha^27) vanishes at every root of
// the generator but the first, so only the first syndrome is nonzero.  The
// locator for that collapses back to 1 and finds nothing to correct.
func lonelySyndromeBlock(f *Field) [NN]byte {
	var e = []byte{1} // e[k] is the x^k coefficient
	for j := FCR + 1; j < FCR+NROOTS; j++ {
		var next = make([]byte, len(e)+1)
		for k, c := range e {
			next[k+1] ^= c
			next[k] ^= gfMul(f, c, f.AlphaTo(j*PRM))
		}
		e = next
	}

	var block [NN]byte
	for k, c := range e {
		block[NN-1-k] = c
	}
	return block
}

func TestDecodeLocatorDegreeZero(t *testing.T) {
	var f = testField(t)
	var block = lonelySyndromeBlock(f)

	var syn, syn_error = f.computeSyndromes(&block, 0)
	require.NotZero(t, syn_error)
	assert.NotEqual(t, byte(A0), syn[0])
	for i := 1; i < NROOTS; i++ {
		assert.Equal(t, byte(A0), syn[i], "syndrome %d", i)
	}

	var _, deg_lambda = f.solveLocator(&syn, 0, nil)
	assert.Equal(t, 0, deg_lambda)

	var data = bytes.Clone(block[:LOAD])
	var parity = bytes.Clone(block[LOAD:])
	var eras_pos = make([]int, NROOTS)
	var corr = make([]byte, NROOTS)

	var n, err = Decode(data, LOAD, parity, eras_pos, 0, corr)
	require.NoError(t, err)
	assert.Equal(t, Uncorrectable, n)
	assert.Equal(t, block[:LOAD], data)
	assert.Equal(t, block[LOAD:], parity)
	assert.Equal(t, make([]int, NROOTS), eras_pos)
	assert.Equal(t, make([]byte, NROOTS), corr)
}

// Zero syndromes leave lambda at 1.
func TestSolveLocatorZeroSyndromes(t *testing.T) {
	var f = testField(t)

	rapid.Check(t, func(t *rapid.T) {
		var no_eras = rapid.IntRange(0, NROOTS).Draw(t, "erasures")
		var all = make([]int, NN)
		for i := range all {
			all[i] = i
		}
		var eras_pos = rapid.Permutation(all).Draw(t, "positions")[:no_eras]

		var syn [NROOTS]byte
		for i := range syn {
			syn[i] = A0
		}

		var _, deg_lambda = f.solveLocator(&syn, 0, eras_pos)
		if deg_lambda != no_eras {
			t.Fatalf("%d erasures gave degree %d", no_eras, deg_lambda)
		}
	})
}
