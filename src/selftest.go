package rs63

/********************************************************************************
 *
 * Purpose:	Randomized encode / corrupt / decode trials.
 *
 * Description:	Each trial picks a data length, random data (passenger bits
 *		included), encodes it, then damages it.  Most trials stay
 *		within the correcting power of the code,
 *
 *			2 * errors + erasures <= NROOTS
 *
 *		and must come back exactly as encoded.  Every OverloadEvery-th
 *		trial gets NROOTS/2+1 errors and no erasures instead.  The
 *		decoder should usually say so; when it doesn't, that is a
 *		miscorrection and is counted but not held against it.
 *
 *		Trial n always uses the same random numbers for a given seed,
 *		however many workers there are.
 *
 *******************************************************************************/

import (
	"bytes"
	"context"
	"fmt"
	"math/rand/v2"
	"sync"

	"golang.org/x/sync/errgroup"
)

type SelfTestOptions struct {
	Trials        int
	Workers       int
	Seed          uint64
	OverloadEvery int // 0 for never
}

type SelfTestReport struct {
	Trials       int // Trials run
	Passed       int // Within capacity and restored
	Failed       int // Within capacity and not restored
	Overloaded   int // Trials beyond capacity
	Detected     int // ... reported as Uncorrectable, buffers untouched
	Miscorrected int // ... "corrected" to some other codeword
	Corrected    int // Symbols corrected over all passing trials
}

func (r SelfTestReport) String() string {
	return fmt.Sprintf("%d trials: %d passed, %d failed; %d overloaded: %d detected, %d miscorrected; %d symbols corrected",
		r.Trials, r.Passed, r.Failed, r.Overloaded, r.Detected, r.Miscorrected, r.Corrected)
}

type trialOutcome int

const (
	TRIAL_PASSED trialOutcome = iota
	TRIAL_FAILED
	TRIAL_DETECTED
	TRIAL_MISCORRECTED
)

/*-------------------------------------------------------------
 *
 * Name:	SelfTest
 *
 * Purpose:	Run opts.Trials trials on up to opts.Workers goroutines.
 *
 * Returns:	The report, and ErrSelfTestFailed if any trial within
 *		capacity failed.  If ctx is cancelled the trials finished
 *		so far are reported along with ctx.Err().
 *
 *--------------------------------------------------------------*/

func SelfTest(ctx context.Context, opts SelfTestOptions) (SelfTestReport, error) {
	var report SelfTestReport

	var f, err = defaultField()
	if err != nil {
		return report, err
	}

	var mu sync.Mutex
	var g, gctx = errgroup.WithContext(ctx)
	g.SetLimit(max(opts.Workers, 1))

	for n := 0; n < opts.Trials; n++ {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}

			var rng = rand.New(rand.NewPCG(opts.Seed, uint64(n))) //nolint:gosec
			var overload = opts.OverloadEvery > 0 && n%opts.OverloadEvery == opts.OverloadEvery-1

			var outcome, corrected = runTrial(f, rng, overload)

			mu.Lock()
			defer mu.Unlock()

			report.Trials++
			switch outcome {
			case TRIAL_PASSED:
				report.Passed++
				report.Corrected += corrected
			case TRIAL_FAILED:
				report.Failed++
			case TRIAL_DETECTED:
				report.Overloaded++
				report.Detected++
			case TRIAL_MISCORRECTED:
				report.Overloaded++
				report.Miscorrected++
			}

			return nil
		})
	}

	if waitErr := g.Wait(); waitErr != nil {
		return report, waitErr
	}

	if ctx.Err() != nil {
		return report, ctx.Err()
	}

	if report.Failed > 0 {
		return report, fmt.Errorf("%w: %d of %d trials", ErrSelfTestFailed, report.Failed, report.Trials)
	}

	return report, nil
}

func runTrial(f *Field, rng *rand.Rand, overload bool) (trialOutcome, int) {
	var data_len = 1 + rng.IntN(LOAD)
	var n = data_len + NROOTS

	var data = make([]byte, data_len)
	for i := range data {
		data[i] = byte(rng.IntN(256))
	}

	var parity = make([]byte, NROOTS)
	Assert(f.Encode(data, parity) == nil)

	var sent_data = bytes.Clone(data)
	var sent_parity = bytes.Clone(parity)

	var no_eras, no_errs int
	if overload {
		no_errs = NROOTS/2 + 1
	} else {
		no_eras = rng.IntN(NROOTS + 1)
		no_errs = rng.IntN((NROOTS-no_eras)/2 + 1)
	}

	// Errors first, then erasures, all at distinct positions.
	var positions = rng.Perm(n)[:no_errs+no_eras]
	for _, p := range positions {
		var e = byte(1 + rng.IntN(NN))
		if p < data_len {
			data[p] ^= e
		} else {
			parity[p-data_len] ^= e
		}
	}

	var eras_pos = make([]int, NROOTS)
	copy(eras_pos, positions[no_errs:])

	var rcvd_data = bytes.Clone(data)
	var rcvd_parity = bytes.Clone(parity)

	var count, err = f.Decode(data, data_len, parity, eras_pos, no_eras, nil)
	if err != nil {
		logger.Error("Self test decode error.", "err", err)
		return TRIAL_FAILED, 0
	}

	if overload {
		switch {
		case count == Uncorrectable && bytes.Equal(data, rcvd_data) && bytes.Equal(parity, rcvd_parity):
			return TRIAL_DETECTED, 0
		case count == Uncorrectable:
			logger.Error("Uncorrectable block was modified.", "length", data_len)
			return TRIAL_FAILED, 0
		default:
			return TRIAL_MISCORRECTED, 0
		}
	}

	var restored = bytes.Equal(data, sent_data) && bytes.Equal(parity, sent_parity)

	if count != no_errs+no_eras || !restored {
		if rs63_get_debug() >= 1 {
			logger.Warn("Self test trial failed.", "length", data_len, "errors", no_errs, "erasures", no_eras, "result", count)
		}
		return TRIAL_FAILED, 0
	}

	return TRIAL_PASSED, count
}
