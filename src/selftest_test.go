package rs63

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelfTest(t *testing.T) {
	var opts = SelfTestOptions{
		Trials:        300,
		Workers:       4,
		Seed:          1,
		OverloadEvery: 10,
	}

	var report, err = SelfTest(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, 300, report.Trials)
	assert.Equal(t, 270, report.Passed)
	assert.Equal(t, 0, report.Failed)
	assert.Equal(t, 30, report.Overloaded)
	assert.Equal(t, report.Overloaded, report.Detected+report.Miscorrected)
	assert.Positive(t, report.Corrected)
}

func TestSelfTestReproducible(t *testing.T) {
	var opts = SelfTestOptions{Trials: 100, Workers: 8, Seed: 42, OverloadEvery: 5}

	var many, err = SelfTest(context.Background(), opts)
	require.NoError(t, err)

	opts.Workers = 1
	var one, err1 = SelfTest(context.Background(), opts)
	require.NoError(t, err1)

	assert.Equal(t, many, one)
}

func TestSelfTestNoOverload(t *testing.T) {
	var report, err = SelfTest(context.Background(), SelfTestOptions{Trials: 50, Workers: 2, Seed: 3})
	require.NoError(t, err)

	assert.Equal(t, 50, report.Passed)
	assert.Equal(t, 0, report.Overloaded)
}

func TestSelfTestCancelled(t *testing.T) {
	var ctx, cancel = context.WithCancel(context.Background())
	cancel()

	var report, err = SelfTest(ctx, SelfTestOptions{Trials: 1000, Workers: 2, Seed: 1, OverloadEvery: 10})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, report.Trials, 1000)
}

func TestSelfTestReportString(t *testing.T) {
	var r = SelfTestReport{Trials: 10, Passed: 9, Overloaded: 1, Detected: 1, Corrected: 42}

	assert.Equal(t, "10 trials: 9 passed, 0 failed; 1 overloaded: 1 detected, 0 miscorrected; 42 symbols corrected", r.String())
}

func TestRunSelfTest(t *testing.T) {
	var config = DefaultConfig()
	config.SelfTest.Trials = 20

	var ok bool
	var out = CaptureOutput(t, func() {
		ok = runSelfTest(context.Background(), config)
	})

	assert.True(t, ok)
	assert.Contains(t, out, "20 trials")
	assert.Contains(t, out, "self test Success")
}
