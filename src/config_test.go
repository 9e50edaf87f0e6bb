package rs63

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	var c = DefaultConfig()

	require.NoError(t, c.Validate())
	assert.Equal(t, 0, c.Debug)
	assert.Empty(t, c.Erasures)
	assert.Equal(t, DEFAULT_TRIALS, c.SelfTest.Trials)
	assert.Equal(t, DEFAULT_WORKERS, c.SelfTest.Workers)
	assert.Equal(t, uint64(DEFAULT_SEED), c.SelfTest.Seed)
	assert.Equal(t, DEFAULT_OVERLOAD_EVERY, c.SelfTest.OverloadEvery)
}

func TestParseConfig(t *testing.T) {
	var c, err = ParseConfig([]byte(`
debug: 2
erasures: [0, 5, 40]
timestamp_format: "%H:%M:%S"
metrics_addr: ":9100"
selftest:
  trials: 50
  seed: 7
`))
	require.NoError(t, err)

	assert.Equal(t, 2, c.Debug)
	assert.Equal(t, []int{0, 5, 40}, c.Erasures)
	assert.Equal(t, "%H:%M:%S", c.TimestampFormat)
	assert.Equal(t, ":9100", c.MetricsAddr)
	assert.Equal(t, 50, c.SelfTest.Trials)
	assert.Equal(t, uint64(7), c.SelfTest.Seed)

	// Not mentioned, so still the defaults.
	assert.Equal(t, DEFAULT_WORKERS, c.SelfTest.Workers)
	assert.Equal(t, DEFAULT_OVERLOAD_EVERY, c.SelfTest.OverloadEvery)
}

func TestParseConfigInvalid(t *testing.T) {
	var tests = []struct {
		name string
		yaml string
	}{
		{"not yaml", "debug: [1"},
		{"wrong type", "debug: lots"},
		{"negative erasure", "erasures: [-1]"},
		{"erasure past block", "erasures: [63]"},
		{"too many erasures", "erasures: [0,1,2,3,4,5,6,7,8,9,10,11,12,13,14,15,16,17,18,19,20,21,22,23,24,25,26,27]"},
		{"negative trials", "selftest: {trials: -1}"},
		{"no workers", "selftest: {workers: 0}"},
		{"negative overload", "selftest: {overload_every: -2}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c, err = ParseConfig([]byte(tt.yaml))
			assert.Error(t, err)
			assert.Nil(t, c)
		})
	}
}

func TestParseConfigErasureRange(t *testing.T) {
	var _, err = ParseConfig([]byte("erasures: [70]"))
	assert.ErrorIs(t, err, ErrInputRange)
}

func TestLoadConfig(t *testing.T) {
	var path = filepath.Join(t.TempDir(), "rs63.yaml")
	require.NoError(t, os.WriteFile(path, []byte("debug: 1\nselftest:\n  workers: 2\n"), 0o600))

	var c, err = LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Debug)
	assert.Equal(t, 2, c.SelfTest.Workers)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
