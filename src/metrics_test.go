package rs63

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resultCount(result string) float64 {
	return testutil.ToFloat64(decodeResults.WithLabelValues(result))
}

func TestDecodeMetrics(t *testing.T) {
	var clean = resultCount(RESULT_CLEAN)
	var corrected = resultCount(RESULT_CORRECTED)
	var uncorrectable = resultCount(RESULT_UNCORRECTABLE)
	var invalid = resultCount(RESULT_INVALID)
	var symbols = testutil.ToFloat64(symbolsCorrected)

	var data = make([]byte, LOAD)
	var parity = make([]byte, NROOTS)

	var _, err = Decode(data, LOAD, parity, nil, 0, nil)
	require.NoError(t, err)

	data[1], data[2], data[3] = 1, 2, 3
	_, err = Decode(data, LOAD, parity, nil, 0, nil)
	require.NoError(t, err)

	for i := 0; i < NROOTS/2+1; i++ {
		data[i] = byte(i + 1)
	}
	_, err = Decode(data, LOAD, parity, nil, 0, nil)
	require.NoError(t, err)

	_, err = Decode(data, 0, parity, nil, 0, nil)
	require.Error(t, err)

	assert.InDelta(t, 1, resultCount(RESULT_CLEAN)-clean, 0)
	assert.InDelta(t, 1, resultCount(RESULT_CORRECTED)-corrected, 0)
	assert.InDelta(t, 1, resultCount(RESULT_UNCORRECTABLE)-uncorrectable, 0)
	assert.InDelta(t, 1, resultCount(RESULT_INVALID)-invalid, 0)
	assert.InDelta(t, 3, testutil.ToFloat64(symbolsCorrected)-symbols, 0)
}

func TestMetricsHandler(t *testing.T) {
	var server = httptest.NewServer(MetricsHandler())
	defer server.Close()

	var resp, err = http.Get(server.URL) //nolint:noctx
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body, readErr = io.ReadAll(resp.Body)
	require.NoError(t, readErr)

	assert.Contains(t, string(body), `rs63_decode_results_total{result="clean"}`)
	assert.Contains(t, string(body), `rs63_decode_results_total{result="invalid"}`)
	assert.Contains(t, string(body), "rs63_symbols_corrected_total")
}
