package rs63

/*------------------------------------------------------------------
 *
 * Purpose:	Diagnostic output for the codec and the tools.
 *
 * Description:	Follows the FX.25 / IL2P debug level convention.
 *
 *		0		Only errors.
 *		1		Informational messages from the tools.
 *		2		Outcome of each decode, including corrected positions.
 *		3		Dump the staged block going in and out.
 *
 *		Use command line -d to set the level.
 *
 *------------------------------------------------------------------*/

import (
	"io"
	"os"
	"sync/atomic"

	"github.com/charmbracelet/log"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "rs63",
	Level:  log.ErrorLevel,
})

var g_debug_level atomic.Int32

// This should be called once at start up, before any decoding.

func rs63_init(debug_level int) {
	g_debug_level.Store(int32(debug_level)) //nolint:gosec

	switch {
	case debug_level <= 0:
		logger.SetLevel(log.ErrorLevel)
	case debug_level == 1:
		logger.SetLevel(log.InfoLevel)
	default:
		logger.SetLevel(log.DebugLevel)
	}
}

func rs63_get_debug() int {
	return int(g_debug_level.Load())
}

// Send diagnostics somewhere other than stderr.  Mostly for tests.

func rs63_set_log_output(w io.Writer) {
	logger.SetOutput(w)
}
