package rs63

/*------------------------------------------------------------------
 *
 * Purpose:   	Decode RS(63,36) codewords given as hex, one per line.
 *
 * Description:	Each line is the data symbols followed by the 27 parity
 *		symbols, one byte per symbol, e.g.
 *
 *			01 02 03 04 ... 3f
 *
 *		Spaces are optional.  Blank lines and lines starting with #
 *		are skipped.  Input is stdin or the files named on the
 *		command line.
 *
 *------------------------------------------------------------------*/

import (
	"bufio"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/lestrrat-go/strftime"
	"github.com/spf13/pflag"
)

func DecodeToolMain() {
	var _config = pflag.StringP("config", "c", "", "YAML configuration file.")
	var _erasures = pflag.IntSliceP("erasures", "e", nil, "Comma separated erasure positions, applied to every line.")
	var _debug = pflag.IntP("debug", "d", 0, "Debug level.  2 shows corrected positions, 3 dumps each block.")
	var _timestampFormat = pflag.StringP("timestamp-format", "T", "", "Precede results with 'strftime' format time stamp.")
	var _metricsAddr = pflag.String("metrics-addr", "", "Serve Prometheus metrics on this address, e.g. :9100")
	var version = pflag.BoolP("version", "V", false, "Print version and exit.")
	var help = pflag.BoolP("help", "h", false, "Display help text.")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s - Decode RS(63,36) codewords.\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [file ...]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "Each input line is hex data symbols followed by %d parity symbols.\n", NROOTS)
		fmt.Fprintf(os.Stderr, "\n")
		pflag.PrintDefaults()
	}

	pflag.Parse()

	if *help {
		pflag.Usage()
		os.Exit(0)
	}

	if *version {
		printVersion()
		os.Exit(0)
	}

	var config = DefaultConfig()
	if *_config != "" {
		var err error
		config, err = LoadConfig(*_config)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err)
			os.Exit(1)
		}
	}

	if pflag.CommandLine.Changed("erasures") {
		config.Erasures = *_erasures
	}
	if pflag.CommandLine.Changed("debug") {
		config.Debug = *_debug
	}
	if pflag.CommandLine.Changed("timestamp-format") {
		config.TimestampFormat = *_timestampFormat
	}
	if pflag.CommandLine.Changed("metrics-addr") {
		config.MetricsAddr = *_metricsAddr
	}

	if err := config.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}

	rs63_init(config.Debug)

	if config.MetricsAddr != "" {
		var server = &http.Server{
			Addr:              config.MetricsAddr,
			Handler:           MetricsHandler(),
			ReadHeaderTimeout: 10 * time.Second,
		}
		go func() {
			var err = server.ListenAndServe()
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("Metrics server failed.", "addr", config.MetricsAddr, "err", err)
			}
		}()
		logger.Info("Serving metrics.", "addr", config.MetricsAddr)
	}

	var failed = false

	if pflag.NArg() == 0 {
		if err := DecodeLines(os.Stdin, os.Stdout, config); err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err)
			failed = true
		}
	}

	for _, fname := range pflag.Args() {
		var fp, err = os.Open(fname) //nolint:gosec
		if err != nil {
			fmt.Fprintf(os.Stderr, "Could not open %s: %s\n", fname, err)
			failed = true
			continue
		}

		if err := DecodeLines(fp, os.Stdout, config); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", fname, err)
			failed = true
		}

		fp.Close()
	}

	if failed {
		os.Exit(1)
	}
}

/*-------------------------------------------------------------
 *
 * Name:	DecodeLines
 *
 * Purpose:	Decode each hex line of r and report on w.
 *
 * Returns:	Only read errors.  Bad lines are reported and skipped.
 *
 *--------------------------------------------------------------*/

func DecodeLines(r io.Reader, w io.Writer, config *Config) error {
	var scanner = bufio.NewScanner(r)
	var lineno = 0

	for scanner.Scan() {
		lineno++

		var line = strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fmt.Fprint(w, decodeLine(lineno, line, config))
	}

	return scanner.Err()
}

func decodeLine(lineno int, line string, config *Config) string {
	var ts = ""
	if config.TimestampFormat != "" {
		var formattedTime, _ = strftime.Format(config.TimestampFormat, time.Now())
		ts = formattedTime + " "
	}

	var block, hexErr = hex.DecodeString(strings.ReplaceAll(line, " ", ""))
	if hexErr != nil {
		return fmt.Sprintf("%sline %d: error: %s\n", ts, lineno, hexErr)
	}

	var eras_pos = make([]int, NROOTS)
	copy(eras_pos, config.Erasures)

	var count, err = Decode(block, len(block), nil, eras_pos, len(config.Erasures), nil)

	switch {
	case err != nil:
		return fmt.Sprintf("%sline %d: error: %s\n", ts, lineno, err)
	case count == Uncorrectable:
		return fmt.Sprintf("%sline %d: uncorrectable\n", ts, lineno)
	case count == 0:
		return fmt.Sprintf("%sline %d: no errors\n", ts, lineno)
	default:
		return fmt.Sprintf("%sline %d: corrected %d symbols at positions %v\n%s\n",
			ts, lineno, count, eras_pos[:count], hex.EncodeToString(block))
	}
}
