// Copyright (c) 2025 The primescan developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	flags "github.com/jessevdk/go-flags"

	"github.com/primescan/primescan/internal/version"
	"github.com/primescan/primescan/uint4096"
)

const (
	defaultOutputFile = "primes.txt"
	defaultDebugLevel = "info"
)

// scanMode identifies which of the mutually exclusive scan computations to
// run.
type scanMode int

const (
	// modeNthPrime scans upward from two counting primes until the Nth one
	// is found.
	modeNthPrime scanMode = iota

	// modePrimeLE scans downward from N for the largest prime at or below
	// it.
	modePrimeLE

	// modeAllPrimesLE collects every prime at or below N and persists them
	// to the output file.
	modeAllPrimesLE
)

// config defines the configuration options for primescan.
type config struct {
	Nth         string `short:"n" description:"Find the Nth prime, counting upward from 2"`
	LE          string `long:"le" description:"Find the largest prime less than or equal to N"`
	All         string `long:"all" description:"Find all primes less than or equal to N and write them to the output file"`
	Timeout     uint   `short:"t" long:"timeout" description:"Maximum number of seconds to run before giving up (0 means no limit)"`
	ShowRuntime bool   `long:"rt" description:"Print the total elapsed runtime once the scan finishes"`
	OutputFile  string `short:"o" long:"output" description:"Output file for primes found with --all"`
	LogFile     string `long:"logfile" description:"Write log output to this file in addition to stdout"`
	DebugLevel  string `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical}"`
	ShowVersion bool   `short:"V" long:"version" description:"Display version information and exit"`
}

// loadConfig initializes and parses the config using command line options and
// returns the selected scan mode along with its parsed numeric operand.
//
// Logging is also initialized and configured accordingly.
func loadConfig(appName string) (*config, scanMode, *uint4096.Uint4096, error) {
	cfg := config{
		OutputFile: defaultOutputFile,
		DebugLevel: defaultDebugLevel,
	}
	parser := flags.NewParser(&cfg, flags.Default)
	remaining, err := parser.Parse()
	if err != nil {
		// The help and error messages were already printed by go-flags.
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if cfg.ShowVersion {
		fmt.Printf("%s version %s (Go version %s %s/%s)\n", appName,
			version.String(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
		os.Exit(0)
	}

	if len(remaining) != 0 {
		err := fmt.Errorf("unexpected arguments: %v", remaining)
		return nil, 0, nil, err
	}

	// Initialize log rotation.  After the log rotation has been initialized,
	// the logger variables may be used.
	if cfg.LogFile != "" {
		if err := initLogRotator(cfg.LogFile); err != nil {
			return nil, 0, nil, err
		}
	}
	if err := setLogLevels(cfg.DebugLevel); err != nil {
		return nil, 0, nil, err
	}

	// Exactly one scan mode must be requested.
	var mode scanMode
	var operand string
	var numModes int
	if cfg.Nth != "" {
		mode, operand = modeNthPrime, cfg.Nth
		numModes++
	}
	if cfg.LE != "" {
		mode, operand = modePrimeLE, cfg.LE
		numModes++
	}
	if cfg.All != "" {
		mode, operand = modeAllPrimesLE, cfg.All
		numModes++
	}
	if numModes != 1 {
		err := errors.New("exactly one of -n, --le, or --all must be " +
			"specified")
		return nil, 0, nil, err
	}

	value, err := uint4096.Parse(operand)
	if err != nil {
		err := fmt.Errorf("invalid numeric operand %q: %w", operand, err)
		return nil, 0, nil, err
	}
	if mode == modeNthPrime && value.IsZero() {
		err := errors.New("-n requires a value of at least 1")
		return nil, 0, nil, err
	}

	return &cfg, mode, value, nil
}
