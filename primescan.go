// Copyright (c) 2025 The primescan developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/davecgh/go-spew/spew"

	"github.com/primescan/primescan/internal/version"
)

// realMain is the real main function for primescan.  It is necessary to work
// around the fact that deferred functions do not run when os.Exit() is
// called.
func realMain() error {
	// Load configuration and parse command line.  This function also
	// initializes logging and configures it accordingly.
	appName := filepath.Base(os.Args[0])
	appName = strings.TrimSuffix(appName, filepath.Ext(appName))
	cfg, mode, value, err := loadConfig(appName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintf(os.Stderr, "Use %s -h to show usage\n", appName)
		return err
	}
	defer func() {
		if logRotator != nil {
			logRotator.Close()
		}
	}()

	mainLog.Infof("Version %s (Go version %s %s/%s)", version.String(),
		runtime.Version(), runtime.GOOS, runtime.GOARCH)
	mainLog.Debugf("Loaded config: %s", spew.Sdump(cfg))

	// A wall-clock budget is enforced by polling a context between
	// successive primality checks, so it composes with interrupt handling.
	ctx := shutdownListener()
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		timeout := time.Duration(cfg.Timeout) * time.Second
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	start := time.Now()
	if cfg.ShowRuntime {
		defer func() {
			elapsed := time.Since(start).Round(time.Millisecond)
			mainLog.Infof("Total elapsed time: %v", elapsed)
		}()
	}

	scanLog.Info("Starting prime scan...")
	switch mode {
	case modeNthPrime:
		result, err := nthPrime(ctx, value)
		if err != nil {
			scanLog.Errorf("Scan for prime %v aborted: %v", value, err)
			return err
		}
		scanLog.Infof("Prime %v is %v", value, result)

	case modePrimeLE:
		result, err := primeLE(ctx, value)
		switch {
		case err != nil:
			scanLog.Errorf("Scan for largest prime <= %v aborted: %v", value,
				err)
			return err
		case result == nil:
			scanLog.Infof("No prime less than or equal to %v exists", value)
		default:
			scanLog.Infof("Largest prime <= %v is %v", value, result)
		}

	case modeAllPrimesLE:
		found, scanErr := allPrimesLE(ctx, value)
		if err := writePrimes(cfg.OutputFile, found); err != nil {
			scanLog.Errorf("Failed to persist primes: %v", err)
			return err
		}
		scanLog.Infof("Found %d primes <= %v, written to %s", len(found),
			value, cfg.OutputFile)
		if scanErr != nil {
			scanLog.Warnf("Scan stopped early: %v", scanErr)
			return scanErr
		}
	}
	return nil
}

func main() {
	if err := realMain(); err != nil {
		os.Exit(1)
	}
}
