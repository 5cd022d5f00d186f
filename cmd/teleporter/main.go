package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"teleporter/internal/recurrence"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run parses flags, scans for the parameter and prints it on stdout.
// Everything other than the result goes to stderr.
func run(args []string, stdout, stderr io.Writer) int {
	defaults := recurrence.DefaultSearchOptions()

	flags := pflag.NewFlagSet("teleporter", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	target := flags.IntP("target", "t", defaults.Target, "result the parameter must produce")
	start := flags.IntP("start", "s", defaults.Start, "first parameter to check")
	end := flags.IntP("end", "e", defaults.End, "last parameter to check (inclusive)")
	verbose := flags.BoolP("verbose", "v", false, "log search progress to stderr")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	log := newLogger(stderr, *verbose)

	opts := defaults
	opts.Target = *target
	opts.Start = *start
	opts.End = *end

	// Progress callback that shows elapsed time
	programStart := time.Now()
	opts.Progress = func(msg string) {
		log.WithField("elapsed", formatElapsed(time.Since(programStart))).Debug(msg)
	}

	log.WithFields(logrus.Fields{
		"target": opts.Target,
		"start":  opts.Start,
		"end":    opts.End,
	}).Debug("Searching parameter range")

	c, err := recurrence.Search(opts)
	if errors.Is(err, recurrence.ErrNotFound) {
		log.WithError(err).Warn("No parameter found")
		return exitError
	}
	if err != nil {
		log.WithError(err).Error("Search failed")
		return exitError
	}

	fmt.Fprintln(stdout, c)
	return exitOK
}

func newLogger(out io.Writer, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)
	log.SetLevel(logrus.InfoLevel)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

// formatElapsed formats a duration into a human-readable elapsed time string
func formatElapsed(d time.Duration) string {
	d = d.Round(time.Second)
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60

	if minutes > 0 {
		return fmt.Sprintf("%dm%02ds", minutes, seconds)
	}
	return fmt.Sprintf("%ds", seconds)
}
