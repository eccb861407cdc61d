package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
)

// Exit codes.
const (
	ExitFailure = 1
	ExitUsage   = 2
)

// ExitCode maps err to a process exit code: 0 for nil, ExitUsage when err
// matches one of usage (or is flag.ErrHelp), ExitFailure otherwise.
func ExitCode(err error, usage ...error) int {
	if err == nil {
		return 0
	}
	if errors.Is(err, flag.ErrHelp) {
		return ExitUsage
	}
	for _, u := range usage {
		if errors.Is(err, u) {
			return ExitUsage
		}
	}
	return ExitFailure
}

// Report writes "outbreak: <err>" to w and returns ExitCode(err, usage...).
// flag.ErrHelp is not printed; the flag package already wrote the help.
func Report(w io.Writer, err error, usage ...error) int {
	code := ExitCode(err, usage...)
	if err != nil && !errors.Is(err, flag.ErrHelp) {
		fmt.Fprintf(w, "outbreak: %v\n", err)
	}
	return code
}
