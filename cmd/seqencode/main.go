// 9 Oct 2026

package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/pborman/getopt"
	log "github.com/sirupsen/logrus"

	. "github.com/andrew-torda/kmerenc/pkg/seq/common"
	"github.com/andrew-torda/kmerenc/pkg/seqencode"
	"github.com/andrew-torda/kmerenc/pkg/window"
)

func main() {
	var args seqencode.Args
	options := getopt.New()

	optVerbose := options.CounterLong("verbose", 'v', "be verbose")
	optHelp := options.BoolLong("help", 'h', "print help")

	options.SetParameters("<file|-> <l>")
	options.Parse(os.Args)

	if *optHelp {
		options.PrintUsage(os.Stdout)
		os.Exit(ExitSuccess)
	}
	if len(options.Args()) != 2 {
		fmt.Fprintln(os.Stderr, "Expected two arguments. Got", len(options.Args()))
		options.PrintUsage(os.Stderr)
		os.Exit(ExitUsageError)
	}
	SetVerbosity(*optVerbose)
	args.Fname = options.Args()[0]
	if l, err := strconv.ParseUint(options.Args()[1], 10, 32); err != nil {
		fmt.Fprintf(os.Stderr, "Failed converting %s to positive integer\n", options.Args()[1])
		os.Exit(ExitUsageError)
	} else {
		args.WordLen = int(l)
	}

	err := seqencode.Main(&args)
	var ic *window.InvalidCharError
	switch {
	case err == nil:
		os.Exit(ExitSuccess)
	case errors.As(err, &ic):
		os.Stderr.Write(seqencode.Diagnostic(ic))
		log.Infof("byte %d at offset %d", ic.Char, ic.Offset)
		os.Exit(ExitBadInput)
	default:
		log.Error(err)
		os.Exit(ExitFailure)
	}
}
