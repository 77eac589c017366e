// 9 Oct 2026

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pborman/getopt"
	log "github.com/sirupsen/logrus"

	"github.com/andrew-torda/kmerenc/pkg/randlines"
	. "github.com/andrew-torda/kmerenc/pkg/seq/common"
)

func main() {
	var args randlines.Args
	options := getopt.New()

	optMaxTries := options.IntLong("max-tries", 'm', 0, "give up after this many tries for one line (0 never)")
	optNoMmap := options.BoolLong("no-mmap", 0, "do not memory map the data file")
	optVerbose := options.CounterLong("verbose", 'v', "be verbose")
	optHelp := options.BoolLong("help", 'h', "print help")

	options.SetParameters("<datafile> <nlines> <promoter_min_count> <seed>")
	options.Parse(os.Args)

	if *optHelp {
		options.PrintUsage(os.Stdout)
		os.Exit(ExitSuccess)
	}
	if len(options.Args()) != 4 {
		fmt.Fprintln(os.Stderr, "Expected four arguments. Got", len(options.Args()))
		options.PrintUsage(os.Stderr)
		os.Exit(ExitUsageError)
	}
	SetVerbosity(*optVerbose)
	args.Fname = options.Args()[0]
	args.MaxTries = *optMaxTries
	args.NoMmap = *optNoMmap

	const emsg = "Failed converting %s to positive integer\n"
	if n, err := strconv.ParseUint(options.Args()[1], 10, 32); err != nil {
		fmt.Fprintf(os.Stderr, emsg, options.Args()[1])
		os.Exit(ExitUsageError)
	} else {
		args.NLines = int(n)
	}
	if n, err := strconv.ParseUint(options.Args()[2], 10, 64); err != nil {
		fmt.Fprintf(os.Stderr, emsg, options.Args()[2])
		os.Exit(ExitUsageError)
	} else {
		args.MinCount = n
	}
	if seed, err := strconv.ParseInt(options.Args()[3], 10, 64); err != nil {
		fmt.Fprintf(os.Stderr, "Failed converting %s to a seed\n", options.Args()[3])
		os.Exit(ExitUsageError)
	} else {
		args.Seed = seed
	}

	if err := randlines.Main(&args); err != nil {
		log.Error(err)
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}
