// 9 Oct 2026

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pborman/getopt"
	log "github.com/sirupsen/logrus"

	"github.com/andrew-torda/kmerenc/pkg/getseq"
	. "github.com/andrew-torda/kmerenc/pkg/seq/common"
)

func main() {
	var args getseq.Args
	options := getopt.New()

	optMaxTries := options.IntLong("max-tries", 'm', 0, "give up after this many rejected offsets in a row (0 never)")
	optComp := options.StringLong("composition", 'c', "", "write per position composition to this file")
	optNoMmap := options.BoolLong("no-mmap", 0, "do not memory map the genome")
	optVerbose := options.CounterLong("verbose", 'v', "be verbose")
	optHelp := options.BoolLong("help", 'h', "print help")

	options.SetParameters("<genome> <nseqs> <l> <N> <seed>")
	options.Parse(os.Args)

	if *optHelp {
		options.PrintUsage(os.Stdout)
		os.Exit(ExitSuccess)
	}
	if len(options.Args()) != 5 {
		fmt.Fprintln(os.Stderr, "Expected five arguments. Got", len(options.Args()))
		options.PrintUsage(os.Stderr)
		os.Exit(ExitUsageError)
	}
	SetVerbosity(*optVerbose)
	args.MaxTries = *optMaxTries
	args.CompFname = *optComp
	args.NoMmap = *optNoMmap
	args.Fname = options.Args()[0]

	const emsg = "Failed converting %s to positive integer\n"
	var nums [3]int
	for i := range nums {
		s := options.Args()[i+1]
		if n, err := strconv.ParseUint(s, 10, 32); err != nil {
			fmt.Fprintf(os.Stderr, emsg, s)
			os.Exit(ExitUsageError)
		} else {
			nums[i] = int(n)
		}
	}
	args.Nseqs, args.WordLen, args.NWords = nums[0], nums[1], nums[2]
	if seed, err := strconv.ParseInt(options.Args()[4], 10, 64); err != nil {
		fmt.Fprintf(os.Stderr, "Failed converting %s to a seed\n", options.Args()[4])
		os.Exit(ExitUsageError)
	} else {
		args.Seed = seed
	}

	if err := getseq.Main(&args); err != nil {
		log.Error(err)
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}
