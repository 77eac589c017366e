// 17 Oct 2026

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pborman/getopt"
	log "github.com/sirupsen/logrus"

	"github.com/andrew-torda/kmerenc/pkg/extractseq"
	. "github.com/andrew-torda/kmerenc/pkg/seq/common"
)

func main() {
	var args extractseq.Args
	options := getopt.New()

	optNoMmap := options.BoolLong("no-mmap", 0, "do not memory map the genome")
	optVerbose := options.CounterLong("verbose", 'v', "be verbose")
	optHelp := options.BoolLong("help", 'h', "print help")

	options.SetParameters("<table> <promoter_min_count> <genome>")
	options.Parse(os.Args)

	if *optHelp {
		options.PrintUsage(os.Stdout)
		os.Exit(ExitSuccess)
	}
	if len(options.Args()) != 3 {
		fmt.Fprintln(os.Stderr, "Expected three arguments. Got", len(options.Args()))
		options.PrintUsage(os.Stderr)
		os.Exit(ExitUsageError)
	}
	SetVerbosity(*optVerbose)
	args.Fname = options.Args()[0]
	args.GenomeFname = options.Args()[2]
	args.NoMmap = *optNoMmap
	if n, err := strconv.ParseUint(options.Args()[1], 10, 64); err != nil {
		fmt.Fprintf(os.Stderr, "Failed converting %s to positive integer\n", options.Args()[1])
		os.Exit(ExitUsageError)
	} else {
		args.MinCount = n
	}

	if err := extractseq.Main(&args); err != nil {
		log.Error(err)
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}
