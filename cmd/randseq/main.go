// 31 July 2020

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pborman/getopt"
	log "github.com/sirupsen/logrus"

	"github.com/andrew-torda/kmerenc/pkg/randseq"
	. "github.com/andrew-torda/kmerenc/pkg/seq/common"
)

func main() {
	const iseed int64 = 1637
	var args randseq.RandSeqArgs
	options := getopt.New()

	optSeed := options.Int64Long("seed", 'r', iseed, "random number seed")
	optWidth := options.IntLong("width", 'w', 60, "letters per line")
	optProbN := options.StringLong("prob-n", 'n', "0", "probability of a run of n")
	optCmmt := options.StringLong("comment", 'c', "", "comment for header lines")
	optMix := options.BoolLong("mix-case", 'm', "mix upper and lower case")
	optHelp := options.BoolLong("help", 'h', "print help")

	options.SetParameters("<file|-> <nseq> <length>")
	options.Parse(os.Args)
	if *optHelp {
		options.PrintUsage(os.Stdout)
		os.Exit(ExitSuccess)
	}
	if len(options.Args()) != 3 {
		fmt.Fprintln(os.Stderr, "Wrong number of args\nrandseq [..] file nseq length")
		options.PrintUsage(os.Stderr)
		os.Exit(ExitUsageError)
	}
	args.Iseed = *optSeed
	args.Width = *optWidth
	args.Cmmt = *optCmmt
	args.MixCase = *optMix
	if p, err := strconv.ParseFloat(*optProbN, 32); err != nil || p < 0 || p > 1 {
		fmt.Fprintln(os.Stderr, "probability of n must be between 0 and 1, got", *optProbN)
		os.Exit(ExitUsageError)
	} else {
		args.ProbN = float32(p)
	}

	const emsg = "Failed converting %s to positive integer\n"
	if nseq, err := strconv.ParseUint(options.Args()[1], 10, 32); err != nil {
		fmt.Fprintf(os.Stderr, emsg, options.Args()[1])
		os.Exit(ExitUsageError)
	} else {
		args.Nseq = int(nseq)
	}
	if nlen, err := strconv.ParseUint(options.Args()[2], 10, 32); err != nil {
		fmt.Fprintf(os.Stderr, emsg, options.Args()[2])
		os.Exit(ExitUsageError)
	} else {
		args.Len = int(nlen)
	}

	fname := options.Args()[0]
	var ft *os.File
	if fname == Stdin || fname == "" {
		args.Wrtr = os.Stdout
	} else {
		var err error
		if ft, err = os.Create(fname); err != nil {
			log.Error("File for output: ", err)
			os.Exit(ExitFailure)
		}
		args.Wrtr = ft
	}
	err := randseq.RandSeqMain(&args)
	if ft != nil {
		if e := ft.Close(); err == nil {
			err = e
		}
	}
	if err != nil {
		log.Error(err)
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}
