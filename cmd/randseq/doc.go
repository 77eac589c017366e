// 31 July 2020

/*

Randseq is for making random genomes for testing the samplers.
Usage:
	randseq [options] fname nseq length
will generate nseq sequences of length length and write them to fname,
or standard output if fname is "-".

Flags:
	-r
		random number seed
	-w
		letters per line, 0 for one line per sequence
	-n
		probability of starting a run of n at any position
	-c
		comment. If given, each sequence gets a "> comment i" line
	-m
		mix upper and lower case

The output is meant to look like a flat genome file. Header lines and
runs of n are not valid for getseq, so it has to step around them.

*/
package main
