// 9 Oct 2026

/*

Getseq draws random k-mers from a genome and prints them as integers.
Usage:
	getseq [options] genome nseqs l N seed
prints nseqs lines. Each line has N numbers, the base 4 encodings of N
consecutive words of l letters each, taken from one uninterrupted stretch
of the genome starting at a random offset.

The genome is flat text. Letters a, c, g, t in either case are valid and
newlines are ignored. Anything else (n, fasta header lines, ...) breaks a
stretch, and a new offset is drawn. The same seed and genome always give
the same output.

Flags:
	-m, --max-tries n
		give up after n rejected offsets in a row. By default we never
		give up, so a genome with no long enough stretch runs forever.
	-c, --composition file
		write the fraction of each letter at each position to file
	--no-mmap
		read the genome with seeks instead of memory mapping it
	-v
		verbose, twice for debugging output

*/
package main
