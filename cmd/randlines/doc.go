// 9 Oct 2026

/*

Randlines picks random promoter and non-promoter lines from a table.
Usage:
	randlines [options] datafile nlines promoter_min_count seed
The data file is tab separated with a header. Columns 6 to 11 hold read
counts. A line is a promoter if its counts add up to at least
promoter_min_count and a non-promoter if they are all zero.
The output is nlines pairs, each a promoter line followed by a
non-promoter line, copied verbatim from the data file.

Flags:
	-m, --max-tries n
		give up after n tries for a single line (default never)
	--no-mmap
		do not memory map the data file
	-v
		verbose, twice for debugging output

*/
package main
