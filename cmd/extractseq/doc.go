// 17 Oct 2026

/*

Extractseq writes the genome sequence of each region in a table, with a
promoter label.
Usage:
	extractseq [options] table promoter_min_count genome
The table is tab separated with a header naming the columns chr, start,
end and strand. Columns 6 to 11 hold read counts, as for randlines, whose
output can be fed straight in. The genome is a fasta file with one entry
per chromosome, named by the first word of the comment line.
Each output line is
	label SEQUENCE
where label is 1 if the counts add up to at least promoter_min_count and
0 otherwise. Regions are zero based and do not include end. Minus strand
regions are reverse complemented and all sequences are upper case. Lines
come out grouped by chromosome.
Pipe the sequences through cut and seqencode to get numbers.

Flags:
	--no-mmap
		do not memory map the genome
	-v
		verbose, twice for debugging output

*/
package main
