// 9 Oct 2026

/*

Seqencode turns a nucleotide stream into base 5 integers.
Usage:
	seqencode [options] file l
reads file, or standard input if file is "-", once from start to end. Every
l letters give one number, the base 5 encoding of the word, with a=0, c=1,
g=2, t=3, n=4 in either case. Words do not overlap. Each newline in the input
gives a newline in the output and throws away a partly read word.

Any other byte is an error. The offending character is reported, output
stops and the exit status is 3.

Flags:
	-v
		verbose

*/
package main
