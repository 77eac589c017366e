package seqencode

// Opener lets tests swap in their own input.
var Opener = &opener
