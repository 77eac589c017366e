// 29 Apr 2020

package common

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

const (
	ExitSuccess = iota
	ExitFailure
	ExitUsageError
	ExitBadInput // a character outside the alphabet, only from seqencode
)

// Stdin is the file name which means read from standard input.
const Stdin = "-"

// WrtTemp writes a string to a temporary file and returns
// the filename. It is used all over the place in testing.
func WrtTemp(s string) (string, error) {
	f_tmp, err := os.CreateTemp("", "_del_me_testing")
	if err != nil {
		return "", fmt.Errorf("tempfile fail")
	}

	if _, err := io.WriteString(f_tmp, s); err != nil {
		f_tmp.Close()
		return "", fmt.Errorf("writing string to temp file %v", f_tmp.Name())
	}
	name := f_tmp.Name()
	f_tmp.Close()
	return name, nil
}

// SetVerbosity sets the logging level from a count of -v flags.
// Nothing, warnings only. One, info. Two or more, debug.
func SetVerbosity(n int) {
	log.SetOutput(os.Stderr)
	switch {
	case n <= 0:
		log.SetLevel(log.WarnLevel)
	case n == 1:
		log.SetLevel(log.InfoLevel)
	default:
		log.SetLevel(log.DebugLevel)
	}
}
