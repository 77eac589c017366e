// 4 Oct 2026

// Package mapfile opens a file for lots of small reads at random spots.
// By default the file is memory mapped, so a seek is just setting an
// index. If mapping is not wanted or not possible (empty files cannot
// be mapped), we fall back to an os.File with a bufio.Reader that is
// thrown away on every seek.
package mapfile

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"
)

// File satisfies io.ReadSeeker and io.ByteReader.
type File struct {
	fp   *os.File
	mm   mmap.MMap
	rdr  *bytes.Reader // set if mapped
	br   *bufio.Reader // set if not mapped
	size int64
}

// Open opens fname. If useMmap is false, or the file is empty, the file
// is read the ordinary way.
func Open(fname string, useMmap bool) (*File, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	fi, err := fp.Stat()
	if err != nil {
		fp.Close()
		return nil, err
	}
	f := &File{fp: fp, size: fi.Size()}
	if useMmap && f.size > 0 {
		if f.mm, err = mmap.Map(fp, mmap.RDONLY, 0); err != nil {
			fp.Close()
			return nil, fmt.Errorf("mapping %s: %w", fname, err)
		}
		f.rdr = bytes.NewReader(f.mm)
		return f, nil
	}
	f.br = bufio.NewReader(fp)
	return f, nil
}

// Size is the file size when it was opened.
func (f *File) Size() int64 { return f.size }

// Mapped says if we are working from memory.
func (f *File) Mapped() bool { return f.rdr != nil }

func (f *File) Read(p []byte) (int, error) {
	if f.rdr != nil {
		return f.rdr.Read(p)
	}
	return f.br.Read(p)
}

// ReadByte
func (f *File) ReadByte() (byte, error) {
	if f.rdr != nil {
		return f.rdr.ReadByte()
	}
	return f.br.ReadByte()
}

// Seek works as in io.Seeker. In the unmapped case, the buffer is
// discarded and a relative seek has to allow for what was buffered.
func (f *File) Seek(offset int64, whence int) (int64, error) {
	if f.rdr != nil {
		return f.rdr.Seek(offset, whence)
	}
	if whence == io.SeekCurrent {
		offset -= int64(f.br.Buffered())
	}
	n, err := f.fp.Seek(offset, whence)
	f.br.Reset(f.fp)
	return n, err
}

// Close unmaps, if necessary, and closes the file. It is always safe
// to call after a successful Open.
func (f *File) Close() error {
	var err error
	if f.mm != nil {
		err = f.mm.Unmap()
		f.mm = nil
		f.rdr = nil
	}
	if e := f.fp.Close(); err == nil {
		err = e
	}
	return err
}
