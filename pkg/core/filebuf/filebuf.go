// Package filebuf reads an entire file into memory for scanning,
// memory-mapping it with mmap(2) and falling back to a plain read when
// the mapping fails.
package filebuf

import (
	"os"

	"golang.org/x/sys/unix"
)

// Read returns the full contents of the file at path. It tries
// mmap(2) first, since signature scanning only ever reads the mapped
// pages once and never writes them; a mapping failure (for example on a
// network filesystem) falls back to a regular read. A zero-length file
// yields a nil buffer without being mapped.
func Read(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, err
	}
	size := st.Size()
	if size == 0 {
		return nil, nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return os.ReadFile(path)
	}
	return data, nil
}

// Release unmaps a buffer previously returned by Read, when it came
// from mmap. It is a no-op for buffers obtained via the ReadFile
// fallback, since those aren't backed by a mapping; Munmap simply
// errors and is ignored in that case.
func Release(data []byte) {
	if len(data) == 0 {
		return
	}
	_ = unix.Munmap(data)
}
