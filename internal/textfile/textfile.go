// Package textfile reads config/info files as Windows-1252 text, the
// encoding sidid.cfg/sidid.nfo files are always stored in.
package textfile

import (
	"bufio"
	"io"
	"os"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// ReadLines reads the file at path, decoding it from Windows-1252 and
// splitting it into lines with line endings stripped. A line that
// can't be decoded is simply best-effort replaced per the decoder's
// usual behavior; Windows-1252 maps every byte value to a character,
// so decoding itself never fails.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return readLines(f)
}

func readLines(r io.Reader) ([]string, error) {
	decoder := charmap.Windows1252.NewDecoder()
	scanner := bufio.NewScanner(transform.NewReader(r, decoder))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// FirstLines returns at most the first n lines of the file at path. It
// reads and decodes the whole file through ReadLines, then truncates.
func FirstLines(path string, n int) ([]string, error) {
	lines, err := ReadLines(path)
	if err != nil {
		return nil, err
	}
	if len(lines) > n {
		lines = lines[:n]
	}
	return lines, nil
}
