// Package container locates the start of music-player payload bytes
// inside a SID container file.
package container

import (
	"encoding/binary"
	"strings"
)

const (
	minHeaderSize   = 0x76
	dataOffsetField = 0x06
	loadAddrField   = 0x08
	loadAddrSize    = 2
)

// IsSIDFile reports whether source carries a well-formed RSID/PSID
// header: one of the two four-byte magics, with at least the minimum
// header size present.
func IsSIDFile(source []byte) bool {
	if len(source) < minHeaderSize {
		return false
	}
	magic := string(source[0:4])
	return magic == "RSID" || magic == "PSID"
}

// DataOffset returns the byte offset at which player code begins, or 0
// if source is not a recognizable SID file or its header declares an
// out-of-range offset. When the two-byte load address field of the
// header (at loadAddrField) is 0x0000, the real load address is
// taken from the first two bytes of the data itself, so the payload
// effectively starts two bytes later.
func DataOffset(source []byte) int {
	if !IsSIDFile(source) {
		return 0
	}
	dataOffset := int(binary.BigEndian.Uint16(source[dataOffsetField : dataOffsetField+2]))
	if dataOffset < minHeaderSize || dataOffset > len(source) {
		return 0
	}
	if source[loadAddrField] == 0 && source[loadAddrField+1] == 0 {
		dataOffset += loadAddrSize
	}
	return dataOffset
}

// prgDataOffset is the byte offset past a .prg file's 2-byte load
// address.
const prgDataOffset = 2

// Offset returns the byte offset at which scannable payload begins for
// a file at path with contents source: past the SID header for a
// recognized SID container, past the load address for a .prg file, or
// 0 for anything else.
func Offset(path string, source []byte) int {
	if IsSIDFile(source) {
		return DataOffset(source)
	}
	if strings.HasSuffix(strings.ToLower(path), ".prg") {
		return prgDataOffset
	}
	return 0
}

// Payload returns the scannable slice of source for a file at path:
// source sliced from Offset onward, or the whole of source if Offset
// is 0 or out of range.
func Payload(path string, source []byte) []byte {
	offset := Offset(path, source)
	if offset <= 0 || offset > len(source) {
		return source
	}
	return source[offset:]
}
