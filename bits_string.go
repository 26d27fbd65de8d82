package bitcodec

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// String renders b as its exact bit count plus a short hex preview,
// suitable for %v/%s in log lines and test failure messages.
func (b Bits) String() string {
	preview := b.Bytes()
	if len(preview) > 8 {
		preview = preview[:8]
	}
	suffix := ""
	if len(b.data) > len(preview) {
		suffix = "..."
	}
	return fmt.Sprintf("Bits(%d bits, %x%s)", b.nbits, preview, suffix)
}

// Describe renders b's size both exactly (bits) and humanized (bytes),
// e.g. "128 bits (16 B)" or "1,048,576 bits (131 kB)", for callers that
// want a human-friendly size rather than a raw bit count.
func (b Bits) Describe() string {
	byteCount := byteLen(b.nbits)
	return fmt.Sprintf("%s bits (%s)", humanize.Comma(int64(b.nbits)), humanize.Bytes(uint64(byteCount)))
}
