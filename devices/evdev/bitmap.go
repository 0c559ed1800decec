package evdev

import "errors"

const (
	initialBitmapSize = 8
	maxBitmapSize     = 1024
)

// ErrBitmapTooLarge is returned when a capability bitmap does not fit in
// maxBitmapSize bytes.
var ErrBitmapTooLarge = errors.New("capability bitmap exceeds maximum size")

// AxisSet is a kernel capability bitmap indexed by event code.
type AxisSet []byte

// Has reports whether code is set in the bitmap.
func (s AxisSet) Has(code uint16) bool {
	i := int(code / 8)
	if i >= len(s) {
		return false
	}
	return s[i]&(1<<(code%8)) != 0
}

// readBitmap runs query with a growing buffer. The kernel copies at most
// len(buf) bytes and reports how many it copied, so a full buffer may be a
// truncated one: double it and ask again until the answer is shorter.
func readBitmap(query func(buf []byte) (int, error)) (AxisSet, error) {
	size := initialBitmapSize
	for {
		buf := make([]byte, size)
		n, err := query(buf)
		if err != nil {
			return nil, err
		}
		if n < size {
			return AxisSet(buf[:n]), nil
		}
		if size >= maxBitmapSize {
			return nil, ErrBitmapTooLarge
		}
		size *= 2
	}
}
