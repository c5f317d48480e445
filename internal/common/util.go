package common

// WipeByteArray zeroes the contents of buf so secrets do not linger in
// memory longer than needed. Safe to call with nil.
func WipeByteArray(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
}
