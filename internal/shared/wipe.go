package shared

// WipeByteArray zeroes a sensitive byte slice in place.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
