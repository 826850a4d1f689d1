package common

// WipeByteArray overwrites the contents of the provided byte slice with zeros.
// Use it to clear sensitive data such as passwords from memory as soon as
// they are no longer needed.
func WipeByteArray(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
}
