package common

// WipeByteArray overwrites the slice with zeroes. Used to scrub password
// buffers once they have been handed to the API layer.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
