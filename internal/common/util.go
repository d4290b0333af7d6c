package common

// WipeByteArray overwrites the contents of b with zeros. Passwords read from
// the terminal are wiped with it as soon as the login form is processed.
//
// A nil slice is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
