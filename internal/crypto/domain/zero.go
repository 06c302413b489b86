package domain

// Zero overwrites b with zeros. Call it on derived keys and decrypted private keys as
// soon as they are no longer needed.
func Zero(b []byte) {
	clear(b)
}
