package util

import "math/rand"

const alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// RandomString returns a random alphanumeric string of the given length.
// Used for bill references and patient card ids.
func RandomString(length int) string {
	buf := make([]byte, length)
	for i := range buf {
		buf[i] = alphanumeric[rand.Intn(len(alphanumeric))]
	}
	return string(buf)
}
