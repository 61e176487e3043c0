package utils

import (
	"crypto/rand"
)

const (
	publicIDLength   = 10
	publicIDAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// NewPublicID returns the short display token stored in every row's uuid
// column. The first character is always a letter so the token never reads
// as a number.
func NewPublicID() string {
	buf := make([]byte, publicIDLength)
	if _, err := rand.Read(buf); err != nil {
		panic("shortid: crypto/rand unavailable: " + err.Error())
	}

	letters := len(publicIDAlphabet) - 10
	out := make([]byte, publicIDLength)
	for i, b := range buf {
		if i == 0 {
			out[i] = publicIDAlphabet[int(b)%letters]
		} else {
			out[i] = publicIDAlphabet[int(b)%len(publicIDAlphabet)]
		}
	}
	return string(out)
}
