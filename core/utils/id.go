package utils

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

const idLength = 21

// GenerateID returns an opaque entity identifier.
func GenerateID() (string, error) {
	return gonanoid.Generate(idAlphabet, idLength)
}
