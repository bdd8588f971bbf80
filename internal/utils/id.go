package utils

import (
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const nanoIdAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

func GenerateNanoID(size int) string {
	id, err := gonanoid.Generate(nanoIdAlphabet, size)
	if err != nil {
		panic(err)
	}
	return id
}

// GenerateNanoIDWithPrefix returns ids like "note_x1y2z3".
func GenerateNanoIDWithPrefix(prefix string, size int) string {
	return prefix + "_" + GenerateNanoID(size)
}

func Now() time.Time {
	return time.Now().UTC()
}
