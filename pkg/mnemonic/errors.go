package mnemonic

import (
	"errors"
	"fmt"
)

// Codec errors.
var (
	ErrInvalidKeyLength = errors.New("invalid key length")
	ErrInvalidWordIndex = errors.New("invalid word index")
	ErrInvalidWordCount = errors.New("invalid word count")
	ErrUnknownWord      = errors.New("unknown word")
	ErrChecksumMismatch = errors.New("checksum mismatch")
)

// WordError reports a word that is not in the dictionary.
type WordError struct {
	Position int // 0-based position in the sentence
	Word     string
}

func (e *WordError) Error() string {
	return fmt.Sprintf("%v: %q at position %d", ErrUnknownWord, e.Word, e.Position+1)
}

// Unwrap lets errors.Is match ErrUnknownWord.
func (e *WordError) Unwrap() error {
	return ErrUnknownWord
}
