// Package wordlist implements the fixed 2048-word dictionary used by BIP-39
// mnemonics.
//
// A Dictionary maps indexes in [0, Size) to words and back. The table is
// supplied by the caller, validated once, and never mutated afterwards, so a
// Dictionary is safe for concurrent use without locking.
package wordlist

import (
	"errors"
	"fmt"
	"math/bits"
	"slices"

	"github.com/tyler-smith/go-bip39/wordlists"
)

// Size is the number of words in a dictionary.
const Size = 2048

// BitsPerWord is the number of payload bits a single word carries.
const BitsPerWord = 11

// Dictionary errors.
var (
	ErrOutOfRange   = errors.New("word index out of range")
	ErrNotFound     = errors.New("word not in dictionary")
	ErrInvalidTable = errors.New("invalid word table")
)

// Dictionary is an immutable, sorted word table.
type Dictionary struct {
	words []string
}

// English is the BIP-39 English dictionary.
var English *Dictionary

func init() {
	if bits.Len(Size-1) != BitsPerWord {
		panic("wordlist: Size does not match BitsPerWord")
	}
	d, err := New(wordlists.English)
	if err != nil {
		panic("bip39 english wordlist: " + err.Error())
	}
	English = d
}

// New builds a Dictionary from words. The table must hold exactly Size
// entries in strictly increasing byte-wise order, which also rules out
// duplicates. The slice is copied.
func New(words []string) (*Dictionary, error) {
	if len(words) != Size {
		return nil, fmt.Errorf("%w: %d words, want %d", ErrInvalidTable, len(words), Size)
	}
	for i, w := range words {
		if w == "" {
			return nil, fmt.Errorf("%w: empty word at index %d", ErrInvalidTable, i)
		}
		if i > 0 && words[i-1] >= w {
			return nil, fmt.Errorf("%w: %q at index %d not sorted after %q",
				ErrInvalidTable, w, i, words[i-1])
		}
	}
	return &Dictionary{words: slices.Clone(words)}, nil
}

// WordAt returns the word for an 11-bit index.
func (d *Dictionary) WordAt(index int) (string, error) {
	if index&^(Size-1) != 0 {
		return "", fmt.Errorf("%w: %d", ErrOutOfRange, index)
	}
	return d.words[index], nil
}

// IndexOf returns the index of word using a binary search over the table.
// Only exact matches are accepted.
func (d *Dictionary) IndexOf(word string) (int, error) {
	idx, ok := slices.BinarySearch(d.words, word)
	if !ok {
		return -1, fmt.Errorf("%w: %q", ErrNotFound, word)
	}
	return idx, nil
}

// Canonical returns the dictionary's own copy of word, or ErrNotFound.
func (d *Dictionary) Canonical(word string) (string, error) {
	idx, err := d.IndexOf(word)
	if err != nil {
		return "", err
	}
	return d.words[idx], nil
}

// Contains reports whether word is in the dictionary.
func (d *Dictionary) Contains(word string) bool {
	_, ok := slices.BinarySearch(d.words, word)
	return ok
}

// Words returns a copy of the table.
func (d *Dictionary) Words() []string {
	return slices.Clone(d.words)
}
