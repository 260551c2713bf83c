// Package mnemonic converts keys to BIP-39 mnemonic sentences and back.
//
//	| key bytes | key bits | checksum bits | total | words |
//	|-----------|----------|---------------|-------|-------|
//	|    16     |   128    |       4       |  132  |  12   |
//	|    20     |   160    |       5       |  165  |  15   |
//	|    24     |   192    |       6       |  198  |  18   |
//	|    28     |   224    |       7       |  231  |  21   |
//	|    32     |   256    |       8       |  264  |  24   |
//
// The checksum is the high-order bits of the first byte of SHA-256(key). The
// key and checksum bits are read most-significant-bit first in groups of 11,
// and each group selects one word of a 2048-word dictionary.
//
// A Codec holds no per-call state and is safe for concurrent use.
package mnemonic

import (
	"encoding/binary"
	"fmt"
	"slices"
	"strings"

	"github.com/Klingon-tech/klingnet-mnemonic/pkg/bitpack"
	"github.com/Klingon-tech/klingnet-mnemonic/pkg/crypto"
	"github.com/Klingon-tech/klingnet-mnemonic/pkg/wordlist"
)

// Key and sentence size limits.
const (
	MinKeyLen   = 16
	MaxKeyLen   = 32
	MinWords    = 12
	MaxWords    = 24
	bitsPerWord = wordlist.BitsPerWord
)

// WordCount returns the number of words a key of keyLen bytes encodes to,
// or 0 if keyLen is not a valid key length.
func WordCount(keyLen int) int {
	if !validKeyLen(keyLen) {
		return 0
	}
	return (keyLen*8 + bitsPerWord - 1) / bitsPerWord
}

// KeyLength returns the key length in bytes carried by a sentence of
// nrWords words, or 0 if nrWords is not a valid sentence length.
func KeyLength(nrWords int) int {
	if !validWordCount(nrWords) {
		return 0
	}
	return (nrWords*bitsPerWord - 1) / 8
}

// ChecksumBits returns the number of checksum bits appended to a key of
// keyLen bytes, or 0 if keyLen is not a valid key length.
func ChecksumBits(keyLen int) int {
	if !validKeyLen(keyLen) {
		return 0
	}
	return keyLen * 8 / 32
}

func validKeyLen(n int) bool {
	return n >= MinKeyLen && n <= MaxKeyLen && n%4 == 0
}

func validWordCount(n int) bool {
	return n >= MinWords && n <= MaxWords && n%3 == 0
}

// Codec encodes and decodes mnemonic sentences.
type Codec struct {
	dict *wordlist.Dictionary
	hash crypto.HashFunc
}

// Option configures a Codec.
type Option func(*Codec)

// WithDictionary sets the dictionary. The default is wordlist.English.
func WithDictionary(d *wordlist.Dictionary) Option {
	return func(c *Codec) {
		c.dict = d
	}
}

// WithHash sets the checksum hash. The default is SHA-256, as BIP-39
// requires; any other function produces sentences that only this codec
// configuration can read back.
func WithHash(h crypto.HashFunc) Option {
	return func(c *Codec) {
		c.hash = h
	}
}

// New creates a Codec.
func New(opts ...Option) *Codec {
	c := &Codec{
		dict: wordlist.English,
		hash: crypto.SHA256,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Encode returns the mnemonic sentence for key.
func (c *Codec) Encode(key []byte) ([]string, error) {
	keyLen := len(key)
	if !validKeyLen(keyLen) {
		return nil, fmt.Errorf("%w: %d bytes (want 16, 20, 24, 28 or 32)", ErrInvalidKeyLength, keyLen)
	}

	digest := c.hash(key)
	ext := make([]byte, keyLen+1)
	defer clear(ext)
	copy(ext, key)
	ext[keyLen] = digest[0]

	src := bitpack.Wrap(ext, bitpack.MSBFirst)
	group := bitpack.New(16, bitpack.MSBFirst)
	defer group.Clear()

	nrWords := WordCount(keyLen)
	words := make([]string, nrWords)
	for i := range words {
		group.Clear()
		if err := bitpack.Extract(group, 0, src, bitsPerWord*i, bitsPerWord*(i+1), true); err != nil {
			return nil, fmt.Errorf("%w: group %d: %v", ErrInvalidWordIndex, i, err)
		}
		// Right-justified, so the padding bits must still be clear.
		idx := int(binary.BigEndian.Uint16(group.Bytes()))
		w, err := c.dict.WordAt(idx)
		if err != nil {
			return nil, fmt.Errorf("%w: group %d: %v", ErrInvalidWordIndex, i, err)
		}
		words[i] = w
	}
	return words, nil
}

// EncodeString returns the mnemonic sentence for key as space-separated words.
func (c *Codec) EncodeString(key []byte) (string, error) {
	words, err := c.Encode(key)
	if err != nil {
		return "", err
	}
	return strings.Join(words, " "), nil
}

// Decode returns the key encoded by words.
//
// When the sentence is well formed but its checksum does not match, the
// decoded key is returned together with ErrChecksumMismatch so the caller can
// inspect it. On any other error the key is nil.
func (c *Codec) Decode(words []string) ([]byte, error) {
	nrWords := len(words)
	if !validWordCount(nrWords) {
		return nil, fmt.Errorf("%w: %d (want 12, 15, 18, 21 or 24)", ErrInvalidWordCount, nrWords)
	}
	keyLen := KeyLength(nrWords)
	csBits := nrWords*bitsPerWord - keyLen*8

	ext := bitpack.New(nrWords*bitsPerWord, bitpack.MSBFirst)
	defer ext.Clear()
	group := bitpack.New(16, bitpack.MSBFirst)
	defer group.Clear()

	for i, w := range words {
		idx, err := c.dict.IndexOf(w)
		if err != nil {
			return nil, &WordError{Position: i, Word: w}
		}
		// Left-justify the 11 bits within the 2-byte group.
		binary.BigEndian.PutUint16(group.Bytes(), uint16(idx)<<(16-bitsPerWord))
		if err := bitpack.Extract(ext, bitsPerWord*i, group, 0, bitsPerWord, false); err != nil {
			return nil, fmt.Errorf("place word %d: %w", i, err)
		}
	}

	raw := ext.Bytes()
	key := slices.Clone(raw[:keyLen])

	digest := c.hash(key)
	mask := byte(0xff << (8 - csBits))
	want := digest[0] & mask
	if got := raw[keyLen]; got != want {
		return key, fmt.Errorf("%w: got %#02x, want %#02x", ErrChecksumMismatch, got>>(8-csBits), want>>(8-csBits))
	}
	return key, nil
}

// DecodeString decodes a sentence of whitespace-separated words.
func (c *Codec) DecodeString(sentence string) ([]byte, error) {
	return c.Decode(strings.Fields(sentence))
}

// Validate reports whether words form a sentence with a valid checksum.
func (c *Codec) Validate(words []string) bool {
	key, err := c.Decode(words)
	clear(key)
	return err == nil
}

// ValidateString is Validate for a whitespace-separated sentence.
func (c *Codec) ValidateString(sentence string) bool {
	return c.Validate(strings.Fields(sentence))
}

// IsValidWord returns the dictionary's canonical form of word, or an error
// wrapping wordlist.ErrNotFound.
func (c *Codec) IsValidWord(word string) (string, error) {
	return c.dict.Canonical(word)
}

// Dictionary returns the codec's dictionary.
func (c *Codec) Dictionary() *wordlist.Dictionary {
	return c.dict
}

// Default is the standard BIP-39 codec: English dictionary and SHA-256.
var Default = New()

// Encode encodes key with the default codec.
func Encode(key []byte) ([]string, error) {
	return Default.Encode(key)
}

// EncodeString encodes key with the default codec.
func EncodeString(key []byte) (string, error) {
	return Default.EncodeString(key)
}

// Decode decodes words with the default codec.
func Decode(words []string) ([]byte, error) {
	return Default.Decode(words)
}

// DecodeString decodes a sentence with the default codec.
func DecodeString(sentence string) ([]byte, error) {
	return Default.DecodeString(sentence)
}

// Validate checks words with the default codec.
func Validate(words []string) bool {
	return Default.Validate(words)
}

// ValidateString checks a sentence with the default codec.
func ValidateString(sentence string) bool {
	return Default.ValidateString(sentence)
}

// IsValidWord looks word up in the English dictionary.
func IsValidWord(word string) (string, error) {
	return Default.IsValidWord(word)
}
