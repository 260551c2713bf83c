package types

import (
	"strings"
	"testing"
)

func TestHash_String(t *testing.T) {
	tests := []struct {
		name string
		hash Hash
		want string
	}{
		{"zero", Hash{}, strings.Repeat("00", HashSize)},
		{"first byte", Hash{0xab}, "ab" + strings.Repeat("00", HashSize-1)},
		{"last byte", Hash{31: 0xcd}, strings.Repeat("00", HashSize-1) + "cd"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.hash.String(); got != tt.want {
				t.Errorf("String() = %s, want %s", got, tt.want)
			}
		})
	}
}
