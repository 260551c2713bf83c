package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Klingon-tech/klingnet-mnemonic/pkg/crypto"
	"github.com/Klingon-tech/klingnet-mnemonic/pkg/mnemonic"
)

func writeMnemonic(t *testing.T, sentence string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mnemonic.txt")
	if err := os.WriteFile(path, []byte(sentence+"\n"), 0600); err != nil {
		t.Fatalf("write mnemonic: %v", err)
	}
	return path
}

func TestDerive(t *testing.T) {
	path := writeMnemonic(t, "legal winner thank year wave sausage worth useful legal winner thank year wave sausage worth useful legal winner thank year wave sausage worth title")

	var out bytes.Buffer
	if err := derive(&out, path); err != nil {
		t.Fatalf("derive() error: %v", err)
	}
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3: %q", len(lines), out.String())
	}
	if lines[0] != "key="+strings.Repeat("7f", 32) {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "fingerprint=") || !strings.HasPrefix(lines[2], "pubkey=") {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestDerive_ShortKeyHasNoPubKey(t *testing.T) {
	path := writeMnemonic(t, "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about")

	var out bytes.Buffer
	if err := derive(&out, path); err != nil {
		t.Fatalf("derive() error: %v", err)
	}
	if strings.Contains(out.String(), "pubkey=") {
		t.Errorf("16-byte key should not print a pubkey: %q", out.String())
	}
}

func TestDerive_Errors(t *testing.T) {
	zero32 := strings.Repeat("abandon ", 23) + "art"
	tests := []struct {
		name string
		path string
		want error
	}{
		{"invalid secret", writeMnemonic(t, zero32), crypto.ErrInvalidSecret},
		{"checksum mismatch", writeMnemonic(t, strings.TrimSpace(strings.Repeat("abandon ", 12))), mnemonic.ErrChecksumMismatch},
		{"missing file", filepath.Join(t.TempDir(), "missing.txt"), os.ErrNotExist},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := derive(&out, tt.path)
			if !errors.Is(err, tt.want) {
				t.Errorf("derive() error = %v, want %v", err, tt.want)
			}
			if out.Len() != 0 {
				t.Errorf("nothing should be printed on error, got %q", out.String())
			}
		})
	}
}
