// derive_key.go prints the key, fingerprint and pubkey for a mnemonic file.
// Usage: go run scripts/derive_key.go <mnemonic-file>
package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/Klingon-tech/klingnet-mnemonic/pkg/crypto"
	"github.com/Klingon-tech/klingnet-mnemonic/pkg/mnemonic"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: derive_key <mnemonic-file>")
		os.Exit(1)
	}
	if err := derive(os.Stdout, os.Args[1]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// derive writes the details of the mnemonic stored at path to w. Key
// material is cleared before it returns, on every path.
func derive(w io.Writer, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	key, err := mnemonic.DecodeString(string(data))
	clear(data)
	defer clear(key)
	if err != nil {
		return err
	}

	var pub []byte
	if len(key) == mnemonic.MaxKeyLen {
		if pub, err = crypto.PublicKeyFromSecret(key); err != nil {
			return err
		}
	}

	fmt.Fprintf(w, "key=%s\n", hex.EncodeToString(key))
	fmt.Fprintf(w, "fingerprint=%s\n", crypto.Fingerprint(key))
	if pub != nil {
		fmt.Fprintf(w, "pubkey=%s\n", hex.EncodeToString(pub))
	}
	return nil
}
