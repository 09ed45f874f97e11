package main

import (
	"bytes"
	"encoding/hex"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestKeygen(t *testing.T) {
	seed, _ := hex.DecodeString("000102030405060708090a0b0c0d0e0f")

	seen := make(map[string]string)
	for _, path := range []string{"m/44'/234'/0'", "m/44'/234'/1'", "m/44'/234'/2'"} {
		t.Run(path, func(t *testing.T) {
			a, err := keygen(seed, path)
			if err != nil {
				t.Fatalf("cannot generate key: %s", err)
			}
			b, err := keygen(seed, path)
			if err != nil {
				t.Fatalf("cannot generate key: %s", err)
			}
			if !bytes.Equal(a.Ed25519, b.Ed25519) {
				t.Fatal("derivation is not deterministic")
			}
			addr := a.PublicKey().Address().String()
			if other, ok := seen[addr]; ok {
				t.Fatalf("path %q derived the same key as %q", path, other)
			}
			seen[addr] = path
		})
	}
}

func TestKeygenInvalidPath(t *testing.T) {
	seed, _ := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	if _, err := keygen(seed, "m/44/234/0"); err == nil {
		t.Fatal("non hardened path must not be accepted")
	}
}

func TestCmdKeygenAndKeyaddr(t *testing.T) {
	dir, err := ioutil.TempDir("", "xswapcli")
	if err != nil {
		t.Fatalf("cannot create temporary directory: %s", err)
	}
	defer os.RemoveAll(dir)
	keyPath := filepath.Join(dir, "key")

	var genOut bytes.Buffer
	if err := cmdKeygen(nil, &genOut, []string{"-key", keyPath, "-seed", "000102030405060708090a0b0c0d0e0f"}); err != nil {
		t.Fatalf("cannot generate key: %s", err)
	}
	if err := cmdKeygen(nil, ioutil.Discard, []string{"-key", keyPath}); err == nil {
		t.Fatal("existing key file must not be overwritten")
	}

	var addrOut bytes.Buffer
	if err := cmdKeyaddr(nil, &addrOut, []string{"-key", keyPath}); err != nil {
		t.Fatalf("cannot print address: %s", err)
	}
	if got, want := addrOut.String(), genOut.String(); got != want {
		t.Fatalf("want %q address, got %q", want, got)
	}

	var bechOut bytes.Buffer
	if err := cmdKeyaddr(nil, &bechOut, []string{"-key", keyPath, "-bech32"}); err != nil {
		t.Fatalf("cannot print bech32 address: %s", err)
	}
	if !strings.HasPrefix(bechOut.String(), "xswap1") {
		t.Fatalf("unexpected bech32 address: %q", bechOut.String())
	}
}
