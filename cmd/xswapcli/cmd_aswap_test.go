package main

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/noxlabs/xswap/x/aswap"
)

func TestCmdHashlock(t *testing.T) {
	var output bytes.Buffer
	if err := cmdHashlock(nil, &output, []string{"-secret", "c0ffee"}); err != nil {
		t.Fatalf("cannot compute hashlock: %s", err)
	}
	hash := sha256.Sum256([]byte{0xc0, 0xff, 0xee})
	want := "c0ffee " + hex.EncodeToString(hash[:]) + "\n"
	if got := output.String(); got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestCmdHashlockRandomSecret(t *testing.T) {
	var output bytes.Buffer
	if err := cmdHashlock(nil, &output, nil); err != nil {
		t.Fatalf("cannot compute hashlock: %s", err)
	}
	chunks := strings.Fields(output.String())
	if len(chunks) != 2 {
		t.Fatalf("want secret and hashlock, got %q", output.String())
	}
	secret, err := hex.DecodeString(chunks[0])
	if err != nil || len(secret) != 32 {
		t.Fatalf("invalid secret %q: %v", chunks[0], err)
	}
	hash := sha256.Sum256(secret)
	if chunks[1] != hex.EncodeToString(hash[:]) {
		t.Fatal("hashlock does not match the secret")
	}
}

func TestCmdSwapInitiate(t *testing.T) {
	hashlock := sha256.Sum256([]byte("secret"))
	var output bytes.Buffer
	args := []string{
		"-src", "b1ca7e78f74423ae01da3b51e676934d9105f282",
		"-dst", "E28AE9A6EB94FC88B73EB7CBD6B87BF93EB9BEF0",
		"-hashlock", hex.EncodeToString(hashlock[:]),
		"-amount", "100 APT",
		"-timelock", "2030-01-01T00:00:00Z",
	}
	if err := cmdSwapInitiate(nil, &output, args); err != nil {
		t.Fatalf("cannot create a transaction: %s", err)
	}

	tx, _, err := readTx(&output)
	if err != nil {
		t.Fatalf("cannot read created transaction: %s", err)
	}
	txmsg, err := tx.GetMsg()
	if err != nil {
		t.Fatalf("cannot get transaction message: %s", err)
	}
	msg, ok := txmsg.(*aswap.CreateMsg)
	if !ok {
		t.Fatalf("unexpected message: %T", txmsg)
	}
	if !msg.Source.Equals(fromHex(t, "b1ca7e78f74423ae01da3b51e676934d9105f282")) {
		t.Fatalf("unexpected source: %s", msg.Source)
	}
	if !bytes.Equal(msg.Hashlock, hashlock[:]) {
		t.Fatalf("unexpected hashlock: %x", msg.Hashlock)
	}
	if msg.Amount.Amount != 100 || msg.Amount.Ticker != "APT" {
		t.Fatalf("unexpected amount: %v", msg.Amount)
	}
	if got := msg.Timelock.Time().Year(); got != 2030 {
		t.Fatalf("unexpected timelock: %s", msg.Timelock)
	}
}

func TestCmdSwapInitiateInvalidMessage(t *testing.T) {
	var output bytes.Buffer
	args := []string{
		"-src", "b1ca7e78f74423ae01da3b51e676934d9105f282",
		"-dst", "E28AE9A6EB94FC88B73EB7CBD6B87BF93EB9BEF0",
		"-hashlock", "c0ffee",
		"-amount", "100 APT",
	}
	if err := cmdSwapInitiate(nil, &output, args); err == nil {
		t.Fatal("a short hashlock must be rejected")
	}
	if output.Len() != 0 {
		t.Fatal("nothing must be written for an invalid message")
	}
}

func TestCmdSwapComplete(t *testing.T) {
	var output bytes.Buffer
	args := []string{
		"-swap", strings.Repeat("ab", 32),
		"-secret", hex.EncodeToString([]byte("secret")),
	}
	if err := cmdSwapComplete(nil, &output, args); err != nil {
		t.Fatalf("cannot create a transaction: %s", err)
	}
	tx, _, err := readTx(&output)
	if err != nil {
		t.Fatalf("cannot read created transaction: %s", err)
	}
	txmsg, err := tx.GetMsg()
	if err != nil {
		t.Fatalf("cannot get transaction message: %s", err)
	}
	msg := txmsg.(*aswap.ReleaseMsg)
	if string(msg.Secret) != "secret" {
		t.Fatalf("unexpected secret: %q", msg.Secret)
	}
}
