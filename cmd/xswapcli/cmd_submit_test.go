package main

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/noxlabs/xswap"
	"github.com/noxlabs/xswap/x/aswap"
)

func TestCmdSubmitTxHappyPath(t *testing.T) {
	var submitted bool
	swapID := bytes.Repeat([]byte{0xab}, 32)
	tm := newTendermintServer(t, map[string]func(json.RawMessage) string{
		"broadcast_tx_commit": func(json.RawMessage) string {
			submitted = true
			return `{
				"check_tx": {},
				"deliver_tx": {"data": "` + base64.StdEncoding.EncodeToString(swapID) + `"},
				"hash": "ABCD",
				"height": "12345"
			}`
		},
	})
	defer tm.Close()

	var unsigned bytes.Buffer
	msg := &aswap.ReturnMsg{
		Metadata: &xswap.Metadata{Schema: 1},
		SwapID:   swapID,
	}
	if err := writeMsg(&unsigned, msg); err != nil {
		t.Fatalf("cannot write transaction: %s", err)
	}

	var output bytes.Buffer
	if err := cmdSubmitTransaction(&unsigned, &output, []string{"-tm", tm.URL}); err != nil {
		t.Fatalf("cannot submit the transaction: %s", err)
	}
	if !submitted {
		t.Fatal("not submitted")
	}
	// Only entity creating messages print the result.
	if output.Len() != 0 {
		t.Fatalf("unexpected output: %q", output.String())
	}
}

func TestCmdSubmitPrintsCreatedID(t *testing.T) {
	swapID := bytes.Repeat([]byte{0xab}, 32)
	tm := newTendermintServer(t, map[string]func(json.RawMessage) string{
		"broadcast_tx_commit": func(json.RawMessage) string {
			return `{
				"check_tx": {},
				"deliver_tx": {"data": "` + base64.StdEncoding.EncodeToString(swapID) + `"},
				"hash": "ABCD",
				"height": "12345"
			}`
		},
	})
	defer tm.Close()

	var unsigned bytes.Buffer
	args := []string{
		"-src", "b1ca7e78f74423ae01da3b51e676934d9105f282",
		"-dst", "E28AE9A6EB94FC88B73EB7CBD6B87BF93EB9BEF0",
		"-hashlock", hexString(swapID),
		"-amount", "1 APT",
	}
	if err := cmdSwapInitiate(nil, &unsigned, args); err != nil {
		t.Fatalf("cannot create transaction: %s", err)
	}

	var output bytes.Buffer
	if err := cmdSubmitTransaction(&unsigned, &output, []string{"-tm", tm.URL}); err != nil {
		t.Fatalf("cannot submit the transaction: %s", err)
	}
	if got, want := output.String(), hexString(swapID)+"\n"; got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestCmdSubmitDeliverFailure(t *testing.T) {
	tm := newTendermintServer(t, map[string]func(json.RawMessage) string{
		"broadcast_tx_commit": func(json.RawMessage) string {
			return `{
				"check_tx": {},
				"deliver_tx": {"code": 44, "log": "swap not expired"},
				"hash": "ABCD",
				"height": "12345"
			}`
		},
	})
	defer tm.Close()

	var unsigned bytes.Buffer
	msg := &aswap.ReturnMsg{
		Metadata: &xswap.Metadata{Schema: 1},
		SwapID:   bytes.Repeat([]byte{0xab}, 32),
	}
	if err := writeMsg(&unsigned, msg); err != nil {
		t.Fatalf("cannot write transaction: %s", err)
	}
	if err := cmdSubmitTransaction(&unsigned, &bytes.Buffer{}, []string{"-tm", tm.URL}); err == nil {
		t.Fatal("failed delivery must be reported")
	}
}
