package main

import (
	"bytes"
	"io/ioutil"
	"testing"

	"github.com/noxlabs/xswap/x/aswap"
	"github.com/noxlabs/xswap/x/bridge"
)

func TestCmdBridgeDeposit(t *testing.T) {
	var output bytes.Buffer
	args := []string{
		"-user", "b1ca7e78f74423ae01da3b51e676934d9105f282",
		"-amount", "40 APT",
		"-chain", "ethereum",
		"-to", "0x9f8c163cBA728e99993ABe7495F06c0A3c8Ac8b9",
	}
	if err := cmdBridgeDeposit(nil, &output, args); err != nil {
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
	msg, ok := txmsg.(*bridge.DepositMsg)
	if !ok {
		t.Fatalf("unexpected message: %T", txmsg)
	}
	if msg.DestinationChain != "ethereum" {
		t.Fatalf("unexpected chain: %q", msg.DestinationChain)
	}
	if msg.Amount.Amount != 40 {
		t.Fatalf("unexpected amount: %v", msg.Amount)
	}
}

func TestCmdBridgeAddRelayer(t *testing.T) {
	cases := map[string]struct {
		args     []string
		wantPath string
	}{
		"add": {
			args:     []string{"-relayer", "b1ca7e78f74423ae01da3b51e676934d9105f282"},
			wantPath: "bridge/add_relayer",
		},
		"remove": {
			args:     []string{"-relayer", "b1ca7e78f74423ae01da3b51e676934d9105f282", "-remove"},
			wantPath: "bridge/remove_relayer",
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var output bytes.Buffer
			if err := cmdBridgeAddRelayer(nil, &output, tc.args); err != nil {
				t.Fatalf("cannot create a transaction: %s", err)
			}
			tx, _, err := readTx(&output)
			if err != nil {
				t.Fatalf("cannot read created transaction: %s", err)
			}
			if tx.Route != tc.wantPath {
				t.Fatalf("want %q route, got %q", tc.wantPath, tx.Route)
			}
		})
	}
}

func TestCmdPause(t *testing.T) {
	cases := map[string]struct {
		pause   bool
		module  string
		wantMsg interface{}
		wantErr bool
	}{
		"pause swaps": {
			pause:   true,
			module:  "aswap",
			wantMsg: &aswap.PauseMsg{},
		},
		"unpause swaps": {
			module:  "aswap",
			wantMsg: &aswap.UnpauseMsg{},
		},
		"pause bridge": {
			pause:   true,
			module:  "bridge",
			wantMsg: &bridge.PauseMsg{},
		},
		"unpause bridge": {
			module:  "bridge",
			wantMsg: &bridge.UnpauseMsg{},
		},
		"unknown module": {
			pause:   true,
			module:  "cash",
			wantErr: true,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			cmd := cmdUnpause
			if tc.pause {
				cmd = cmdPause
			}
			var output bytes.Buffer
			err := cmd(nil, &output, []string{"-module", tc.module})
			if tc.wantErr {
				if err == nil {
					t.Fatal("want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("cannot create a transaction: %s", err)
			}
			tx, _, err := readTx(&output)
			if err != nil {
				t.Fatalf("cannot read created transaction: %s", err)
			}
			msg, err := tx.GetMsg()
			if err != nil {
				t.Fatalf("cannot get transaction message: %s", err)
			}
			if got, want := msg.Path(), tc.wantMsg.(interface{ Path() string }).Path(); got != want {
				t.Fatalf("want %q message, got %q", want, got)
			}
		})
	}
}

func TestCmdBridgeReleaseInvalid(t *testing.T) {
	args := []string{
		"-user", "b1ca7e78f74423ae01da3b51e676934d9105f282",
		"-amount", "40 APT",
	}
	if err := cmdBridgeRelease(nil, ioutil.Discard, args); err == nil {
		t.Fatal("release without a request ID must fail")
	}
}
