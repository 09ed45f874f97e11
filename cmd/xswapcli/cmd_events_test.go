package main

import (
	"bufio"
	"bytes"
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/noxlabs/xswap"
	"github.com/noxlabs/xswap/app"
	"github.com/noxlabs/xswap/orm"
	"github.com/noxlabs/xswap/x/outbox"
)

func TestCmdEvents(t *testing.T) {
	events := []*outbox.Event{
		{Metadata: &xswap.Metadata{Schema: 1}, Sequence: 1, Kind: "aswap/initiated", Height: 3, Payload: []byte("a")},
		{Metadata: &xswap.Metadata{Schema: 1}, Sequence: 2, Kind: "bridge/request_created", Height: 4, Payload: []byte("b")},
		{Metadata: &xswap.Metadata{Schema: 1}, Sequence: 3, Kind: "aswap/completed", Height: 4, Payload: []byte("c")},
	}
	var keys, values app.ResultSet
	for _, e := range events {
		raw, err := e.Marshal()
		if err != nil {
			t.Fatalf("cannot marshal event: %s", err)
		}
		keys.Results = append(keys.Results, orm.EncodeSequence(e.Sequence))
		values.Results = append(values.Results, raw)
	}
	rawKeys, err := keys.Marshal()
	if err != nil {
		t.Fatalf("cannot marshal keys: %s", err)
	}
	rawValues, err := values.Marshal()
	if err != nil {
		t.Fatalf("cannot marshal values: %s", err)
	}

	tm := newTendermintServer(t, map[string]func(json.RawMessage) string{
		"abci_query": func(json.RawMessage) string {
			return `{"response": {
				"key": "` + base64.StdEncoding.EncodeToString(rawKeys) + `",
				"value": "` + base64.StdEncoding.EncodeToString(rawValues) + `",
				"height": "4"
			}}`
		},
	})
	defer tm.Close()

	cases := map[string]struct {
		args     []string
		wantSeqs []int64
	}{
		"all events": {
			args:     []string{"-tm", tm.URL},
			wantSeqs: []int64{1, 2, 3},
		},
		"only new events": {
			args:     []string{"-tm", tm.URL, "-after", "1"},
			wantSeqs: []int64{2, 3},
		},
		"filter by kind": {
			args:     []string{"-tm", tm.URL, "-kind", "bridge/request_created"},
			wantSeqs: []int64{2},
		},
		"nothing new": {
			args:     []string{"-tm", tm.URL, "-after", "3"},
			wantSeqs: nil,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var output bytes.Buffer
			if err := cmdEvents(nil, &output, tc.args); err != nil {
				t.Fatalf("cannot list events: %s", err)
			}
			var got []int64
			s := bufio.NewScanner(&output)
			for s.Scan() {
				var e outbox.Event
				if err := json.Unmarshal(s.Bytes(), &e); err != nil {
					t.Fatalf("cannot decode event line: %s", err)
				}
				got = append(got, e.Sequence)
			}
			if len(got) != len(tc.wantSeqs) {
				t.Fatalf("want %v, got %v", tc.wantSeqs, got)
			}
			for i := range got {
				if got[i] != tc.wantSeqs[i] {
					t.Fatalf("want %v, got %v", tc.wantSeqs, got)
				}
			}
		})
	}
}
