package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"sort"

	"github.com/noxlabs/xswap/x/outbox"
)

func cmdEvents(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Print events emitted by the application, one JSON document per line, in the
order they were emitted. A relayer polls with the sequence of the last event
it processed to receive only new events.
`)
		fl.PrintDefaults()
	}
	var (
		tmAddrFl = fl.String("tm", env("XSWAPCLI_TM_ADDR", "http://localhost:26657"),
			"Tendermint node address. You can use XSWAPCLI_TM_ADDR environment variable to set it.")
		afterFl = fl.Int64("after", 0, "Only events with a greater sequence are printed.")
		kindFl  = fl.String("kind", "", `Optional event kind filter, for example "bridge/request_created".`)
	)
	fl.Parse(args)

	models, err := newClient(*tmAddrFl).Query("/events?prefix", nil)
	if err != nil {
		return fmt.Errorf("cannot query events: %s", err)
	}

	events := make([]*outbox.Event, 0, len(models))
	for _, m := range models {
		var e outbox.Event
		if err := e.Unmarshal(m.Value); err != nil {
			return fmt.Errorf("cannot decode event: %s", err)
		}
		if e.Sequence <= *afterFl {
			continue
		}
		if *kindFl != "" && e.Kind != *kindFl {
			continue
		}
		events = append(events, &e)
	}
	sort.Slice(events, func(i, j int) bool { return events[i].Sequence < events[j].Sequence })

	enc := json.NewEncoder(output)
	for _, e := range events {
		if err := enc.Encode(e); err != nil {
			return err
		}
	}
	return nil
}
