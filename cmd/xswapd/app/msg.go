package app

import (
	"fmt"

	"github.com/noxlabs/xswap"
	"github.com/noxlabs/xswap/errors"
	"github.com/noxlabs/xswap/x/aswap"
	"github.com/noxlabs/xswap/x/bridge"
	"github.com/noxlabs/xswap/x/cash"
	"github.com/noxlabs/xswap/x/currency"
	"github.com/noxlabs/xswap/x/sigs"
)

// routes maps a message path to a constructor of an empty message.
var routes = map[string]func() xswap.Msg{}

func init() {
	register(
		func() xswap.Msg { return &cash.SendMsg{} },
		func() xswap.Msg { return &currency.CreateMsg{} },
		func() xswap.Msg { return &sigs.BumpSequenceMsg{} },

		func() xswap.Msg { return &aswap.CreateMsg{} },
		func() xswap.Msg { return &aswap.ReleaseMsg{} },
		func() xswap.Msg { return &aswap.ReturnMsg{} },
		func() xswap.Msg { return &aswap.PauseMsg{} },
		func() xswap.Msg { return &aswap.UnpauseMsg{} },
		func() xswap.Msg { return &aswap.UpdateConfigurationMsg{} },

		func() xswap.Msg { return &bridge.DepositMsg{} },
		func() xswap.Msg { return &bridge.ReleaseMsg{} },
		func() xswap.Msg { return &bridge.AddReservesMsg{} },
		func() xswap.Msg { return &bridge.AddRelayerMsg{} },
		func() xswap.Msg { return &bridge.RemoveRelayerMsg{} },
		func() xswap.Msg { return &bridge.ConfirmRequestMsg{} },
		func() xswap.Msg { return &bridge.ExpireRequestMsg{} },
		func() xswap.Msg { return &bridge.WithdrawFeesMsg{} },
		func() xswap.Msg { return &bridge.PauseMsg{} },
		func() xswap.Msg { return &bridge.UnpauseMsg{} },
		func() xswap.Msg { return &bridge.UpdateConfigurationMsg{} },
	)
}

func register(constructors ...func() xswap.Msg) {
	for _, fn := range constructors {
		path := fn().Path()
		if _, ok := routes[path]; ok {
			panic(fmt.Sprintf("message route %q already registered", path))
		}
		routes[path] = fn
	}
}

// NewMsg returns an empty message for given route.
func NewMsg(route string) (xswap.Msg, error) {
	fn, ok := routes[route]
	if !ok {
		return nil, errors.Wrapf(errors.ErrNotFound, "message route %q", route)
	}
	return fn(), nil
}

// Routes returns all message paths understood by the application.
func Routes() []string {
	paths := make([]string, 0, len(routes))
	for p := range routes {
		paths = append(paths, p)
	}
	return paths
}
