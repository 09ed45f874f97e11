package main

import (
	"github.com/noxlabs/xswap"
	"github.com/noxlabs/xswap/app"
	"github.com/noxlabs/xswap/errors"
	"github.com/tendermint/tendermint/rpc/client"
	ctypes "github.com/tendermint/tendermint/rpc/core/types"
)

// tmClient wraps a tendermint client to provide simple access to the
// data structures used by the application.
type tmClient struct {
	conn client.Client
}

func newClient(remote string) *tmClient {
	return &tmClient{conn: client.NewHTTP(remote, "/websocket")}
}

// ChainID returns the chain id declared in the genesis.
func (c *tmClient) ChainID() (string, error) {
	gen, err := c.conn.Genesis()
	if err != nil {
		return "", errors.Wrap(err, "fetch genesis")
	}
	return gen.Genesis.ChainID, nil
}

// Query calls abci query and decodes the result sets into models. An empty
// result is not an error.
func (c *tmClient) Query(path string, data []byte) ([]xswap.Model, error) {
	q, err := c.conn.ABCIQuery(path, data)
	if err != nil {
		return nil, errors.Wrap(err, "abci query")
	}
	resp := q.Response
	if resp.IsErr() {
		return nil, errors.Wrapf(errors.ErrHuman, "(%d): %s", resp.Code, resp.Log)
	}
	if len(resp.Key) == 0 {
		return nil, nil
	}

	var keys, vals app.ResultSet
	if err := keys.Unmarshal(resp.Key); err != nil {
		return nil, err
	}
	if err := vals.Unmarshal(resp.Value); err != nil {
		return nil, err
	}
	return app.JoinResults(&keys, &vals)
}

// BroadcastTx writes a signed transaction to the chain and returns once it
// was committed.
func (c *tmClient) BroadcastTx(tx xswap.Tx) (*ctypes.ResultBroadcastTxCommit, error) {
	raw, err := tx.Marshal()
	if err != nil {
		return nil, errors.Wrap(err, "marshal transaction")
	}
	res, err := c.conn.BroadcastTxCommit(raw)
	if err != nil {
		return nil, errors.Wrap(err, "broadcast")
	}
	if res.CheckTx.IsErr() {
		return res, errors.Wrapf(errors.ErrHuman, "CheckTx error: (%d) %s", res.CheckTx.Code, res.CheckTx.Log)
	}
	if res.DeliverTx.IsErr() {
		return res, errors.Wrapf(errors.ErrHuman, "DeliverTx error: (%d) %s", res.DeliverTx.Code, res.DeliverTx.Log)
	}
	return res, nil
}
