package node

import (
	"context"
	"encoding/json"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/fystack/nodit-kaia/pkg/common/constant"
	"github.com/fystack/nodit-kaia/pkg/rpc"
)

const (
	methodBlockNumber           = "kaia_blockNumber"
	methodChainID               = "kaia_chainID"
	methodGasPrice              = "kaia_gasPrice"
	methodGetBalance            = "kaia_getBalance"
	methodGetTransactionCount   = "kaia_getTransactionCount"
	methodGetCode               = "kaia_getCode"
	methodGetStorageAt          = "kaia_getStorageAt"
	methodCall                  = "kaia_call"
	methodEstimateGas           = "kaia_estimateGas"
	methodGetBlockByHash        = "kaia_getBlockByHash"
	methodGetBlockByNumber      = "kaia_getBlockByNumber"
	methodGetTransactionByHash  = "kaia_getTransactionByHash"
	methodGetTransactionReceipt = "kaia_getTransactionReceipt"
	methodGetLogs               = "kaia_getLogs"
	methodSendRawTransaction    = "kaia_sendRawTransaction"
)

// Client exposes kaia_* JSON-RPC methods. Every method returns the raw
// JSON-RPC response; use rpc.DecodeResult to read the result.
type Client struct {
	caller rpc.Caller
}

func NewClient(caller rpc.Caller) *Client {
	return &Client{caller: caller}
}

// BlockTag formats a block number as the hex quantity the node expects.
func BlockTag(number uint64) string {
	return hexutil.EncodeUint64(number)
}

func blockOrLatest(block string) string {
	if block == "" {
		return constant.BlockLatest
	}
	return block
}

func (c *Client) BlockNumber(ctx context.Context) (json.RawMessage, error) {
	return c.caller.CallRPC(ctx, methodBlockNumber, nil)
}

func (c *Client) ChainID(ctx context.Context) (json.RawMessage, error) {
	return c.caller.CallRPC(ctx, methodChainID, nil)
}

func (c *Client) GasPrice(ctx context.Context) (json.RawMessage, error) {
	return c.caller.CallRPC(ctx, methodGasPrice, nil)
}

// GetBalance returns the peb balance of address at block ("latest" when empty).
func (c *Client) GetBalance(ctx context.Context, address, block string) (json.RawMessage, error) {
	return c.caller.CallRPC(ctx, methodGetBalance, []any{address, blockOrLatest(block)})
}

func (c *Client) GetTransactionCount(ctx context.Context, address, block string) (json.RawMessage, error) {
	return c.caller.CallRPC(ctx, methodGetTransactionCount, []any{address, blockOrLatest(block)})
}

func (c *Client) GetCode(ctx context.Context, address, block string) (json.RawMessage, error) {
	return c.caller.CallRPC(ctx, methodGetCode, []any{address, blockOrLatest(block)})
}

func (c *Client) GetStorageAt(ctx context.Context, address, position, block string) (json.RawMessage, error) {
	return c.caller.CallRPC(ctx, methodGetStorageAt, []any{address, position, blockOrLatest(block)})
}

func (c *Client) Call(ctx context.Context, msg CallMsg, block string) (json.RawMessage, error) {
	return c.caller.CallRPC(ctx, methodCall, []any{msg, blockOrLatest(block)})
}

func (c *Client) EstimateGas(ctx context.Context, msg CallMsg) (json.RawMessage, error) {
	return c.caller.CallRPC(ctx, methodEstimateGas, []any{msg})
}

// GetBlockByHash always asks for full transaction objects.
func (c *Client) GetBlockByHash(ctx context.Context, blockHash string) (json.RawMessage, error) {
	return c.caller.CallRPC(ctx, methodGetBlockByHash, []any{blockHash, true})
}

// GetBlockByNumber always asks for full transaction objects.
func (c *Client) GetBlockByNumber(ctx context.Context, block string) (json.RawMessage, error) {
	return c.caller.CallRPC(ctx, methodGetBlockByNumber, []any{blockOrLatest(block), true})
}

func (c *Client) GetTransactionByHash(ctx context.Context, txHash string) (json.RawMessage, error) {
	return c.caller.CallRPC(ctx, methodGetTransactionByHash, []any{txHash})
}

func (c *Client) GetTransactionReceipt(ctx context.Context, txHash string) (json.RawMessage, error) {
	return c.caller.CallRPC(ctx, methodGetTransactionReceipt, []any{txHash})
}

func (c *Client) GetLogs(ctx context.Context, filter FilterQuery) (json.RawMessage, error) {
	return c.caller.CallRPC(ctx, methodGetLogs, []any{filter})
}

func (c *Client) SendRawTransaction(ctx context.Context, signedTx string) (json.RawMessage, error) {
	return c.caller.CallRPC(ctx, methodSendRawTransaction, []any{signedTx})
}
