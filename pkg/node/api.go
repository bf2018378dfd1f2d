package node

import (
	"context"
	"encoding/json"
)

type KaiaAPI interface {
	BlockNumber(ctx context.Context) (json.RawMessage, error)
	ChainID(ctx context.Context) (json.RawMessage, error)
	GasPrice(ctx context.Context) (json.RawMessage, error)
	GetBalance(ctx context.Context, address, block string) (json.RawMessage, error)
	GetTransactionCount(ctx context.Context, address, block string) (json.RawMessage, error)
	GetCode(ctx context.Context, address, block string) (json.RawMessage, error)
	GetStorageAt(ctx context.Context, address, position, block string) (json.RawMessage, error)
	Call(ctx context.Context, msg CallMsg, block string) (json.RawMessage, error)
	EstimateGas(ctx context.Context, msg CallMsg) (json.RawMessage, error)
	GetBlockByHash(ctx context.Context, blockHash string) (json.RawMessage, error)
	GetBlockByNumber(ctx context.Context, block string) (json.RawMessage, error)
	GetTransactionByHash(ctx context.Context, txHash string) (json.RawMessage, error)
	GetTransactionReceipt(ctx context.Context, txHash string) (json.RawMessage, error)
	GetLogs(ctx context.Context, filter FilterQuery) (json.RawMessage, error)
	SendRawTransaction(ctx context.Context, signedTx string) (json.RawMessage, error)
}

var _ KaiaAPI = (*Client)(nil)
