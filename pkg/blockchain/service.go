package blockchain

import (
	"context"
	"encoding/json"

	"github.com/fystack/nodit-kaia/pkg/common/params"
	"github.com/fystack/nodit-kaia/pkg/rpc"
)

const (
	pathBlockByHashOrNumber           = "/blockchain/getBlockByHashOrNumber"
	pathBlocksWithinRange             = "/blockchain/getBlocksWithinRange"
	pathGasPrice                      = "/blockchain/getGasPrice"
	pathInternalTransactionsByAccount = "/blockchain/getInternalTransactionsByAccount"
	pathNextNonceByAccount            = "/blockchain/getNextNonceByAccount"
	pathTransactionByHash             = "/blockchain/getTransactionByHash"
	pathTransactionsByAccount         = "/blockchain/getTransactionsByAccount"
	pathTransactionsByHashes          = "/blockchain/getTransactionsByHashes"
	pathTransactionsInBlock           = "/blockchain/getTransactionsInBlock"
	pathIsContract                    = "/blockchain/isContract"
	pathSearchEvents                  = "/blockchain/searchEvents"
)

type BlockchainAPI interface {
	GetBlockByHashOrNumber(ctx context.Context, block string) (json.RawMessage, error)
	GetBlocksWithinRange(ctx context.Context, opts *RangeOptions) (json.RawMessage, error)
	GetGasPrice(ctx context.Context) (json.RawMessage, error)
	GetInternalTransactionsByAccount(ctx context.Context, accountAddress string, opts *InternalTransactionsOptions) (json.RawMessage, error)
	GetNextNonceByAccount(ctx context.Context, accountAddress string) (json.RawMessage, error)
	GetTransactionByHash(ctx context.Context, transactionHash string, opts *params.Transaction) (json.RawMessage, error)
	GetTransactionsByAccount(ctx context.Context, accountAddress string, opts *TransactionsByAccountOptions) (json.RawMessage, error)
	GetTransactionsByHashes(ctx context.Context, transactionHashes []string, opts *params.Transaction) (json.RawMessage, error)
	GetTransactionsInBlock(ctx context.Context, block string, opts *params.Transaction) (json.RawMessage, error)
	IsContract(ctx context.Context, address string) (json.RawMessage, error)
	SearchEvents(ctx context.Context, contractAddress string, eventNames []string, abi map[string]any, opts *RangeOptions) (json.RawMessage, error)
}

var _ BlockchainAPI = (*Service)(nil)

// Service groups the block, transaction and event endpoints of the indexing API.
type Service struct {
	client rpc.Requester
}

func NewService(client rpc.Requester) *Service {
	return &Service{client: client}
}

// GetBlockByHashOrNumber accepts a block hash or a decimal block number.
func (s *Service) GetBlockByHashOrNumber(ctx context.Context, block string) (json.RawMessage, error) {
	return s.client.Post(ctx, pathBlockByHashOrNumber, blockRequest{Block: block})
}

func (s *Service) GetBlocksWithinRange(ctx context.Context, opts *RangeOptions) (json.RawMessage, error) {
	if opts == nil {
		opts = &RangeOptions{}
	}
	return s.client.Post(ctx, pathBlocksWithinRange, opts)
}

func (s *Service) GetGasPrice(ctx context.Context) (json.RawMessage, error) {
	return s.client.Post(ctx, pathGasPrice, struct{}{})
}

func (s *Service) GetInternalTransactionsByAccount(ctx context.Context, accountAddress string, opts *InternalTransactionsOptions) (json.RawMessage, error) {
	return s.client.Post(ctx, pathInternalTransactionsByAccount, internalTransactionsRequest{AccountAddress: accountAddress, InternalTransactionsOptions: opts})
}

func (s *Service) GetNextNonceByAccount(ctx context.Context, accountAddress string) (json.RawMessage, error) {
	return s.client.Post(ctx, pathNextNonceByAccount, accountRequest{AccountAddress: accountAddress})
}

func (s *Service) GetTransactionByHash(ctx context.Context, transactionHash string, opts *params.Transaction) (json.RawMessage, error) {
	return s.client.Post(ctx, pathTransactionByHash, transactionRequest{TransactionHash: transactionHash, Transaction: opts})
}

func (s *Service) GetTransactionsByAccount(ctx context.Context, accountAddress string, opts *TransactionsByAccountOptions) (json.RawMessage, error) {
	return s.client.Post(ctx, pathTransactionsByAccount, accountTransactionsRequest{AccountAddress: accountAddress, TransactionsByAccountOptions: opts})
}

func (s *Service) GetTransactionsByHashes(ctx context.Context, transactionHashes []string, opts *params.Transaction) (json.RawMessage, error) {
	return s.client.Post(ctx, pathTransactionsByHashes, transactionsByHashesRequest{TransactionHashes: transactionHashes, Transaction: opts})
}

func (s *Service) GetTransactionsInBlock(ctx context.Context, block string, opts *params.Transaction) (json.RawMessage, error) {
	return s.client.Post(ctx, pathTransactionsInBlock, blockTransactionsRequest{Block: block, Transaction: opts})
}

func (s *Service) IsContract(ctx context.Context, address string) (json.RawMessage, error) {
	return s.client.Post(ctx, pathIsContract, addressRequest{Address: address})
}

// SearchEvents looks up logs of contractAddress matching eventNames, decoded with abi.
func (s *Service) SearchEvents(
	ctx context.Context,
	contractAddress string,
	eventNames []string,
	abi map[string]any,
	opts *RangeOptions,
) (json.RawMessage, error) {
	return s.client.Post(ctx, pathSearchEvents, searchEventsRequest{
		ContractAddress: contractAddress,
		EventNames:      eventNames,
		ABI:             abi,
		RangeOptions:    opts,
	})
}
