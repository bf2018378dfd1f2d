package blockchain

import (
	"github.com/fystack/nodit-kaia/pkg/common/enum"
	"github.com/fystack/nodit-kaia/pkg/common/params"
)

type (
	// RangeOptions filters block and event queries by page, date and block number.
	RangeOptions struct {
		params.Pagination
		params.DateRange
		params.BlockRange
	}

	InternalTransactionsOptions struct {
		params.Pagination
		WithZeroValue           *bool `json:"withZeroValue,omitempty"`
		WithExternalTransaction *bool `json:"withExternalTransaction,omitempty"`
	}

	TransactionsByAccountOptions struct {
		params.Transaction
		params.DateRange
		params.BlockRange
		Relation enum.Relation `json:"relation,omitempty"`
	}
)

type (
	blockRequest struct {
		Block string `json:"block"`
	}

	accountRequest struct {
		AccountAddress string `json:"accountAddress"`
	}

	addressRequest struct {
		Address string `json:"address"`
	}

	internalTransactionsRequest struct {
		AccountAddress string `json:"accountAddress"`
		*InternalTransactionsOptions
	}

	transactionRequest struct {
		TransactionHash string `json:"transactionHash"`
		*params.Transaction
	}

	accountTransactionsRequest struct {
		AccountAddress string `json:"accountAddress"`
		*TransactionsByAccountOptions
	}

	transactionsByHashesRequest struct {
		TransactionHashes []string `json:"transactionHashes,omitempty"`
		*params.Transaction
	}

	blockTransactionsRequest struct {
		Block string `json:"block"`
		*params.Transaction
	}

	searchEventsRequest struct {
		ContractAddress string         `json:"contractAddress"`
		EventNames      []string       `json:"eventNames,omitempty"`
		ABI             map[string]any `json:"abi,omitempty"`
		*RangeOptions
	}
)
