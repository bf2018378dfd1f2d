package nft

import (
	"github.com/fystack/nodit-kaia/pkg/common/enum"
	"github.com/fystack/nodit-kaia/pkg/common/params"
)

type (
	ContractsByAccountOptions struct {
		params.Pagination
		ContractAddresses []string `json:"contractAddresses,omitempty"`
	}

	TransfersByAccountOptions struct {
		params.NftTransfer
		Relation          enum.Relation `json:"relation,omitempty"`
		ContractAddresses []string      `json:"contractAddresses,omitempty"`
	}

	OwnedByAccountOptions struct {
		params.Pagination
		ContractAddresses []string `json:"contractAddresses,omitempty"`
		WithMetadata      *bool    `json:"withMetadata,omitempty"`
	}
)

type (
	contractsRequest struct {
		ContractAddresses []string `json:"contractAddresses,omitempty"`
	}

	accountContractsRequest struct {
		AccountAddress string `json:"accountAddress"`
		*ContractsByAccountOptions
	}

	contractPageRequest struct {
		ContractAddress string `json:"contractAddress"`
		*params.Pagination
	}

	tokenPageRequest struct {
		ContractAddress string `json:"contractAddress"`
		TokenID         string `json:"tokenId"`
		*params.Pagination
	}

	tokensRequest struct {
		Tokens []params.NftToken `json:"tokens,omitempty"`
	}

	accountTransfersRequest struct {
		AccountAddress string `json:"accountAddress"`
		*TransfersByAccountOptions
	}

	contractTransfersRequest struct {
		ContractAddress string `json:"contractAddress"`
		*params.NftTransfer
	}

	tokenTransfersRequest struct {
		ContractAddress string `json:"contractAddress"`
		TokenID         string `json:"tokenId"`
		*params.NftTransfer
	}

	ownedRequest struct {
		AccountAddress string `json:"accountAddress"`
		*OwnedByAccountOptions
	}

	keywordRequest struct {
		Keyword string `json:"keyword"`
		*params.Pagination
	}
)
