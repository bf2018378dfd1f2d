package token

import (
	"github.com/fystack/nodit-kaia/pkg/common/enum"
	"github.com/fystack/nodit-kaia/pkg/common/params"
)

type (
	TransfersByAccountOptions struct {
		params.TokenTransfer
		Relation          enum.Relation `json:"relation,omitempty"`
		ContractAddresses []string      `json:"contractAddresses,omitempty"`
	}

	OwnedByAccountOptions struct {
		params.Pagination
		ContractAddress string `json:"contractAddress,omitempty"`
	}
)

type (
	accountRequest struct {
		AccountAddress string `json:"accountAddress"`
	}

	contractsRequest struct {
		ContractAddresses []string `json:"contractAddresses,omitempty"`
	}

	pricesRequest struct {
		ContractAddresses []string `json:"contractAddresses,omitempty"`
		Currency          string   `json:"currency,omitempty"`
	}

	allowanceRequest struct {
		ContractAddress string `json:"contractAddress"`
		OwnerAddress    string `json:"ownerAddress"`
		SpenderAddress  string `json:"spenderAddress"`
	}

	accountTransfersRequest struct {
		AccountAddress string `json:"accountAddress"`
		*TransfersByAccountOptions
	}

	contractPageRequest struct {
		ContractAddress string `json:"contractAddress"`
		*params.Pagination
	}

	contractTransfersRequest struct {
		ContractAddress string `json:"contractAddress"`
		*params.TokenTransfer
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
