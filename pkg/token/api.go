package token

import (
	"context"
	"encoding/json"

	"github.com/fystack/nodit-kaia/pkg/common/params"
)

type TokenAPI interface {
	GetNativeBalanceByAccount(ctx context.Context, accountAddress string) (json.RawMessage, error)
	GetTokenPricesByContracts(ctx context.Context, contractAddresses []string, currency string) (json.RawMessage, error)
	GetTokenTransfersByAccount(ctx context.Context, accountAddress string, opts *TransfersByAccountOptions) (json.RawMessage, error)
	GetTokenAllowance(ctx context.Context, contractAddress, ownerAddress, spenderAddress string) (json.RawMessage, error)
	GetTokenContractMetadataByContracts(ctx context.Context, contractAddresses []string) (json.RawMessage, error)
	GetTokenHoldersByContract(ctx context.Context, contractAddress string, opts *params.Pagination) (json.RawMessage, error)
	GetTokenTransfersByContract(ctx context.Context, contractAddress string, opts *params.TokenTransfer) (json.RawMessage, error)
	GetTokenTransfersWithinRange(ctx context.Context, opts *params.TokenTransfer) (json.RawMessage, error)
	GetTokensOwnedByAccount(ctx context.Context, accountAddress string, opts *OwnedByAccountOptions) (json.RawMessage, error)
	SearchTokenContractMetadataByKeyword(ctx context.Context, keyword string, opts *params.Pagination) (json.RawMessage, error)
}

var _ TokenAPI = (*Service)(nil)
