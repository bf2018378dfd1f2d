package nft

import (
	"context"
	"encoding/json"

	"github.com/fystack/nodit-kaia/pkg/common/params"
)

type NftAPI interface {
	GetNftContractMetadataByContracts(ctx context.Context, contractAddresses []string) (json.RawMessage, error)
	GetNftContractsByAccount(ctx context.Context, accountAddress string, opts *ContractsByAccountOptions) (json.RawMessage, error)
	GetNftHoldersByContract(ctx context.Context, contractAddress string, opts *params.Pagination) (json.RawMessage, error)
	GetNftHoldersByTokenID(ctx context.Context, contractAddress, tokenID string, opts *params.Pagination) (json.RawMessage, error)
	GetNftMetadataByContract(ctx context.Context, contractAddress string, opts *params.Pagination) (json.RawMessage, error)
	GetNftMetadataByTokenIDs(ctx context.Context, tokens []params.NftToken) (json.RawMessage, error)
	GetNftTransfersByAccount(ctx context.Context, accountAddress string, opts *TransfersByAccountOptions) (json.RawMessage, error)
	GetNftTransfersByContract(ctx context.Context, contractAddress string, opts *params.NftTransfer) (json.RawMessage, error)
	GetNftTransfersByTokenID(ctx context.Context, contractAddress, tokenID string, opts *params.NftTransfer) (json.RawMessage, error)
	GetNftTransfersWithinRange(ctx context.Context, opts *params.NftTransfer) (json.RawMessage, error)
	GetNftsOwnedByAccount(ctx context.Context, accountAddress string, opts *OwnedByAccountOptions) (json.RawMessage, error)
	SearchNftContractMetadataByKeyword(ctx context.Context, keyword string, opts *params.Pagination) (json.RawMessage, error)
	SyncNftMetadata(ctx context.Context, tokens []params.NftToken) (json.RawMessage, error)
}

var _ NftAPI = (*Service)(nil)
