package nft

import (
	"context"
	"encoding/json"

	"github.com/fystack/nodit-kaia/pkg/common/params"
	"github.com/fystack/nodit-kaia/pkg/rpc"
)

const (
	pathContractMetadataByContracts = "/nft/getNftContractMetadataByContracts"
	pathContractsByAccount          = "/nft/getNftContractsByAccount"
	pathHoldersByContract           = "/nft/getNftHoldersByContract"
	pathHoldersByTokenID            = "/nft/getNftHoldersByTokenId"
	pathMetadataByContract          = "/nft/getNftMetadataByContract"
	pathMetadataByTokenIDs          = "/nft/getNftMetadataByTokenIds"
	pathTransfersByAccount          = "/nft/getNftTransfersByAccount"
	pathTransfersByContract         = "/nft/getNftTransfersByContract"
	pathTransfersByTokenID          = "/nft/getNftTransfersByTokenId"
	pathTransfersWithinRange        = "/nft/getNftTransfersWithinRange"
	pathOwnedByAccount              = "/nft/getNftsOwnedByAccount"
	pathSearchContractMetadata      = "/nft/searchNftContractMetadataByKeyword"
	pathSyncMetadata                = "/nft/syncNftMetadata"
)

// Service groups the NFT endpoints of the indexing API.
type Service struct {
	client rpc.Requester
}

func NewService(client rpc.Requester) *Service {
	return &Service{client: client}
}

func (s *Service) GetNftContractMetadataByContracts(ctx context.Context, contractAddresses []string) (json.RawMessage, error) {
	return s.client.Post(ctx, pathContractMetadataByContracts, contractsRequest{ContractAddresses: contractAddresses})
}

func (s *Service) GetNftContractsByAccount(ctx context.Context, accountAddress string, opts *ContractsByAccountOptions) (json.RawMessage, error) {
	return s.client.Post(ctx, pathContractsByAccount, accountContractsRequest{AccountAddress: accountAddress, ContractsByAccountOptions: opts})
}

func (s *Service) GetNftHoldersByContract(ctx context.Context, contractAddress string, opts *params.Pagination) (json.RawMessage, error) {
	return s.client.Post(ctx, pathHoldersByContract, contractPageRequest{ContractAddress: contractAddress, Pagination: opts})
}

func (s *Service) GetNftHoldersByTokenID(ctx context.Context, contractAddress, tokenID string, opts *params.Pagination) (json.RawMessage, error) {
	return s.client.Post(ctx, pathHoldersByTokenID, tokenPageRequest{ContractAddress: contractAddress, TokenID: tokenID, Pagination: opts})
}

func (s *Service) GetNftMetadataByContract(ctx context.Context, contractAddress string, opts *params.Pagination) (json.RawMessage, error) {
	return s.client.Post(ctx, pathMetadataByContract, contractPageRequest{ContractAddress: contractAddress, Pagination: opts})
}

func (s *Service) GetNftMetadataByTokenIDs(ctx context.Context, tokens []params.NftToken) (json.RawMessage, error) {
	return s.client.Post(ctx, pathMetadataByTokenIDs, tokensRequest{Tokens: tokens})
}

func (s *Service) GetNftTransfersByAccount(ctx context.Context, accountAddress string, opts *TransfersByAccountOptions) (json.RawMessage, error) {
	return s.client.Post(ctx, pathTransfersByAccount, accountTransfersRequest{AccountAddress: accountAddress, TransfersByAccountOptions: opts})
}

func (s *Service) GetNftTransfersByContract(ctx context.Context, contractAddress string, opts *params.NftTransfer) (json.RawMessage, error) {
	return s.client.Post(ctx, pathTransfersByContract, contractTransfersRequest{ContractAddress: contractAddress, NftTransfer: opts})
}

func (s *Service) GetNftTransfersByTokenID(ctx context.Context, contractAddress, tokenID string, opts *params.NftTransfer) (json.RawMessage, error) {
	return s.client.Post(ctx, pathTransfersByTokenID, tokenTransfersRequest{ContractAddress: contractAddress, TokenID: tokenID, NftTransfer: opts})
}

// GetNftTransfersWithinRange sends {} when opts is nil.
func (s *Service) GetNftTransfersWithinRange(ctx context.Context, opts *params.NftTransfer) (json.RawMessage, error) {
	if opts == nil {
		opts = &params.NftTransfer{}
	}
	return s.client.Post(ctx, pathTransfersWithinRange, opts)
}

func (s *Service) GetNftsOwnedByAccount(ctx context.Context, accountAddress string, opts *OwnedByAccountOptions) (json.RawMessage, error) {
	return s.client.Post(ctx, pathOwnedByAccount, ownedRequest{AccountAddress: accountAddress, OwnedByAccountOptions: opts})
}

func (s *Service) SearchNftContractMetadataByKeyword(ctx context.Context, keyword string, opts *params.Pagination) (json.RawMessage, error) {
	return s.client.Post(ctx, pathSearchContractMetadata, keywordRequest{Keyword: keyword, Pagination: opts})
}

// SyncNftMetadata asks the indexer to refresh metadata for the given tokens.
func (s *Service) SyncNftMetadata(ctx context.Context, tokens []params.NftToken) (json.RawMessage, error) {
	return s.client.Post(ctx, pathSyncMetadata, tokensRequest{Tokens: tokens})
}
