package token

import (
	"context"
	"encoding/json"

	"github.com/fystack/nodit-kaia/pkg/common/params"
	"github.com/fystack/nodit-kaia/pkg/rpc"
)

const (
	pathNativeBalanceByAccount      = "/native/getNativeBalanceByAccount"
	pathPricesByContracts           = "/token/getTokenPricesByContracts"
	pathTransfersByAccount          = "/token/getTokenTransfersByAccount"
	pathAllowance                   = "/token/getTokenAllowance"
	pathContractMetadataByContracts = "/token/getTokenContractMetadataByContracts"
	pathHoldersByContract           = "/token/getTokenHoldersByContract"
	pathTransfersByContract         = "/token/getTokenTransfersByContract"
	pathTransfersWithinRange        = "/token/getTokenTransfersWithinRange"
	pathOwnedByAccount              = "/token/getTokensOwnedByAccount"
	pathSearchContractMetadata      = "/token/searchTokenContractMetadataByKeyword"
)

// Service groups the fungible token and native balance endpoints.
type Service struct {
	client rpc.Requester
}

func NewService(client rpc.Requester) *Service {
	return &Service{client: client}
}

func (s *Service) GetNativeBalanceByAccount(ctx context.Context, accountAddress string) (json.RawMessage, error) {
	return s.client.Post(ctx, pathNativeBalanceByAccount, accountRequest{AccountAddress: accountAddress})
}

// GetTokenPricesByContracts leaves currency out of the request when it is empty.
func (s *Service) GetTokenPricesByContracts(ctx context.Context, contractAddresses []string, currency string) (json.RawMessage, error) {
	return s.client.Post(ctx, pathPricesByContracts, pricesRequest{ContractAddresses: contractAddresses, Currency: currency})
}

func (s *Service) GetTokenTransfersByAccount(ctx context.Context, accountAddress string, opts *TransfersByAccountOptions) (json.RawMessage, error) {
	return s.client.Post(ctx, pathTransfersByAccount, accountTransfersRequest{AccountAddress: accountAddress, TransfersByAccountOptions: opts})
}

func (s *Service) GetTokenAllowance(ctx context.Context, contractAddress, ownerAddress, spenderAddress string) (json.RawMessage, error) {
	return s.client.Post(ctx, pathAllowance, allowanceRequest{
		ContractAddress: contractAddress,
		OwnerAddress:    ownerAddress,
		SpenderAddress:  spenderAddress,
	})
}

func (s *Service) GetTokenContractMetadataByContracts(ctx context.Context, contractAddresses []string) (json.RawMessage, error) {
	return s.client.Post(ctx, pathContractMetadataByContracts, contractsRequest{ContractAddresses: contractAddresses})
}

func (s *Service) GetTokenHoldersByContract(ctx context.Context, contractAddress string, opts *params.Pagination) (json.RawMessage, error) {
	return s.client.Post(ctx, pathHoldersByContract, contractPageRequest{ContractAddress: contractAddress, Pagination: opts})
}

func (s *Service) GetTokenTransfersByContract(ctx context.Context, contractAddress string, opts *params.TokenTransfer) (json.RawMessage, error) {
	return s.client.Post(ctx, pathTransfersByContract, contractTransfersRequest{ContractAddress: contractAddress, TokenTransfer: opts})
}

func (s *Service) GetTokenTransfersWithinRange(ctx context.Context, opts *params.TokenTransfer) (json.RawMessage, error) {
	if opts == nil {
		opts = &params.TokenTransfer{}
	}
	return s.client.Post(ctx, pathTransfersWithinRange, opts)
}

func (s *Service) GetTokensOwnedByAccount(ctx context.Context, accountAddress string, opts *OwnedByAccountOptions) (json.RawMessage, error) {
	return s.client.Post(ctx, pathOwnedByAccount, ownedRequest{AccountAddress: accountAddress, OwnedByAccountOptions: opts})
}

func (s *Service) SearchTokenContractMetadataByKeyword(ctx context.Context, keyword string, opts *params.Pagination) (json.RawMessage, error) {
	return s.client.Post(ctx, pathSearchContractMetadata, keywordRequest{Keyword: keyword, Pagination: opts})
}
