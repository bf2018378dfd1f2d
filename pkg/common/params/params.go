// Package params holds the option fragments shared by the indexing API endpoints.
// A nil pointer or empty string means "not set" and the key is left out of the request.
package params

type Pagination struct {
	Page      *int   `json:"page,omitempty"`
	RPP       *int   `json:"rpp,omitempty"`
	Cursor    string `json:"cursor,omitempty"`
	WithCount *bool  `json:"withCount,omitempty"`
}

type DateRange struct {
	FromDate string `json:"fromDate,omitempty"`
	ToDate   string `json:"toDate,omitempty"`
}

type BlockRange struct {
	FromBlock string `json:"fromBlock,omitempty"`
	ToBlock   string `json:"toBlock,omitempty"`
}

type TokenTransfer struct {
	Pagination
	DateRange
	BlockRange
	WithZeroValue *bool `json:"withZeroValue,omitempty"`
	WithMetadata  *bool `json:"withMetadata,omitempty"`
}

type NftTransfer struct {
	Pagination
	DateRange
	BlockRange
	WithMetadata *bool `json:"withMetadata,omitempty"`
}

type Transaction struct {
	Pagination
	WithLogs   *bool `json:"withLogs,omitempty"`
	WithDecode *bool `json:"withDecode,omitempty"`
}

// NftToken identifies a single token of an NFT contract.
type NftToken struct {
	ContractAddress string `json:"contractAddress"`
	TokenID         string `json:"tokenId"`
}
