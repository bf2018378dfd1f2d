package constant

const (
	ChainKaia = "kaia"

	DefaultBaseURL = "https://web3.nodit.io"

	KaiaMainnetNodeURL = "https://kaia-mainnet.nodit.io"
	KaiaKairosNodeURL  = "https://kaia-kairos.nodit.io"

	// BlockLatest is the block reference used when a node call is given none.
	BlockLatest = "latest"
)
