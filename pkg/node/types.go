package node

// CallMsg is the transaction object of kaia_call and kaia_estimateGas.
// Quantities are 0x-prefixed hex strings.
type CallMsg struct {
	From     string `json:"from,omitempty"`
	To       string `json:"to,omitempty"`
	Gas      string `json:"gas,omitempty"`
	GasPrice string `json:"gasPrice,omitempty"`
	Value    string `json:"value,omitempty"`
	Data     string `json:"data,omitempty"`
}

// FilterQuery is the filter object of kaia_getLogs. A topic position may be
// nil, a single topic, or a list of alternatives.
type FilterQuery struct {
	FromBlock string   `json:"fromBlock,omitempty"`
	ToBlock   string   `json:"toBlock,omitempty"`
	BlockHash string   `json:"blockHash,omitempty"`
	Address   []string `json:"address,omitempty"`
	Topics    []any    `json:"topics,omitempty"`
}
