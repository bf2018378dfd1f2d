package enum

type Network string
type WebhookEventType string
type WebhookHistoryStatus string
type Relation string

const (
	NetworkMainnet Network = "mainnet"
	NetworkKairos  Network = "kairos"
	NetworkTestnet Network = "testnet"
)

// Webhook event types, sent verbatim as eventType.
const (
	EventAddressActivity       WebhookEventType = "ADDRESS_ACTIVITY"
	EventMinedTransaction      WebhookEventType = "MINED_TRANSACTION"
	EventSuccessfulTransaction WebhookEventType = "SUCCESSFUL_TRANSACTION"
	EventFailedTransaction     WebhookEventType = "FAILED_TRANSACTION"
	EventTokenTransfer         WebhookEventType = "TOKEN_TRANSFER"
	EventBelowThresholdBalance WebhookEventType = "BELOW_THRESHOLD_BALANCE"
	EventBlockPeriod           WebhookEventType = "BLOCK_PERIOD"
	EventBlockListCaller       WebhookEventType = "BLOCK_LIST_CALLER"
	EventAllowListCaller       WebhookEventType = "ALLOW_LIST_CALLER"
	EventLog                   WebhookEventType = "LOG"
)

const (
	WebhookHistorySuccess WebhookHistoryStatus = "SUCCESS"
	WebhookHistoryFailed  WebhookHistoryStatus = "FAILED"
)

const (
	RelationBoth     Relation = "both"
	RelationFrom     Relation = "from"
	RelationTo       Relation = "to"
	RelationInternal Relation = "internal"
)

var webhookEventTypes = map[WebhookEventType]struct{}{
	EventAddressActivity:       {},
	EventMinedTransaction:      {},
	EventSuccessfulTransaction: {},
	EventFailedTransaction:     {},
	EventTokenTransfer:         {},
	EventBelowThresholdBalance: {},
	EventBlockPeriod:           {},
	EventBlockListCaller:       {},
	EventAllowListCaller:       {},
	EventLog:                   {},
}

func (e WebhookEventType) IsValid() bool {
	_, ok := webhookEventTypes[e]
	return ok
}

func (n Network) String() string { return string(n) }
