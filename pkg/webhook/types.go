package webhook

import (
	"time"

	"github.com/fystack/nodit-kaia/pkg/common/enum"
	"github.com/shopspring/decimal"
)

type Notification struct {
	WebhookURL string `json:"webhookUrl"`
}

// Condition selects what a subscription fires on. Which fields apply depends
// on the event type; unset fields are left out of the request.
type Condition struct {
	Addresses             []string         `json:"addresses,omitempty"`
	ContractAddress       string           `json:"contractAddress,omitempty"`
	BelowThresholdBalance *decimal.Decimal `json:"belowThresholdBalance,omitempty"`
	AllowList             []string         `json:"allowList,omitempty"`
	BlockList             []string         `json:"blockList,omitempty"`
	Topics                []string         `json:"topics,omitempty"`
	Period                *int             `json:"period,omitempty"`
}

type CreateRequest struct {
	EventType    enum.WebhookEventType `json:"eventType"`
	Description  string                `json:"description"`
	Notification Notification          `json:"notification"`
	Condition    Condition             `json:"condition"`
}

type UpdateRequest struct {
	Notification *Notification `json:"notification,omitempty"`
	Description  *string       `json:"description,omitempty"`
	IsActive     *bool         `json:"isActive,omitempty"`
	Condition    *Condition    `json:"condition,omitempty"`
}

type ListOptions struct {
	Page           *int
	RPP            *int
	SubscriptionID string
}

type HistoryParams struct {
	SubscriptionID string
	Page           *int
	RPP            *int
	Status         enum.WebhookHistoryStatus
	StartAt        Timestamp
	EndAt          Timestamp
}

// isoLayout matches the millisecond UTC form the API produces, e.g. 2024-05-01T10:00:00.000Z.
const isoLayout = "2006-01-02T15:04:05.000Z07:00"

// Timestamp is a history bound given either as a time or as a pre-formatted string.
// The zero value means unset.
type Timestamp struct {
	t   time.Time
	raw string
}

// At wraps a time; it is sent as ISO-8601 in UTC with milliseconds.
func At(t time.Time) Timestamp {
	return Timestamp{t: t}
}

// RawTimestamp wraps a string that is sent exactly as given.
func RawTimestamp(s string) Timestamp {
	return Timestamp{raw: s}
}

func (ts Timestamp) IsZero() bool {
	return ts.raw == "" && ts.t.IsZero()
}

func (ts Timestamp) String() string {
	if ts.raw != "" {
		return ts.raw
	}
	if ts.t.IsZero() {
		return ""
	}
	return ts.t.UTC().Format(isoLayout)
}
