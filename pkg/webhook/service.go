package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"strconv"

	"github.com/fystack/nodit-kaia/pkg/common/enum"
	"github.com/fystack/nodit-kaia/pkg/rpc"
)

const (
	pathWebhooks = "/webhooks"
	pathHistory  = "/webhooks/history"
)

var (
	ErrMissingWebhookID      = errors.New("webhook id is required")
	ErrMissingSubscriptionID = errors.New("subscription id is required")
)

type WebhookAPI interface {
	GetWebhooks(ctx context.Context, opts *ListOptions) (json.RawMessage, error)
	CreateWebhook(ctx context.Context, eventType enum.WebhookEventType, webhookURL, description string, condition Condition) (json.RawMessage, error)
	CreateAddressActivityWebhook(ctx context.Context, webhookURL string, addresses []string, description string) (json.RawMessage, error)
	UpdateWebhook(ctx context.Context, id string, updates UpdateRequest) (json.RawMessage, error)
	DeleteWebhook(ctx context.Context, id string) (json.RawMessage, error)
	GetWebhookHistory(ctx context.Context, p HistoryParams) (json.RawMessage, error)
}

var _ WebhookAPI = (*Service)(nil)

// Service manages webhook subscriptions. It never receives deliveries itself.
type Service struct {
	client rpc.Requester
}

func NewService(client rpc.Requester) *Service {
	return &Service{client: client}
}

func (s *Service) GetWebhooks(ctx context.Context, opts *ListOptions) (json.RawMessage, error) {
	q := url.Values{}
	if opts != nil {
		setInt(q, "page", opts.Page)
		setInt(q, "rpp", opts.RPP)
		if opts.SubscriptionID != "" {
			q.Set("subscriptionId", opts.SubscriptionID)
		}
	}
	return s.client.Get(ctx, pathWebhooks, q)
}

func (s *Service) CreateWebhook(
	ctx context.Context,
	eventType enum.WebhookEventType,
	webhookURL, description string,
	condition Condition,
) (json.RawMessage, error) {
	return s.client.Post(ctx, pathWebhooks, CreateRequest{
		EventType:    eventType,
		Description:  description,
		Notification: Notification{WebhookURL: webhookURL},
		Condition:    condition,
	})
}

// CreateAddressActivityWebhook subscribes webhookURL to any activity on addresses.
func (s *Service) CreateAddressActivityWebhook(ctx context.Context, webhookURL string, addresses []string, description string) (json.RawMessage, error) {
	return s.CreateWebhook(ctx, enum.EventAddressActivity, webhookURL, description, Condition{Addresses: addresses})
}

func (s *Service) UpdateWebhook(ctx context.Context, id string, updates UpdateRequest) (json.RawMessage, error) {
	if id == "" {
		return nil, ErrMissingWebhookID
	}
	return s.client.Patch(ctx, webhookPath(id), updates)
}

func (s *Service) DeleteWebhook(ctx context.Context, id string) (json.RawMessage, error) {
	if id == "" {
		return nil, ErrMissingWebhookID
	}
	return s.client.Delete(ctx, webhookPath(id))
}

// GetWebhookHistory lists past deliveries of one subscription.
func (s *Service) GetWebhookHistory(ctx context.Context, p HistoryParams) (json.RawMessage, error) {
	if p.SubscriptionID == "" {
		return nil, ErrMissingSubscriptionID
	}

	q := url.Values{}
	q.Set("subscriptionId", p.SubscriptionID)
	setInt(q, "page", p.Page)
	setInt(q, "rpp", p.RPP)
	if p.Status != "" {
		q.Set("status", string(p.Status))
	}
	if !p.StartAt.IsZero() {
		q.Set("startAt", p.StartAt.String())
	}
	if !p.EndAt.IsZero() {
		q.Set("endAt", p.EndAt.String())
	}
	return s.client.Get(ctx, pathHistory, q)
}

func webhookPath(id string) string {
	return pathWebhooks + "/" + url.PathEscape(id)
}

func setInt(q url.Values, key string, v *int) {
	if v != nil {
		q.Set(key, strconv.Itoa(*v))
	}
}
