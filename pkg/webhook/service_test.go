package webhook

import (
	"context"
	"testing"
	"time"

	"github.com/fystack/nodit-kaia/pkg/common/enum"
	"github.com/fystack/nodit-kaia/pkg/common/ptr"
	"github.com/fystack/nodit-kaia/pkg/rpc/rpctest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAddressActivityWebhookMatchesCreateWebhook(t *testing.T) {
	ctx := context.Background()
	rec := rpctest.NewRecorder()
	s := NewService(rec)
	addrs := []string{"0xa1", "0xa2"}

	_, err := s.CreateAddressActivityWebhook(ctx, "https://hook.example.com", addrs, "watch")
	require.NoError(t, err)
	_, err = s.CreateWebhook(ctx, enum.EventAddressActivity, "https://hook.example.com", "watch", Condition{Addresses: addrs})
	require.NoError(t, err)

	calls := rec.Calls()
	require.Len(t, calls, 2)
	assert.Equal(t, calls[0], calls[1])
	assert.Equal(t, "POST", calls[0].Method)
	assert.Equal(t, "/webhooks", calls[0].Path)
	assert.JSONEq(t, `{
		"eventType":"ADDRESS_ACTIVITY",
		"description":"watch",
		"notification":{"webhookUrl":"https://hook.example.com"},
		"condition":{"addresses":["0xa1","0xa2"]}
	}`, string(calls[0].Body))
}

func TestCreateWebhookThresholdCondition(t *testing.T) {
	rec := rpctest.NewRecorder()
	threshold := decimal.RequireFromString("1000000000000000000")

	_, err := NewService(rec).CreateWebhook(context.Background(), enum.EventBelowThresholdBalance, "https://h", "low balance", Condition{
		Addresses:             []string{"0xa"},
		BelowThresholdBalance: &threshold,
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"eventType":"BELOW_THRESHOLD_BALANCE",
		"description":"low balance",
		"notification":{"webhookUrl":"https://h"},
		"condition":{"addresses":["0xa"],"belowThresholdBalance":"1000000000000000000"}
	}`, string(rec.Last().Body))
}

func TestUpdateAndDeleteRequireID(t *testing.T) {
	rec := rpctest.NewRecorder()
	s := NewService(rec)

	_, err := s.UpdateWebhook(context.Background(), "", UpdateRequest{IsActive: ptr.New(false)})
	assert.ErrorIs(t, err, ErrMissingWebhookID)

	_, err = s.DeleteWebhook(context.Background(), "")
	assert.ErrorIs(t, err, ErrMissingWebhookID)

	assert.Empty(t, rec.Calls())
}

func TestUpdateWebhook(t *testing.T) {
	rec := rpctest.NewRecorder()
	s := NewService(rec)

	_, err := s.UpdateWebhook(context.Background(), "wh-1", UpdateRequest{
		Description: ptr.New("renamed"),
		IsActive:    ptr.New(false),
	})
	require.NoError(t, err)
	assert.Equal(t, "PATCH", rec.Last().Method)
	assert.Equal(t, "/webhooks/wh-1", rec.Last().Path)
	assert.JSONEq(t, `{"description":"renamed","isActive":false}`, string(rec.Last().Body))

	_, err = s.DeleteWebhook(context.Background(), "wh/2")
	require.NoError(t, err)
	assert.Equal(t, "DELETE", rec.Last().Method)
	assert.Equal(t, "/webhooks/wh%2F2", rec.Last().Path)
}

func TestGetWebhooks(t *testing.T) {
	rec := rpctest.NewRecorder()
	s := NewService(rec)

	_, err := s.GetWebhooks(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "GET", rec.Last().Method)
	assert.Equal(t, "/webhooks", rec.Last().Path)
	assert.Empty(t, rec.Last().Query)

	_, err = s.GetWebhooks(context.Background(), &ListOptions{Page: ptr.New(2), RPP: ptr.New(50), SubscriptionID: "sub"})
	require.NoError(t, err)
	q := rec.Last().Query
	assert.Equal(t, "2", q.Get("page"))
	assert.Equal(t, "50", q.Get("rpp"))
	assert.Equal(t, "sub", q.Get("subscriptionId"))
}

func TestGetWebhookHistory(t *testing.T) {
	rec := rpctest.NewRecorder()
	s := NewService(rec)

	t.Run("requires subscription id", func(t *testing.T) {
		_, err := s.GetWebhookHistory(context.Background(), HistoryParams{Page: ptr.New(1)})
		assert.ErrorIs(t, err, ErrMissingSubscriptionID)
		assert.Empty(t, rec.Calls())
	})

	t.Run("normalizes dates", func(t *testing.T) {
		start := time.Date(2024, 5, 1, 19, 0, 0, 0, time.FixedZone("KST", 9*60*60))
		_, err := s.GetWebhookHistory(context.Background(), HistoryParams{
			SubscriptionID: "sub",
			RPP:            ptr.New(10),
			Status:         enum.WebhookHistorySuccess,
			StartAt:        At(start),
			EndAt:          RawTimestamp("2024-05-02"),
		})
		require.NoError(t, err)

		last := rec.Last()
		assert.Equal(t, "GET", last.Method)
		assert.Equal(t, "/webhooks/history", last.Path)
		assert.Equal(t, "sub", last.Query.Get("subscriptionId"))
		assert.Equal(t, "10", last.Query.Get("rpp"))
		assert.Equal(t, "SUCCESS", last.Query.Get("status"))
		assert.Equal(t, "2024-05-01T10:00:00.000Z", last.Query.Get("startAt"))
		assert.Equal(t, "2024-05-02", last.Query.Get("endAt"))
		assert.False(t, last.Query.Has("page"))
	})
}

func TestTimestamp(t *testing.T) {
	var zero Timestamp
	assert.True(t, zero.IsZero())
	assert.Equal(t, "", zero.String())

	ts := At(time.Date(2023, 1, 2, 3, 4, 5, 6_000_000, time.UTC))
	assert.False(t, ts.IsZero())
	assert.Equal(t, "2023-01-02T03:04:05.006Z", ts.String())

	assert.Equal(t, "yesterday", RawTimestamp("yesterday").String())
}
