package statistics

import (
	"context"
	"encoding/json"

	"github.com/fystack/nodit-kaia/pkg/rpc"
)

const pathAccountStats = "/stats/getAccountStats"

type StatisticsAPI interface {
	GetAccountStats(ctx context.Context, address string) (json.RawMessage, error)
}

// Service serves the account statistics endpoint.
type Service struct {
	client rpc.Requester
}

var _ StatisticsAPI = (*Service)(nil)

func NewService(client rpc.Requester) *Service {
	return &Service{client: client}
}

type addressRequest struct {
	Address string `json:"address"`
}

func (s *Service) GetAccountStats(ctx context.Context, address string) (json.RawMessage, error) {
	return s.client.Post(ctx, pathAccountStats, addressRequest{Address: address})
}
