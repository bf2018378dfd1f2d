package rpc

import (
	"encoding/json"
	"fmt"
)

const (
	JSONRPCVersion = "2.0"
	// RequestID is sent on every JSON-RPC call; calls are never batched so it never varies.
	RequestID = 1
)

// RPCRequest represents a JSON-RPC request
type RPCRequest struct {
	ID      any    `json:"id"`
	JSONRPC string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  any    `json:"params,omitempty"`
}

// RPCResponse represents a JSON-RPC response
type RPCResponse struct {
	ID      any             `json:"id"`
	JSONRPC string          `json:"jsonrpc"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *RPCError       `json:"error,omitempty"`
}

// RPCError represents a JSON-RPC error
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("RPC error %d: %s", e.Code, e.Message)
}

// HTTPError is returned when the remote service answered with a non-2xx status.
// Body holds the raw response body, which is not part of the message.
type HTTPError struct {
	StatusCode int
	Status     string
	Body       []byte
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP error! status: %d", e.StatusCode)
}

// DecodeResult unwraps the result of a raw JSON-RPC response into v.
// An error member in the envelope is returned as *RPCError.
func DecodeResult(raw json.RawMessage, v any) error {
	var resp RPCResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return fmt.Errorf("unmarshal RPC response: %w", err)
	}
	if resp.Error != nil {
		return resp.Error
	}
	if v == nil || len(resp.Result) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.Result, v); err != nil {
		return fmt.Errorf("unmarshal RPC result: %w", err)
	}
	return nil
}
