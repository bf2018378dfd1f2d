// Package rpctest provides an in-memory rpc.Requester and rpc.Caller that
// record what an endpoint group would have sent.
package rpctest

import (
	"context"
	"encoding/json"
	"net/url"
	"sync"
)

// Call is one recorded request. Body is the JSON the payload marshals to.
type Call struct {
	Method string
	Path   string
	Query  url.Values
	Body   json.RawMessage
	// RPCMethod and Params are set for JSON-RPC calls only.
	RPCMethod string
	Params    json.RawMessage
}

type Recorder struct {
	mu    sync.Mutex
	calls []Call

	Response json.RawMessage
	Err      error
}

func NewRecorder() *Recorder {
	return &Recorder{Response: json.RawMessage(`{}`)}
}

func (r *Recorder) Post(_ context.Context, path string, payload any) (json.RawMessage, error) {
	return r.record(Call{Method: "POST", Path: path, Body: mustMarshal(payload)})
}

func (r *Recorder) Get(_ context.Context, path string, query url.Values) (json.RawMessage, error) {
	return r.record(Call{Method: "GET", Path: path, Query: query})
}

func (r *Recorder) Patch(_ context.Context, path string, payload any) (json.RawMessage, error) {
	return r.record(Call{Method: "PATCH", Path: path, Body: mustMarshal(payload)})
}

func (r *Recorder) Delete(_ context.Context, path string) (json.RawMessage, error) {
	return r.record(Call{Method: "DELETE", Path: path})
}

func (r *Recorder) CallRPC(_ context.Context, method string, params any) (json.RawMessage, error) {
	c := Call{Method: "POST", RPCMethod: method}
	if params != nil {
		c.Params = mustMarshal(params)
	}
	return r.record(c)
}

// Calls returns a copy of everything recorded so far.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Call(nil), r.calls...)
}

// Last returns the most recent call. It panics if nothing was recorded.
func (r *Recorder) Last() Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls[len(r.calls)-1]
}

func (r *Recorder) record(c Call) (json.RawMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, c)
	if r.Err != nil {
		return nil, r.Err
	}
	return r.Response, nil
}

func mustMarshal(v any) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}
