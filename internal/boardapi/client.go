// Package boardapi is the typed data-access façade over the request gateway:
// jobs, applications, categories and profiles. Every call is a direct
// pass-through; gateway failures propagate unchanged to the caller, which
// owns its own handling.
package boardapi

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/careerhub/jobboard-client/internal/core/ports"
)

type Client struct {
	gw ports.Gateway
}

func New(gw ports.Gateway) *Client {
	return &Client{gw: gw}
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	raw, err := c.gw.Do(ctx, ports.Request{Path: path})
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

func (c *Client) send(ctx context.Context, method, path string, body, out any) error {
	raw, err := c.gw.Do(ctx, ports.Request{Path: path, Method: method, Body: body})
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(raw, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	_, err := c.gw.Do(ctx, ports.Request{Path: path, Method: http.MethodDelete})
	return err
}
