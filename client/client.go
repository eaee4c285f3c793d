// Package client is a synchronous TCP client for the colvec eval server.
package client

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ndthuan92/colvec/internal/expr"
	"github.com/ndthuan92/colvec/server/colvecwire"
)

// Client serializes requests over one connection; Eval is safe to call from
// multiple goroutines but calls run one at a time.
type Client struct {
	conn net.Conn
	mu   sync.Mutex
	id   atomic.Uint64

	// Optional per-request timeout (0 = no timeout).
	rwTimeout time.Duration
}

func Dial(addr string, timeout time.Duration) (*Client, error) {
	d := net.Dialer{Timeout: timeout}
	conn, err := d.Dial("tcp", addr)
	if err != nil {
		return nil, err
	}
	return &Client{conn: conn}, nil
}

// SetRWTimeout sets a per-Eval read/write deadline, so a dead server can't
// hang the caller forever.
func (c *Client) SetRWTimeout(d time.Duration) {
	if c == nil {
		return
	}
	c.rwTimeout = d
}

func (c *Client) Close() error {
	if c == nil || c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// Eval evaluates one expression as a single-row batch.
func (c *Client) Eval(input string) (*expr.Result, error) {
	return c.EvalRows(context.Background(), input, 0)
}

// EvalRows evaluates one expression with an explicit batch row count
// (0 = server default).
func (c *Client) EvalRows(ctx context.Context, input string, rows int) (*expr.Result, error) {
	if c == nil || c.conn == nil {
		return nil, fmt.Errorf("client: nil client")
	}

	req := colvecwire.EvalRequest{ID: c.id.Add(1), Expr: input, Rows: rows}

	c.mu.Lock()
	defer c.mu.Unlock()

	resp, err := c.do(ctx, req)
	if err != nil {
		return nil, err
	}
	if resp.ID != req.ID {
		return nil, fmt.Errorf("client: response id mismatch: got=%d want=%d", resp.ID, req.ID)
	}
	if resp.Error != "" {
		return nil, errors.New(resp.Error)
	}
	return resp.Result, nil
}

// do runs one framed request/response exchange under the caller's lock.
func (c *Client) do(ctx context.Context, req colvecwire.EvalRequest) (*colvecwire.EvalResponse, error) {
	if err := c.applyDeadline(ctx); err != nil {
		return nil, err
	}
	defer func() {
		// Clear deadline after request so an idle connection doesn't expire.
		_ = c.conn.SetDeadline(time.Time{})
	}()

	if err := colvecwire.WriteFrame(c.conn, req); err != nil {
		return nil, err
	}
	var resp colvecwire.EvalResponse
	if err := colvecwire.ReadFrame(c.conn, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) applyDeadline(ctx context.Context) error {
	// Prefer context deadline if present; otherwise use rwTimeout.
	if dl, ok := ctx.Deadline(); ok {
		return c.conn.SetDeadline(dl)
	}
	if c.rwTimeout > 0 {
		return c.conn.SetDeadline(time.Now().Add(c.rwTimeout))
	}
	return nil
}
