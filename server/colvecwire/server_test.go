package colvecwire

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHandleConn_EvalRoundTrip(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv, cli := net.Pipe()
	defer func() { _ = cli.Close() }()
	go handleConn(ctx, srv, ServerConfig{BatchRows: 1})

	require.NoError(t, WriteFrame(cli, EvalRequest{ID: 1, Expr: "flatten([[1], [2]])"}))

	var resp EvalResponse
	require.NoError(t, ReadFrame(cli, &resp))
	require.Equal(t, uint64(1), resp.ID)
	require.Empty(t, resp.Error)
	// JSON numbers come back as float64
	require.Equal(t, []any{[]any{float64(1), float64(2)}}, resp.Result.Rows[0])
}

func TestHandleConn_EvalError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv, cli := net.Pipe()
	defer func() { _ = cli.Close() }()
	go handleConn(ctx, srv, ServerConfig{BatchRows: 1})

	require.NoError(t, WriteFrame(cli, EvalRequest{ID: 9, Expr: "flatten(1)"}))

	var resp EvalResponse
	require.NoError(t, ReadFrame(cli, &resp))
	require.Equal(t, uint64(9), resp.ID)
	require.Nil(t, resp.Result)
	require.Contains(t, resp.Error, "unsupported type")
}

func TestHandleConn_BatchRows(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv, cli := net.Pipe()
	defer func() { _ = cli.Close() }()
	go handleConn(ctx, srv, ServerConfig{BatchRows: 1})

	require.NoError(t, WriteFrame(cli, EvalRequest{ID: 2, Expr: "[1]", Rows: 3}))

	var resp EvalResponse
	require.NoError(t, ReadFrame(cli, &resp))
	require.Empty(t, resp.Error)
	require.Len(t, resp.Result.Rows, 3)
}
