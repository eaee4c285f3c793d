package colvecwire

import (
	"context"
	"fmt"
	"log"
	"net"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/ndthuan92/colvec"
)

type ServerConfig struct {
	Addr string

	// BatchRows is the default batch size for requests that don't set one.
	BatchRows int

	Debug bool
}

func Run(sc ServerConfig) error {
	ln, err := net.Listen("tcp", sc.Addr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	defer func() { _ = ln.Close() }()

	log.Printf("colvec tcp server listening on %s", sc.Addr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		_ = ln.Close()
	}()

	for {
		conn, err := ln.Accept()
		if err != nil {
			select {
			case <-ctx.Done():
				return nil
			default:
			}
			log.Printf("accept: %v", err)
			continue
		}
		go handleConn(ctx, conn, sc)
	}
}

func handleConn(ctx context.Context, conn net.Conn, sc ServerConfig) {
	defer func() { _ = conn.Close() }()

	// No global deadline; a per-request deadline can be layered on later.
	_ = conn.SetDeadline(time.Time{})

	session := uuid.NewString()
	engine := colvec.New()
	if sc.Debug {
		log.Printf("session %s: connected from %s", session, conn.RemoteAddr())
	}

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		var req EvalRequest
		if err := ReadFrame(conn, &req); err != nil {
			// Client closed or bad frame.
			return
		}

		rows := req.Rows
		if rows <= 0 {
			rows = sc.BatchRows
		}

		res, err := engine.EvalBatch(req.Expr, rows)
		if err != nil {
			if sc.Debug {
				log.Printf("session %s: eval %q: %v", session, req.Expr, err)
			}
			_ = WriteFrame(conn, EvalResponse{
				ID:    req.ID,
				Error: err.Error(),
			})
			continue
		}

		_ = WriteFrame(conn, EvalResponse{
			ID:     req.ID,
			Result: res,
		})
	}
}
