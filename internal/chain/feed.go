package chain

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"time"

	"github.com/hsejin314/eos-zmq-plugin/internal/clock"
	"github.com/hsejin314/eos-zmq-plugin/internal/model"
	"go.uber.org/zap"
)

const (
	feedMaxLineBytes     = 16 << 20
	feedReconnectBackoff = 3 * time.Second
)

const (
	envelopeAppliedTransaction = "applied_transaction"
	envelopeAcceptedBlock      = "accepted_block"
	envelopeIrreversibleBlock  = "irreversible_block"
)

type feedEnvelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// Feed reads newline-delimited JSON callback envelopes from the node and
// invokes the registered handlers on a single goroutine, preserving the
// node's synchronous callback ordering. It implements the three producer
// interfaces consumed by the streamer.
type Feed struct {
	logger *zap.Logger
	reader io.Reader
	dial   func(ctx context.Context) (io.ReadCloser, error)
	sleep  func(context.Context, time.Duration) error

	onTransactionApplied func(ctx context.Context, trace *model.TransactionTrace) error
	onBlockAccepted      func(ctx context.Context, block *model.AcceptedBlock) error
	onIrreversibleBlock  func(ctx context.Context, block *model.IrreversibleBlock) error
}

// NewFeed builds a feed over an already open byte stream, typically the
// sidecar's stdin when the node spawns it directly.
func NewFeed(r io.Reader, logger *zap.Logger) *Feed {
	return &Feed{
		logger: logger.Named("feed"),
		reader: r,
		sleep:  clock.Sleep,
	}
}

// NewDialFeed builds a feed that connects to the node's callback stream
// over TCP and reconnects with a fixed backoff when the connection drops.
func NewDialFeed(addr string, logger *zap.Logger) *Feed {
	return &Feed{
		logger: logger.Named("feed").With(zap.String("addr", addr)),
		sleep:  clock.Sleep,
		dial: func(ctx context.Context) (io.ReadCloser, error) {
			var d net.Dialer
			conn, err := d.DialContext(ctx, "tcp", addr)
			if err != nil {
				return nil, fmt.Errorf("dial feed %s: %w", addr, err)
			}
			return conn, nil
		},
	}
}

// OnTransactionApplied registers the applied-transaction handler.
func (f *Feed) OnTransactionApplied(fn func(ctx context.Context, trace *model.TransactionTrace) error) {
	f.onTransactionApplied = fn
}

// OnBlockAccepted registers the block-accepted handler.
func (f *Feed) OnBlockAccepted(fn func(ctx context.Context, block *model.AcceptedBlock) error) {
	f.onBlockAccepted = fn
}

// OnIrreversibleBlock registers the irreversible-block handler.
func (f *Feed) OnIrreversibleBlock(fn func(ctx context.Context, block *model.IrreversibleBlock) error) {
	f.onIrreversibleBlock = fn
}

// Run consumes the feed until the stream ends, a handler fails, or the
// context is canceled. With a dialer it reconnects on stream errors.
func (f *Feed) Run(ctx context.Context) error {
	if f.dial == nil {
		return f.consume(ctx, f.reader)
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		conn, err := f.dial(ctx)
		if err != nil {
			f.logger.Warn("feed connect failed, backing off", zap.Error(err))
			if sleepErr := f.sleep(ctx, feedReconnectBackoff); sleepErr != nil {
				return sleepErr
			}
			continue
		}
		err = f.consume(ctx, conn)
		_ = conn.Close()
		if err != nil {
			return err
		}
		f.logger.Warn("feed stream ended, reconnecting")
		if sleepErr := f.sleep(ctx, feedReconnectBackoff); sleepErr != nil {
			return sleepErr
		}
	}
}

// consume dispatches envelopes line by line. A malformed line is logged
// and skipped; a handler error aborts the feed.
func (f *Feed) consume(ctx context.Context, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), feedMaxLineBytes)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		if err := f.dispatch(ctx, line); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil && !errors.Is(err, io.EOF) {
		f.logger.Warn("feed read failed", zap.Error(err))
	}
	return nil
}

func (f *Feed) dispatch(ctx context.Context, line []byte) error {
	var env feedEnvelope
	if err := json.Unmarshal(line, &env); err != nil {
		f.logger.Warn("skip malformed feed line", zap.Error(err))
		return nil
	}

	switch env.Type {
	case envelopeAppliedTransaction:
		var trace model.TransactionTrace
		if err := json.Unmarshal(env.Data, &trace); err != nil {
			f.logger.Warn("skip malformed transaction trace", zap.Error(err))
			return nil
		}
		if f.onTransactionApplied != nil {
			return f.onTransactionApplied(ctx, &trace)
		}
	case envelopeAcceptedBlock:
		var block model.AcceptedBlock
		if err := json.Unmarshal(env.Data, &block); err != nil {
			f.logger.Warn("skip malformed accepted block", zap.Error(err))
			return nil
		}
		if f.onBlockAccepted != nil {
			return f.onBlockAccepted(ctx, &block)
		}
	case envelopeIrreversibleBlock:
		var block model.IrreversibleBlock
		if err := json.Unmarshal(env.Data, &block); err != nil {
			f.logger.Warn("skip malformed irreversible block", zap.Error(err))
			return nil
		}
		if f.onIrreversibleBlock != nil {
			return f.onIrreversibleBlock(ctx, &block)
		}
	default:
		f.logger.Debug("skip unknown feed envelope", zap.String("type", env.Type))
	}
	return nil
}
