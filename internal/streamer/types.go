// Package streamer converts node execution callbacks into the ordered,
// fork-aware message stream pushed to subscribers.
package streamer

import (
	"context"
	"time"

	"github.com/hsejin314/eos-zmq-plugin/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Sender frames a typed payload and pushes it to subscribers. A send
	// blocks under subscriber backpressure; that blocking is the only
	// flow-control mechanism of the stream.
	Sender interface {
		Send(msgType model.MessageType, payload any) error
	}

	// StateReader queries chain state for enrichment snapshots.
	StateReader interface {
		AccountResources(ctx context.Context, account string) (model.ResourceBalance, error)
		CurrencyBalances(ctx context.Context, contract, account string) ([]model.Asset, error)
		LastIrreversibleBlockNum(ctx context.Context) (uint32, error)
	}

	// ABISerializer renders a packed action payload to JSON.
	ABISerializer interface {
		ActionDataToJSON(ctx context.Context, account, action, hexData string) ([]byte, error)
	}

	// Metrics observes stream processing outcomes.
	Metrics interface {
		ObserveBlock(err error, txCount int, started time.Time)
		ObserveSend(msgType string, err error, started time.Time)
		ObserveMissingTrace()
		ObserveFork()
	}
)
