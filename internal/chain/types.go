// Package chain defines the boundary to the host node: the callback feed
// delivering execution events and the query interfaces for chain state.
package chain

import (
	"context"
	"time"

	"github.com/hsejin314/eos-zmq-plugin/internal/model"
)

type (
	// TransactionAppliedProducer delivers the finalized trace of every
	// attempted transaction as it is applied.
	TransactionAppliedProducer interface {
		OnTransactionApplied(fn func(ctx context.Context, trace *model.TransactionTrace) error)
	}

	// BlockAcceptedProducer delivers every accepted block with its fully
	// ordered transaction list.
	BlockAcceptedProducer interface {
		OnBlockAccepted(fn func(ctx context.Context, block *model.AcceptedBlock) error)
	}

	// IrreversibleBlockProducer delivers every advance of the node's
	// irreversibility pointer.
	IrreversibleBlockProducer interface {
		OnIrreversibleBlock(fn func(ctx context.Context, block *model.IrreversibleBlock) error)
	}

	// StateReader queries chain state for enrichment data.
	StateReader interface {
		// AccountResources returns the account's RAM quota/usage and
		// NET/CPU weights and limit details.
		AccountResources(ctx context.Context, account string) (model.ResourceBalance, error)
		// CurrencyBalances scans the token contract's accounts table for
		// the account's balance rows, silently dropping rows that are too
		// short or carry an invalid symbol.
		CurrencyBalances(ctx context.Context, contract, account string) ([]model.Asset, error)
		// LastIrreversibleBlockNum returns the current finality pointer.
		LastIrreversibleBlockNum(ctx context.Context) (uint32, error)
	}

	// ABISerializer renders an action's packed payload into a JSON
	// structure using the contract's interface description.
	ABISerializer interface {
		ActionDataToJSON(ctx context.Context, account, action, hexData string) ([]byte, error)
	}

	// ClientMetrics observes individual chain API calls.
	ClientMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)
