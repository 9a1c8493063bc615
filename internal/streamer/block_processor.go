package streamer

import (
	"context"
	"time"

	"github.com/hsejin314/eos-zmq-plugin/internal/model"
	"go.uber.org/zap"
)

// blockProcessor drives per-block processing: fork detection, cache
// consumption, per-transaction event emission, and the unconditional
// cache reset at the end of every block.
type blockProcessor struct {
	cache     *TraceCache
	walker    *actionWalker
	enricher  *enricher
	sender    Sender
	state     StateReader
	blacklist Blacklist
	metrics   Metrics
	logger    *zap.Logger

	// highest accepted block number seen so far; a block at or below it
	// signals a reorganization
	endBlock uint32
}

// ProcessBlock handles one accepted-block callback. Event order within
// the callback is fixed: fork (if any), accepted block, then per
// transaction either its action events or a failed-transaction event.
// The cache is cleared even when a send fails mid-block.
func (p *blockProcessor) ProcessBlock(ctx context.Context, block *model.AcceptedBlock) (err error) {
	started := time.Now()
	defer func() {
		p.metrics.ObserveBlock(err, len(block.Transactions), started)
	}()
	defer p.cache.Clear()

	if p.endBlock >= block.BlockNum {
		// a resend at or below the highest height is a reorg; everything
		// emitted for heights >= this block is now invalid
		p.metrics.ObserveFork()
		p.logger.Info("fork detected", zap.Uint32("invalid_block_num", block.BlockNum))
		if err = p.send(model.MessageTypeFork, model.ForkEvent{InvalidBlockNum: block.BlockNum}); err != nil {
			return err
		}
	}
	p.endBlock = block.BlockNum

	if err = p.send(model.MessageTypeAcceptedBlock, model.AcceptedBlockEvent{
		AcceptedBlockNum:    block.BlockNum,
		AcceptedBlockDigest: block.Digest,
	}); err != nil {
		return err
	}

	for _, receipt := range block.Transactions {
		id, idErr := receipt.TransactionID()
		if idErr != nil {
			p.logger.Warn("unresolvable transaction id in block", zap.Uint32("block_num", block.BlockNum), zap.Error(idErr))
			continue
		}

		if receipt.Status != model.StatusExecuted {
			if err = p.send(model.MessageTypeFailedTx, model.FailedTransactionEvent{
				TrxID:      id,
				BlockNum:   block.BlockNum,
				StatusName: string(receipt.Status),
				StatusInt:  receipt.Status.Code(),
			}); err != nil {
				return err
			}
			continue
		}

		trace, ok := p.cache.Lookup(id)
		if !ok || trace.Receipt == nil {
			p.metrics.ObserveMissingTrace()
			p.logger.Info("missing trace for transaction", zap.String("trx_id", id), zap.Uint32("block_num", block.BlockNum))
			continue
		}
		for i := range trace.ActionTraces {
			if err = p.processActionTrace(ctx, &trace.ActionTraces[i], block); err != nil {
				return err
			}
		}
	}
	return nil
}

// processActionTrace emits one ActionEvent per top-level trace passing
// the blacklist. Inline traces contribute to discovery only.
func (p *blockProcessor) processActionTrace(ctx context.Context, at *model.ActionTrace, block *model.AcceptedBlock) error {
	if p.blacklist.Contains(at.Act.Account, at.Act.Name) {
		return nil
	}

	accounts, tokenContracts := p.walker.Walk(ctx, at)

	event := model.ActionEvent{
		GlobalActionSeq: at.Receipt.GlobalSequence,
		BlockNum:        block.BlockNum,
		BlockTime:       block.Timestamp,
		ActionTrace:     *at,
	}
	p.enricher.Enrich(ctx, &event, accounts, tokenContracts)

	lib, err := p.state.LastIrreversibleBlockNum(ctx)
	if err != nil {
		p.logger.Warn("last irreversible block query failed", zap.Error(err))
	} else {
		event.LastIrreversibleBlock = lib
	}

	return p.send(model.MessageTypeActionTrace, event)
}

func (p *blockProcessor) send(msgType model.MessageType, payload any) error {
	started := time.Now()
	err := p.sender.Send(msgType, payload)
	p.metrics.ObserveSend(msgType.String(), err, started)
	return err
}
