package streamer

import (
	"context"
	"errors"

	"github.com/hsejin314/eos-zmq-plugin/internal/chain"
	"github.com/hsejin314/eos-zmq-plugin/internal/model"
	"go.uber.org/zap"
)

// Config carries the collaborators the service is built from.
type Config struct {
	Sender     Sender
	State      StateReader
	Serializer ABISerializer
	Blacklist  Blacklist
	Metrics    Metrics
	Logger     *zap.Logger
}

// Service owns the per-block mutable state (trace cache, highest accepted
// block number, configured blacklist) and exposes the three node callback
// handlers. All handlers run on the node's single callback thread.
type Service struct {
	logger    *zap.Logger
	cache     *TraceCache
	processor *blockProcessor
	notifier  *irreversibilityNotifier
}

// New validates the configuration and wires the processing pipeline.
func New(cfg Config) (*Service, error) {
	if cfg.Sender == nil {
		return nil, errors.New("streamer sender is required")
	}
	if cfg.State == nil {
		return nil, errors.New("streamer state reader is required")
	}
	if cfg.Metrics == nil {
		return nil, errors.New("streamer metrics is required")
	}
	if cfg.Logger == nil {
		return nil, errors.New("streamer logger is required")
	}
	if cfg.Blacklist == nil {
		cfg.Blacklist = DefaultBlacklist()
	}

	logger := cfg.Logger.Named("streamer")
	cache := NewTraceCache()

	return &Service{
		logger: logger,
		cache:  cache,
		processor: &blockProcessor{
			cache: cache,
			walker: &actionWalker{
				serializer: cfg.Serializer,
				logger:     logger.Named("walker"),
			},
			enricher: &enricher{
				state:  cfg.State,
				logger: logger.Named("enricher"),
			},
			sender:    cfg.Sender,
			state:     cfg.State,
			blacklist: cfg.Blacklist,
			metrics:   cfg.Metrics,
			logger:    logger.Named("blockProcessor"),
		},
		notifier: &irreversibilityNotifier{
			sender:  cfg.Sender,
			metrics: cfg.Metrics,
		},
	}, nil
}

// Attach registers the service's handlers with the node's three event
// producers.
func (s *Service) Attach(
	transactions chain.TransactionAppliedProducer,
	blocks chain.BlockAcceptedProducer,
	irreversible chain.IrreversibleBlockProducer,
) {
	transactions.OnTransactionApplied(s.OnTransactionApplied)
	blocks.OnBlockAccepted(s.OnBlockAccepted)
	irreversible.OnIrreversibleBlock(s.OnIrreversibleBlock)
}

// OnTransactionApplied caches the trace until its block is accepted.
func (s *Service) OnTransactionApplied(_ context.Context, trace *model.TransactionTrace) error {
	s.cache.Record(trace)
	return nil
}

// OnBlockAccepted runs the per-block pipeline.
func (s *Service) OnBlockAccepted(ctx context.Context, block *model.AcceptedBlock) error {
	return s.processor.ProcessBlock(ctx, block)
}

// OnIrreversibleBlock relays the finality advance.
func (s *Service) OnIrreversibleBlock(_ context.Context, block *model.IrreversibleBlock) error {
	return s.notifier.Notify(block)
}
