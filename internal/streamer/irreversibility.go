package streamer

import (
	"time"

	"github.com/hsejin314/eos-zmq-plugin/internal/model"
)

// irreversibilityNotifier relays finality-pointer advances to subscribers.
// It shares no state with block processing; the irreversible stream is an
// independent channel with no ordering relative to action events.
type irreversibilityNotifier struct {
	sender  Sender
	metrics Metrics
}

func (n *irreversibilityNotifier) Notify(block *model.IrreversibleBlock) error {
	started := time.Now()
	err := n.sender.Send(model.MessageTypeIrreversibleBlock, model.IrreversibleBlockEvent{
		IrreversibleBlockNum:    block.BlockNum,
		IrreversibleBlockDigest: block.Digest,
	})
	n.metrics.ObserveSend(model.MessageTypeIrreversibleBlock.String(), err, started)
	return err
}
