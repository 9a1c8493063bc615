package streamer

import "github.com/hsejin314/eos-zmq-plugin/internal/model"

// TraceCache holds transaction traces between the applied-transaction
// callback and the accepted-block callback that consumes them. It lives
// for one block at a time and is owned by the node's callback thread, so
// no locking is needed.
type TraceCache struct {
	traces map[string]*model.TransactionTrace
}

// NewTraceCache builds an empty cache.
func NewTraceCache() *TraceCache {
	return &TraceCache{traces: map[string]*model.TransactionTrace{}}
}

// Record stores the trace keyed by transaction id, overwriting any prior
// entry. Traces without a receipt were never scheduled and are ignored.
func (c *TraceCache) Record(trace *model.TransactionTrace) {
	if trace == nil || trace.Receipt == nil {
		return
	}
	c.traces[trace.ID] = trace
}

// Lookup returns the cached trace for the id. Absence is an expected
// outcome, not an error.
func (c *TraceCache) Lookup(id string) (*model.TransactionTrace, bool) {
	trace, ok := c.traces[id]
	return trace, ok
}

// Clear empties the cache.
func (c *TraceCache) Clear() {
	clear(c.traces)
}

// Len returns the number of cached traces.
func (c *TraceCache) Len() int {
	return len(c.traces)
}
