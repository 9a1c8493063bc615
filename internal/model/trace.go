package model

import "encoding/json"

// PermissionLevel is an actor/permission pair authorizing an action.
type PermissionLevel struct {
	Actor      string `json:"actor"`
	Permission string `json:"permission"`
}

// Action is one contract action as carried inside a trace. Data holds the
// ABI-rendered JSON form when the node could decode it; HexData always
// carries the raw packed payload.
type Action struct {
	Account       string            `json:"account"`
	Name          string            `json:"name"`
	Authorization []PermissionLevel `json:"authorization,omitempty"`
	Data          json.RawMessage   `json:"data,omitempty"`
	HexData       string            `json:"hex_data,omitempty"`
}

// ActionReceipt is the execution receipt attached to an action trace.
type ActionReceipt struct {
	Receiver       string `json:"receiver"`
	ActDigest      string `json:"act_digest,omitempty"`
	GlobalSequence uint64 `json:"global_sequence"`
	RecvSequence   uint64 `json:"recv_sequence,omitempty"`
}

// ActionTrace records one action's execution including the inline actions
// it triggered as side effects.
type ActionTrace struct {
	Receipt      ActionReceipt `json:"receipt"`
	Act          Action        `json:"act"`
	Elapsed      int64         `json:"elapsed,omitempty"`
	Console      string        `json:"console,omitempty"`
	TrxID        string        `json:"trx_id,omitempty"`
	InlineTraces []ActionTrace `json:"inline_traces,omitempty"`
}

// TransactionTraceReceipt is the receipt of an attempted transaction. A
// trace without a receipt was never scheduled into a block.
type TransactionTraceReceipt struct {
	Status        TransactionStatus `json:"status"`
	CPUUsageUs    uint32            `json:"cpu_usage_us,omitempty"`
	NetUsageWords uint32            `json:"net_usage_words,omitempty"`
}

// TransactionTrace is the finalized trace of one attempted transaction as
// delivered by the applied-transaction callback.
type TransactionTrace struct {
	ID           string                   `json:"id"`
	BlockNum     uint32                   `json:"block_num,omitempty"`
	BlockTime    string                   `json:"block_time,omitempty"`
	Receipt      *TransactionTraceReceipt `json:"receipt,omitempty"`
	Scheduled    bool                     `json:"scheduled,omitempty"`
	ActionTraces []ActionTrace            `json:"action_traces,omitempty"`
}
