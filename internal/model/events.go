package model

// MessageType identifies the kind of payload inside a stream frame.
type MessageType int32

const (
	// MessageTypeActionTrace carries an ActionEvent.
	MessageTypeActionTrace MessageType = 0
	// MessageTypeIrreversibleBlock carries an IrreversibleBlockEvent.
	MessageTypeIrreversibleBlock MessageType = 1
	// MessageTypeFork carries a ForkEvent.
	MessageTypeFork MessageType = 2
	// MessageTypeAcceptedBlock carries an AcceptedBlockEvent.
	MessageTypeAcceptedBlock MessageType = 3
	// MessageTypeFailedTx carries a FailedTransactionEvent.
	MessageTypeFailedTx MessageType = 4
)

// String returns a label for metrics and the tail tool.
func (t MessageType) String() string {
	switch t {
	case MessageTypeActionTrace:
		return "action_trace"
	case MessageTypeIrreversibleBlock:
		return "irreversible_block"
	case MessageTypeFork:
		return "fork"
	case MessageTypeAcceptedBlock:
		return "accepted_block"
	case MessageTypeFailedTx:
		return "failed_tx"
	default:
		return "unknown"
	}
}

// AccountResourceLimit is the detailed usage window of one resource.
type AccountResourceLimit struct {
	Used      int64 `json:"used"`
	Available int64 `json:"available"`
	Max       int64 `json:"max"`
}

// ResourceBalance is a point-in-time snapshot of one account's RAM, NET
// and CPU standing.
type ResourceBalance struct {
	AccountName string               `json:"account_name"`
	RAMQuota    int64                `json:"ram_quota"`
	RAMUsage    int64                `json:"ram_usage"`
	NetWeight   int64                `json:"net_weight"`
	CPUWeight   int64                `json:"cpu_weight"`
	NetLimit    AccountResourceLimit `json:"net_limit"`
	CPULimit    AccountResourceLimit `json:"cpu_limit"`
}

// CurrencyBalance is a point-in-time token balance of one account under
// one token contract.
type CurrencyBalance struct {
	AccountName string `json:"account_name"`
	Contract    string `json:"contract"`
	Balance     Asset  `json:"balance"`
}

// ActionEvent is emitted once per top-level executed action that passes
// the blacklist, enriched with resource and token balance snapshots.
type ActionEvent struct {
	GlobalActionSeq       uint64            `json:"global_action_seq"`
	BlockNum              uint32            `json:"block_num"`
	BlockTime             string            `json:"block_time"`
	ActionTrace           ActionTrace       `json:"action_trace"`
	ResourceBalances      []ResourceBalance `json:"resource_balances"`
	CurrencyBalances      []CurrencyBalance `json:"currency_balances"`
	LastIrreversibleBlock uint32            `json:"last_irreversible_block"`
}

// AcceptedBlockEvent announces a newly accepted block; it always precedes
// the block's derived action and failed-transaction events.
type AcceptedBlockEvent struct {
	AcceptedBlockNum    uint32 `json:"accepted_block_num"`
	AcceptedBlockDigest string `json:"accepted_block_digest"`
}

// ForkEvent tells subscribers to discard all previously emitted events
// for block numbers at or above InvalidBlockNum.
type ForkEvent struct {
	InvalidBlockNum uint32 `json:"invalid_block_num"`
}

// FailedTransactionEvent is emitted for every included transaction whose
// receipt status is not executed.
type FailedTransactionEvent struct {
	TrxID      string `json:"trx_id"`
	BlockNum   uint32 `json:"block_num"`
	StatusName string `json:"status_name"`
	StatusInt  uint8  `json:"status_int"`
}

// IrreversibleBlockEvent announces an advance of the finality pointer.
type IrreversibleBlockEvent struct {
	IrreversibleBlockNum    uint32 `json:"irreversible_block_num"`
	IrreversibleBlockDigest string `json:"irreversible_block_digest"`
}
