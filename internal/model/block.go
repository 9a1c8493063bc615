package model

import (
	"encoding/json"
	"fmt"
)

// TransactionStatus is the receipt status of an included transaction.
type TransactionStatus string

const (
	// StatusExecuted means the transaction succeeded, no error handler ran.
	StatusExecuted TransactionStatus = "executed"
	// StatusSoftFail means the transaction failed but an error handler succeeded.
	StatusSoftFail TransactionStatus = "soft_fail"
	// StatusHardFail means the transaction and its error handler both failed.
	StatusHardFail TransactionStatus = "hard_fail"
	// StatusDelayed means the transaction was scheduled for deferred execution.
	StatusDelayed TransactionStatus = "delayed"
	// StatusExpired means the transaction expired and CPU/NET was refunded.
	StatusExpired TransactionStatus = "expired"
)

var statusCodes = map[TransactionStatus]uint8{
	StatusExecuted: 0,
	StatusSoftFail: 1,
	StatusHardFail: 2,
	StatusDelayed:  3,
	StatusExpired:  4,
}

var statusNames = map[uint8]TransactionStatus{
	0: StatusExecuted,
	1: StatusSoftFail,
	2: StatusHardFail,
	3: StatusDelayed,
	4: StatusExpired,
}

// Code returns the numeric status as defined by the chain. Unknown
// statuses map to 255.
func (s TransactionStatus) Code() uint8 {
	if code, ok := statusCodes[s]; ok {
		return code
	}
	return 255
}

// UnmarshalJSON accepts both the string name and the numeric form the
// node uses in raw receipts.
func (s *TransactionStatus) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err == nil {
		*s = TransactionStatus(name)
		return nil
	}
	var code uint8
	if err := json.Unmarshal(b, &code); err != nil {
		return fmt.Errorf("transaction status must be a string or integer: %s", b)
	}
	status, ok := statusNames[code]
	if !ok {
		return fmt.Errorf("unknown transaction status code %d", code)
	}
	*s = status
	return nil
}

// TransactionReceipt is one entry of a block's transaction list. The trx
// field is either a bare transaction id string (deferred transaction
// stubs) or a packed transaction object carrying its id.
type TransactionReceipt struct {
	Status TransactionStatus `json:"status"`
	Trx    json.RawMessage   `json:"trx"`
}

// TransactionID resolves the receipt's transaction id from either form.
func (r TransactionReceipt) TransactionID() (string, error) {
	var id string
	if err := json.Unmarshal(r.Trx, &id); err == nil {
		return id, nil
	}
	var packed struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(r.Trx, &packed); err != nil {
		return "", fmt.Errorf("transaction receipt trx field: %w", err)
	}
	if packed.ID == "" {
		return "", fmt.Errorf("transaction receipt carries no id: %s", r.Trx)
	}
	return packed.ID, nil
}

// AcceptedBlock is the payload of the block-accepted callback: the fully
// ordered transaction list plus the block's number and digest.
type AcceptedBlock struct {
	BlockNum     uint32               `json:"block_num"`
	Digest       string               `json:"digest"`
	Timestamp    string               `json:"timestamp,omitempty"`
	Transactions []TransactionReceipt `json:"transactions,omitempty"`
}

// IrreversibleBlock is the payload of the irreversible-block callback.
type IrreversibleBlock struct {
	BlockNum uint32 `json:"block_num"`
	Digest   string `json:"digest"`
}
