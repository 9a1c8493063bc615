package streamer

import "github.com/hsejin314/eos-zmq-plugin/internal/model"

// maxInlineDepth bounds the trace-tree walk so a pathological inline
// chain cannot grow the work stack without limit.
const maxInlineDepth = 1024

// systemAccounts are the chain's native system and token-infrastructure
// accounts. They are never enriched with resource or balance snapshots.
var systemAccounts = map[string]struct{}{
	model.SystemAccount: {},
	"eosio.msig":        {},
	"eosio.token":       {},
	"eosio.ram":         {},
	"eosio.ramfee":      {},
	"eosio.stake":       {},
	"eosio.vpay":        {},
	"eosio.bpay":        {},
	"eosio.saving":      {},
}

// tokenActionNames are the action names that mark the called contract as
// a token contract for balance discovery.
var tokenActionNames = map[string]struct{}{
	"transfer": {},
	"issue":    {},
	"open":     {},
}
