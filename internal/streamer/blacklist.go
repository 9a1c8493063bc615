package streamer

import (
	"fmt"
	"strings"

	"github.com/hsejin314/eos-zmq-plugin/internal/model"
)

// Blacklist maps contract account to the set of action names whose
// top-level traces are suppressed entirely: no event, no enrichment, no
// account discovery. Suppression is silent.
type Blacklist map[string]map[string]struct{}

// DefaultBlacklist suppresses the system contract's onblock heartbeat and
// the notorious blocktwitter spam action.
func DefaultBlacklist() Blacklist {
	b := Blacklist{}
	b.add(model.SystemAccount, "onblock")
	b.add("blocktwitter", "tweet")
	return b
}

// ParseBlacklist builds a Blacklist from "contract:action" pairs.
func ParseBlacklist(entries []string) (Blacklist, error) {
	b := Blacklist{}
	for _, entry := range entries {
		contract, action, ok := strings.Cut(entry, ":")
		if !ok || contract == "" || action == "" {
			return nil, fmt.Errorf("blacklist entry %q: want contract:action", entry)
		}
		b.add(contract, action)
	}
	return b, nil
}

// Contains reports whether the contract/action pair is suppressed.
func (b Blacklist) Contains(contract, action string) bool {
	actions, ok := b[contract]
	if !ok {
		return false
	}
	_, ok = actions[action]
	return ok
}

func (b Blacklist) add(contract, action string) {
	actions, ok := b[contract]
	if !ok {
		actions = map[string]struct{}{}
		b[contract] = actions
	}
	actions[action] = struct{}{}
}
