package streamer

import (
	"context"
	"sort"

	"github.com/hsejin314/eos-zmq-plugin/internal/model"
	"go.uber.org/zap"
)

// enricher appends resource and token-balance snapshots to an action
// event. Every discovered token contract is checked against every
// interesting account in the trace tree; the cross product is deliberate
// and not a per-account ownership attribution.
type enricher struct {
	state  StateReader
	logger *zap.Logger
}

func (e *enricher) Enrich(ctx context.Context, event *model.ActionEvent, accounts, tokenContracts map[string]struct{}) {
	contracts := sortedKeys(tokenContracts)

	for _, account := range sortedKeys(accounts) {
		if _, ok := systemAccounts[account]; ok {
			continue
		}

		resources, err := e.state.AccountResources(ctx, account)
		if err != nil {
			e.logger.Warn("resource snapshot failed", zap.String("account", account), zap.Error(err))
		} else {
			event.ResourceBalances = append(event.ResourceBalances, resources)
		}

		for _, contract := range contracts {
			assets, err := e.state.CurrencyBalances(ctx, contract, account)
			if err != nil {
				e.logger.Warn("balance scan failed",
					zap.String("account", account),
					zap.String("contract", contract),
					zap.Error(err))
				continue
			}
			for _, asset := range assets {
				event.CurrencyBalances = append(event.CurrencyBalances, model.CurrencyBalance{
					AccountName: account,
					Contract:    contract,
					Balance:     asset,
				})
			}
		}
	}
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
