package streamer

import (
	"context"
	"encoding/json"

	"github.com/hsejin314/eos-zmq-plugin/internal/model"
	"go.uber.org/zap"
)

// accountExtractor pulls additional affected accounts out of a decoded
// system-contract action payload.
type accountExtractor func(data []byte) ([]string, error)

// systemActionExtractors is the closed dispatch table for system-contract
// actions. Action names not listed fall through with no extra accounts.
var systemActionExtractors = map[string]accountExtractor{
	"newaccount": func(data []byte) ([]string, error) {
		var p model.NewAccount
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, err
		}
		return []string{p.Name}, nil
	},
	"setcode":    targetAccount,
	"setabi":     targetAccount,
	"updateauth": targetAccount,
	"deleteauth": targetAccount,
	"linkauth":   targetAccount,
	"unlinkauth": targetAccount,
	"buyrambytes": func(data []byte) ([]string, error) {
		var p model.BuyRAMBytes
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, err
		}
		return payerAndReceiver(p.Payer, p.Receiver), nil
	},
	"buyram": func(data []byte) ([]string, error) {
		var p model.BuyRAM
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, err
		}
		return payerAndReceiver(p.Payer, p.Receiver), nil
	},
	"sellram": func(data []byte) ([]string, error) {
		var p model.SellRAM
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, err
		}
		return []string{p.Account}, nil
	},
	"delegatebw": func(data []byte) ([]string, error) {
		var p model.DelegateBW
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, err
		}
		return payerAndReceiver(p.From, p.Receiver), nil
	},
	"undelegatebw": func(data []byte) ([]string, error) {
		var p model.UndelegateBW
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, err
		}
		return payerAndReceiver(p.From, p.Receiver), nil
	},
	"refund": func(data []byte) ([]string, error) {
		var p model.Refund
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, err
		}
		return []string{p.Owner}, nil
	},
	"claimrewards": func(data []byte) ([]string, error) {
		var p model.ClaimRewards
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, err
		}
		return []string{p.Owner}, nil
	},
	"regproducer": func(data []byte) ([]string, error) {
		var p model.RegProducer
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, err
		}
		return []string{p.Producer}, nil
	},
	"unregprod": func(data []byte) ([]string, error) {
		var p model.UnregProd
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, err
		}
		return []string{p.Producer}, nil
	},
	"regproxy": func(data []byte) ([]string, error) {
		var p model.RegProxy
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, err
		}
		return []string{p.Proxy}, nil
	},
	"voteproducer": func(data []byte) ([]string, error) {
		var p model.VoteProducer
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, err
		}
		// the voted-for producer list is deliberately excluded
		accounts := []string{p.Voter}
		if p.Proxy != "" {
			accounts = append(accounts, p.Proxy)
		}
		return accounts, nil
	},
	// the bid-for name does not exist as an account yet
	"bidname": func([]byte) ([]string, error) { return nil, nil },
}

func targetAccount(data []byte) ([]string, error) {
	var p struct {
		Account string `json:"account"`
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	return []string{p.Account}, nil
}

func payerAndReceiver(payer, receiver string) []string {
	if receiver != "" && receiver != payer {
		return []string{payer, receiver}
	}
	return []string{payer}
}

// actionWalker discovers the accounts and token contracts affected by an
// action trace and all of its inline traces.
type actionWalker struct {
	serializer ABISerializer
	logger     *zap.Logger
}

type walkFrame struct {
	trace *model.ActionTrace
	depth int
}

// Walk traverses the trace tree iteratively with an explicit work stack,
// unioning discovered accounts and token contracts. Traces nested deeper
// than maxInlineDepth are dropped with a warning. When an action's data is
// only available packed, the walker renders it through the ABI serializer
// and keeps the rendered form on the trace for downstream emission.
func (w *actionWalker) Walk(ctx context.Context, root *model.ActionTrace) (accounts, tokenContracts map[string]struct{}) {
	accounts = map[string]struct{}{}
	tokenContracts = map[string]struct{}{}

	stack := []walkFrame{{trace: root}}
	for len(stack) > 0 {
		frame := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		at := frame.trace

		accounts[at.Act.Account] = struct{}{}
		if at.Receipt.Receiver != "" && at.Receipt.Receiver != at.Act.Account {
			accounts[at.Receipt.Receiver] = struct{}{}
		}

		if at.Act.Account == model.SystemAccount {
			w.extractSystemAccounts(ctx, at, accounts)
		} else if _, ok := tokenActionNames[at.Act.Name]; ok {
			tokenContracts[at.Act.Account] = struct{}{}
		}

		if frame.depth >= maxInlineDepth {
			if len(at.InlineTraces) > 0 {
				w.logger.Warn("inline trace depth limit reached, dropping subtree",
					zap.String("contract", at.Act.Account),
					zap.String("action", at.Act.Name),
					zap.Int("depth", frame.depth))
			}
			continue
		}
		for i := range at.InlineTraces {
			stack = append(stack, walkFrame{trace: &at.InlineTraces[i], depth: frame.depth + 1})
		}
	}
	return accounts, tokenContracts
}

func (w *actionWalker) extractSystemAccounts(ctx context.Context, at *model.ActionTrace, accounts map[string]struct{}) {
	extract, ok := systemActionExtractors[at.Act.Name]
	if !ok {
		return
	}
	data := w.actionData(ctx, &at.Act)
	if data == nil {
		return
	}
	extra, err := extract(data)
	if err != nil {
		w.logger.Debug("system action payload decode failed",
			zap.String("action", at.Act.Name), zap.Error(err))
		return
	}
	for _, account := range extra {
		if account != "" {
			accounts[account] = struct{}{}
		}
	}
}

// actionData returns the action payload as JSON, asking the serializer to
// render it when only the packed form is present. The rendered form is
// written back so the emitted trace carries it. Serializer failure is not
// fatal; it degrades to no extra account discovery.
func (w *actionWalker) actionData(ctx context.Context, act *model.Action) []byte {
	if len(act.Data) > 0 && act.Data[0] == '{' {
		return act.Data
	}

	hexData := act.HexData
	if hexData == "" && len(act.Data) > 0 {
		// data may itself be the hex string when the node had no ABI
		_ = json.Unmarshal(act.Data, &hexData)
	}
	if hexData == "" || w.serializer == nil {
		return nil
	}

	rendered, err := w.serializer.ActionDataToJSON(ctx, act.Account, act.Name, hexData)
	if err != nil {
		w.logger.Debug("abi render failed",
			zap.String("contract", act.Account),
			zap.String("action", act.Name),
			zap.Error(err))
		return nil
	}
	act.Data = rendered
	return rendered
}
