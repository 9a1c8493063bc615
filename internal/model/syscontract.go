package model

// SystemAccount is the chain's native system contract account.
const SystemAccount = "eosio"

// Payloads of system contract actions. Only the fields the account
// discovery walk extracts are declared; the rest of each payload is
// ignored on decode.

// NewAccount is the payload of eosio::newaccount.
type NewAccount struct {
	Creator string `json:"creator"`
	Name    string `json:"name"`
}

// SetCode is the payload of eosio::setcode.
type SetCode struct {
	Account string `json:"account"`
}

// SetABI is the payload of eosio::setabi.
type SetABI struct {
	Account string `json:"account"`
}

// UpdateAuth is the payload of eosio::updateauth.
type UpdateAuth struct {
	Account string `json:"account"`
}

// DeleteAuth is the payload of eosio::deleteauth.
type DeleteAuth struct {
	Account string `json:"account"`
}

// LinkAuth is the payload of eosio::linkauth.
type LinkAuth struct {
	Account string `json:"account"`
}

// UnlinkAuth is the payload of eosio::unlinkauth.
type UnlinkAuth struct {
	Account string `json:"account"`
}

// BuyRAMBytes is the payload of eosio::buyrambytes.
type BuyRAMBytes struct {
	Payer    string `json:"payer"`
	Receiver string `json:"receiver"`
}

// BuyRAM is the payload of eosio::buyram.
type BuyRAM struct {
	Payer    string `json:"payer"`
	Receiver string `json:"receiver"`
}

// SellRAM is the payload of eosio::sellram.
type SellRAM struct {
	Account string `json:"account"`
}

// DelegateBW is the payload of eosio::delegatebw.
type DelegateBW struct {
	From     string `json:"from"`
	Receiver string `json:"receiver"`
}

// UndelegateBW is the payload of eosio::undelegatebw.
type UndelegateBW struct {
	From     string `json:"from"`
	Receiver string `json:"receiver"`
}

// Refund is the payload of eosio::refund.
type Refund struct {
	Owner string `json:"owner"`
}

// ClaimRewards is the payload of eosio::claimrewards.
type ClaimRewards struct {
	Owner string `json:"owner"`
}

// RegProducer is the payload of eosio::regproducer.
type RegProducer struct {
	Producer string `json:"producer"`
}

// UnregProd is the payload of eosio::unregprod.
type UnregProd struct {
	Producer string `json:"producer"`
}

// RegProxy is the payload of eosio::regproxy.
type RegProxy struct {
	Proxy string `json:"proxy"`
}

// VoteProducer is the payload of eosio::voteproducer. The voted-for
// producer list is deliberately not extracted by the discovery walk.
type VoteProducer struct {
	Voter string `json:"voter"`
	Proxy string `json:"proxy"`
}
