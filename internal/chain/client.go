package chain

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/hsejin314/eos-zmq-plugin/internal/model"
	"github.com/hsejin314/eos-zmq-plugin/pkg/safe"
)

const tableRowsPageLimit = 100

// Client queries a node's /v1/chain API for enrichment data and ABI
// rendering. It implements StateReader and ABISerializer.
type Client struct {
	baseURL string
	http    *http.Client
	metrics ClientMetrics
}

// NewClient validates the base URL and builds a Client.
func NewClient(rawURL string, timeout time.Duration, metrics ClientMetrics) (*Client, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse chain api url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("chain api url scheme %q not supported", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("chain api url missing host")
	}
	if metrics == nil {
		return nil, errors.New("chain client metrics is required")
	}
	return &Client{
		baseURL: parsed.String(),
		http:    &http.Client{Timeout: timeout},
		metrics: metrics,
	}, nil
}

type getAccountResponse struct {
	RAMQuota  int64                      `json:"ram_quota"`
	RAMUsage  int64                      `json:"ram_usage"`
	NetWeight int64                      `json:"net_weight"`
	CPUWeight int64                      `json:"cpu_weight"`
	NetLimit  model.AccountResourceLimit `json:"net_limit"`
	CPULimit  model.AccountResourceLimit `json:"cpu_limit"`
}

// AccountResources fetches the account's resource standing via
// /v1/chain/get_account.
func (c *Client) AccountResources(ctx context.Context, account string) (bal model.ResourceBalance, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("get_account", err, started)
	}()

	var resp getAccountResponse
	if err = c.post(ctx, "/v1/chain/get_account", map[string]string{"account_name": account}, &resp); err != nil {
		return model.ResourceBalance{}, err
	}
	return model.ResourceBalance{
		AccountName: account,
		RAMQuota:    resp.RAMQuota,
		RAMUsage:    resp.RAMUsage,
		NetWeight:   resp.NetWeight,
		CPUWeight:   resp.CPUWeight,
		NetLimit:    resp.NetLimit,
		CPULimit:    resp.CPULimit,
	}, nil
}

type getTableRowsRequest struct {
	Code  string `json:"code"`
	Scope string `json:"scope"`
	Table string `json:"table"`
	JSON  bool   `json:"json"`
	Limit int    `json:"limit"`
}

type getTableRowsResponse struct {
	Rows []string `json:"rows"`
	More bool     `json:"more"`
}

// CurrencyBalances scans the token contract's accounts table scoped to the
// account via /v1/chain/get_table_rows with binary rows. Rows that do not
// decode to a valid asset are skipped, not reported.
func (c *Client) CurrencyBalances(ctx context.Context, contract, account string) (assets []model.Asset, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("get_table_rows", err, started)
	}()

	var resp getTableRowsResponse
	req := getTableRowsRequest{
		Code:  contract,
		Scope: account,
		Table: "accounts",
		JSON:  false,
		Limit: tableRowsPageLimit,
	}
	if err = c.post(ctx, "/v1/chain/get_table_rows", req, &resp); err != nil {
		return nil, err
	}

	for _, row := range resp.Rows {
		raw, decErr := hex.DecodeString(row)
		if decErr != nil {
			continue
		}
		asset, decErr := model.DecodeAsset(raw)
		if decErr != nil {
			continue
		}
		assets = append(assets, asset)
	}
	return assets, nil
}

type getInfoResponse struct {
	LastIrreversibleBlockNum int64 `json:"last_irreversible_block_num"`
}

// LastIrreversibleBlockNum reads the finality pointer via /v1/chain/get_info.
func (c *Client) LastIrreversibleBlockNum(ctx context.Context) (num uint32, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("get_info", err, started)
	}()

	var resp getInfoResponse
	if err = c.post(ctx, "/v1/chain/get_info", struct{}{}, &resp); err != nil {
		return 0, err
	}
	num, err = safe.Uint32(resp.LastIrreversibleBlockNum)
	if err != nil {
		return 0, fmt.Errorf("last irreversible block num: %w", err)
	}
	return num, nil
}

type abiBinToJSONRequest struct {
	Code    string `json:"code"`
	Action  string `json:"action"`
	Binargs string `json:"binargs"`
}

type abiBinToJSONResponse struct {
	Args json.RawMessage `json:"args"`
}

// ActionDataToJSON renders a packed action payload through the node's ABI
// serializer via /v1/chain/abi_bin_to_json.
func (c *Client) ActionDataToJSON(ctx context.Context, account, action, hexData string) (args []byte, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("abi_bin_to_json", err, started)
	}()

	var resp abiBinToJSONResponse
	req := abiBinToJSONRequest{Code: account, Action: action, Binargs: hexData}
	if err = c.post(ctx, "/v1/chain/abi_bin_to_json", req, &resp); err != nil {
		return nil, err
	}
	if len(resp.Args) == 0 {
		return nil, fmt.Errorf("abi_bin_to_json returned no args for %s::%s", account, action)
	}
	return resp.Args, nil
}

func (c *Client) post(ctx context.Context, path string, reqBody, respBody any) error {
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("marshal %s request: %w", path, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build %s request: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s: status %d: %s", path, resp.StatusCode, body)
	}
	if err := json.NewDecoder(resp.Body).Decode(respBody); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}
