package chain

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hsejin314/eos-zmq-plugin/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopMetrics struct{}

func (noopMetrics) Observe(string, error, time.Time) {}

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(srv.URL, 5*time.Second, noopMetrics{})
	require.NoError(t, err)
	return client
}

func encodeBalanceRow(amount int64, precision uint8, code string) string {
	row := make([]byte, 16)
	binary.LittleEndian.PutUint64(row[:8], uint64(amount))
	sym := uint64(precision)
	for i := 0; i < len(code); i++ {
		sym |= uint64(code[i]) << (8 * (i + 1))
	}
	binary.LittleEndian.PutUint64(row[8:16], sym)
	return hex.EncodeToString(row)
}

func TestNewClientValidatesURL(t *testing.T) {
	t.Parallel()

	_, err := NewClient("ftp://example.com", time.Second, noopMetrics{})
	assert.Error(t, err)
	_, err = NewClient("http://", time.Second, noopMetrics{})
	assert.Error(t, err)
	_, err = NewClient("http://127.0.0.1:8888", time.Second, nil)
	assert.Error(t, err)
}

func TestAccountResources(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/chain/get_account", r.URL.Path)
		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "alice", req["account_name"])

		_, _ = w.Write([]byte(`{
			"account_name": "alice",
			"ram_quota": 8192,
			"ram_usage": 3500,
			"net_weight": 10000,
			"cpu_weight": 20000,
			"net_limit": {"used": 101, "available": 899, "max": 1000},
			"cpu_limit": {"used": 5, "available": 95, "max": 100}
		}`))
	}))

	got, err := client.AccountResources(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, model.ResourceBalance{
		AccountName: "alice",
		RAMQuota:    8192,
		RAMUsage:    3500,
		NetWeight:   10000,
		CPUWeight:   20000,
		NetLimit:    model.AccountResourceLimit{Used: 101, Available: 899, Max: 1000},
		CPULimit:    model.AccountResourceLimit{Used: 5, Available: 95, Max: 100},
	}, got)
}

func TestCurrencyBalancesDecodesAndSkips(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/chain/get_table_rows", r.URL.Path)
		var req getTableRowsRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "tok", req.Code)
		require.Equal(t, "alice", req.Scope)
		require.Equal(t, "accounts", req.Table)
		require.False(t, req.JSON)

		rows := []string{
			encodeBalanceRow(10000, 4, "TOK"),
			"abcd",                           // undersized row, skipped
			"zzzz",                           // not hex at all, skipped
			encodeBalanceRow(5, 4, "bad"),    // lowercase symbol, skipped
			encodeBalanceRow(250000, 2, "XY"),
		}
		resp := map[string]any{"rows": rows, "more": false}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))

	got, err := client.CurrencyBalances(context.Background(), "tok", "alice")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "1.0000 TOK", got[0].String())
	assert.Equal(t, "2500.00 XY", got[1].String())
}

func TestLastIrreversibleBlockNum(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/chain/get_info", r.URL.Path)
		_, _ = w.Write([]byte(`{"head_block_num": 1000, "last_irreversible_block_num": 667}`))
	}))

	got, err := client.LastIrreversibleBlockNum(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint32(667), got)
}

func TestActionDataToJSON(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/chain/abi_bin_to_json", r.URL.Path)
		var req abiBinToJSONRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "eosio", req.Code)
		require.Equal(t, "sellram", req.Action)
		require.Equal(t, "deadbeef", req.Binargs)

		_, _ = w.Write([]byte(`{"args": {"account": "dave", "bytes": 512}}`))
	}))

	got, err := client.ActionDataToJSON(context.Background(), "eosio", "sellram", "deadbeef")
	require.NoError(t, err)
	assert.JSONEq(t, `{"account":"dave","bytes":512}`, string(got))
}

func TestClientReportsHTTPFailure(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "unknown account", http.StatusInternalServerError)
	}))

	_, err := client.AccountResources(context.Background(), "ghost")
	assert.Error(t, err)
}
