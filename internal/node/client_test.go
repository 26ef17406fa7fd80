package node

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// contractServer serves smart queries, dispatching on the decoded query's
// top-level key.
func contractServer(t *testing.T, handle func(key string, raw json.RawMessage) (any, int)) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		parts := strings.Split(r.URL.Path, "/")
		if len(parts) < 8 || parts[1] != "cosmwasm" || parts[6] != "smart" {
			t.Errorf("unexpected path %q", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
			return
		}

		raw, err := base64.StdEncoding.DecodeString(parts[7])
		if err != nil {
			t.Errorf("query not base64: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var query map[string]json.RawMessage
		if err := json.Unmarshal(raw, &query); err != nil {
			t.Errorf("query not json: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		for key, inner := range query {
			data, status := handle(key, inner)
			if status >= 400 {
				w.WriteHeader(status)
				fmt.Fprint(w, `{"message":"query failed"}`)
				return
			}
			json.NewEncoder(w).Encode(map[string]any{"data": data})
			return
		}
	}))
}

func TestMakerFee(t *testing.T) {
	srv := contractServer(t, func(key string, _ json.RawMessage) (any, int) {
		if key != "get_maker_fee" {
			t.Errorf("query key = %q, want get_maker_fee", key)
		}
		return MakerFeeResponse{MakerFee: "0.001200000000000000"}, 0
	})
	defer srv.Close()

	c := NewClient(srv.URL)
	fee, err := c.MakerFee(context.Background(), "osmo1book1")
	if err != nil {
		t.Fatalf("MakerFee() error = %v", err)
	}
	if fee != "0.001200000000000000" {
		t.Errorf("fee = %q", fee)
	}
}

func TestOrdersByOwner(t *testing.T) {
	srv := contractServer(t, func(key string, raw json.RawMessage) (any, int) {
		if key != "orders_by_owner" {
			t.Errorf("query key = %q, want orders_by_owner", key)
		}

		var params struct {
			Owner     string `json:"owner"`
			StartFrom *int64 `json:"start_from"`
			Limit     *int   `json:"limit"`
		}
		if err := json.Unmarshal(raw, &params); err != nil {
			t.Fatalf("decode params: %v", err)
		}
		if params.Owner != "osmo1owner" {
			t.Errorf("owner = %q", params.Owner)
		}

		// Two pages of two orders each with page size 2, then empty.
		base := int64(0)
		if params.StartFrom != nil {
			base = *params.StartFrom
		}
		if base >= 4 {
			return OrdersByOwnerResponse{}, 0
		}
		return OrdersByOwnerResponse{
			Orders: []ContractOrder{
				{OrderID: base, TickID: 100, Owner: params.Owner, Quantity: "1000000", PlacedQuantity: "1000000"},
				{OrderID: base + 1, TickID: 100, Owner: params.Owner, Quantity: "1000000", PlacedQuantity: "1000000"},
			},
			Count: 2,
		}, 0
	})
	defer srv.Close()

	c := NewClient(srv.URL)
	orders, err := c.AllOrdersByOwner(context.Background(), "osmo1book1", "osmo1owner", 2)
	if err != nil {
		t.Fatalf("AllOrdersByOwner() error = %v", err)
	}
	if len(orders) != 4 {
		t.Fatalf("len(orders) = %d, want 4", len(orders))
	}
	if orders[3].OrderID != 3 {
		t.Errorf("last OrderID = %d, want 3", orders[3].OrderID)
	}
}

func TestTicksByID(t *testing.T) {
	srv := contractServer(t, func(key string, raw json.RawMessage) (any, int) {
		if key != "ticks_by_id" {
			t.Errorf("query key = %q, want ticks_by_id", key)
		}
		return TicksResponse{Ticks: []TickState{{
			TickID: 250,
			AskValues: TickValues{
				EffectiveTotalAmountSwapped: "750000",
				CumulativeTotalValue:        "1000000",
			},
		}}}, 0
	})
	defer srv.Close()

	c := NewClient(srv.URL)
	ticks, err := c.TicksByID(context.Background(), "osmo1book1", []int64{250})
	if err != nil {
		t.Fatalf("TicksByID() error = %v", err)
	}
	if len(ticks) != 1 || ticks[0].TickID != 250 {
		t.Fatalf("unexpected ticks: %+v", ticks)
	}
}

func TestTicksByIDEmpty(t *testing.T) {
	c := NewClient("http://unused.invalid")
	ticks, err := c.TicksByID(context.Background(), "osmo1book1", nil)
	if err != nil {
		t.Fatalf("TicksByID(nil) error = %v", err)
	}
	if ticks != nil {
		t.Errorf("ticks = %+v, want nil", ticks)
	}
}

func TestSmartQueryError(t *testing.T) {
	srv := contractServer(t, func(string, json.RawMessage) (any, int) {
		return nil, http.StatusInternalServerError
	})
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.MakerFee(context.Background(), "osmo1book1")
	if err == nil {
		t.Fatal("expected error")
	}

	var qErr *QueryError
	if !errors.As(err, &qErr) {
		t.Fatalf("error type = %T, want *QueryError", err)
	}
	if qErr.Contract != "osmo1book1" {
		t.Errorf("Contract = %q", qErr.Contract)
	}
}
