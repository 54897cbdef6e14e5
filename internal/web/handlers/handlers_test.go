package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	"github.com/seqspell/internal/barcode"
)

func newTestHandlers(t *testing.T) (*LookupHandler, *StatsHandler) {
	t.Helper()
	set, err := barcode.New([]string{"AAAA", "CCCC", "GGGG"}, 1, 16)
	if err != nil {
		t.Fatalf("building set: %v", err)
	}
	return &LookupHandler{Set: set}, &StatsHandler{Set: set}
}

func decodeSuggestions(t *testing.T, rr *httptest.ResponseRecorder) []SuggestionResult {
	t.Helper()
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %q)", rr.Code, rr.Body.String())
	}
	var results []SuggestionResult
	if err := json.NewDecoder(rr.Body).Decode(&results); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	return results
}

func TestLookupEndpoint(t *testing.T) {
	lookup, _ := newTestHandlers(t)

	req := httptest.NewRequest("GET", "/api/lookup?q=AAAT", nil)
	rr := httptest.NewRecorder()
	lookup.Lookup(rr, req)

	results := decodeSuggestions(t, rr)
	if len(results) != 1 {
		t.Fatalf("results = %v, want one", results)
	}
	want := SuggestionResult{Term: "AAAA", Query: "AAAT", Distance: 1}
	if results[0] != want {
		t.Errorf("result = %+v, want %+v", results[0], want)
	}
}

func TestLookupEndpointNoMatch(t *testing.T) {
	lookup, _ := newTestHandlers(t)

	req := httptest.NewRequest("GET", "/api/lookup?q=TTTT", nil)
	rr := httptest.NewRecorder()
	lookup.Lookup(rr, req)

	if results := decodeSuggestions(t, rr); len(results) != 0 {
		t.Errorf("results = %v, want empty JSON array", results)
	}
}

func TestLookupEndpointMissingQuery(t *testing.T) {
	lookup, _ := newTestHandlers(t)

	req := httptest.NewRequest("GET", "/api/lookup", nil)
	rr := httptest.NewRecorder()
	lookup.Lookup(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rr.Code)
	}
}

func TestLookupBatchEndpoint(t *testing.T) {
	lookup, _ := newTestHandlers(t)

	body := `{"queries": ["AAAT", "CCCT"]}`
	req := httptest.NewRequest("POST", "/api/lookup/batch", strings.NewReader(body))
	rr := httptest.NewRecorder()
	lookup.LookupBatch(rr, req)

	results := decodeSuggestions(t, rr)
	sort.Slice(results, func(i, j int) bool { return results[i].Term < results[j].Term })

	want := []SuggestionResult{
		{Term: "AAAA", Query: "AAAT", Distance: 1},
		{Term: "CCCC", Query: "CCCT", Distance: 1},
	}
	if len(results) != len(want) {
		t.Fatalf("results = %v, want %v", results, want)
	}
	for i := range want {
		if results[i] != want[i] {
			t.Errorf("result %d = %+v, want %+v", i, results[i], want[i])
		}
	}
}

func TestLookupBatchEndpointExactWins(t *testing.T) {
	lookup, _ := newTestHandlers(t)

	body := `{"queries": ["AAAA", "CCCT"]}`
	req := httptest.NewRequest("POST", "/api/lookup/batch", strings.NewReader(body))
	rr := httptest.NewRecorder()
	lookup.LookupBatch(rr, req)

	results := decodeSuggestions(t, rr)
	want := SuggestionResult{Term: "AAAA", Query: "AAAA", Distance: 0}
	if len(results) != 1 || results[0] != want {
		t.Errorf("results = %v, want exactly [%+v]", results, want)
	}
}

func TestLookupBatchEndpointBadRequest(t *testing.T) {
	lookup, _ := newTestHandlers(t)

	tests := []struct {
		name string
		body string
	}{
		{name: "invalid JSON", body: `{"queries": `},
		{name: "no queries", body: `{"queries": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/lookup/batch", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			lookup.LookupBatch(rr, req)

			if rr.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rr.Code)
			}
		})
	}
}

func TestScanEndpoint(t *testing.T) {
	lookup, _ := newTestHandlers(t)

	req := httptest.NewRequest("GET", "/api/scan?q=TAAAAG", nil)
	rr := httptest.NewRecorder()
	lookup.Scan(rr, req)

	results := decodeSuggestions(t, rr)
	if len(results) != 1 {
		t.Fatalf("results = %v, want one", results)
	}
	want := SuggestionResult{Term: "AAAA", Query: "AAAA", Distance: 0}
	if results[0] != want {
		t.Errorf("result = %+v, want %+v", results[0], want)
	}
}

func TestStatsEndpoint(t *testing.T) {
	_, stats := newTestHandlers(t)

	req := httptest.NewRequest("GET", "/api/stats", nil)
	rr := httptest.NewRecorder()
	stats.GetStats(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}

	var result StatsResult
	if err := json.NewDecoder(rr.Body).Decode(&result); err != nil {
		t.Fatalf("decoding response: %v", err)
	}

	if result.BarcodeCount != 3 {
		t.Errorf("BarcodeCount = %d, want 3", result.BarcodeCount)
	}
	if result.BarcodeLength != 4 {
		t.Errorf("BarcodeLength = %d, want 4", result.BarcodeLength)
	}
	if result.MaxDist != 1 {
		t.Errorf("MaxDist = %d, want 1", result.MaxDist)
	}
	if result.PartitionWidth != 16 {
		t.Errorf("PartitionWidth = %d, want 16", result.PartitionWidth)
	}
}
