package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/seqspell/internal/barcode"
)

// StatsHandler handles the statistics endpoint
type StatsHandler struct {
	Set *barcode.Set
}

// StatsResult reports the immutable parameters and index statistics of the
// barcode set being served.
type StatsResult struct {
	BarcodeCount   int `json:"barcode_count"`
	BarcodeLength  int `json:"barcode_length"`
	MaxDist        int `json:"max_dist"`
	PartitionWidth int `json:"partition_width"`
	PartitionCount int `json:"partition_count"`
}

// GetStats handles GET /api/stats
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats := h.Set.Stats()
	result := StatsResult{
		BarcodeCount:   stats.TermCount,
		BarcodeLength:  h.Set.BarcodeLength(),
		MaxDist:        h.Set.MaxDist(),
		PartitionWidth: h.Set.PartitionWidth(),
		PartitionCount: stats.PartitionCount,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
