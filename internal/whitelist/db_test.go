package whitelist

import (
	"strings"
	"testing"
)

func TestBarcodeQueryQuotesTable(t *testing.T) {
	tests := []struct {
		name      string
		table     string
		wantIdent string
	}{
		{
			name:      "plain table name",
			table:     "whitelist",
			wantIdent: `"whitelist"`,
		},
		{
			name:      "embedded quote is escaped",
			table:     `bad"table`,
			wantIdent: `"bad""table"`,
		},
		{
			name:      "statement injection stays inside the identifier",
			table:     "t; DROP TABLE t",
			wantIdent: `"t; DROP TABLE t"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query := barcodeQuery(tt.table)
			if !strings.Contains(query, "FROM "+tt.wantIdent+" WHERE") {
				t.Errorf("barcodeQuery(%q) = %q, want table quoted as %s", tt.table, query, tt.wantIdent)
			}
		})
	}
}
