package whitelist

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"
)

// FromDB reads barcodes from a postgres table. The table must have a
// "barcode" column; duplicates are collapsed by the query so the caller
// gets each barcode once.
func FromDB(db *sql.DB, table string) ([]string, error) {
	rows, err := db.Query(barcodeQuery(table))
	if err != nil {
		return nil, fmt.Errorf("%w: querying %s: %v", ErrUnavailable, table, err)
	}
	defer rows.Close()

	var barcodes []string
	for rows.Next() {
		var bc string
		if err := rows.Scan(&bc); err != nil {
			return nil, fmt.Errorf("%w: scanning %s row: %v", ErrUnavailable, table, err)
		}
		barcodes = append(barcodes, bc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading %s rows: %v", ErrUnavailable, table, err)
	}

	return barcodes, nil
}

// barcodeQuery builds the whitelist query with the table name quoted, so an
// operator-supplied table value cannot break the statement.
func barcodeQuery(table string) string {
	return fmt.Sprintf(`SELECT DISTINCT barcode FROM %s WHERE barcode IS NOT NULL AND barcode != ''`,
		pq.QuoteIdentifier(table))
}
