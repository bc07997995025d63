package parsers

import (
	"encoding/csv"
	"fmt"
	"io"
)

// CatalogCSV parses catalog records from CSV format.
type CatalogCSV struct{}

// Parse reads CSV from the reader and returns the catalog records.
// Expected columns: Id, Type, Title, Date, Author, Owner, Place.
func (p *CatalogCSV) Parse(r io.Reader) ([]CatalogRecord, error) {
	reader := csv.NewReader(r)

	colIndex, err := p.readHeader(reader)
	if err != nil {
		return nil, err
	}

	var records []CatalogRecord
	lineNum := 1 // Header is line 1
	for {
		lineNum++
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		records = append(records, CatalogRecord{
			ID:     getColumn(record, colIndex, "Id"),
			Type:   getColumn(record, colIndex, "Type"),
			Title:  getColumn(record, colIndex, "Title"),
			Date:   getColumn(record, colIndex, "Date"),
			Author: getColumn(record, colIndex, "Author"),
			Owner:  getColumn(record, colIndex, "Owner"),
			Place:  getColumn(record, colIndex, "Place"),
		})
	}

	return records, nil
}

// readHeader reads and validates the CSV header row.
func (p *CatalogCSV) readHeader(reader *csv.Reader) (map[string]int, error) {
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	colIndex := make(map[string]int)
	for i, col := range header {
		colIndex[col] = i
	}

	requiredCols := []string{"Id", "Type", "Title"}
	for _, col := range requiredCols {
		if _, ok := colIndex[col]; !ok {
			return nil, fmt.Errorf("missing required column: %s", col)
		}
	}

	return colIndex, nil
}

// getColumn safely retrieves a column value from a record.
func getColumn(record []string, colIndex map[string]int, col string) string {
	if idx, ok := colIndex[col]; ok && idx < len(record) {
		return record[idx]
	}
	return ""
}
