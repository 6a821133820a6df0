package extract

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"invopo/internal/domain"
)

// extractCSV parses the file as tabular data. The first record is the
// header row, the remainder the data rows. The text component is the
// column-aligned rendering of the parsed table; the tables component is
// that single table.
func extractCSV(_ context.Context, path string) (*domain.ExtractedContent, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening CSV file: %w", err)
	}
	defer func() { _ = f.Close() }()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedCSV, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: file is empty", domain.ErrMalformedCSV)
	}

	table := domain.Table{
		Headers: records[0],
		Rows:    records[1:],
	}

	return &domain.ExtractedContent{
		Text:   table.Format(),
		Tables: []domain.Table{table},
	}, nil
}
