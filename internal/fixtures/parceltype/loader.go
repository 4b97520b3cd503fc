package parceltype

import (
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/amirasaad/parcels/pkg/domain"
)

//go:embed types.csv
var typesCSV string

// LoadParcelTypesCSV loads parcel types from a CSV file or embedded content.
// If path is empty, it uses the embedded CSV content.
func LoadParcelTypesCSV(path string) ([]domain.ParcelType, error) {
	var r io.Reader

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open file: %w", err)
		}
		defer func() {
			_ = f.Close()
		}()
		r = f
	} else {
		r = strings.NewReader(typesCSV)
	}

	return parseParcelTypesCSV(r)
}

func parseParcelTypesCSV(r io.Reader) ([]domain.ParcelType, error) {
	csvReader := csv.NewReader(r)
	csvReader.TrimLeadingSpace = true
	records, err := csvReader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, errors.New("invalid CSV format: missing header")
	}
	if len(records[0]) < 2 {
		return nil, fmt.Errorf("invalid CSV format: expected at least 2 columns, got %d", len(records[0]))
	}

	types := make([]domain.ParcelType, 0, len(records)-1)
	seen := make(map[int64]struct{}, len(records)-1)
	for i, rec := range records[1:] {
		line := i + 2
		id, err := strconv.ParseInt(strings.TrimSpace(rec[0]), 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("line %d: invalid id %q", line, rec[0])
		}
		name := strings.TrimSpace(rec[1])
		if name == "" {
			return nil, fmt.Errorf("line %d: empty name", line)
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("line %d: duplicate id %d", line, id)
		}
		seen[id] = struct{}{}
		types = append(types, domain.ParcelType{ID: id, Name: name})
	}
	return types, nil
}
