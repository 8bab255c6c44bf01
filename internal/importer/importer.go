package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"storefront/internal/domain"
)

type ProductWriter interface {
	Upsert(ctx context.Context, product domain.Product) (*domain.Product, error)
}

// CSVImporter reads a product CSV and upserts every row.
//
// Expected header: id,name,description,price,category,sizes,colors,images,featured,inStock.
// List columns use ';' as separator; price is a decimal amount such as 89.99.
type CSVImporter struct {
	reader      *csv.Reader
	productRepo ProductWriter
}

func NewCSVImporter(r io.Reader, repo ProductWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	csvr.TrimLeadingSpace = true
	return &CSVImporter{
		reader:      csvr,
		productRepo: repo,
	}
}

var requiredHeaders = []string{"id", "name", "price", "category"}

// Run parses all rows and returns the number of upserted products.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)
	for _, h := range requiredHeaders {
		if _, ok := index[h]; !ok {
			return 0, fmt.Errorf("missing required column %q", h)
		}
	}

	imported := 0
	for line := 2; ; line++ {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row %d: %w", line, err)
		}
		if isBlank(record) {
			continue
		}

		p, err := parseRow(record, index)
		if err != nil {
			return imported, fmt.Errorf("row %d: %w", line, err)
		}
		if _, err := i.productRepo.Upsert(ctx, p); err != nil {
			return imported, fmt.Errorf("upsert product %q: %w", p.ID, err)
		}
		imported++
	}
	return imported, nil
}

func parseRow(record []string, index map[string]int) (domain.Product, error) {
	p := domain.Product{
		ID:          pick(record, index, "id"),
		Name:        pick(record, index, "name"),
		Description: pick(record, index, "description"),
		Category:    strings.ToLower(pick(record, index, "category")),
		Sizes:       splitList(pick(record, index, "sizes")),
		Colors:      splitList(pick(record, index, "colors")),
		Images:      splitList(pick(record, index, "images")),
		InStock:     true,
	}
	if p.ID == "" || p.Name == "" || p.Category == "" {
		return p, fmt.Errorf("%w: id, name and category are required", domain.ErrInvalidInput)
	}

	price, err := decimal.NewFromString(pick(record, index, "price"))
	if err != nil || price.IsNegative() {
		return p, fmt.Errorf("%w: invalid price for %q", domain.ErrInvalidInput, p.ID)
	}
	p.PriceCents = price.Shift(2).Round(0).IntPart()

	if v := pick(record, index, "featured"); v != "" {
		if p.Featured, err = strconv.ParseBool(v); err != nil {
			return p, fmt.Errorf("%w: invalid featured flag for %q", domain.ErrInvalidInput, p.ID)
		}
	}
	if v := pick(record, index, "inStock"); v != "" {
		if p.InStock, err = strconv.ParseBool(v); err != nil {
			return p, fmt.Errorf("%w: invalid inStock flag for %q", domain.ErrInvalidInput, p.ID)
		}
	}
	return p, nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.TrimSpace(h)] = i
	}
	return idx
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}

func splitList(v string) []string {
	out := []string{}
	for _, part := range strings.Split(v, ";") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func isBlank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
