package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

var (
	// ErrLoad indicates a missing or malformed input file.
	ErrLoad = errors.New("cannot load dataset")
	// ErrColumnNotFound indicates a requested column is absent from the table.
	ErrColumnNotFound = errors.New("column not found")
	// ErrMissingValue indicates the completeness check found a missing value.
	ErrMissingValue = errors.New("missing value in dataset")
	// ErrLengthMismatch indicates a column length disagrees with the table.
	ErrLengthMismatch = errors.New("column length mismatch")
)

// Table is an immutable in-memory observation table: rows keyed by an integer
// index (typically a year), columns of float64 series.
type Table struct {
	indexName string
	index     []int
	names     []string
	columns   map[string][]float64
}

// Load reads a CSV file with a header row into a Table.
//
// The first header cell names the row index; every remaining cell names a
// float64 column. Empty cells and the literal "NA" parse as NaN and are
// caught later by the completeness check, so a partially missing file loads
// but cannot be fit.
//
// Returns an error wrapping ErrLoad if the file is missing or malformed.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("%w: need a header row and at least one data row, got %d rows", ErrLoad, len(records))
	}

	header := records[0]
	if len(header) < 2 {
		return nil, fmt.Errorf("%w: need an index column and at least one data column", ErrLoad)
	}

	t := &Table{
		indexName: strings.TrimSpace(header[0]),
		names:     make([]string, 0, len(header)-1),
		columns:   make(map[string][]float64, len(header)-1),
	}
	for _, name := range header[1:] {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("%w: empty column name in header", ErrLoad)
		}
		if _, exists := t.columns[name]; exists {
			return nil, fmt.Errorf("%w: duplicate column name %q", ErrLoad, name)
		}
		t.names = append(t.names, name)
		t.columns[name] = make([]float64, 0, len(records)-1)
	}

	seen := make(map[int]struct{}, len(records)-1)
	for rowNum, record := range records[1:] {
		if len(record) != len(header) {
			return nil, fmt.Errorf("%w: row %d has %d fields, header has %d", ErrLoad, rowNum+1, len(record), len(header))
		}

		idx, err := strconv.Atoi(strings.TrimSpace(record[0]))
		if err != nil {
			return nil, fmt.Errorf("%w: row %d has non-integer index %q", ErrLoad, rowNum+1, record[0])
		}
		if _, dup := seen[idx]; dup {
			return nil, fmt.Errorf("%w: duplicate index %d", ErrLoad, idx)
		}
		seen[idx] = struct{}{}
		t.index = append(t.index, idx)

		for i, field := range record[1:] {
			v, err := parseCell(field)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d column %q: %w", ErrLoad, rowNum+1, t.names[i], err)
			}
			t.columns[t.names[i]] = append(t.columns[t.names[i]], v)
		}
	}

	return t, nil
}

// parseCell parses one data cell. Empty cells and "NA" become NaN.
func parseCell(field string) (float64, error) {
	field = strings.TrimSpace(field)
	if field == "" || strings.EqualFold(field, "na") {
		return math.NaN(), nil
	}

	return strconv.ParseFloat(field, 64)
}

// New creates an empty table with the given index column. Intended for
// programmatic construction in tests and prediction grids; production data
// normally arrives via Load.
func New(indexName string, index []int) *Table {
	return &Table{
		indexName: indexName,
		index:     append([]int(nil), index...),
		columns:   make(map[string][]float64),
	}
}

// AddColumn appends a named column. The column length must match the index.
func (t *Table) AddColumn(name string, values []float64) error {
	if len(values) != len(t.index) {
		return fmt.Errorf("%w: column %q has %d values, table has %d rows", ErrLengthMismatch, name, len(values), len(t.index))
	}
	if _, exists := t.columns[name]; exists {
		return fmt.Errorf("column %q already exists", name)
	}

	t.names = append(t.names, name)
	t.columns[name] = append([]float64(nil), values...)

	return nil
}

// NumRows returns the number of observations.
func (t *Table) NumRows() int {
	return len(t.index)
}

// IndexName returns the name of the index column.
func (t *Table) IndexName() string {
	return t.indexName
}

// Index returns a copy of the row index values.
func (t *Table) Index() []int {
	return append([]int(nil), t.index...)
}

// ColumnNames returns the data column names in file order.
func (t *Table) ColumnNames() []string {
	return append([]string(nil), t.names...)
}

// HasColumn reports whether the table contains the named column.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.columns[name]
	return ok
}

// Column returns a copy of the named column.
//
// Returns an error wrapping ErrColumnNotFound when the column is absent.
func (t *Table) Column(name string) ([]float64, error) {
	values, ok := t.columns[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}

	return append([]float64(nil), values...), nil
}

// CheckComplete verifies that the named columns contain no missing values.
// With no arguments it checks every column.
//
// Returns an error wrapping ErrMissingValue naming the first offending cell.
func (t *Table) CheckComplete(names ...string) error {
	if len(names) == 0 {
		names = t.names
	}

	for _, name := range names {
		values, ok := t.columns[name]
		if !ok {
			return fmt.Errorf("%w: %q", ErrColumnNotFound, name)
		}
		for i, v := range values {
			if math.IsNaN(v) {
				return fmt.Errorf("%w: column %q, index %d", ErrMissingValue, name, t.index[i])
			}
		}
	}

	return nil
}
