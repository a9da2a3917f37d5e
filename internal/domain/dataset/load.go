package dataset

import (
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

const (
	defaultMaxRows    = 100_000
	ctxCheckEveryRows = 1024
	utf8BOM           = "\ufeff"
)

var errUnsupportedFormat = errors.New("unsupported file format")

// LoadOption configures Load.
type LoadOption func(*loadOptions)

type loadOptions struct {
	maxRows int
	sheet   string
}

// WithMaxRows caps the number of data rows accepted.
func WithMaxRows(n int) LoadOption {
	return func(o *loadOptions) {
		if n > 0 {
			o.maxRows = n
		}
	}
}

// WithSheet selects the worksheet of an Excel workbook. Defaults to the first sheet.
func WithSheet(name string) LoadOption {
	return func(o *loadOptions) {
		o.sheet = name
	}
}

// Load parses a CSV or Excel export into a Dataset. The format is picked from the
// extension of name.
func Load(ctx context.Context, name string, r io.Reader, opts ...LoadOption) (*Dataset, error) {
	o := loadOptions{maxRows: defaultMaxRows}
	for _, opt := range opts {
		opt(&o)
	}

	var (
		table [][]string
		err   error
	)
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv", ".txt":
		table, err = readCSV(ctx, r)
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		table, err = readExcel(ctx, r, o.sheet)
	default:
		err = fmt.Errorf("%w: %q", errUnsupportedFormat, filepath.Ext(name))
	}
	if err != nil {
		return nil, &DataLoadError{Source: name, Err: err}
	}
	return fromTable(name, table, o.maxRows)
}

// LoadFile opens and parses a dataset from disk.
func LoadFile(ctx context.Context, path string, opts ...LoadOption) (*Dataset, error) {
	f, err := os.Open(path) //nolint:gosec // path is operator supplied
	if err != nil {
		return nil, &DataLoadError{Source: path, Err: err}
	}
	defer func() { _ = f.Close() }()
	return Load(ctx, filepath.Base(path), f, opts...)
}

func readCSV(ctx context.Context, r io.Reader) ([][]string, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(4096)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		return nil, err
	}

	cr := csv.NewReader(br)
	cr.Comma = detectDelimiter(head)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var table [][]string
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		table = append(table, rec)
		if len(table)%ctxCheckEveryRows == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
	}
	return table, nil
}

// detectDelimiter picks ';' for spreadsheet exports from comma-decimal locales.
func detectDelimiter(head []byte) rune {
	line := head
	if i := bytes.IndexByte(head, '\n'); i >= 0 {
		line = head[:i]
	}
	if bytes.Count(line, []byte{';'}) > bytes.Count(line, []byte{','}) {
		return ';'
	}
	return ','
}

func readExcel(ctx context.Context, r io.Reader, sheet string) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.New("workbook has no sheets")
		}
		sheet = sheets[0]
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	// Stored values, not the display text of the cell's number format.
	return f.GetRows(sheet, excelize.Options{RawCellValue: true})
}

func fromTable(name string, table [][]string, maxRows int) (*Dataset, error) {
	for len(table) > 0 && blank(table[0]) {
		table = table[1:]
	}
	if len(table) == 0 {
		return nil, &DataLoadError{Source: name, Err: errors.New("no header row")}
	}

	header := make([]string, len(table[0]))
	for i, h := range table[0] {
		if i == 0 {
			h = strings.TrimPrefix(h, utf8BOM)
		}
		if strings.TrimSpace(h) == "" {
			h = fmt.Sprintf("Unnamed: %d", i)
		}
		header[i] = h
	}

	rows := make([][]any, 0, len(table)-1)
	for n, rec := range table[1:] {
		if blank(rec) {
			continue
		}
		if len(rows) == maxRows {
			return nil, &DataLoadError{Source: name, Err: fmt.Errorf("more than %d rows", maxRows)}
		}
		if len(rec) > len(header) {
			extra := rec[len(header):]
			if !blank(extra) {
				return nil, &DataLoadError{Source: name, Err: fmt.Errorf("line %d has %d cells, header has %d", n+2, len(rec), len(header))}
			}
			rec = rec[:len(header)]
		}
		row := make([]any, len(rec))
		for i, c := range rec {
			row[i] = c
		}
		rows = append(rows, row)
	}
	return New(name, header, rows)
}

func blank(rec []string) bool {
	for _, c := range rec {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
