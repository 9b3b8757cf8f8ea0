package sheets

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"settlement_console/internal/usecase/interfaces"

	"github.com/PuerkitoBio/goquery"
	"github.com/gabriel-vasile/mimetype"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrNoSheet           = errors.New("file has no sheet or table")
	ErrTooLarge          = errors.New("file too large")
)

// MaxUploadBytes caps how much of an upload is read.
const MaxUploadBytes = 10 << 20

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Decoder sniffs the upload type and returns the rows of its first sheet,
// first HTML table, or delimited text.
type Decoder struct {
	logger *zap.Logger
}

var _ interfaces.ISheetDecoder = (*Decoder)(nil)

func NewDecoder(logger *zap.Logger) *Decoder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Decoder{logger: logger}
}

func (d *Decoder) Decode(ctx context.Context, r io.Reader) ([][]string, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxUploadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if len(data) > MaxUploadBytes {
		return nil, ErrTooLarge
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	mt := mimetype.Detect(data)
	d.logger.Debug("[import][sheets] detected upload type", zap.String("mime", mt.String()), zap.Int("bytes", len(data)))

	switch {
	case mt.Is(xlsxMIME), mt.Is("application/zip"):
		return DecodeXLSX(data)
	case mt.Is("text/html"):
		return DecodeHTML(data)
	case mt.Is("text/csv"), mt.Is("text/tab-separated-values"), mt.Is("text/plain"):
		return DecodeDelimited(data)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, mt.String())
}

// DecodeXLSX returns the rows of the first worksheet.
func DecodeXLSX(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("excelize.OpenReader: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoSheet
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("excelize.GetRows: %w", err)
	}
	return rows, nil
}

// DecodeHTML returns the rows of the first <table>, header cells included.
func DecodeHTML(data []byte) ([][]string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("goquery.NewDocumentFromReader: %w", err)
	}
	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, ErrNoSheet
	}

	var rows [][]string
	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		var row []string
		tr.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
			row = append(row, strings.TrimSpace(cell.Text()))
		})
		rows = append(rows, row)
	})
	return rows, nil
}

// DecodeDelimited reads CSV-like text, guessing the delimiter from the first
// non-empty line (tab, full-width comma, then comma).
func DecodeDelimited(data []byte) ([][]string, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	cr := csv.NewReader(bytes.NewReader(data))
	cr.Comma = guessDelimiter(string(data))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv.ReadAll: %w", err)
	}
	return rows, nil
}

func guessDelimiter(text string) rune {
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		switch {
		case strings.Contains(line, "\t"):
			return '\t'
		case strings.Contains(line, "，"):
			return '，'
		}
		return ','
	}
	return ','
}
