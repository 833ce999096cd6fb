// Package freetier extracts canonical financial data from CSV and Excel
// files without any paid vendor call. It is the first strategy attempted by
// the escalation controller.
package freetier

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/xuri/excelize/v2"

	"bizworth/internal/amount"
	"bizworth/internal/domain"
)

// singlePeriodLabel keys the per-period maps when no period columns are
// detected in the header.
const singlePeriodLabel = "current"

var (
	yearRe     = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	dayRangeRe = regexp.MustCompile(`(?i)\b(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\s*\d{1,2}\s*-\s*(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\s*\d{1,2}`)
	monthRe    = regexp.MustCompile(`(?i)\b(january|february|march|april|may|june|july|august|september|october|november|december|jan|feb|mar|apr|jun|jul|aug|sep|oct|nov|dec)\b`)
)

// Parse extracts canonical data from raw file bytes. The filename extension
// selects the CSV or Excel path. The returned result always carries a
// method tag and a confidence; Success is false when the file has too few
// rows, which the caller may treat as grounds for escalation.
func Parse(data []byte, filename string) *domain.ExtractionResult {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	switch ext {
	case "xlsx", "xls":
		return ParseExcel(data)
	default:
		return ParseCSV(data)
	}
}

// ParseCSV extracts canonical data from CSV bytes. Quoted fields containing
// commas are handled by encoding/csv.
func ParseCSV(data []byte) *domain.ExtractionResult {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	var rows [][]string
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return failed(domain.MethodFreeCSV, fmt.Sprintf("reading csv: %v", err))
		}
		if !rowEmpty(rec) {
			rows = append(rows, rec)
		}
	}

	return parseRows(rows, domain.MethodFreeCSV)
}

// ParseExcel extracts canonical data from an Excel workbook. Rows from all
// sheets are concatenated before parsing, so statements split across sheets
// still land in one dataset.
func ParseExcel(data []byte) *domain.ExtractionResult {
	fl, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return failed(domain.MethodFreeExcel, fmt.Sprintf("opening workbook: %v", err))
	}
	defer func() { _ = fl.Close() }()

	var rows [][]string
	for _, sheet := range fl.GetSheetList() {
		sheetRows, err := fl.GetRows(sheet)
		if err != nil {
			return failed(domain.MethodFreeExcel, fmt.Sprintf("reading sheet %q: %v", sheet, err))
		}
		for _, rec := range sheetRows {
			if !rowEmpty(rec) {
				rows = append(rows, rec)
			}
		}
	}

	return parseRows(rows, domain.MethodFreeExcel)
}

func parseRows(rows [][]string, method domain.ExtractionMethod) *domain.ExtractionResult {
	if len(rows) < 2 {
		return failed(method, "file has fewer than 2 non-empty rows; nothing to extract")
	}

	data := domain.NewCanonicalFinancialData()

	periodCols := detectPeriodColumns(rows[0])
	var fields int
	if len(periodCols) > 0 {
		fields = parseMultiPeriod(rows, periodCols, data)
	} else {
		fields = parseSinglePeriod(rows, data)
	}

	confidence := float64(fields) * 10
	if len(periodCols) > 0 {
		confidence = float64(fields) * 2
	}
	if confidence > 100 {
		confidence = 100
	}

	return &domain.ExtractionResult{
		Success:    true,
		Data:       data,
		Confidence: confidence,
		CostUSD:    0,
		Method:     method,
	}
}

// detectPeriodColumns scans the header row (columns after column 0) for
// tokens that look like period labels: a 4-digit year, a day-range such as
// "Jan 1 - Mar 31", or a month name. Returns column index → period label.
func detectPeriodColumns(header []string) map[int]string {
	cols := make(map[int]string)
	for i := 1; i < len(header); i++ {
		cell := strings.TrimSpace(header[i])
		if cell == "" {
			continue
		}
		if yearRe.MatchString(cell) || dayRangeRe.MatchString(cell) || monthRe.MatchString(cell) {
			cols[i] = cell
		}
	}
	return cols
}

// parseMultiPeriod handles the row-based layout: column 0 of each row after
// the header holds a field name, period columns hold its values.
func parseMultiPeriod(rows [][]string, periodCols map[int]string, data *domain.CanonicalFinancialData) int {
	// Register periods in header order so Periods preserves document order.
	for i := 1; i < len(rows[0]); i++ {
		if label, ok := periodCols[i]; ok {
			data.AddPeriod(label)
		}
	}

	var fields int
	for _, row := range rows[1:] {
		if len(row) == 0 {
			continue
		}
		// "Category,Item,..." layouts put the field name in column 1 with a
		// broad category in column 0; prefer the more specific item label
		// when column 1 is textual and recognized.
		var setter fieldSetter
		if _, isPeriod := periodCols[1]; !isPeriod && len(row) > 1 {
			if _, numeric := amount.Parse(row[1]); !numeric {
				if s, ok := lookupField(row[1]); ok {
					setter = s
				}
			}
		}
		if setter == nil {
			s, ok := lookupField(row[0])
			if !ok {
				continue
			}
			setter = s
		}
		for col, label := range periodCols {
			if col >= len(row) {
				continue
			}
			if v, ok := amount.Parse(row[col]); ok {
				setter(data, label, v)
				fields++
			}
		}
	}
	return fields
}

// parseSinglePeriod handles files without period columns. Rows are treated
// as label/value pairs: column 0 is matched against the synonym dictionaries
// and the first parseable numeric cell in the row supplies the value. This
// also covers the degenerate "header" row, which in label/value files is
// just the first data row.
func parseSinglePeriod(rows [][]string, data *domain.CanonicalFinancialData) int {
	var fields int
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		setter, ok := lookupField(row[0])
		if !ok {
			continue
		}
		for _, cell := range row[1:] {
			if v, parsed := amount.Parse(cell); parsed {
				setter(data, singlePeriodLabel, v)
				fields++
				break
			}
		}
	}
	return fields
}

func rowEmpty(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func failed(method domain.ExtractionMethod, msg string) *domain.ExtractionResult {
	return &domain.ExtractionResult{
		Success: false,
		Method:  method,
		Error:   msg,
	}
}
