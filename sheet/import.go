// Package sheet is the spreadsheet boundary: it turns xlsx workbooks into
// plain ContentItem collections and back, keeping the state engine free of
// any file-format knowledge.
package sheet

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"mktflow/model"
)

// ErrMissingColumns reports a workbook without the required header columns.
var ErrMissingColumns = errors.New("workbook must contain 'Título', 'Fecha' and 'Categoría' columns (Spanish or English headers)")

// ErrNoRows reports an empty workbook.
var ErrNoRows = errors.New("workbook is empty or has no header row")

var (
	titleHeaders       = []string{"titulo", "title"}
	dateHeaders        = []string{"fecha", "date"}
	categoryHeaders    = []string{"categoria", "category"}
	descriptionHeaders = []string{"descripcion", "description", "copy"}
)

// ImportFile reads the first worksheet of an xlsx file and converts its rows
// into content items. Invalid rows are skipped and reported as warnings.
func ImportFile(path string) ([]model.ContentItem, []string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, ErrNoRows
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, fmt.Errorf("read worksheet %q: %w", sheets[0], err)
	}
	return ItemsFromRows(rows)
}

// ItemsFromRows converts a header row plus data rows into content items.
// Rows missing a required field, with an unparsable date, or with an
// unrecognized category are skipped, never fatal; each skip produces a
// warning. Imported items get fresh IDs and start as Todo.
func ItemsFromRows(rows [][]string) ([]model.ContentItem, []string, error) {
	if len(rows) == 0 {
		return nil, nil, ErrNoRows
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = foldText(h)
	}

	titleIdx := findColumn(headers, titleHeaders)
	dateIdx := findColumn(headers, dateHeaders)
	categoryIdx := findColumn(headers, categoryHeaders)
	descriptionIdx := findColumn(headers, descriptionHeaders)

	if titleIdx < 0 || dateIdx < 0 || categoryIdx < 0 {
		return nil, nil, ErrMissingColumns
	}

	items := make([]model.ContentItem, 0, len(rows)-1)
	var warnings []string

	for n, row := range rows[1:] {
		title := cell(row, titleIdx)
		rawDate := cell(row, dateIdx)
		rawCategory := cell(row, categoryIdx)
		if title == "" || rawDate == "" || rawCategory == "" {
			warnings = append(warnings, fmt.Sprintf("fila %d: faltan campos obligatorios", n+2))
			continue
		}

		category, ok := MatchCategory(rawCategory)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("fila %d: categoría no válida %q", n+2, rawCategory))
			continue
		}

		date, err := ParseDate(rawDate)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("fila %d: fecha no válida %q", n+2, rawDate))
			continue
		}

		items = append(items, model.ContentItem{
			ID:          model.NewID(),
			Title:       title,
			Date:        date,
			Category:    category,
			Description: cell(row, descriptionIdx),
			Status:      model.StatusTodo,
		})
	}

	return items, warnings, nil
}

// MatchCategory resolves a raw cell value against the closed category set,
// ignoring case, accents and the emoji prefix ("educativo" matches
// "📚 Educativo").
func MatchCategory(raw string) (model.ContentCategory, bool) {
	needle := foldText(raw)
	if needle == "" {
		return "", false
	}
	for _, c := range model.ContentCategories {
		if strings.Contains(foldText(string(c)), needle) {
			return c, true
		}
	}
	return "", false
}

// ParseDate accepts the date shapes spreadsheets produce: ISO YYYY-MM-DD,
// slash or dash separated day-first dates (DD/MM/YYYY preferred, MM/DD/YYYY
// as fallback when day-first is impossible), two-digit years (mapped into
// 2000-2099) and raw Excel serial numbers. The result is midnight UTC.
func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, errors.New("empty date")
	}

	if serial, err := strconv.ParseFloat(raw, 64); err == nil && serial > 59 {
		// Excel serial day count, epoch 1899-12-30.
		epoch := time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)
		return epoch.AddDate(0, 0, int(serial)), nil
	}

	parts := strings.FieldsFunc(raw, func(r rune) bool { return r == '/' || r == '-' || r == '.' })
	if len(parts) == 3 {
		if t, ok := dateFromParts(parts); ok {
			return t, nil
		}
	}

	for _, layout := range []string{"2006-01-02", time.RFC3339, "2006-01-02 15:04:05", "02 Jan 2006"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return model.Date(t.Year(), t.Month(), t.Day()), nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date format: %q", raw)
}

func dateFromParts(parts []string) (time.Time, bool) {
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return time.Time{}, false
		}
		nums[i] = n
	}

	var day, month, year int
	switch {
	case len(parts[0]) == 4: // YYYY/MM/DD
		year, month, day = nums[0], nums[1], nums[2]
		if valid := validYMD(year, month, day); valid {
			return model.Date(year, time.Month(month), day), true
		}
		return time.Time{}, false
	default: // DD/MM/YYYY, MM/DD/YYYY or DD/MM/YY
		day, month, year = nums[0], nums[1], nums[2]
		if year < 100 {
			year += 2000
		}
	}

	// Day-first wins; month-first only when day-first is not a real date.
	if validYMD(year, month, day) {
		return model.Date(year, time.Month(month), day), true
	}
	if validYMD(year, day, month) {
		return model.Date(year, time.Month(day), month), true
	}
	return time.Time{}, false
}

func validYMD(year, month, day int) bool {
	if month < 1 || month > 12 || day < 1 {
		return false
	}
	t := model.Date(year, time.Month(month), day)
	return t.Year() == year && int(t.Month()) == month && t.Day() == day
}

func findColumn(headers []string, keys []string) int {
	for _, key := range keys {
		for i, h := range headers {
			if h == key {
				return i
			}
		}
	}
	return -1
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// foldText lowercases and strips the accents and symbols that vary between
// Spanish and English headers, so "Título" and "titulo" compare equal.
func foldText(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	for _, r := range s {
		switch r {
		case 'á':
			b.WriteRune('a')
		case 'é':
			b.WriteRune('e')
		case 'í':
			b.WriteRune('i')
		case 'ó':
			b.WriteRune('o')
		case 'ú', 'ü':
			b.WriteRune('u')
		case 'ñ':
			b.WriteRune('n')
		default:
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
