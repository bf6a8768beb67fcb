package catalog

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/rinisriranganathan/RestBot/internal/money"
)

// Expected workbook column headers, first row of the first sheet.
// Matching is case-insensitive; ImageURL is optional.
var expectedHeaders = []string{
	"ID",
	"Name",
	"Description",
	"ImageURL",
	"Category",
	"TasteProfiles",
	"Price",
	"Pieces",
}

const fallbackImage = "https://picsum.photos/200/200?grayscale"

// ParseWorkbook reads a menu workbook and returns the valid entries.
// Rows missing id/name or carrying an unknown category are skipped with a log
// line, never fatal; a sheet with no usable rows is an error so the caller can
// fall back to the default menu.
func ParseWorkbook(r io.Reader) ([]Entry, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, errors.New("workbook has no sheets")
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, errors.New("workbook has no data rows")
	}

	cols, err := mapHeaders(rows[0])
	if err != nil {
		return nil, err
	}

	var entries []Entry
	for i, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}

		id := strings.TrimSpace(cell(row, cols["id"]))
		name := strings.TrimSpace(cell(row, cols["name"]))
		if id == "" || name == "" {
			log.Printf("catalog: skipping row %d: missing id or name", i+2)
			continue
		}

		category, err := ParseCategory(strings.TrimSpace(cell(row, cols["category"])))
		if err != nil {
			log.Printf("catalog: skipping %q (row %d): %v", name, i+2, err)
			continue
		}

		price, err := money.Parse(cell(row, cols["price"]))
		if err != nil {
			log.Printf("catalog: skipping %q (row %d): bad price %q", name, i+2, cell(row, cols["price"]))
			continue
		}

		image := strings.TrimSpace(cell(row, col(cols, "imageurl")))
		if image == "" {
			image = fallbackImage
		}

		entries = append(entries, Entry{
			ID:            id,
			Name:          name,
			Description:   strings.TrimSpace(cell(row, cols["description"])),
			Image:         image,
			Category:      category,
			TasteProfiles: splitProfiles(cell(row, cols["tasteprofiles"])),
			Price:         price,
			Pieces:        parsePieces(cell(row, cols["pieces"])),
		})
	}

	if len(entries) == 0 {
		return nil, errors.New("workbook contained no valid menu rows")
	}
	return entries, nil
}

func mapHeaders(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, want := range expectedHeaders {
		key := strings.ToLower(want)
		if key == "imageurl" {
			continue
		}
		if _, ok := cols[key]; !ok {
			return nil, fmt.Errorf("missing expected column header %q", want)
		}
	}
	return cols, nil
}

// col returns -1 for headers not present in the workbook (optional columns).
func col(cols map[string]int, name string) int {
	i, ok := cols[name]
	if !ok {
		return -1
	}
	return i
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

func isBlankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func splitProfiles(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parsePieces(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 0
	}
	return n
}
