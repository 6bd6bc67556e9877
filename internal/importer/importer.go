// Package importer parses the weekly roster sheet into allocation entries.
//
// The sheet is laid out as repeating blocks: a marker row whose first cell
// contains the week marker introduces a block, the following row carries the
// dates of up to five weekdays, and each row after that holds one
// workstation's occupants across those dates. A blank workstation cell ends
// the block.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"deskswap/internal/model"
)

// Entry is one parsed (date, workstation, occupant) triple.
type Entry struct {
	Date        model.Date
	Workstation int
	Occupant    string
}

const (
	weekMarker = "SEMANA"

	// Column layout of the source sheet.
	colMarker      = 0 // week marker
	colWorkstation = 1 // workstation number
	colFirstDay    = 2 // Monday
	colLastDay     = 6 // Friday
)

// dayMonthRe matches the "02/02" part of header cells like "Lunes 02/02".
var dayMonthRe = regexp.MustCompile(`(\d{2})/(\d{2})`)

// Sentinel cell values that mean "unoccupied".
var sentinels = map[string]bool{
	"":      true,
	"X":     true,
	"Libre": true,
	"nan":   true,
}

// Parser converts a cell grid into entries.
type Parser struct {
	// Year applied to the day/month header cells, which carry no year of
	// their own.
	Year int
}

// Parse scans the grid for weekly blocks and emits one entry per occupied
// (date, workstation) cell.
func (p Parser) Parse(rows [][]string) ([]Entry, error) {
	var entries []Entry

	row := 0
	for row < len(rows) {
		if !strings.Contains(cell(rows[row], colMarker), weekMarker) {
			row++
			continue
		}

		if row+1 >= len(rows) {
			break
		}
		dates := p.headerDates(rows[row+1])
		if len(dates) == 0 {
			return nil, fmt.Errorf("week block at row %d has no parsable dates", row+1)
		}

		cursor := row + 2
		for cursor < len(rows) {
			wsCell := strings.TrimSpace(cell(rows[cursor], colWorkstation))
			if wsCell == "" {
				break
			}
			wsNumber, err := strconv.Atoi(wsCell)
			if err != nil {
				return nil, fmt.Errorf("row %d: invalid workstation number %q", cursor+1, wsCell)
			}

			for col := colFirstDay; col <= colLastDay; col++ {
				date, ok := dates[col]
				if !ok {
					continue
				}
				occupant := strings.TrimSpace(cell(rows[cursor], col))
				if sentinels[occupant] {
					continue
				}
				entries = append(entries, Entry{
					Date:        date,
					Workstation: wsNumber,
					Occupant:    occupant,
				})
			}
			cursor++
		}
		row = cursor
	}

	return entries, nil
}

// headerDates extracts the per-column dates from the row following a week
// marker. Columns whose cell does not carry a day/month pair are skipped.
func (p Parser) headerDates(row []string) map[int]model.Date {
	dates := make(map[int]model.Date)
	for col := colFirstDay; col <= colLastDay; col++ {
		m := dayMonthRe.FindStringSubmatch(cell(row, col))
		if m == nil {
			continue
		}
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		dates[col] = model.NewDate(p.Year, time.Month(month), day)
	}
	return dates
}

func cell(row []string, col int) string {
	if col >= len(row) {
		return ""
	}
	return row[col]
}

// ReadXLSX extracts the cell grid of the first sheet of an xlsx document.
func ReadXLSX(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("xlsx has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	return rows, nil
}

// ReadCSV extracts the cell grid of a csv document. Rows may have ragged
// lengths.
func ReadCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return rows, nil
}

// Load reads and parses a roster document, dispatching on the file
// extension. ".xlsx" is read with excelize, everything else as csv.
func Load(r io.Reader, filename string, year int) ([]Entry, error) {
	var (
		rows [][]string
		err  error
	)
	if strings.EqualFold(filepath.Ext(filename), ".xlsx") {
		rows, err = ReadXLSX(r)
	} else {
		rows, err = ReadCSV(r)
	}
	if err != nil {
		return nil, err
	}
	return Parser{Year: year}.Parse(rows)
}
