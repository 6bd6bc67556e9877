package importer

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deskswap/internal/model"
)

func TestParser_Parse_SingleBlock(t *testing.T) {
	rows := [][]string{
		{"SEMANA 1", "", "", "", "", "", ""},
		{"", "Puesto", "Lunes 02/02", "Martes 03/02", "Miércoles 04/02", "Jueves 05/02", "Viernes 06/02"},
		{"", "24", "Ana García", "X", "Ana García", "Libre", ""},
		{"", "25", "Luis Pérez", "Luis Pérez", "", "X", "Luis Pérez"},
		{"", "", "", "", "", "", ""},
	}

	entries, err := Parser{Year: 2026}.Parse(rows)
	require.NoError(t, err)

	assert.Len(t, entries, 5)
	assert.Equal(t, Entry{
		Date:        model.NewDate(2026, time.February, 2),
		Workstation: 24,
		Occupant:    "Ana García",
	}, entries[0])

	// Sentinel cells ("X", "Libre", blank) produce no entries.
	for _, e := range entries {
		assert.NotEmpty(t, e.Occupant)
		assert.NotEqual(t, "X", e.Occupant)
		assert.NotEqual(t, "Libre", e.Occupant)
	}
}

func TestParser_Parse_MultipleBlocks(t *testing.T) {
	rows := [][]string{
		{"junk header", "", ""},
		{"SEMANA 1", "", ""},
		{"", "", "Lunes 02/02", "Martes 03/02"},
		{"", "24", "Ana", "Ana"},
		{"", "", ""},
		{"SEMANA 2", "", ""},
		{"", "", "Lunes 09/02"},
		{"", "24", "Luis"},
	}

	entries, err := Parser{Year: 2026}.Parse(rows)
	require.NoError(t, err)

	require.Len(t, entries, 3)
	assert.True(t, entries[0].Date.Equal(model.NewDate(2026, time.February, 2)))
	assert.True(t, entries[1].Date.Equal(model.NewDate(2026, time.February, 3)))
	assert.True(t, entries[2].Date.Equal(model.NewDate(2026, time.February, 9)))
	assert.Equal(t, "Luis", entries[2].Occupant)
}

func TestParser_Parse_RaggedRows(t *testing.T) {
	// Rows shorter than the date columns must not panic; missing cells are
	// treated as unoccupied.
	rows := [][]string{
		{"SEMANA 1"},
		{"", "", "Lunes 02/02", "Martes 03/02"},
		{"", "24", "Ana"},
	}

	entries, err := Parser{Year: 2026}.Parse(rows)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Ana", entries[0].Occupant)
}

func TestParser_Parse_InvalidWorkstation(t *testing.T) {
	rows := [][]string{
		{"SEMANA 1"},
		{"", "", "Lunes 02/02"},
		{"", "not-a-number", "Ana"},
	}

	_, err := Parser{Year: 2026}.Parse(rows)
	assert.Error(t, err)
}

func TestParser_Parse_NoDatesInHeader(t *testing.T) {
	rows := [][]string{
		{"SEMANA 1"},
		{"", "", "no dates here"},
	}

	_, err := Parser{Year: 2026}.Parse(rows)
	assert.Error(t, err)
}

func TestParser_Parse_NoBlocks(t *testing.T) {
	rows := [][]string{
		{"some", "unrelated", "content"},
	}

	entries, err := Parser{Year: 2026}.Parse(rows)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestReadCSV(t *testing.T) {
	input := strings.Join([]string{
		"SEMANA 1,,,,",
		",Puesto,Lunes 02/02,Martes 03/02,",
		",24,Ana,X,",
	}, "\n")

	rows, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "24", rows[2][1])
}

func TestLoad_CSVRoundTrip(t *testing.T) {
	input := strings.Join([]string{
		"SEMANA 1,,,,",
		",Puesto,Lunes 02/02,Martes 03/02,",
		",24,Ana,X,",
		",25,Luis,Luis,",
	}, "\n")

	entries, err := Load(strings.NewReader(input), "roster.csv", 2026)
	require.NoError(t, err)

	require.Len(t, entries, 3)
	assert.Equal(t, 24, entries[0].Workstation)
	assert.Equal(t, "Ana", entries[0].Occupant)
	assert.Equal(t, 25, entries[1].Workstation)
}
