package cardimport

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/heartmarshall/studyquest-backend/internal/domain"
)

func TestFormatFromFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		want    Format
		wantErr bool
	}{
		{"cards.xlsx", FormatXLSX, false},
		{"CARDS.XLSX", FormatXLSX, false},
		{"dir/cards.csv", FormatCSV, false},
		{"cards.xls", "", true},
		{"cards", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatFromFilename(tt.name)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_CSV(t *testing.T) {
	t.Parallel()

	data := strings.Join([]string{
		"front,back,subject,difficulty,tags,notes",
		"hola,hello,spanish,Easy,greeting; basics,informal",
		",,,,,",
		"adios,goodbye",
		"no back,,spanish,hard,,",
		"perro,dog,spanish,legendary,,",
	}, "\n")

	res, err := Parse(strings.NewReader(data), FormatCSV, "")
	require.NoError(t, err)

	require.Len(t, res.Cards, 2)
	first := res.Cards[0]
	assert.Equal(t, "hola", first.Front)
	assert.Equal(t, "hello", first.Back)
	assert.Equal(t, "spanish", first.Subject)
	assert.Equal(t, domain.DifficultyEasy, first.Difficulty)
	assert.Equal(t, []string{"greeting", "basics"}, first.Tags)
	assert.Equal(t, "informal", first.Notes)

	assert.Equal(t, "adios", res.Cards[1].Front)
	assert.Equal(t, domain.DifficultyMedium, res.Cards[1].Difficulty)

	require.Len(t, res.Errors, 2)
	assert.Equal(t, 5, res.Errors[0].Row)
	assert.ErrorIs(t, res.Errors[0].Err, domain.ErrValidation)
	assert.Equal(t, 6, res.Errors[1].Row)
	assert.Contains(t, res.Errors[1].Error(), "row 6")
}

func TestParse_CSVWithoutHeader(t *testing.T) {
	t.Parallel()

	res, err := Parse(strings.NewReader("uno,one\ndos,two\n"), FormatCSV, "")
	require.NoError(t, err)
	assert.Len(t, res.Cards, 2)
	assert.Empty(t, res.Errors)
}

func TestParse_XLSX(t *testing.T) {
	t.Parallel()

	f := excelize.NewFile()
	t.Cleanup(func() { _ = f.Close() })
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]any{"front", "back", "subject", "difficulty", "tags", "notes"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]any{"H2O", "water", "chemistry", "easy", "molecules", ""}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A3", &[]any{"NaCl", "salt", "chemistry", "medium", "", "table salt"}))

	_, err := f.NewSheet("Other")
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow("Other", "A1", &[]any{"only", "here"}))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	raw := buf.Bytes()

	res, err := Parse(bytes.NewReader(raw), FormatXLSX, "")
	require.NoError(t, err)
	require.Len(t, res.Cards, 2)
	assert.Equal(t, "H2O", res.Cards[0].Front)
	assert.Equal(t, []string{"molecules"}, res.Cards[0].Tags)
	assert.Equal(t, "table salt", res.Cards[1].Notes)

	res, err = Parse(bytes.NewReader(raw), FormatXLSX, "Other")
	require.NoError(t, err)
	require.Len(t, res.Cards, 1)
	assert.Equal(t, "only", res.Cards[0].Front)

	_, err = Parse(bytes.NewReader(raw), FormatXLSX, "Missing")
	assert.Error(t, err)
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	_, err := Parse(strings.NewReader("not a zip"), FormatXLSX, "")
	assert.Error(t, err)

	_, err = Parse(strings.NewReader("a,b"), Format("ods"), "")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
