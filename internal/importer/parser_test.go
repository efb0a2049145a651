package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected []string
	}{
		{
			name:     "plain fields",
			line:     "Harina Pan,Harina de maíz,HP-1KG",
			expected: []string{"Harina Pan", "Harina de maíz", "HP-1KG"},
		},
		{
			name:     "quoted field with comma",
			line:     `"A","B,C","D"`,
			expected: []string{"A", "B,C", "D"},
		},
		{
			name:     "doubled quote inside quoted field",
			line:     `"He said ""hi""",next`,
			expected: []string{`He said "hi"`, "next"},
		},
		{
			name:     "fields are trimmed",
			line:     "  Arroz  ,  1.20 ",
			expected: []string{"Arroz", "1.20"},
		},
		{
			name:     "trailing empty fields preserved",
			line:     "Arroz,,AR-1,,2.50,,,,",
			expected: []string{"Arroz", "", "AR-1", "", "2.50", "", "", "", ""},
		},
		{
			name:     "single field",
			line:     "Arroz",
			expected: []string{"Arroz"},
		},
		{
			name:     "empty line yields one empty field",
			line:     "",
			expected: []string{""},
		},
		{
			name:     "unterminated quote consumes to end of line",
			line:     `Arroz,"sin cerrar, sigue`,
			expected: []string{"Arroz", "sin cerrar, sigue"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLine(tt.line))
		})
	}
}

func TestParseImageList(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, ParseImageList(""))
		assert.Empty(t, ParseImageList("   "))
	})

	t.Run("pipe separated", func(t *testing.T) {
		urls := ParseImageList("https://cdn.example.com/a.jpg| https://cdn.example.com/b.jpg |")
		assert.Equal(t, []string{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg"}, urls)
	})

	t.Run("single url", func(t *testing.T) {
		urls := ParseImageList("https://cdn.example.com/a.jpg")
		assert.Equal(t, []string{"https://cdn.example.com/a.jpg"}, urls)
	})

	t.Run("json array", func(t *testing.T) {
		urls := ParseImageList(`["https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg"]`)
		assert.Equal(t, []string{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg"}, urls)
	})

	t.Run("json array of numbers is stringified", func(t *testing.T) {
		assert.Equal(t, []string{"1", "2"}, ParseImageList(`[1, 2]`))
	})

	t.Run("json array keeps strings and numbers, drops the rest", func(t *testing.T) {
		urls := ParseImageList(`["https://cdn.example.com/a.jpg", 7, null, true, {"x":1}]`)
		assert.Equal(t, []string{"https://cdn.example.com/a.jpg", "7"}, urls)
	})

	t.Run("malformed json falls back to pipe split", func(t *testing.T) {
		urls := ParseImageList(`[not-json|https://cdn.example.com/b.jpg`)
		assert.Equal(t, []string{"[not-json", "https://cdn.example.com/b.jpg"}, urls)
	})

	t.Run("idempotent over pipe-joined output", func(t *testing.T) {
		// Export joins with "|"; re-importing the joined form must give the
		// same list back.
		first := ParseImageList("https://cdn.example.com/a.jpg|https://cdn.example.com/b.jpg")
		second := ParseImageList("https://cdn.example.com/a.jpg|https://cdn.example.com/b.jpg")
		assert.Equal(t, first, second)
	})
}

func TestRowFromFields(t *testing.T) {
	t.Run("all columns mapped", func(t *testing.T) {
		row := RowFromFields([]string{
			"Coca-Cola 2L", "Refresco", "COKE-2L", "7591234567890",
			"1.50", "Bebidas", "Refrescos", "Activo", "https://cdn.example.com/coke.jpg",
		}, 2)
		assert.Equal(t, 2, row.Line)
		assert.Equal(t, "Coca-Cola 2L", row.Name)
		assert.Equal(t, "Refresco", row.Description)
		assert.Equal(t, "COKE-2L", row.SKU)
		assert.Equal(t, "7591234567890", row.Barcode)
		assert.Equal(t, "1.50", row.PriceText)
		assert.Equal(t, "Bebidas", row.CategoryName)
		assert.Equal(t, "Refrescos", row.SubcategoryName)
		assert.Equal(t, "Activo", row.StatusText)
		assert.Equal(t, "https://cdn.example.com/coke.jpg", row.ImagesText)
	})

	t.Run("missing trailing fields map to empty", func(t *testing.T) {
		row := RowFromFields([]string{"Arroz", "", "", "", "2.50"}, 3)
		assert.Equal(t, "Arroz", row.Name)
		assert.Equal(t, "2.50", row.PriceText)
		assert.Equal(t, "", row.CategoryName)
		assert.Equal(t, "", row.StatusText)
		assert.Equal(t, "", row.ImagesText)
	})
}
