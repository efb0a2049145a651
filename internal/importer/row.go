package importer

// importColumns is the positional column order of the catalog spreadsheet.
// The first file line is always a header and is discarded without validation.
var importColumns = []string{
	"Nombre",
	"Descripción",
	"SKU",
	"Código de barras",
	"Precio",
	"Categoría",
	"Subcategoría",
	"Estado",
	"Imágenes",
}

// ImportColumns returns the expected spreadsheet column names in order.
func ImportColumns() []string {
	cols := make([]string, len(importColumns))
	copy(cols, importColumns)
	return cols
}

// ImportRow is the transient parsed representation of one spreadsheet line.
// Raw string arrays never travel past the parsing boundary; every consumer
// works with named fields.
type ImportRow struct {
	Line            int // 1-based file line; header is line 1
	Name            string
	Description     string
	SKU             string
	Barcode         string
	PriceText       string
	CategoryName    string
	SubcategoryName string
	StatusText      string
	ImagesText      string
}

// RowFromFields maps positional field values onto an ImportRow. Missing
// trailing fields map to empty strings.
func RowFromFields(fields []string, line int) ImportRow {
	return ImportRow{
		Line:            line,
		Name:            fieldAt(fields, 0),
		Description:     fieldAt(fields, 1),
		SKU:             fieldAt(fields, 2),
		Barcode:         fieldAt(fields, 3),
		PriceText:       fieldAt(fields, 4),
		CategoryName:    fieldAt(fields, 5),
		SubcategoryName: fieldAt(fields, 6),
		StatusText:      fieldAt(fields, 7),
		ImagesText:      fieldAt(fields, 8),
	}
}

func fieldAt(fields []string, i int) string {
	if i < len(fields) {
		return fields[i]
	}
	return ""
}
