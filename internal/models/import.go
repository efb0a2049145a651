package models

import "fmt"

// ImportRowError represents an error for a specific spreadsheet row.
// Row numbers are 1-based file lines: the header is row 1, so the first
// data row is reported as row 2.
type ImportRowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// Display formats the error the way the result dialog shows it.
func (e ImportRowError) Display() string {
	return fmt.Sprintf("Fila %d: %s", e.Row, e.Message)
}

// ImportResult accumulates the outcome of one import run. It is created
// fresh per run and discarded after being shown; nothing is persisted.
type ImportResult struct {
	CreatedCount int              `json:"createdCount"`
	UpdatedCount int              `json:"updatedCount"`
	Errors       []ImportRowError `json:"errors"`
}

// NewImportResult returns an empty result aggregator.
func NewImportResult() *ImportResult {
	return &ImportResult{Errors: make([]ImportRowError, 0)}
}

// AddCreated records one inserted row.
func (r *ImportResult) AddCreated() {
	r.CreatedCount++
}

// AddUpdated records one updated row.
func (r *ImportResult) AddUpdated() {
	r.UpdatedCount++
}

// AddError appends a row error. Errors keep file order and repeated
// messages are not deduplicated.
func (r *ImportResult) AddError(row int, message string) {
	r.Errors = append(r.Errors, ImportRowError{Row: row, Message: message})
}

// ErrorMessages returns the user-facing "Fila <n>: <message>" lines.
func (r *ImportResult) ErrorMessages() []string {
	messages := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		messages[i] = e.Display()
	}
	return messages
}

// ImportResponse is the HTTP envelope around an import run
type ImportResponse struct {
	Success       bool          `json:"success"`
	Result        *ImportResult `json:"result"`
	ErrorMessages []string      `json:"errorMessages,omitempty"`
	ProcessingMs  int64         `json:"processingMs"`
}

// ImportTemplateColumn defines a column in the import template
type ImportTemplateColumn struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Required    bool   `json:"required"`
	Type        string `json:"type"`
	Example     string `json:"example"`
}

// ImportTemplate defines the structure of the product import template
type ImportTemplate struct {
	Entity  string                 `json:"entity"`
	Version string                 `json:"version"`
	Columns []ImportTemplateColumn `json:"columns"`
}

// ProductImportTemplate returns the template definition for the catalog import
func ProductImportTemplate() ImportTemplate {
	return ImportTemplate{
		Entity:  "products",
		Version: "1.0",
		Columns: []ImportTemplateColumn{
			{Name: "Nombre", Description: "Nombre del producto", Required: true, Type: "string", Example: "Coca-Cola 2L"},
			{Name: "Descripción", Description: "Descripción del producto", Required: false, Type: "string", Example: ""},
			{Name: "SKU", Description: "Código único; se usa para actualizar productos existentes", Required: false, Type: "string", Example: "COKE-2L"},
			{Name: "Código de barras", Description: "Código de barras", Required: false, Type: "string", Example: "7591234567890"},
			{Name: "Precio", Description: "Precio (decimal no negativo)", Required: true, Type: "number", Example: "1.50"},
			{Name: "Categoría", Description: "Debe coincidir con una categoría existente", Required: false, Type: "string", Example: "Bebidas"},
			{Name: "Subcategoría", Description: "Subcategoría dentro de la categoría", Required: false, Type: "string", Example: "Refrescos"},
			{Name: "Estado", Description: "Activo o Inactivo", Required: false, Type: "string", Example: "Activo"},
			{Name: "Imágenes", Description: "URLs separadas por | o arreglo JSON", Required: false, Type: "string", Example: "https://example.com/a.jpg|https://example.com/b.jpg"},
		},
	}
}
