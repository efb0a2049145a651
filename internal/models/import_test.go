package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImportResultAggregation(t *testing.T) {
	result := NewImportResult()
	assert.NotNil(t, result.Errors, "errors must serialize as [] not null")

	result.AddCreated()
	result.AddCreated()
	result.AddUpdated()
	result.AddError(5, "Precio inválido")
	result.AddError(2, "Nombre es requerido")
	result.AddError(5, "Precio inválido")

	assert.Equal(t, 2, result.CreatedCount)
	assert.Equal(t, 1, result.UpdatedCount)
	// File order kept, duplicates kept
	assert.Equal(t, []string{
		"Fila 5: Precio inválido",
		"Fila 2: Nombre es requerido",
		"Fila 5: Precio inválido",
	}, result.ErrorMessages())
}

func TestProductImportTemplateColumns(t *testing.T) {
	template := ProductImportTemplate()

	names := make([]string, len(template.Columns))
	for i, col := range template.Columns {
		names[i] = col.Name
	}
	assert.Equal(t, []string{
		"Nombre", "Descripción", "SKU", "Código de barras", "Precio",
		"Categoría", "Subcategoría", "Estado", "Imágenes",
	}, names)

	required := map[string]bool{}
	for _, col := range template.Columns {
		required[col.Name] = col.Required
	}
	assert.True(t, required["Nombre"])
	assert.True(t, required["Precio"])
	assert.False(t, required["SKU"])
	assert.False(t, required["Categoría"])
}
