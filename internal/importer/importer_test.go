package importer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"llanero-admin-service/internal/models"
)

// fakeCatalogStore is an in-memory CatalogStore. Writes are visible to
// subsequent reads, matching the sequential per-row contract.
type fakeCatalogStore struct {
	categories    []models.Category
	subcategories []models.Subcategory
	products      []*models.Product

	createErr error
	updateErr error
	lookupErr error

	creates int
	updates int
}

func (f *fakeCatalogStore) GetProductBySKU(ctx context.Context, sku string) (*models.Product, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	for _, p := range f.products {
		if p.SKU != nil && *p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeCatalogStore) ListCategories(ctx context.Context) ([]models.Category, error) {
	return f.categories, nil
}

func (f *fakeCatalogStore) ListSubcategories(ctx context.Context) ([]models.Subcategory, error) {
	return f.subcategories, nil
}

func (f *fakeCatalogStore) CreateProduct(ctx context.Context, product *models.Product) error {
	if f.createErr != nil {
		return f.createErr
	}
	product.ID = uuid.New()
	f.products = append(f.products, product)
	f.creates++
	return nil
}

func (f *fakeCatalogStore) UpdateProduct(ctx context.Context, product *models.Product) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updates++
	return nil
}

func newTestStore() *fakeCatalogStore {
	bebidas := models.Category{ID: uuid.New(), Name: "Bebidas", IsActive: true}
	viveres := models.Category{ID: uuid.New(), Name: "Víveres", IsActive: true}
	refrescos := models.Subcategory{ID: uuid.New(), CategoryID: bebidas.ID, Name: "Refrescos", IsActive: true}
	return &fakeCatalogStore{
		categories:    []models.Category{bebidas, viveres},
		subcategories: []models.Subcategory{refrescos},
	}
}

func runCSV(t *testing.T, store *fakeCatalogStore, csv string) *models.ImportResult {
	t.Helper()
	result, err := New(store, nil).Run(context.Background(), strings.NewReader(csv))
	require.NoError(t, err)
	return result
}

const csvHeader = "Nombre,Descripción,SKU,Código de barras,Precio,Categoría,Subcategoría,Estado,Imágenes\n"

func TestImporterCreatesProducts(t *testing.T) {
	store := newTestStore()
	result := runCSV(t, store, csvHeader+
		"Coca-Cola 2L,Refresco,COKE-2L,7591234567890,1.50,Bebidas,Refrescos,Activo,https://cdn.example.com/coke.jpg\n")

	assert.Equal(t, 1, result.CreatedCount)
	assert.Equal(t, 0, result.UpdatedCount)
	assert.Empty(t, result.Errors)

	require.Len(t, store.products, 1)
	p := store.products[0]
	assert.Equal(t, "Coca-Cola 2L", p.Name)
	require.NotNil(t, p.SKU)
	assert.Equal(t, "COKE-2L", *p.SKU)
	assert.Equal(t, 1.50, p.Price)
	assert.True(t, p.IsActive)
	require.NotNil(t, p.CategoryID)
	assert.Equal(t, store.categories[0].ID, *p.CategoryID)
	require.NotNil(t, p.SubcategoryID)
	assert.Equal(t, store.subcategories[0].ID, *p.SubcategoryID)
	assert.Equal(t, []string{"https://cdn.example.com/coke.jpg"}, p.ImageList())
}

func TestImporterValidationErrors(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		store := newTestStore()
		result := runCSV(t, store, csvHeader+",,SKU-1,,1.50,,,,\n")

		assert.Equal(t, 0, result.CreatedCount)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, 2, result.Errors[0].Row)
		assert.Equal(t, "Nombre es requerido", result.Errors[0].Message)
		assert.Equal(t, []string{"Fila 2: Nombre es requerido"}, result.ErrorMessages())
	})

	t.Run("invalid price", func(t *testing.T) {
		store := newTestStore()
		result := runCSV(t, store, csvHeader+
			"Arroz,,AR-1,,abc,,,,\n"+
			"Pasta,,PA-1,,-1,,,,\n"+
			"Azúcar,,AZ-1,,,,,,\n")

		assert.Equal(t, 0, result.CreatedCount)
		require.Len(t, result.Errors, 3)
		for i, e := range result.Errors {
			assert.Equal(t, i+2, e.Row)
			assert.Equal(t, "Precio inválido", e.Message)
		}
	})

	t.Run("non-finite price is invalid", func(t *testing.T) {
		// strconv.ParseFloat happily parses these; none of them is a price.
		store := newTestStore()
		result := runCSV(t, store, csvHeader+
			"Arroz,,AR-1,,NaN,,,,\n"+
			"Pasta,,PA-1,,Inf,,,,\n"+
			"Azúcar,,AZ-1,,+Inf,,,,\n"+
			"Café,,CF-1,,-Inf,,,,\n"+
			"Sal,,SA-1,,1e999,,,,\n")

		assert.Equal(t, 0, result.CreatedCount)
		assert.Empty(t, store.products)
		require.Len(t, result.Errors, 5)
		for i, e := range result.Errors {
			assert.Equal(t, i+2, e.Row)
			assert.Equal(t, "Precio inválido", e.Message)
		}
	})

	t.Run("zero price is valid", func(t *testing.T) {
		store := newTestStore()
		result := runCSV(t, store, csvHeader+"Muestra gratis,,MG-1,,0,Bebidas,,,\n")

		assert.Equal(t, 1, result.CreatedCount)
		assert.Empty(t, result.Errors)
	})

	t.Run("unknown category fails the row", func(t *testing.T) {
		store := newTestStore()
		result := runCSV(t, store, csvHeader+"Arroz,,AR-1,,2.50,Inexistente,,,\n")

		assert.Equal(t, 0, result.CreatedCount)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, `Categoría "Inexistente" no encontrada`, result.Errors[0].Message)
	})

	t.Run("unknown subcategory is silently dropped", func(t *testing.T) {
		store := newTestStore()
		result := runCSV(t, store, csvHeader+"Arroz,,AR-1,,2.50,Bebidas,Inexistente,,\n")

		assert.Equal(t, 1, result.CreatedCount)
		assert.Empty(t, result.Errors)
		require.Len(t, store.products, 1)
		assert.Nil(t, store.products[0].SubcategoryID)
	})

	t.Run("category match is case-insensitive", func(t *testing.T) {
		store := newTestStore()
		result := runCSV(t, store, csvHeader+"Arroz,,AR-1,,2.50,bebidas,refrescos,,\n")

		assert.Equal(t, 1, result.CreatedCount)
		require.NotNil(t, store.products[0].CategoryID)
		require.NotNil(t, store.products[0].SubcategoryID)
	})
}

func TestImporterInsertWithoutCategoryIsInactive(t *testing.T) {
	store := newTestStore()
	result := runCSV(t, store, csvHeader+"Arroz,,AR-1,,2.50,,,Activo,\n")

	assert.Equal(t, 1, result.CreatedCount)
	require.Len(t, store.products, 1)
	assert.False(t, store.products[0].IsActive, "uncategorized insert must be forced inactive")
	assert.Nil(t, store.products[0].CategoryID)
}

func TestImporterStatusColumn(t *testing.T) {
	tests := []struct {
		status   string
		isActive bool
	}{
		{"", true},
		{"Activo", true},
		{"inactivo", false},
		{"INACTIVO", false},
		{"Inactivo", false},
		{"deshabilitado", true}, // only the literal "inactivo" deactivates
	}

	for _, tt := range tests {
		t.Run("status "+tt.status, func(t *testing.T) {
			store := newTestStore()
			runCSV(t, store, csvHeader+"Arroz,,AR-1,,2.50,Bebidas,,"+tt.status+",\n")
			require.Len(t, store.products, 1)
			assert.Equal(t, tt.isActive, store.products[0].IsActive)
		})
	}
}

func TestImporterUpdateMergeSemantics(t *testing.T) {
	setup := func() (*fakeCatalogStore, *models.Product) {
		store := newTestStore()
		sku := "AR-1"
		description := "Arroz blanco tipo 1"
		barcode := "7590000000001"
		categoryID := store.categories[1].ID
		existing := &models.Product{
			ID:          uuid.New(),
			Name:        "Arroz Primor",
			Description: &description,
			SKU:         &sku,
			Barcode:     &barcode,
			Price:       2.00,
			CategoryID:  &categoryID,
			IsActive:    true,
		}
		existing.SetImageList([]string{"https://cdn.example.com/arroz.jpg"})
		store.products = append(store.products, existing)
		return store, existing
	}

	t.Run("blank cells keep stored values", func(t *testing.T) {
		store, existing := setup()
		result := runCSV(t, store, csvHeader+"Arroz Primor 1Kg,,AR-1,,2.75,,,,\n")

		assert.Equal(t, 1, result.UpdatedCount)
		assert.Equal(t, 0, result.CreatedCount)
		assert.Empty(t, result.Errors)

		assert.Equal(t, "Arroz Primor 1Kg", existing.Name)
		assert.Equal(t, 2.75, existing.Price)
		require.NotNil(t, existing.Description)
		assert.Equal(t, "Arroz blanco tipo 1", *existing.Description)
		require.NotNil(t, existing.CategoryID)
		assert.Equal(t, store.categories[1].ID, *existing.CategoryID)
		assert.Equal(t, []string{"https://cdn.example.com/arroz.jpg"}, existing.ImageList())
	})

	t.Run("blank barcode clears the stored barcode", func(t *testing.T) {
		store, existing := setup()
		runCSV(t, store, csvHeader+"Arroz Primor,,AR-1,,2.00,,,,\n")
		assert.Nil(t, existing.Barcode)
	})

	t.Run("non-blank cells overwrite", func(t *testing.T) {
		store, existing := setup()
		runCSV(t, store, csvHeader+
			"Arroz Primor,Nueva descripción,AR-1,7590000000099,3.10,Bebidas,Refrescos,inactivo,https://cdn.example.com/nuevo.jpg\n")

		require.NotNil(t, existing.Description)
		assert.Equal(t, "Nueva descripción", *existing.Description)
		require.NotNil(t, existing.Barcode)
		assert.Equal(t, "7590000000099", *existing.Barcode)
		assert.Equal(t, 3.10, existing.Price)
		assert.False(t, existing.IsActive)
		require.NotNil(t, existing.CategoryID)
		assert.Equal(t, store.categories[0].ID, *existing.CategoryID)
		require.NotNil(t, existing.SubcategoryID)
		assert.Equal(t, []string{"https://cdn.example.com/nuevo.jpg"}, existing.ImageList())
	})

	t.Run("update ignores forced-inactive rule", func(t *testing.T) {
		// Forced inactive applies to inserts only; an update with no
		// category cell keeps the row's status verbatim.
		store, existing := setup()
		runCSV(t, store, csvHeader+"Arroz Primor,,AR-1,,2.00,,,Activo,\n")
		assert.True(t, existing.IsActive)
	})
}

func TestImporterSameRunSKUVisibility(t *testing.T) {
	store := newTestStore()
	result := runCSV(t, store, csvHeader+
		"Arroz,,AR-1,,2.50,Bebidas,,,\n"+
		"Arroz corregido,,AR-1,,2.60,Bebidas,,,\n")

	assert.Equal(t, 1, result.CreatedCount, "first occurrence inserts")
	assert.Equal(t, 1, result.UpdatedCount, "second occurrence updates the row just created")
	assert.Empty(t, result.Errors)
	require.Len(t, store.products, 1)
	assert.Equal(t, "Arroz corregido", store.products[0].Name)
	assert.Equal(t, 2.60, store.products[0].Price)
}

func TestImporterRowsWithoutSKUAlwaysInsert(t *testing.T) {
	store := newTestStore()
	result := runCSV(t, store, csvHeader+
		"Arroz,,,,2.50,Bebidas,,,\n"+
		"Arroz,,,,2.50,Bebidas,,,\n")

	assert.Equal(t, 2, result.CreatedCount)
	assert.Equal(t, 0, result.UpdatedCount)
	assert.Len(t, store.products, 2)
}

func TestImporterPersistenceErrors(t *testing.T) {
	t.Run("create failure becomes row error", func(t *testing.T) {
		store := newTestStore()
		store.createErr = errors.New("boom")
		result := runCSV(t, store, csvHeader+"Arroz,,AR-1,,2.50,Bebidas,,,\n")

		assert.Equal(t, 0, result.CreatedCount)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, "Error al crear el producto", result.Errors[0].Message)
	})

	t.Run("update failure becomes row error", func(t *testing.T) {
		store := newTestStore()
		sku := "AR-1"
		store.products = append(store.products, &models.Product{ID: uuid.New(), Name: "Arroz", SKU: &sku})
		store.updateErr = errors.New("boom")
		result := runCSV(t, store, csvHeader+"Arroz,,AR-1,,2.50,Bebidas,,,\n")

		assert.Equal(t, 0, result.UpdatedCount)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, "Error al actualizar el producto", result.Errors[0].Message)
	})

	t.Run("lookup failure becomes row error and later rows continue", func(t *testing.T) {
		store := newTestStore()
		store.lookupErr = errors.New("connection reset")
		result := runCSV(t, store, csvHeader+
			"Arroz,,AR-1,,2.50,Bebidas,,,\n"+
			"Pasta,,,,1.10,Bebidas,,,\n")

		require.Len(t, result.Errors, 1)
		assert.Equal(t, 2, result.Errors[0].Row)
		assert.Equal(t, "Error al actualizar el producto", result.Errors[0].Message)
		assert.Equal(t, 1, result.CreatedCount, "row without SKU skips the lookup")
	})
}

func TestImporterLineNumbering(t *testing.T) {
	store := newTestStore()
	// Blank line between data rows: skipped, but numbering still counts it.
	result := runCSV(t, store, csvHeader+
		",,,,2.50,,,,\n"+
		"\n"+
		",,,,2.50,,,,\n")

	require.Len(t, result.Errors, 2)
	assert.Equal(t, 2, result.Errors[0].Row)
	assert.Equal(t, 4, result.Errors[1].Row)
}

func TestImporterEmptyFile(t *testing.T) {
	store := newTestStore()
	imp := New(store, nil)

	t.Run("no content", func(t *testing.T) {
		_, err := imp.Run(context.Background(), strings.NewReader(""))
		assert.ErrorIs(t, err, ErrEmptyFile)
	})

	t.Run("header only", func(t *testing.T) {
		_, err := imp.Run(context.Background(), strings.NewReader(csvHeader))
		assert.ErrorIs(t, err, ErrEmptyFile)
	})

	t.Run("header and blank lines", func(t *testing.T) {
		_, err := imp.Run(context.Background(), strings.NewReader(csvHeader+"\n\n"))
		assert.ErrorIs(t, err, ErrEmptyFile)
	})
}

func TestImporterCRLFHandling(t *testing.T) {
	store := newTestStore()
	result := runCSV(t, store, strings.ReplaceAll(csvHeader, "\n", "\r\n")+
		"Arroz,,AR-1,,2.50,Bebidas,,,\r\n")

	assert.Equal(t, 1, result.CreatedCount)
	assert.Empty(t, result.Errors)
}

func TestImporterRunRows(t *testing.T) {
	store := newTestStore()
	rows := [][]string{
		{"Nombre", "Descripción", "SKU", "Código de barras", "Precio", "Categoría", "Subcategoría", "Estado", "Imágenes"},
		{"Arroz", "", "AR-1", "", "2.50", "Bebidas", "", "", ""},
		{"", "", "", "", "", "", "", "", ""}, // blank sheet row, skipped
		{"Pasta", "", "PA-1", "", "1.10"},    // short row, trailing cells empty
	}

	result, err := New(store, nil).RunRows(context.Background(), rows)
	require.NoError(t, err)

	assert.Equal(t, 2, result.CreatedCount)
	assert.Empty(t, result.Errors)

	t.Run("header only", func(t *testing.T) {
		_, err := New(store, nil).RunRows(context.Background(), rows[:1])
		assert.ErrorIs(t, err, ErrEmptyFile)
	})
}

func TestImporterQuotedFieldsEndToEnd(t *testing.T) {
	store := newTestStore()
	result := runCSV(t, store, csvHeader+
		`"Café, molido","Tueste ""oscuro""",CAFE-500,,5.25,Bebidas,,,`+"\n")

	require.Empty(t, result.Errors)
	require.Len(t, store.products, 1)
	assert.Equal(t, "Café, molido", store.products[0].Name)
	require.NotNil(t, store.products[0].Description)
	assert.Equal(t, `Tueste "oscuro"`, *store.products[0].Description)
}
