package importer

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"llanero-admin-service/internal/models"
)

const statusInactive = "inactivo"

// lookups holds the in-memory category tables loaded once per import run.
type lookups struct {
	categories    []models.Category
	subcategories []models.Subcategory
}

// rowIntention is a fully resolved import row: validated fields plus the
// category/subcategory ids resolved from the lookup tables. Whether it turns
// into an insert or an update is the reconciler's decision.
type rowIntention struct {
	row              ImportRow
	name             string
	description      string
	sku              string
	barcode          string
	price            float64
	categoryID       *uuid.UUID
	subcategoryID    *uuid.UUID
	images           []string
	categoryResolved bool
}

// validateRow checks mandatory fields and resolves category lookups.
// It returns a non-empty message when the row must be skipped.
//
// Category and subcategory resolution are deliberately asymmetric: an unknown
// category fails the row, an unknown subcategory is silently dropped.
func validateRow(row ImportRow, tables lookups) (*rowIntention, string) {
	name := strings.TrimSpace(row.Name)
	if name == "" {
		return nil, "Nombre es requerido"
	}

	// ParseFloat accepts "NaN" and "Inf"; neither is a price, and a NaN
	// stored on a product breaks every later JSON render of it.
	priceText := strings.TrimSpace(row.PriceText)
	price, err := strconv.ParseFloat(priceText, 64)
	if priceText == "" || err != nil || price < 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		return nil, "Precio inválido"
	}

	intent := &rowIntention{
		row:         row,
		name:        name,
		description: strings.TrimSpace(row.Description),
		sku:         strings.TrimSpace(row.SKU),
		barcode:     strings.TrimSpace(row.Barcode),
		price:       price,
		images:      ParseImageList(row.ImagesText),
	}

	categoryName := strings.TrimSpace(row.CategoryName)
	if categoryName != "" {
		category := findCategory(tables.categories, categoryName)
		if category == nil {
			return nil, fmt.Sprintf("Categoría \"%s\" no encontrada", categoryName)
		}
		id := category.ID
		intent.categoryID = &id
		intent.categoryResolved = true

		subcategoryName := strings.TrimSpace(row.SubcategoryName)
		if subcategoryName != "" {
			if sub := findSubcategory(tables.subcategories, subcategoryName, category.ID); sub != nil {
				subID := sub.ID
				intent.subcategoryID = &subID
			}
		}
	}

	return intent, ""
}

func findCategory(categories []models.Category, name string) *models.Category {
	for i := range categories {
		if strings.EqualFold(categories[i].Name, name) {
			return &categories[i]
		}
	}
	return nil
}

func findSubcategory(subcategories []models.Subcategory, name string, categoryID uuid.UUID) *models.Subcategory {
	for i := range subcategories {
		if subcategories[i].CategoryID == categoryID && strings.EqualFold(subcategories[i].Name, name) {
			return &subcategories[i]
		}
	}
	return nil
}

// rowIsActive applies the status column. Only the literal text "inactivo"
// (case-insensitive) deactivates; anything else, including blank, is active.
func rowIsActive(statusText string) bool {
	return !strings.EqualFold(strings.TrimSpace(statusText), statusInactive)
}
