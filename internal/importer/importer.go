// Package importer implements the CSV catalog reconciliation routine used by
// the inventory screens to bulk create-or-update products from an uploaded
// spreadsheet.
//
// The routine is a single linear pass: parse header, drop it, then for each
// subsequent line parse, validate, reconcile and aggregate. Rows are
// processed strictly in file order with each persistence call awaited before
// the next row, so a SKU inserted by an earlier row is visible to later rows
// of the same run. Per-row problems are recovered into the aggregated error
// list; only a failure to read the upload at all aborts the run.
package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"llanero-admin-service/internal/models"
)

// ErrEmptyFile is returned when the upload has no data rows after the header.
var ErrEmptyFile = errors.New("el archivo no contiene filas de datos")

const (
	errCreateProduct = "Error al crear el producto"
	errUpdateProduct = "Error al actualizar el producto"
)

// Importer runs catalog reconciliation against a CatalogStore.
type Importer struct {
	store  CatalogStore
	logger logrus.FieldLogger
}

// New creates an Importer. logger may be nil.
func New(store CatalogStore, logger logrus.FieldLogger) *Importer {
	if logger == nil {
		noop := logrus.New()
		noop.SetOutput(io.Discard)
		logger = noop
	}
	return &Importer{store: store, logger: logger}
}

// Run reads a whole CSV upload and reconciles it against the catalog.
// A read failure is the only fatal error; everything else degrades to
// per-row errors in the result.
func (imp *Importer) Run(ctx context.Context, r io.Reader) (*models.ImportResult, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("no se pudo leer el archivo: %w", err)
	}

	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	if len(lines) < 2 {
		return nil, ErrEmptyFile
	}

	// Line 1 is always the header; it is discarded without validation.
	rows := make([]ImportRow, 0, len(lines)-1)
	for i, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, RowFromFields(ParseLine(line), i+2))
	}
	if len(rows) == 0 {
		return nil, ErrEmptyFile
	}

	return imp.process(ctx, rows)
}

// RunRows reconciles pre-split rows, e.g. from an XLSX sheet. rows[0] is
// treated as the header and discarded.
func (imp *Importer) RunRows(ctx context.Context, rawRows [][]string) (*models.ImportResult, error) {
	if len(rawRows) < 2 {
		return nil, ErrEmptyFile
	}

	rows := make([]ImportRow, 0, len(rawRows)-1)
	for i, fields := range rawRows[1:] {
		if allBlank(fields) {
			continue
		}
		rows = append(rows, RowFromFields(fields, i+2))
	}
	if len(rows) == 0 {
		return nil, ErrEmptyFile
	}

	return imp.process(ctx, rows)
}

func (imp *Importer) process(ctx context.Context, rows []ImportRow) (*models.ImportResult, error) {
	result := models.NewImportResult()

	// Category tables are loaded once per run; the import itself never
	// creates categories, so they cannot go stale mid-run.
	categories, err := imp.store.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("no se pudieron cargar las categorías: %w", err)
	}
	subcategories, err := imp.store.ListSubcategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("no se pudieron cargar las subcategorías: %w", err)
	}
	tables := lookups{categories: categories, subcategories: subcategories}

	for _, row := range rows {
		intent, msg := validateRow(row, tables)
		if msg != "" {
			result.AddError(row.Line, msg)
			continue
		}
		imp.reconcile(ctx, intent, result)
	}

	imp.logger.WithFields(logrus.Fields{
		"created": result.CreatedCount,
		"updated": result.UpdatedCount,
		"errors":  len(result.Errors),
	}).Info("Catalog import finished")

	return result, nil
}

// reconcile decides insert-vs-update for one resolved row and applies it.
// A row whose SKU matches an existing product is always an update to that
// product; anything else is an insert. SKU lookups go to the store per row,
// never a cache, so rows later in the file see products created earlier in
// the same run.
func (imp *Importer) reconcile(ctx context.Context, intent *rowIntention, result *models.ImportResult) {
	var existing *models.Product
	if intent.sku != "" {
		var err error
		existing, err = imp.store.GetProductBySKU(ctx, intent.sku)
		if err != nil {
			imp.logger.WithError(err).WithField("row", intent.row.Line).Debug("SKU lookup failed")
			result.AddError(intent.row.Line, errUpdateProduct)
			return
		}
	}

	if existing != nil {
		imp.applyUpdate(ctx, intent, existing, result)
		return
	}
	imp.applyInsert(ctx, intent, result)
}

// applyUpdate merges the row into the matched product. Description,
// category, subcategory and images keep the stored value when the row cell
// is blank; price and active status are always overwritten from the row;
// barcode is overwritten directly, clearing to null on a blank cell.
func (imp *Importer) applyUpdate(ctx context.Context, intent *rowIntention, product *models.Product, result *models.ImportResult) {
	product.Name = intent.name
	product.Price = intent.price
	product.IsActive = rowIsActive(intent.row.StatusText)
	product.Barcode = optionalString(intent.barcode)

	if intent.description != "" {
		product.Description = &intent.description
	}
	if intent.categoryID != nil {
		product.CategoryID = intent.categoryID
	}
	if intent.subcategoryID != nil {
		product.SubcategoryID = intent.subcategoryID
	}
	if len(intent.images) > 0 {
		product.SetImageList(intent.images)
	}

	if err := imp.store.UpdateProduct(ctx, product); err != nil {
		imp.logger.WithError(err).WithField("row", intent.row.Line).Debug("Product update failed")
		result.AddError(intent.row.Line, errUpdateProduct)
		return
	}
	result.AddUpdated()
}

// applyInsert creates a new product from the row. A row with no resolvable
// category is forced inactive regardless of its status column, so
// un-categorized items never surface in the live catalog.
func (imp *Importer) applyInsert(ctx context.Context, intent *rowIntention, result *models.ImportResult) {
	isActive := false
	if intent.categoryResolved {
		isActive = rowIsActive(intent.row.StatusText)
	}

	product := &models.Product{
		Name:          intent.name,
		Description:   optionalString(intent.description),
		SKU:           optionalString(intent.sku),
		Barcode:       optionalString(intent.barcode),
		Price:         intent.price,
		CategoryID:    intent.categoryID,
		SubcategoryID: intent.subcategoryID,
		IsActive:      isActive,
	}
	product.SetImageList(intent.images)

	if err := imp.store.CreateProduct(ctx, product); err != nil {
		imp.logger.WithError(err).WithField("row", intent.row.Line).Debug("Product create failed")
		result.AddError(intent.row.Line, errCreateProduct)
		return
	}
	result.AddCreated()
}

func allBlank(fields []string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

func optionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
