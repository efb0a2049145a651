package handlers

import (
	"encoding/csv"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"llanero-admin-service/internal/events"
	"llanero-admin-service/internal/importer"
	"llanero-admin-service/internal/middleware"
	"llanero-admin-service/internal/models"
)

// ImportHandler serves the bulk catalog import and template endpoints.
// It owns an Importer wired to the catalog store; the store is an interface
// so the handler is testable without a database.
type ImportHandler struct {
	importer  *importer.Importer
	publisher *events.Publisher
	metrics   *middleware.Metrics
	logger    logrus.FieldLogger
}

func NewImportHandler(store importer.CatalogStore, publisher *events.Publisher, metrics *middleware.Metrics, logger logrus.FieldLogger) *ImportHandler {
	return &ImportHandler{
		importer:  importer.New(store, logger),
		publisher: publisher,
		metrics:   metrics,
		logger:    logger,
	}
}

// ImportProducts imports products from an uploaded CSV or XLSX file
// POST /api/v1/products/import
func (h *ImportHandler) ImportProducts(c *gin.Context) {
	startTime := time.Now()

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "FILE_REQUIRED", "Please upload a CSV or Excel file")
		return
	}
	defer file.Close()

	var result *models.ImportResult
	var runErr error

	filename := strings.ToLower(header.Filename)
	switch {
	case strings.HasSuffix(filename, ".csv"):
		result, runErr = h.importer.Run(c.Request.Context(), file)
	case strings.HasSuffix(filename, ".xlsx"):
		rows, err := readXLSXRows(file)
		if err != nil {
			respondError(c, http.StatusBadRequest, "PARSE_ERROR", err.Error())
			return
		}
		result, runErr = h.importer.RunRows(c.Request.Context(), rows)
	default:
		respondError(c, http.StatusBadRequest, "INVALID_FORMAT", "Only CSV and XLSX files are supported")
		return
	}

	if runErr != nil {
		if errors.Is(runErr, importer.ErrEmptyFile) {
			respondError(c, http.StatusBadRequest, "EMPTY_FILE", "The file contains no data rows")
			return
		}
		respondError(c, http.StatusBadRequest, "IMPORT_FAILED", runErr.Error())
		return
	}

	if h.metrics != nil {
		h.metrics.ObserveImport(result.CreatedCount, result.UpdatedCount, len(result.Errors))
	}
	if h.publisher != nil {
		h.publisher.PublishImportFinished(c.Request.Context(), result, userIDFromContext(c))
	}

	c.JSON(http.StatusOK, models.ImportResponse{
		Success:       true,
		Result:        result,
		ErrorMessages: result.ErrorMessages(),
		ProcessingMs:  time.Since(startTime).Milliseconds(),
	})
}

func readXLSXRows(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("no sheets found in Excel file")
	}

	return f.GetRows(sheets[0])
}

// GetImportTemplate returns the import template definition or file
// GET /api/v1/products/import/template
func (h *ImportHandler) GetImportTemplate(c *gin.Context) {
	format := c.DefaultQuery("format", "json")

	template := models.ProductImportTemplate()

	switch format {
	case "csv":
		h.generateCSVTemplate(c, template)
	case "xlsx":
		h.generateXLSXTemplate(c, template)
	default:
		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"template": template,
		})
	}
}

// generateCSVTemplate downloads a CSV template (headers only)
func (h *ImportHandler) generateCSVTemplate(c *gin.Context, template models.ImportTemplate) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", "attachment; filename=plantilla_productos.csv")

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	headers := make([]string, len(template.Columns))
	for i, col := range template.Columns {
		headers[i] = col.Name
	}
	writer.Write(headers)
}

// generateXLSXTemplate downloads an Excel template with an instructions sheet
func (h *ImportHandler) generateXLSXTemplate(c *gin.Context, template models.ImportTemplate) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Productos"
	f.SetSheetName("Sheet1", sheetName)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
	})
	requiredStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"C65911"}, Pattern: 1},
	})

	for i, col := range template.Columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		headerText := col.Name
		if col.Required {
			headerText = col.Name + " *"
		}
		f.SetCellValue(sheetName, cell, headerText)

		if col.Required {
			f.SetCellStyle(sheetName, cell, cell, requiredStyle)
		} else {
			f.SetCellStyle(sheetName, cell, cell, headerStyle)
		}

		colName, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, colName, colName, 20)
	}

	f.NewSheet("Instrucciones")
	f.SetCellValue("Instrucciones", "A1", "Instrucciones de importación de productos")
	f.SetCellValue("Instrucciones", "A3", "La primera fila del archivo siempre se trata como encabezado y se descarta.")
	f.SetCellValue("Instrucciones", "A4", "Las filas con SKU existente actualizan el producto; las demás crean uno nuevo.")
	f.SetCellValue("Instrucciones", "A5", "Un producto nuevo sin categoría válida se crea inactivo.")

	f.SetCellValue("Instrucciones", "A7", "Columnas:")
	f.SetCellValue("Instrucciones", "A8", "Columna")
	f.SetCellValue("Instrucciones", "B8", "Descripción")
	f.SetCellValue("Instrucciones", "C8", "Requerida")
	f.SetCellValue("Instrucciones", "D8", "Ejemplo")

	for i, col := range template.Columns {
		row := i + 9
		cellA, _ := excelize.CoordinatesToCellName(1, row)
		cellB, _ := excelize.CoordinatesToCellName(2, row)
		cellC, _ := excelize.CoordinatesToCellName(3, row)
		cellD, _ := excelize.CoordinatesToCellName(4, row)
		f.SetCellValue("Instrucciones", cellA, col.Name)
		f.SetCellValue("Instrucciones", cellB, col.Description)
		required := "Opcional"
		if col.Required {
			required = "Requerida"
		}
		f.SetCellValue("Instrucciones", cellC, required)
		f.SetCellValue("Instrucciones", cellD, col.Example)
	}

	f.SetColWidth("Instrucciones", "A", "A", 25)
	f.SetColWidth("Instrucciones", "B", "B", 60)
	f.SetColWidth("Instrucciones", "C", "C", 15)
	f.SetColWidth("Instrucciones", "D", "D", 40)

	sheetIdx, _ := f.GetSheetIndex(sheetName)
	f.SetActiveSheet(sheetIdx)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename=plantilla_productos.xlsx")

	f.Write(c.Writer)
}
