package export

import (
	"net/http"
	"time"

	"github.com/catatancerdas/collab-backend/internal/domain/usecase"
	"github.com/catatancerdas/collab-backend/internal/infra/db/mongodb/export_repository"
	"github.com/catatancerdas/collab-backend/internal/presentation/helpers"
	presentationProtocols "github.com/catatancerdas/collab-backend/internal/presentation/protocols"
	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ExportDocumentsController builds an XLSX index of a workspace's documents.
// Any member can download it; membership is enforced by the route middleware.
type ExportDocumentsController struct {
	FindDocumentsRepository usecase.FindDocumentsRepository
	RedisURL                string
}

func NewExportDocumentsController(
	findDocumentsRepository usecase.FindDocumentsRepository,
	redisURL string,
) *ExportDocumentsController {
	return &ExportDocumentsController{
		FindDocumentsRepository: findDocumentsRepository,
		RedisURL:                redisURL,
	}
}

func (c *ExportDocumentsController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	workspaceId, err := primitive.ObjectIDFromHex(r.Req.PathValue("workspaceId"))
	if err != nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeBadRequest,
			"invalid workspace ID format", http.StatusBadRequest)
	}

	cacheKey := "export:documents:" + workspaceId.Hex()
	if cached, err := export_repository.FindExcelInCache(c.RedisURL, cacheKey); err == nil {
		return helpers.CreateFileResponse(cached, "documents.xlsx", xlsxContentType)
	}

	documents, err := c.FindDocumentsRepository.Find(&usecase.DocumentFilter{
		WorkspaceId: workspaceId,
	})
	if err != nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeInternalServerError,
			"an error occurred when retrieving documents", http.StatusInternalServerError)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	headers := []string{"Title", "Published", "Created By", "Created At", "Updated At"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}
	for i, document := range documents {
		row := i + 2
		values := []any{
			document.Title,
			document.IsPublished,
			document.CreatedBy.Hex(),
			document.CreatedAt.Format(time.RFC3339),
			document.UpdatedAt.Format(time.RFC3339),
		}
		for j, value := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, row)
			f.SetCellValue(sheet, cell, value)
		}
	}

	if err := export_repository.SaveExcelToCache(c.RedisURL, cacheKey, f, cacheTTL); err != nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeInternalServerError,
			"an error occurred when caching the export", http.StatusInternalServerError)
	}

	data, err := export_repository.FindExcelInCache(c.RedisURL, cacheKey)
	if err != nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeInternalServerError,
			"an error occurred when reading the export", http.StatusInternalServerError)
	}

	return helpers.CreateFileResponse(data, "documents.xlsx", xlsxContentType)
}
