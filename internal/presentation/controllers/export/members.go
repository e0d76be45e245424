package export

import (
	"net/http"
	"time"

	"github.com/catatancerdas/collab-backend/internal/domain/policy"
	"github.com/catatancerdas/collab-backend/internal/domain/usecase"
	"github.com/catatancerdas/collab-backend/internal/infra/db/mongodb/export_repository"
	"github.com/catatancerdas/collab-backend/internal/presentation/helpers"
	presentationProtocols "github.com/catatancerdas/collab-backend/internal/presentation/protocols"
	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	cacheTTL        = 10 * time.Minute
)

// ExportMembersController builds an XLSX listing of workspace members. The
// member roster includes emails, so the download is limited to admins and
// owners. Results are cached in Redis keyed by workspace.
type ExportMembersController struct {
	FindWorkspaceByIdRepository usecase.FindWorkspaceByIdRepository
	ListMembersRepository       usecase.ListMembersRepository
	RedisURL                    string
}

func NewExportMembersController(
	findWorkspaceByIdRepository usecase.FindWorkspaceByIdRepository,
	listMembersRepository usecase.ListMembersRepository,
	redisURL string,
) *ExportMembersController {
	return &ExportMembersController{
		FindWorkspaceByIdRepository: findWorkspaceByIdRepository,
		ListMembersRepository:       listMembersRepository,
		RedisURL:                    redisURL,
	}
}

func (c *ExportMembersController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	workspaceId, err := primitive.ObjectIDFromHex(r.Req.PathValue("workspaceId"))
	if err != nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeBadRequest,
			"invalid workspace ID format", http.StatusBadRequest)
	}

	userId, err := primitive.ObjectIDFromHex(r.Header.Get("UserId"))
	if err != nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeBadRequest,
			"invalid user ID format", http.StatusBadRequest)
	}

	workspace, err := c.FindWorkspaceByIdRepository.Find(workspaceId)
	if err != nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeInternalServerError,
			"an error occurred when retrieving workspace", http.StatusInternalServerError)
	}
	if workspace == nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeNotFound,
			"workspace not found", http.StatusNotFound)
	}

	actor := workspace.FindMember(userId)
	if actor == nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeForbidden,
			"you are not a member of this workspace", http.StatusForbidden)
	}
	if actorRole, _ := policy.ParseRole(actor.Role); actorRole == policy.Member {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeForbidden,
			"only admins can export the member list", http.StatusForbidden)
	}

	cacheKey := "export:members:" + workspaceId.Hex()
	if cached, err := export_repository.FindExcelInCache(c.RedisURL, cacheKey); err == nil {
		return helpers.CreateFileResponse(cached, "members.xlsx", xlsxContentType)
	}

	members, err := c.ListMembersRepository.List(workspaceId)
	if err != nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeInternalServerError,
			"an error occurred when retrieving members", http.StatusInternalServerError)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	headers := []string{"Name", "Email", "Role", "Joined At"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}
	for i, member := range members {
		row := i + 2
		values := []any{member.Name, member.Email, member.Role, member.JoinedAt.Format(time.RFC3339)}
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

	return helpers.CreateFileResponse(data, "members.xlsx", xlsxContentType)
}
