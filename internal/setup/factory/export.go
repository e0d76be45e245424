package factory

import (
	"github.com/catatancerdas/collab-backend/internal/infra/db/mongodb/document_repository"
	"github.com/catatancerdas/collab-backend/internal/infra/db/mongodb/member_repository"
	"github.com/catatancerdas/collab-backend/internal/infra/db/mongodb/workspace_repository"
	controllers "github.com/catatancerdas/collab-backend/internal/presentation/controllers/export"
)

func MakeExportMembersController(s *Services) *controllers.ExportMembersController {
	findWorkspaceByIdRepository := workspace_repository.NewFindWorkspaceByIdRepository(s.Db)
	listMembersRepository := member_repository.NewListMembersRepository(s.Db)

	return controllers.NewExportMembersController(findWorkspaceByIdRepository, listMembersRepository, s.RedisURL)
}

func MakeExportDocumentsController(s *Services) *controllers.ExportDocumentsController {
	findDocumentsRepository := document_repository.NewFindDocumentsRepository(s.Db)

	return controllers.NewExportDocumentsController(findDocumentsRepository, s.RedisURL)
}
