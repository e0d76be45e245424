package factory

import (
	"github.com/catatancerdas/collab-backend/internal/infra/db/mongodb/document_repository"
	"github.com/catatancerdas/collab-backend/internal/infra/db/mongodb/workspace_repository"
	controllers "github.com/catatancerdas/collab-backend/internal/presentation/controllers/document"
)

func MakeCreateDocumentController(s *Services) *controllers.CreateDocumentController {
	createDocumentRepository := document_repository.NewCreateDocumentRepository(s.Db)
	findDocumentByIdRepository := document_repository.NewFindDocumentByIdRepository(s.Db)

	return controllers.NewCreateDocumentController(createDocumentRepository, findDocumentByIdRepository, s.Publisher)
}

func MakeGetDocumentsController(s *Services) *controllers.GetDocumentsController {
	findDocumentsRepository := document_repository.NewFindDocumentsRepository(s.Db)

	return controllers.NewGetDocumentsController(findDocumentsRepository)
}

func MakeGetDocumentByIdController(s *Services) *controllers.GetDocumentByIdController {
	findDocumentByIdRepository := document_repository.NewFindDocumentByIdRepository(s.Db)

	return controllers.NewGetDocumentByIdController(findDocumentByIdRepository)
}

func MakeGetPublicDocumentController(s *Services) *controllers.GetPublicDocumentController {
	findDocumentByIdRepository := document_repository.NewFindDocumentByIdRepository(s.Db)

	return controllers.NewGetPublicDocumentController(findDocumentByIdRepository)
}

func MakeUpdateDocumentController(s *Services) *controllers.UpdateDocumentController {
	findDocumentByIdRepository := document_repository.NewFindDocumentByIdRepository(s.Db)
	updateDocumentRepository := document_repository.NewUpdateDocumentRepository(s.Db)

	return controllers.NewUpdateDocumentController(findDocumentByIdRepository, updateDocumentRepository, s.Publisher)
}

func MakeArchiveDocumentController(s *Services) *controllers.ArchiveDocumentController {
	findDocumentByIdRepository := document_repository.NewFindDocumentByIdRepository(s.Db)
	archiveDocumentRepository := document_repository.NewArchiveDocumentRepository(s.Db)

	return controllers.NewArchiveDocumentController(findDocumentByIdRepository, archiveDocumentRepository, s.Publisher)
}

func MakeRestoreDocumentController(s *Services) *controllers.RestoreDocumentController {
	findDocumentByIdRepository := document_repository.NewFindDocumentByIdRepository(s.Db)
	restoreDocumentRepository := document_repository.NewRestoreDocumentRepository(s.Db)

	return controllers.NewRestoreDocumentController(findDocumentByIdRepository, restoreDocumentRepository, s.Publisher)
}

func MakeDeleteDocumentController(s *Services) *controllers.DeleteDocumentController {
	findWorkspaceByIdRepository := workspace_repository.NewFindWorkspaceByIdRepository(s.Db)
	findDocumentByIdRepository := document_repository.NewFindDocumentByIdRepository(s.Db)
	deleteDocumentRepository := document_repository.NewDeleteDocumentRepository(s.Db)

	return controllers.NewDeleteDocumentController(
		findWorkspaceByIdRepository,
		findDocumentByIdRepository,
		deleteDocumentRepository,
		s.Publisher,
	)
}
