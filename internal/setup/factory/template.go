package factory

import (
	"github.com/catatancerdas/collab-backend/internal/infra/db/mongodb/document_repository"
	controllers "github.com/catatancerdas/collab-backend/internal/presentation/controllers/template"
)

func MakeCreateTemplateController(s *Services) *controllers.CreateTemplateController {
	createDocumentRepository := document_repository.NewCreateDocumentRepository(s.Db)

	return controllers.NewCreateTemplateController(s.Templates, createDocumentRepository, s.Publisher)
}
