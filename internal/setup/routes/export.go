package routes

import (
	"net/http"

	"github.com/catatancerdas/collab-backend/internal/setup/adapters"
	"github.com/catatancerdas/collab-backend/internal/setup/factory"
	"github.com/catatancerdas/collab-backend/internal/setup/middlewares"
)

func ExportRoutes(server *http.ServeMux, s *factory.Services) {
	server.Handle("GET /workspace/{workspaceId}/export/members", middlewares.VerifyAccessToken(
		middlewares.IsMember(
			adapters.AdaptRoute(factory.MakeExportMembersController(s)),
			s.Db,
		),
	))

	server.Handle("GET /workspace/{workspaceId}/export/documents", middlewares.VerifyAccessToken(
		middlewares.IsMember(
			adapters.AdaptRoute(factory.MakeExportDocumentsController(s)),
			s.Db,
		),
	))
}
