package routes

import (
	"net/http"

	"github.com/catatancerdas/collab-backend/internal/setup/adapters"
	"github.com/catatancerdas/collab-backend/internal/setup/factory"
	"github.com/catatancerdas/collab-backend/internal/setup/middlewares"
)

func DocumentRoutes(server *http.ServeMux, s *factory.Services) {
	server.Handle("POST /workspace/{workspaceId}/document", middlewares.VerifyAccessToken(
		middlewares.IsMember(
			adapters.AdaptRoute(factory.MakeCreateDocumentController(s)),
			s.Db,
		),
	))

	server.Handle("GET /workspace/{workspaceId}/document", middlewares.VerifyAccessToken(
		middlewares.IsMember(
			adapters.AdaptRoute(factory.MakeGetDocumentsController(s)),
			s.Db,
		),
	))

	server.Handle("GET /workspace/{workspaceId}/document/{documentId}", middlewares.VerifyAccessToken(
		middlewares.IsMember(
			adapters.AdaptRoute(factory.MakeGetDocumentByIdController(s)),
			s.Db,
		),
	))

	server.Handle("PUT /workspace/{workspaceId}/document/{documentId}", middlewares.VerifyAccessToken(
		middlewares.IsMember(
			adapters.AdaptRoute(factory.MakeUpdateDocumentController(s)),
			s.Db,
		),
	))

	server.Handle("DELETE /workspace/{workspaceId}/document/{documentId}", middlewares.VerifyAccessToken(
		middlewares.IsMember(
			adapters.AdaptRoute(factory.MakeArchiveDocumentController(s)),
			s.Db,
		),
	))

	server.Handle("POST /workspace/{workspaceId}/document/{documentId}/restore", middlewares.VerifyAccessToken(
		middlewares.IsMember(
			adapters.AdaptRoute(factory.MakeRestoreDocumentController(s)),
			s.Db,
		),
	))

	server.Handle("DELETE /workspace/{workspaceId}/document/{documentId}/permanent", middlewares.VerifyAccessToken(
		middlewares.IsMember(
			adapters.AdaptRoute(factory.MakeDeleteDocumentController(s)),
			s.Db,
		),
	))

	// Published documents are readable without a session.
	server.Handle("GET /document/{documentId}/public", middlewares.AllowCacheHeader(
		adapters.AdaptRoute(factory.MakeGetPublicDocumentController(s)),
	))

	server.Handle("POST /workspace/{workspaceId}/template", middlewares.VerifyAccessToken(
		middlewares.IsMember(
			adapters.AdaptRoute(factory.MakeCreateTemplateController(s)),
			s.Db,
		),
	))
}
