package routes

import (
	"net/http"

	"github.com/catatancerdas/collab-backend/internal/setup/adapters"
	"github.com/catatancerdas/collab-backend/internal/setup/factory"
	"github.com/catatancerdas/collab-backend/internal/setup/middlewares"
)

func MemberRoutes(server *http.ServeMux, s *factory.Services) {
	server.Handle("GET /workspace/{workspaceId}/member", middlewares.VerifyAccessToken(
		middlewares.IsMember(
			adapters.AdaptRoute(factory.MakeListMembersController(s)),
			s.Db,
		),
	))

	server.Handle("PUT /workspace/{workspaceId}/member/{userId}", middlewares.VerifyAccessToken(
		middlewares.IsMember(
			adapters.AdaptRoute(factory.MakeUpdateMemberRoleController(s)),
			s.Db,
		),
	))

	server.Handle("DELETE /workspace/{workspaceId}/member/{userId}", middlewares.VerifyAccessToken(
		middlewares.IsMember(
			adapters.AdaptRoute(factory.MakeRemoveMemberController(s)),
			s.Db,
		),
	))

	server.Handle("DELETE /workspace/{workspaceId}/leave", middlewares.VerifyAccessToken(
		middlewares.IsMember(
			adapters.AdaptRoute(factory.MakeLeaveWorkspaceController(s)),
			s.Db,
		),
	))
}
