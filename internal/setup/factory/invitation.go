package factory

import (
	"github.com/catatancerdas/collab-backend/internal/infra/db/mongodb/invitation_repository"
	"github.com/catatancerdas/collab-backend/internal/infra/db/mongodb/user_repository"
	"github.com/catatancerdas/collab-backend/internal/infra/db/mongodb/workspace_repository"
	controllers "github.com/catatancerdas/collab-backend/internal/presentation/controllers/invitation"
)

func MakeCreateInvitationController(s *Services) *controllers.CreateInvitationController {
	findWorkspaceByIdRepository := workspace_repository.NewFindWorkspaceByIdRepository(s.Db)
	findUserByEmailRepository := user_repository.NewFindUserByEmailRepository(s.Db)
	findPendingInvitationRepository := invitation_repository.NewFindPendingInvitationRepository(s.Db)
	createInvitationRepository := invitation_repository.NewCreateInvitationRepository(s.Db)

	return controllers.NewCreateInvitationController(
		findWorkspaceByIdRepository,
		findUserByEmailRepository,
		findPendingInvitationRepository,
		createInvitationRepository,
		s.Mailer,
		s.Publisher,
	)
}

func MakeListInvitationsController(s *Services) *controllers.ListInvitationsController {
	findWorkspaceByIdRepository := workspace_repository.NewFindWorkspaceByIdRepository(s.Db)
	findInvitationsByWorkspaceRepository := invitation_repository.NewFindInvitationsByWorkspaceRepository(s.Db)

	return controllers.NewListInvitationsController(findWorkspaceByIdRepository, findInvitationsByWorkspaceRepository)
}

func MakeRevokeInvitationController(s *Services) *controllers.RevokeInvitationController {
	findWorkspaceByIdRepository := workspace_repository.NewFindWorkspaceByIdRepository(s.Db)
	findInvitationByIdRepository := invitation_repository.NewFindInvitationByIdRepository(s.Db)
	deleteInvitationRepository := invitation_repository.NewDeleteInvitationRepository(s.Db)

	return controllers.NewRevokeInvitationController(
		findWorkspaceByIdRepository,
		findInvitationByIdRepository,
		deleteInvitationRepository,
		s.Publisher,
	)
}

func MakeAcceptInvitationController(s *Services) *controllers.AcceptInvitationController {
	findInvitationByIdRepository := invitation_repository.NewFindInvitationByIdRepository(s.Db)
	findUserByIdRepository := user_repository.NewFindUserByIdRepository(s.Db)
	acceptInvitationRepository := invitation_repository.NewAcceptInvitationRepository(s.Db)

	return controllers.NewAcceptInvitationController(
		findInvitationByIdRepository,
		findUserByIdRepository,
		acceptInvitationRepository,
		s.Publisher,
	)
}
