package factory

import (
	"github.com/catatancerdas/collab-backend/internal/infra/db/mongodb/member_repository"
	"github.com/catatancerdas/collab-backend/internal/infra/db/mongodb/workspace_repository"
	controllers "github.com/catatancerdas/collab-backend/internal/presentation/controllers/member"
)

func MakeListMembersController(s *Services) *controllers.ListMembersController {
	listMembersRepository := member_repository.NewListMembersRepository(s.Db)

	return controllers.NewListMembersController(listMembersRepository)
}

func MakeUpdateMemberRoleController(s *Services) *controllers.UpdateMemberRoleController {
	findWorkspaceByIdRepository := workspace_repository.NewFindWorkspaceByIdRepository(s.Db)
	updateMemberRoleRepository := member_repository.NewUpdateMemberRoleRepository(s.Db)

	return controllers.NewUpdateMemberRoleController(findWorkspaceByIdRepository, updateMemberRoleRepository, s.Publisher)
}

func MakeRemoveMemberController(s *Services) *controllers.RemoveMemberController {
	findWorkspaceByIdRepository := workspace_repository.NewFindWorkspaceByIdRepository(s.Db)
	removeMemberRepository := member_repository.NewRemoveMemberRepository(s.Db)

	return controllers.NewRemoveMemberController(findWorkspaceByIdRepository, removeMemberRepository, s.Publisher)
}

func MakeLeaveWorkspaceController(s *Services) *controllers.LeaveWorkspaceController {
	findWorkspaceByIdRepository := workspace_repository.NewFindWorkspaceByIdRepository(s.Db)
	removeMemberRepository := member_repository.NewRemoveMemberRepository(s.Db)

	return controllers.NewLeaveWorkspaceController(findWorkspaceByIdRepository, removeMemberRepository, s.Publisher)
}
