package factory

import (
	"github.com/catatancerdas/collab-backend/internal/infra/db/mongodb/notification_repository"
	controllers "github.com/catatancerdas/collab-backend/internal/presentation/controllers/notification"
)

func MakeGetNotificationsController(s *Services) *controllers.GetNotificationsController {
	findNotificationsByUserRepository := notification_repository.NewFindNotificationsByUserRepository(s.Db)

	return controllers.NewGetNotificationsController(findNotificationsByUserRepository)
}

func MakeMarkNotificationReadController(s *Services) *controllers.MarkNotificationReadController {
	markNotificationReadRepository := notification_repository.NewMarkNotificationReadRepository(s.Db)

	return controllers.NewMarkNotificationReadController(markNotificationReadRepository)
}

func MakeMarkAllNotificationsReadController(s *Services) *controllers.MarkAllNotificationsReadController {
	markAllNotificationsReadRepository := notification_repository.NewMarkAllNotificationsReadRepository(s.Db)

	return controllers.NewMarkAllNotificationsReadController(markAllNotificationsReadRepository)
}
