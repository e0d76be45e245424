package usecase

// EventPublisher fans a mutation event out on a channel. Implementations are
// fire-and-forget: delivery is not guaranteed and failures must not fail the
// request that triggered them.
type EventPublisher interface {
	Publish(channel string, event string, payload any)
}

// Channel naming shared by publisher and subscribers.
const (
	WorkspaceChannelPrefix    = "workspace:"
	NotificationChannelPrefix = "notifications:"
)

func WorkspaceChannel(workspaceId string) string {
	return WorkspaceChannelPrefix + workspaceId
}

func NotificationChannel(userId string) string {
	return NotificationChannelPrefix + userId
}
