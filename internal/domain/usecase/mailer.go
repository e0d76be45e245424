package usecase

// InvitationMailer delivers the invitation email through the external mail
// provider. Delivery failures are logged, never surfaced to the inviter.
type InvitationMailer interface {
	SendInvitation(email string, workspaceName string, acceptURL string) error
}
