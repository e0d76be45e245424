package invitation

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/catatancerdas/collab-backend/internal/domain/usecase"
	"github.com/catatancerdas/collab-backend/internal/presentation/helpers"
	presentationProtocols "github.com/catatancerdas/collab-backend/internal/presentation/protocols"
	"github.com/catatancerdas/collab-backend/internal/utils"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AcceptInvitationController consumes an invitation: the signed link token
// must match the invitation, the actor's account email must match the
// invited email and the invitation must still be within its 24h window.
// Expiry is only ever checked here; expired invitations are not swept.
type AcceptInvitationController struct {
	Validate                     *validator.Validate
	FindInvitationByIdRepository usecase.FindInvitationByIdRepository
	FindUserByIdRepository       usecase.FindUserByIdRepository
	AcceptInvitationRepository   usecase.AcceptInvitationRepository
	EventPublisher               usecase.EventPublisher
	InviteToken                  *utils.InviteTokenUtil
	Now                          func() time.Time
}

func NewAcceptInvitationController(
	findInvitationByIdRepository usecase.FindInvitationByIdRepository,
	findUserByIdRepository usecase.FindUserByIdRepository,
	acceptInvitationRepository usecase.AcceptInvitationRepository,
	eventPublisher usecase.EventPublisher,
) *AcceptInvitationController {
	validate := validator.New(validator.WithRequiredStructEnabled())
	return &AcceptInvitationController{
		Validate:                     validate,
		FindInvitationByIdRepository: findInvitationByIdRepository,
		FindUserByIdRepository:       findUserByIdRepository,
		AcceptInvitationRepository:   acceptInvitationRepository,
		EventPublisher:               eventPublisher,
		InviteToken:                  utils.NewInviteTokenUtil(),
		Now:                          time.Now,
	}
}

type AcceptInvitationControllerBody struct {
	Token string `json:"token" validate:"required"`
}

func (c *AcceptInvitationController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body AcceptInvitationControllerBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeBadRequest,
			"invalid body request", http.StatusBadRequest)
	}

	if err := c.Validate.Struct(body); err != nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeBadRequest,
			helpers.GetErrorMessages(c.Validate, err), http.StatusUnprocessableEntity)
	}

	invitationId := r.Req.PathValue("invitationId")
	if invitationId == "" {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeBadRequest,
			"missing invitation ID", http.StatusBadRequest)
	}

	actorId, err := primitive.ObjectIDFromHex(r.Header.Get("UserId"))
	if err != nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeBadRequest,
			"invalid user ID format", http.StatusBadRequest)
	}

	invitation, err := c.FindInvitationByIdRepository.Find(invitationId)
	if err != nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeInternalServerError,
			"an error occurred when retrieving invitation", http.StatusInternalServerError)
	}
	if invitation == nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeNotFound,
			"invitation not found", http.StatusNotFound)
	}

	tokenInvitationId, tokenEmail, err := c.InviteToken.Verify(body.Token)
	if err != nil || tokenInvitationId != invitation.Id ||
		!strings.EqualFold(tokenEmail, invitation.Email) {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeForbidden,
			"invalid invitation token", http.StatusForbidden)
	}

	if invitation.IsExpired(c.Now()) {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeForbidden,
			"invitation expired", http.StatusForbidden)
	}

	user, err := c.FindUserByIdRepository.Find(actorId)
	if err != nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeInternalServerError,
			"an error occurred when retrieving user", http.StatusInternalServerError)
	}
	if user == nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeNotFound,
			"user not found", http.StatusNotFound)
	}
	if !strings.EqualFold(user.Email, invitation.Email) {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeForbidden,
			"invitation was issued to a different email", http.StatusForbidden)
	}

	if err := c.AcceptInvitationRepository.Accept(invitation, actorId); err != nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeInternalServerError,
			"an error occurred when accepting invitation", http.StatusInternalServerError)
	}

	payload := map[string]any{
		"workspaceId": invitation.WorkspaceId.Hex(),
		"memberId":    actorId.Hex(),
		"role":        invitation.Role,
	}
	c.EventPublisher.Publish(usecase.WorkspaceChannel(invitation.WorkspaceId.Hex()), "member-added", payload)
	c.EventPublisher.Publish(usecase.NotificationChannel(invitation.InvitedById.Hex()), "invitation-accepted", payload)

	return helpers.CreateSuccessResponse(payload, http.StatusOK)
}
