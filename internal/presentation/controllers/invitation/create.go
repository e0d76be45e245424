package invitation

import (
	"encoding/json"
	"log"
	"net/http"
	"os"

	"github.com/catatancerdas/collab-backend/internal/domain/models"
	"github.com/catatancerdas/collab-backend/internal/domain/policy"
	"github.com/catatancerdas/collab-backend/internal/domain/usecase"
	"github.com/catatancerdas/collab-backend/internal/presentation/helpers"
	presentationProtocols "github.com/catatancerdas/collab-backend/internal/presentation/protocols"
	"github.com/catatancerdas/collab-backend/internal/utils"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateInvitationController invites an email into a workspace at a given
// role. The invitation link carries a signed token bound to the invitation id
// and recipient email.
type CreateInvitationController struct {
	Validate                        *validator.Validate
	FindWorkspaceByIdRepository     usecase.FindWorkspaceByIdRepository
	FindUserByEmailRepository       usecase.FindUserByEmailRepository
	FindPendingInvitationRepository usecase.FindPendingInvitationRepository
	CreateInvitationRepository      usecase.CreateInvitationRepository
	InvitationMailer                usecase.InvitationMailer
	EventPublisher                  usecase.EventPublisher
	InviteToken                     *utils.InviteTokenUtil
}

func NewCreateInvitationController(
	findWorkspaceByIdRepository usecase.FindWorkspaceByIdRepository,
	findUserByEmailRepository usecase.FindUserByEmailRepository,
	findPendingInvitationRepository usecase.FindPendingInvitationRepository,
	createInvitationRepository usecase.CreateInvitationRepository,
	invitationMailer usecase.InvitationMailer,
	eventPublisher usecase.EventPublisher,
) *CreateInvitationController {
	validate := validator.New(validator.WithRequiredStructEnabled())
	return &CreateInvitationController{
		Validate:                        validate,
		FindWorkspaceByIdRepository:     findWorkspaceByIdRepository,
		FindUserByEmailRepository:       findUserByEmailRepository,
		FindPendingInvitationRepository: findPendingInvitationRepository,
		CreateInvitationRepository:      createInvitationRepository,
		InvitationMailer:                invitationMailer,
		EventPublisher:                  eventPublisher,
		InviteToken:                     utils.NewInviteTokenUtil(),
	}
}

type CreateInvitationControllerBody struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required,oneof=SUPER_ADMIN ADMIN MEMBER"`
}

func (c *CreateInvitationController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body CreateInvitationControllerBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeBadRequest,
			"invalid body request", http.StatusBadRequest)
	}

	if err := c.Validate.Struct(body); err != nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeBadRequest,
			helpers.GetErrorMessages(c.Validate, err), http.StatusUnprocessableEntity)
	}

	workspaceId, err := primitive.ObjectIDFromHex(r.Req.PathValue("workspaceId"))
	if err != nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeBadRequest,
			"invalid workspace ID format", http.StatusBadRequest)
	}

	actorId, err := primitive.ObjectIDFromHex(r.Header.Get("UserId"))
	if err != nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeBadRequest,
			"invalid user ID format", http.StatusBadRequest)
	}

	workspace, err := c.FindWorkspaceByIdRepository.Find(workspaceId)
	if err != nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeInternalServerError,
			"an error occurred when retrieving workspace", http.StatusInternalServerError)
	}
	if workspace == nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeNotFound,
			"workspace not found", http.StatusNotFound)
	}

	actor := workspace.FindMember(actorId)
	if actor == nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeForbidden,
			"you are not a member of this workspace", http.StatusForbidden)
	}

	actorRole, _ := policy.ParseRole(actor.Role)
	requestedRole, _ := policy.ParseRole(body.Role)

	decision := policy.CanInvite(actorRole, requestedRole)
	if !decision.Allowed {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeForbidden,
			decision.Reason, http.StatusForbidden)
	}

	existingUser, err := c.FindUserByEmailRepository.FindByEmail(body.Email)
	if err != nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeInternalServerError,
			"an error occurred when checking for existing member", http.StatusInternalServerError)
	}
	if existingUser != nil && workspace.FindMember(existingUser.Id) != nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeConflict,
			"this email already belongs to a member", http.StatusConflict)
	}

	pending, err := c.FindPendingInvitationRepository.FindPending(workspaceId, body.Email)
	if err != nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeInternalServerError,
			"an error occurred when checking for pending invitation", http.StatusInternalServerError)
	}
	if pending != nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeConflict,
			"this email already has a pending invitation", http.StatusConflict)
	}

	invitation, err := c.CreateInvitationRepository.Create(&models.Invitation{
		WorkspaceId: workspaceId,
		Email:       body.Email,
		Role:        body.Role,
		InvitedById: actorId,
	})
	if err != nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeInternalServerError,
			"an error occurred when creating invitation", http.StatusInternalServerError)
	}

	token, err := c.InviteToken.Sign(invitation.Id, invitation.Email, invitation.ExpiredAt)
	if err != nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeInternalServerError,
			"an error occurred when signing invitation token", http.StatusInternalServerError)
	}

	acceptURL := os.Getenv("APP_URL") + "/invitation/" + invitation.Id + "?token=" + token
	go func() {
		defer utils.RecoverPublish()
		if err := c.InvitationMailer.SendInvitation(invitation.Email, workspace.Name, acceptURL); err != nil {
			log.Printf("failed to send invitation email to %s: %v", invitation.Email, err)
		}
	}()

	c.EventPublisher.Publish(usecase.WorkspaceChannel(workspaceId.Hex()), "invitation-added", map[string]any{
		"invitation": invitation,
		"actorId":    actorId.Hex(),
	})

	return helpers.CreateSuccessResponse(invitation, http.StatusCreated)
}
