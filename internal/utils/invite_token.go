package utils

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// InviteTokenUtil signs and verifies the token embedded in the invitation
// accept link, binding the link to one invitation id and recipient email.
type InviteTokenUtil struct {
	Secret []byte
}

func NewInviteTokenUtil() *InviteTokenUtil {
	return &InviteTokenUtil{Secret: []byte(os.Getenv("INVITE_SECRET"))}
}

type inviteClaims struct {
	InvitationId string `json:"invitationId"`
	Email        string `json:"email"`
	jwt.RegisteredClaims
}

func (u *InviteTokenUtil) Sign(invitationId string, email string, expiresAt time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, inviteClaims{
		InvitationId: invitationId,
		Email:        email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	})
	return token.SignedString(u.Secret)
}

// Verify returns the invitation id and email carried by the token.
func (u *InviteTokenUtil) Verify(tokenStr string) (string, string, error) {
	var claims inviteClaims
	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return u.Secret, nil
	})
	if err != nil {
		return "", "", err
	}
	if !token.Valid {
		return "", "", errors.New("invalid invite token")
	}
	return claims.InvitationId, claims.Email, nil
}
