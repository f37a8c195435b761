package usecase

import (
	"context"

	"cargo-consolidation/internal/domain/user"
	"cargo-consolidation/internal/pkg/errs"
	"cargo-consolidation/internal/pkg/jwt"

	"github.com/google/uuid"
)

var ErrUnauthenticated = errs.New("unauthenticated")

// Principal is the caller behind a bearer token. Accounts live in the
// identity service; this API only trusts the signed claims.
type Principal struct {
	UserID uuid.UUID
	Role   user.Role
}

func (p Principal) IsStaff() bool { return p.Role.AtLeast(user.RoleStaff) }

type TokenValidator interface {
	Authenticate(ctx context.Context, token string) (Principal, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{jwtService: jwtService}
}

func (t *tokenValidatorImpl) Authenticate(_ context.Context, token string) (Principal, error) {
	claims, err := t.jwtService.Parse(token)
	if err != nil {
		return Principal{}, errs.Mark(err, ErrUnauthenticated)
	}
	userID := claims.UserID()
	if userID == uuid.Nil {
		return Principal{}, errs.Wrap(ErrUnauthenticated, "token has no subject")
	}
	role, err := user.NewRole(claims.Role.String())
	if err != nil {
		return Principal{}, errs.Mark(errs.Wrap(err, "token role"), ErrUnauthenticated)
	}
	return Principal{UserID: userID, Role: role}, nil
}
