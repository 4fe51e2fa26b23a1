package auth

import (
	"context"

	"github.com/minhvu/portfolio-cms/internal/domain/portfolio"
	"github.com/minhvu/portfolio-cms/pkg/apperror"
	"github.com/minhvu/portfolio-cms/pkg/auth"
	"github.com/minhvu/portfolio-cms/pkg/logger"
)

type LoginUseCase struct {
	store  portfolio.Store
	jwtSvc *auth.JWTService
	logger logger.Logger
}

func NewLoginUseCase(store portfolio.Store, jwtSvc *auth.JWTService, log logger.Logger) *LoginUseCase {
	return &LoginUseCase{
		store:  store,
		jwtSvc: jwtSvc,
		logger: log,
	}
}

type LoginInput struct {
	Username string
	Password string
}

type LoginOutput struct {
	Token string
}

// Execute checks the credentials against the stored admin record and issues
// a session token. Username and password failures are indistinguishable to
// the caller.
func (uc *LoginUseCase) Execute(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	doc, err := uc.store.Read(ctx)
	if err != nil {
		return nil, err
	}

	creds := doc.AdminCredentials
	if input.Username != creds.Username || !auth.CheckPasswordHash(input.Password, creds.PasswordHash) {
		return nil, apperror.NewUnauthorized("invalid username or password", nil)
	}

	token, err := uc.jwtSvc.GenerateToken(creds.Username)
	if err != nil {
		uc.logger.Error("failed to generate token", err)
		return nil, apperror.NewInternal("failed to generate token", err)
	}

	return &LoginOutput{Token: token}, nil
}
