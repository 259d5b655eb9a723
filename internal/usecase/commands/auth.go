package commands

import (
	"context"

	"stayfinder/internal/domain/user"
	"stayfinder/internal/infra"
	"stayfinder/internal/pkg/errs"
	"stayfinder/internal/pkg/jwt"
	"stayfinder/internal/pkg/password"
	"stayfinder/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrTokenGeneration = errs.New("token generation failed")
	ErrTokenValidation = errs.New("token validation failed")
)

type RegisterUserInput struct {
	Username    string
	Email       string
	Password    string
	FullName    *string
	PhoneNumber *string
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type LoginResult struct {
	User   *user.User
	Tokens TokenPair
}

// AuthCommands is the identity provider boundary: the booking core only ever
// sees the user id and admin flag it derives from tokens issued here.
type AuthCommands interface {
	Register(ctx context.Context, in RegisterUserInput) (*LoginResult, error)
	Login(ctx context.Context, email, plainPassword string) (*LoginResult, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	CurrentUser(ctx context.Context, id uuid.UUID) (*user.User, error)
}

type authCommandsImpl struct {
	users shared.UserRepository
	jwt   *jwt.Service
}

func NewAuthCommands(users shared.UserRepository, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		users: users,
		jwt:   jwtService,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, in RegisterUserInput) (*LoginResult, error) {
	if existing, err := a.users.FindByEmail(ctx, in.Email); err == nil && existing != nil {
		return nil, shared.ErrEmailTaken
	}
	if existing, err := a.users.FindByUsername(ctx, in.Username); err == nil && existing != nil {
		return nil, shared.ErrUsernameTaken
	}

	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, errs.Mark(err, shared.ErrValidation)
	}

	u, err := user.New(in.Username, in.Email, hash, in.FullName, in.PhoneNumber)
	if err != nil {
		return nil, errs.Mark(err, shared.ErrValidation)
	}

	if err := a.users.Create(ctx, u); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, shared.ErrEmailTaken)
		}
		return nil, shared.MapRepoErr(err, shared.ErrStorageUnavailable)
	}

	tokens, err := a.issueTokens(u)
	if err != nil {
		return nil, err
	}
	return &LoginResult{User: u, Tokens: tokens}, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, email, plainPassword string) (*LoginResult, error) {
	u, err := a.users.FindByEmail(ctx, email)
	if err != nil {
		// Same error as a password mismatch to prevent user enumeration.
		return nil, shared.ErrInvalidCredentials
	}

	if err := password.Verify(u.PasswordHash(), plainPassword); err != nil {
		return nil, shared.ErrInvalidCredentials
	}

	tokens, err := a.issueTokens(u)
	if err != nil {
		return nil, err
	}
	return &LoginResult{User: u, Tokens: tokens}, nil
}

func (a *authCommandsImpl) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwt.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}
	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	u, err := a.users.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, shared.MapRepoErr(err, shared.ErrUserNotFound)
	}

	tokens, err := a.issueTokens(u)
	if err != nil {
		return nil, err
	}
	return &tokens, nil
}

func (a *authCommandsImpl) CurrentUser(ctx context.Context, id uuid.UUID) (*user.User, error) {
	u, err := a.users.FindByID(ctx, id)
	if err != nil {
		return nil, shared.MapRepoErr(err, shared.ErrUserNotFound)
	}
	return u, nil
}

func (a *authCommandsImpl) issueTokens(u *user.User) (TokenPair, error) {
	access, err := a.jwt.GenerateAccessToken(u.ID(), u.IsAdmin())
	if err != nil {
		return TokenPair{}, errs.Mark(err, ErrTokenGeneration)
	}
	refresh, err := a.jwt.GenerateRefreshToken(u.ID(), u.IsAdmin())
	if err != nil {
		return TokenPair{}, errs.Mark(err, ErrTokenGeneration)
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
