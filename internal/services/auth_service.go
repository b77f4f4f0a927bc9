package services

import (
	"context"
	"net/http"

	"gorm.io/gorm"

	"collabmate_backend/internal/auth"
	"collabmate_backend/internal/identity"
	"collabmate_backend/internal/models"
	"collabmate_backend/internal/repositories"
	"collabmate_backend/internal/services/dto"
	"collabmate_backend/pkg/apperrors"
)

type AuthService interface {
	// GoogleSignup verifies a Google ID token, creates the internal user
	// record for its email and issues a bearer credential.
	GoogleSignup(ctx context.Context, db *gorm.DB, idToken string) (*dto.AuthResponse, error)

	// GoogleSignin verifies the token and issues a credential for an
	// already-registered email.
	GoogleSignin(ctx context.Context, db *gorm.DB, idToken string) (*dto.AuthResponse, error)
}

type AuthServiceImpl struct {
	verifier identity.Verifier
	userRepo repositories.UserRepository
	tokens   *auth.TokenManager
}

func NewAuthService(verifier identity.Verifier, userRepo repositories.UserRepository, tokens *auth.TokenManager) AuthService {
	return &AuthServiceImpl{
		verifier: verifier,
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (s *AuthServiceImpl) GoogleSignup(ctx context.Context, db *gorm.DB, idToken string) (*dto.AuthResponse, error) {
	email, err := s.verifier.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeUpstreamFailure, "identity",
			"Authentication failed", http.StatusInternalServerError)
	}

	if _, err := s.userRepo.FindByEmail(db, email); err == nil {
		return nil, apperrors.ErrAccountExists
	} else if !apperrors.Is(err, repositories.ErrUserNotFound) {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{Email: email}
	if err := s.userRepo.Create(db, user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrAccountExists
		}
		return nil, apperrors.InternalError(err)
	}

	return s.issueToken(user.ID)
}

func (s *AuthServiceImpl) GoogleSignin(ctx context.Context, db *gorm.DB, idToken string) (*dto.AuthResponse, error) {
	email, err := s.verifier.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeUpstreamFailure, "identity",
			"Authentication failed", http.StatusInternalServerError)
	}

	user, err := s.userRepo.FindByEmail(db, email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrAccountMissing
		}
		return nil, apperrors.InternalError(err)
	}

	return s.issueToken(user.ID)
}

func (s *AuthServiceImpl) issueToken(userID string) (*dto.AuthResponse, error) {
	token, err := s.tokens.Generate(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.AuthResponse{Token: token}, nil
}
