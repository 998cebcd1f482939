package user

import (
	"strings"

	"educonnect/models"
	"educonnect/services/apperrors"
	"educonnect/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Authenticate verifies credentials and returns a signed token carrying
// the user's current tokenVersion.
func (s *DefaultUserService) Authenticate(email, password string) (*models.AuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	userRec, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to fetch user", zap.Error(err))
		return nil, err
	}
	if userRec == nil {
		return nil, apperrors.Unauthorized("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.Unauthorized("invalid email or password")
	}
	if !userRec.Active {
		return nil, apperrors.Forbidden("this account has been deactivated")
	}

	token, err := utils.GenerateToken(userRec.ID.Hex(), userRec.Role, userRec.TokenVersion, tokenDuration())
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{Token: token, User: userRec}, nil
}

// RevokeAuthToken bumps the user's tokenVersion; tokens minted with the
// old version fail the middleware compare on their next request.
func (s *DefaultUserService) RevokeAuthToken(userID primitive.ObjectID) error {
	if _, err := s.Repo.IncrementTokenVersion(userID); err != nil {
		return err
	}
	utils.DropAuthVersion(userID.Hex())
	return nil
}
