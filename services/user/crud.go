package user

import (
	"educonnect/models"
	"educonnect/services/apperrors"
	"educonnect/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// GetUserByID retrieves a user by its unique ID.
func (s *DefaultUserService) GetUserByID(userID primitive.ObjectID) (*models.User, error) {
	userRec, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if userRec == nil {
		return nil, apperrors.NotFound("user not found")
	}
	return userRec, nil
}

// UpdateProfile updates the account fields.
func (s *DefaultUserService) UpdateProfile(userID primitive.ObjectID, update ProfileUpdate) (*models.User, error) {
	userRec, err := s.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		if *update.Name == "" {
			return nil, apperrors.Validation("name cannot be empty")
		}
		userRec.Name = *update.Name
	}
	if update.FCMToken != nil {
		userRec.FCMToken = *update.FCMToken
	}

	if err := s.Repo.Update(userRec); err != nil {
		return nil, err
	}
	return userRec, nil
}

// UpdatePassword verifies the current password and replaces it.
func (s *DefaultUserService) UpdatePassword(userID primitive.ObjectID, currentPassword, newPassword string) error {
	userRec, err := s.GetUserByID(userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(currentPassword)); err != nil {
		return apperrors.Unauthorized("current password is incorrect")
	}
	if len(newPassword) < 8 {
		return apperrors.Validation("password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	userRec.PasswordHash = string(hash)

	if err := s.Repo.Update(userRec); err != nil {
		return err
	}
	// Sign out every other session after a password change.
	return s.RevokeAuthToken(userID)
}

// DeleteAccount removes the user document. Profile cleanup is
// best-effort: a failed profile deletion is logged and the account
// deletion still goes through.
func (s *DefaultUserService) DeleteAccount(userID primitive.ObjectID) error {
	userRec, err := s.GetUserByID(userID)
	if err != nil {
		return err
	}

	if err := s.Repo.Delete(userID); err != nil {
		return err
	}
	utils.DropAuthVersion(userID.Hex())

	switch userRec.Role {
	case models.RoleTutor:
		if err := s.TutorRepo.DeleteByUserID(userID); err != nil {
			utils.GetLogger().Warn("DeleteAccount: failed to delete tutor profile",
				zap.String("userID", userID.Hex()), zap.Error(err))
		}
	case models.RoleStudent:
		if err := s.StudentRepo.DeleteByUserID(userID); err != nil {
			utils.GetLogger().Warn("DeleteAccount: failed to delete student profile",
				zap.String("userID", userID.Hex()), zap.Error(err))
		}
	}
	return nil
}
