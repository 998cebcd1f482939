package tutor

import (
	"context"
	"io"
	"time"

	"educonnect/models"
	"educonnect/services/apperrors"
	"educonnect/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const verificationFolder = "educonnect/verifications"

// SubmitVerification uploads the tutor's document and opens a pending
// verification request. One open request per tutor at a time.
func (s *DefaultTutorService) SubmitVerification(ctx context.Context, userID primitive.ObjectID, document io.Reader) (*models.VerificationRequest, error) {
	profile, err := s.GetOwnProfile(userID)
	if err != nil {
		return nil, err
	}
	if profile.Verified {
		return nil, apperrors.Conflict("this tutor is already verified")
	}

	open, err := s.Verifications.GetOpenByTutor(profile.ID)
	if err != nil {
		return nil, err
	}
	if open != nil {
		return nil, apperrors.Conflict("a verification request is already pending")
	}

	if s.Storage == nil {
		return nil, apperrors.Validation("document uploads are not configured")
	}
	url, err := s.Storage.UploadDocument(ctx, document, verificationFolder)
	if err != nil {
		utils.GetLogger().Error("SubmitVerification: upload failed",
			zap.String("tutorID", profile.ID.Hex()), zap.Error(err))
		return nil, err
	}

	now := time.Now().UTC()
	req := &models.VerificationRequest{
		TutorID:     profile.ID,
		DocumentURL: url,
		Status:      models.VerificationPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Verifications.Create(req); err != nil {
		return nil, err
	}
	return req, nil
}
