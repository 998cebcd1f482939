package user

import (
	"regexp"
	"strings"
	"time"

	"educonnect/config"
	"educonnect/models"
	"educonnect/services/apperrors"
	"educonnect/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var emailRx = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Register validates the registration details and creates the user plus
// its role profile in one transaction.
func (s *DefaultUserService) Register(input RegisterInput) (*models.AuthResponse, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Name = strings.TrimSpace(input.Name)

	if input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, apperrors.Validation("name, email and password are required")
	}
	if !emailRx.MatchString(input.Email) {
		return nil, apperrors.Validation("invalid email address")
	}
	if len(input.Password) < 8 {
		return nil, apperrors.Validation("password must be at least 8 characters")
	}
	if input.Role != models.RoleStudent && input.Role != models.RoleTutor {
		return nil, apperrors.Validation("role must be %q or %q", models.RoleStudent, models.RoleTutor)
	}
	if input.Role == models.RoleTutor && input.HourlyRate <= 0 {
		return nil, apperrors.Validation("hourly rate must be greater than zero")
	}

	existing, err := s.Repo.GetByEmail(input.Email)
	if err != nil {
		utils.GetLogger().Error("Register: failed to check for existing user", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.Conflict("a user with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	newUser := &models.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         input.Role,
		Active:       true,
	}

	var tutorProfile *models.TutorProfile
	var studentProfile *models.StudentProfile
	switch input.Role {
	case models.RoleTutor:
		tutorProfile = &models.TutorProfile{
			Bio:        input.Bio,
			Subjects:   input.Subjects,
			HourlyRate: input.HourlyRate,
		}
	case models.RoleStudent:
		studentProfile = &models.StudentProfile{
			GradeLevel: input.GradeLevel,
		}
	}

	if err := s.Repo.CreateWithProfile(newUser, tutorProfile, studentProfile); err != nil {
		utils.GetLogger().Error("Register: registration transaction failed", zap.Error(err))
		return nil, err
	}

	token, err := utils.GenerateToken(newUser.ID.Hex(), newUser.Role, newUser.TokenVersion, tokenDuration())
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{Token: token, User: newUser}, nil
}

func tokenDuration() time.Duration {
	hours := config.AppConfig.JWTExpiryHours
	if hours <= 0 {
		hours = 72
	}
	return time.Duration(hours) * time.Hour
}
