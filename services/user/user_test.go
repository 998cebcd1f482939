package user

import (
	"testing"

	"educonnect/models"
	"educonnect/services/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeUserRepo is an in-memory UserRepository.
type fakeUserRepo struct {
	users map[primitive.ObjectID]*models.User
	// createdTutor/createdStudent capture the profile passed into the
	// registration transaction.
	createdTutor   *models.TutorProfile
	createdStudent *models.StudentProfile
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[primitive.ObjectID]*models.User)}
}

func (f *fakeUserRepo) GetByID(id primitive.ObjectID) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) CreateWithProfile(user *models.User, tutor *models.TutorProfile, student *models.StudentProfile) error {
	user.ID = primitive.NewObjectID()
	cp := *user
	f.users[user.ID] = &cp
	f.createdTutor = tutor
	f.createdStudent = student
	return nil
}

func (f *fakeUserRepo) Update(user *models.User) error {
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserRepo) Delete(id primitive.ObjectID) error {
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) IncrementTokenVersion(id primitive.ObjectID) (int, error) {
	u, ok := f.users[id]
	if !ok {
		return 0, nil
	}
	u.TokenVersion++
	return u.TokenVersion, nil
}

func (f *fakeUserRepo) SetActive(id primitive.ObjectID, active bool) error {
	if u, ok := f.users[id]; ok {
		u.Active = active
	}
	return nil
}

func (f *fakeUserRepo) GetAll(role string) ([]models.User, error) {
	var out []models.User
	for _, u := range f.users {
		if role == "" || u.Role == role {
			out = append(out, *u)
		}
	}
	return out, nil
}

func newTestUserService() (*DefaultUserService, *fakeUserRepo) {
	repo := newFakeUserRepo()
	return &DefaultUserService{Repo: repo}, repo
}

func TestRegisterStudent(t *testing.T) {
	svc, repo := newTestUserService()

	auth, err := svc.Register(RegisterInput{
		Name:       "Sam Student",
		Email:      "Sam@Example.com",
		Password:   "correct-horse",
		Role:       models.RoleStudent,
		GradeLevel: "10",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, auth.Token)
	assert.Equal(t, "sam@example.com", auth.User.Email, "emails are normalized")
	assert.True(t, auth.User.Active)
	assert.NotEqual(t, "correct-horse", auth.User.PasswordHash)
	require.NotNil(t, repo.createdStudent)
	assert.Equal(t, "10", repo.createdStudent.GradeLevel)
	assert.Nil(t, repo.createdTutor)
}

func TestRegisterTutorRequiresRate(t *testing.T) {
	svc, _ := newTestUserService()

	_, err := svc.Register(RegisterInput{
		Name:     "Tina Tutor",
		Email:    "tina@example.com",
		Password: "correct-horse",
		Role:     models.RoleTutor,
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))

	auth, err := svc.Register(RegisterInput{
		Name:       "Tina Tutor",
		Email:      "tina@example.com",
		Password:   "correct-horse",
		Role:       models.RoleTutor,
		HourlyRate: 45,
		Subjects:   []string{"math"},
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleTutor, auth.User.Role)
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newTestUserService()

	cases := []struct {
		name  string
		input RegisterInput
	}{
		{"missing name", RegisterInput{Email: "a@b.co", Password: "longenough", Role: models.RoleStudent}},
		{"bad email", RegisterInput{Name: "A", Email: "not-an-email", Password: "longenough", Role: models.RoleStudent}},
		{"short password", RegisterInput{Name: "A", Email: "a@b.co", Password: "short", Role: models.RoleStudent}},
		{"admin role", RegisterInput{Name: "A", Email: "a@b.co", Password: "longenough", Role: models.RoleAdmin}},
		{"unknown role", RegisterInput{Name: "A", Email: "a@b.co", Password: "longenough", Role: "guardian"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(tc.input)
			require.Error(t, err)
			assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestUserService()

	input := RegisterInput{
		Name: "Sam", Email: "sam@example.com", Password: "correct-horse", Role: models.RoleStudent,
	}
	_, err := svc.Register(input)
	require.NoError(t, err)

	_, err = svc.Register(input)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
}

func TestAuthenticate(t *testing.T) {
	svc, _ := newTestUserService()

	_, err := svc.Register(RegisterInput{
		Name: "Sam", Email: "sam@example.com", Password: "correct-horse", Role: models.RoleStudent,
	})
	require.NoError(t, err)

	auth, err := svc.Authenticate("sam@example.com", "correct-horse")
	require.NoError(t, err)
	assert.NotEmpty(t, auth.Token)

	_, err = svc.Authenticate("sam@example.com", "wrong-password")
	require.Error(t, err)
	assert.Equal(t, apperrors.KindUnauthorized, apperrors.KindOf(err))

	_, err = svc.Authenticate("nobody@example.com", "correct-horse")
	require.Error(t, err)
	assert.Equal(t, apperrors.KindUnauthorized, apperrors.KindOf(err))
}

func TestAuthenticateDeactivatedAccount(t *testing.T) {
	svc, repo := newTestUserService()

	auth, err := svc.Register(RegisterInput{
		Name: "Sam", Email: "sam@example.com", Password: "correct-horse", Role: models.RoleStudent,
	})
	require.NoError(t, err)

	require.NoError(t, repo.SetActive(auth.User.ID, false))

	_, err = svc.Authenticate("sam@example.com", "correct-horse")
	require.Error(t, err)
	assert.Equal(t, apperrors.KindForbidden, apperrors.KindOf(err))
}
