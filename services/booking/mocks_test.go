package booking

import (
	"testing"
	"time"

	sessionRepo "educonnect/database/repository/session"
	"educonnect/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// testIDs are the fixture identities every booking test starts from.
type testIDs struct {
	tutorID       primitive.ObjectID
	tutorUserID   primitive.ObjectID
	studentID     primitive.ObjectID
	studentUserID primitive.ObjectID
}

// newTestBookingService wires a booking service over in-memory fakes
// with one tutor ($40/h) and one student registered.
func newTestBookingService(t *testing.T) (*DefaultBookingService, testIDs) {
	t.Helper()

	ids := testIDs{
		tutorID:       primitive.NewObjectID(),
		tutorUserID:   primitive.NewObjectID(),
		studentID:     primitive.NewObjectID(),
		studentUserID: primitive.NewObjectID(),
	}

	tutors := newFakeTutorRepo()
	tutors.tutors[ids.tutorID] = &models.TutorProfile{
		ID:         ids.tutorID,
		UserID:     ids.tutorUserID,
		HourlyRate: 40,
	}
	students := newFakeStudentRepo()
	students.students[ids.studentID] = &models.StudentProfile{
		ID:     ids.studentID,
		UserID: ids.studentUserID,
	}
	users := newFakeUserRepo()
	users.users[ids.tutorUserID] = &models.User{
		ID: ids.tutorUserID, Name: "Tina Tutor", Role: models.RoleTutor, Active: true,
	}
	users.users[ids.studentUserID] = &models.User{
		ID: ids.studentUserID, Name: "Sam Student", Role: models.RoleStudent, Active: true,
	}

	svc := &DefaultBookingService{
		Sessions: newFakeSessionRepo(),
		Tutors:   tutors,
		Students: students,
		Users:    users,
		Notifier: &recordingNotifier{},
	}
	return svc, ids
}

// fakeSessionRepo is an in-memory SessionRepository that enforces the
// same no-overlap rule as the Mongo implementation.
type fakeSessionRepo struct {
	sessions map[primitive.ObjectID]*models.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[primitive.ObjectID]*models.Session)}
}

func (f *fakeSessionRepo) GetByID(id primitive.ObjectID) (*models.Session, error) {
	s, ok := f.sessions[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (f *fakeSessionRepo) ListByStudent(studentID primitive.ObjectID) ([]models.Session, error) {
	var out []models.Session
	for _, s := range f.sessions {
		if s.StudentID == studentID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeSessionRepo) ListByTutor(tutorID primitive.ObjectID) ([]models.Session, error) {
	var out []models.Session
	for _, s := range f.sessions {
		if s.TutorID == tutorID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeSessionRepo) ListActiveByTutorWindow(tutorID primitive.ObjectID, from, to time.Time) ([]models.Session, error) {
	var out []models.Session
	for _, s := range f.sessions {
		if s.TutorID != tutorID || s.Status == models.SessionCanceled {
			continue
		}
		if s.StartTime.Before(to) && s.EndTime.After(from) {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeSessionRepo) conflicts(sess *models.Session) bool {
	for _, other := range f.sessions {
		if other.ID == sess.ID || other.TutorID != sess.TutorID || other.Status == models.SessionCanceled {
			continue
		}
		if other.StartTime.Equal(sess.StartTime) {
			return true
		}
		if other.StartTime.Before(sess.EndTime) && other.EndTime.After(sess.StartTime) {
			return true
		}
	}
	return false
}

func (f *fakeSessionRepo) InsertIfAvailable(sess *models.Session) error {
	if f.conflicts(sess) {
		return sessionRepo.ErrSlotTaken
	}
	if sess.ID.IsZero() {
		sess.ID = primitive.NewObjectID()
	}
	cp := *sess
	f.sessions[sess.ID] = &cp
	return nil
}

func (f *fakeSessionRepo) UpdateIfAvailable(sess *models.Session) error {
	if f.conflicts(sess) {
		return sessionRepo.ErrSlotTaken
	}
	cp := *sess
	f.sessions[sess.ID] = &cp
	return nil
}

func (f *fakeSessionRepo) UpdateStatusFrom(id primitive.ObjectID, from, to string) (bool, error) {
	s, ok := f.sessions[id]
	if !ok || s.Status != from {
		return false, nil
	}
	s.Status = to
	return true, nil
}

func (f *fakeSessionRepo) SetPaymentStatus(id primitive.ObjectID, status string) error {
	if s, ok := f.sessions[id]; ok {
		s.PaymentStatus = status
	}
	return nil
}

func (f *fakeSessionRepo) CountByTutorAndStatus(tutorID primitive.ObjectID, status string) (int64, error) {
	var n int64
	for _, s := range f.sessions {
		if s.TutorID == tutorID && s.Status == status {
			n++
		}
	}
	return n, nil
}

// fakeTutorRepo holds tutor profiles keyed by profile ID.
type fakeTutorRepo struct {
	tutors map[primitive.ObjectID]*models.TutorProfile
}

func newFakeTutorRepo() *fakeTutorRepo {
	return &fakeTutorRepo{tutors: make(map[primitive.ObjectID]*models.TutorProfile)}
}

func (f *fakeTutorRepo) GetByID(id primitive.ObjectID) (*models.TutorProfile, error) {
	t, ok := f.tutors[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (f *fakeTutorRepo) GetByUserID(userID primitive.ObjectID) (*models.TutorProfile, error) {
	for _, t := range f.tutors {
		if t.UserID == userID {
			cp := *t
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeTutorRepo) Update(profile *models.TutorProfile) error {
	cp := *profile
	f.tutors[profile.ID] = &cp
	return nil
}

func (f *fakeTutorRepo) Search(filter models.TutorSearchFilter) ([]models.TutorProfile, error) {
	var out []models.TutorProfile
	for _, t := range f.tutors {
		out = append(out, *t)
	}
	return out, nil
}

func (f *fakeTutorRepo) IncrementEarnings(id primitive.ObjectID, amount float64) error {
	if t, ok := f.tutors[id]; ok {
		t.Earnings += amount
	}
	return nil
}

func (f *fakeTutorRepo) SetRating(id primitive.ObjectID, average float64, count int) error {
	if t, ok := f.tutors[id]; ok {
		t.AverageRating = average
		t.RatingCount = count
	}
	return nil
}

func (f *fakeTutorRepo) SetVerified(id primitive.ObjectID, verified bool) error {
	if t, ok := f.tutors[id]; ok {
		t.Verified = verified
	}
	return nil
}

func (f *fakeTutorRepo) DeleteByUserID(userID primitive.ObjectID) error {
	for id, t := range f.tutors {
		if t.UserID == userID {
			delete(f.tutors, id)
		}
	}
	return nil
}

// fakeStudentRepo holds student profiles keyed by profile ID.
type fakeStudentRepo struct {
	students map[primitive.ObjectID]*models.StudentProfile
}

func newFakeStudentRepo() *fakeStudentRepo {
	return &fakeStudentRepo{students: make(map[primitive.ObjectID]*models.StudentProfile)}
}

func (f *fakeStudentRepo) GetByID(id primitive.ObjectID) (*models.StudentProfile, error) {
	s, ok := f.students[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (f *fakeStudentRepo) GetByUserID(userID primitive.ObjectID) (*models.StudentProfile, error) {
	for _, s := range f.students {
		if s.UserID == userID {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeStudentRepo) Update(profile *models.StudentProfile) error {
	cp := *profile
	f.students[profile.ID] = &cp
	return nil
}

func (f *fakeStudentRepo) DeleteByUserID(userID primitive.ObjectID) error {
	for id, s := range f.students {
		if s.UserID == userID {
			delete(f.students, id)
		}
	}
	return nil
}

// fakeUserRepo holds users keyed by ID; only the read path matters here.
type fakeUserRepo struct {
	users map[primitive.ObjectID]*models.User
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
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	cp := *user
	f.users[user.ID] = &cp
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

// recordingNotifier captures delivered notifications.
type recordingNotifier struct {
	delivered []string
}

func (n *recordingNotifier) Notify(userID primitive.ObjectID, title, body string) {
	n.delivered = append(n.delivered, title)
}
