package usecase

import (
	"context"
	"testing"

	"shikkhabazar/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCertRepo struct {
	certs map[string]*domain.Certificate // по serial
}

func newFakeCertRepo() *fakeCertRepo {
	return &fakeCertRepo{certs: make(map[string]*domain.Certificate)}
}

func (f *fakeCertRepo) Get(_ context.Context, userID, courseID uuid.UUID) (*domain.Certificate, error) {
	for _, c := range f.certs {
		if c.UserID == userID && c.CourseID == courseID {
			return c, nil
		}
	}
	return nil, domain.ErrCertificateNotFound
}

func (f *fakeCertRepo) GetBySerial(_ context.Context, serial string) (*domain.Certificate, error) {
	c, ok := f.certs[serial]
	if !ok {
		return nil, domain.ErrCertificateNotFound
	}
	return c, nil
}

func (f *fakeCertRepo) Create(_ context.Context, cert *domain.Certificate) error {
	f.certs[cert.SerialNo] = cert
	return nil
}

func certTestSetup(t *testing.T) (*CertificateUseCase, *fakeCertRepo, *fakeEnrollmentRepo, uuid.UUID, uuid.UUID) {
	t.Helper()

	users := newFakeUserRepo()
	user := &domain.User{ID: uuid.New(), Email: "rahim@example.com", FullName: "Rahim Uddin"}
	users.users[user.ID] = user

	courses := newFakeCourseRepo()
	course := &domain.Course{ID: uuid.New(), Title: "Go с нуля", Price: decimal.NewFromInt(1000)}
	courses.courses[course.ID] = course

	certs := newFakeCertRepo()
	enrolls := newFakeEnrollmentRepo()
	uc := NewCertificateUseCase(certs, enrolls, users, courses)
	return uc, certs, enrolls, user.ID, course.ID
}

func TestCertificateGenerate(t *testing.T) {
	uc, certs, enrolls, userID, courseID := certTestSetup(t)
	ctx := context.Background()

	require.NoError(t, enrolls.Create(ctx, userID, courseID))
	require.NoError(t, enrolls.UpdateProgress(ctx, userID, courseID, 100))

	html, err := uc.Generate(ctx, userID, courseID)
	require.NoError(t, err)
	assert.Contains(t, html, "Rahim Uddin")
	assert.Contains(t, html, "Go с нуля")
	require.Len(t, certs.certs, 1)

	// Повторный запрос не плодит новых сертификатов
	_, err = uc.Generate(ctx, userID, courseID)
	require.NoError(t, err)
	assert.Len(t, certs.certs, 1)
}

func TestCertificateGenerateRequiresCompletion(t *testing.T) {
	uc, certs, enrolls, userID, courseID := certTestSetup(t)
	ctx := context.Background()

	_, err := uc.Generate(ctx, userID, courseID)
	assert.ErrorIs(t, err, domain.ErrCertificateNotFound)

	require.NoError(t, enrolls.Create(ctx, userID, courseID))
	require.NoError(t, enrolls.UpdateProgress(ctx, userID, courseID, 60))

	_, err = uc.Generate(ctx, userID, courseID)
	assert.ErrorIs(t, err, domain.ErrCourseNotCompleted)
	assert.Empty(t, certs.certs)
}

func TestCertificateVerify(t *testing.T) {
	uc, certs, enrolls, userID, courseID := certTestSetup(t)
	ctx := context.Background()

	require.NoError(t, enrolls.Create(ctx, userID, courseID))
	require.NoError(t, enrolls.UpdateProgress(ctx, userID, courseID, 100))
	_, err := uc.Generate(ctx, userID, courseID)
	require.NoError(t, err)

	var serial string
	for s := range certs.certs {
		serial = s
	}
	assert.Regexp(t, `^SB-CERT-\d{4}-[0-9A-F]{8}$`, serial)

	html, err := uc.Verify(ctx, serial)
	require.NoError(t, err)
	assert.Contains(t, html, serial)

	_, err = uc.Verify(ctx, "SB-CERT-2026-DEADBEEF")
	assert.ErrorIs(t, err, domain.ErrCertificateNotFound)
}
