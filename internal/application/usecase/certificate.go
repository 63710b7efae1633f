package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"shikkhabazar/internal/domain"

	"github.com/google/uuid"
)

type CertificateRepo interface {
	Get(ctx context.Context, userID, courseID uuid.UUID) (*domain.Certificate, error)
	GetBySerial(ctx context.Context, serial string) (*domain.Certificate, error)
	Create(ctx context.Context, cert *domain.Certificate) error
}

type CertificateUseCase struct {
	certs       CertificateRepo
	enrollments EnrollmentRepo
	users       UserRepo
	courses     CourseRepo
	now         func() time.Time
}

func NewCertificateUseCase(cr CertificateRepo, er EnrollmentRepo, ur UserRepo, co CourseRepo) *CertificateUseCase {
	return &CertificateUseCase{
		certs:       cr,
		enrollments: er,
		users:       ur,
		courses:     co,
		now:         time.Now,
	}
}

// Generate выдает сертификат за завершенный курс и рендерит HTML.
// HTML нигде не хранится, только возвращается.
func (uc *CertificateUseCase) Generate(ctx context.Context, userID, courseID uuid.UUID) (string, error) {
	enrollment, err := uc.enrollments.Get(ctx, userID, courseID)
	if err != nil {
		return "", domain.ErrCertificateNotFound
	}
	if enrollment.Status != "completed" {
		return "", domain.ErrCourseNotCompleted
	}

	cert, err := uc.certs.Get(ctx, userID, courseID)
	if errors.Is(err, domain.ErrCertificateNotFound) {
		cert = &domain.Certificate{
			SerialNo: newSerial(uc.now()),
			UserID:   userID,
			CourseID: courseID,
			IssuedAt: uc.now(),
		}
		if err := uc.certs.Create(ctx, cert); err != nil {
			return "", err
		}
	} else if err != nil {
		return "", err
	}

	return uc.render(ctx, cert)
}

// Verify находит сертификат по серийному номеру и возвращает его HTML
func (uc *CertificateUseCase) Verify(ctx context.Context, serial string) (string, error) {
	cert, err := uc.certs.GetBySerial(ctx, serial)
	if err != nil {
		return "", err
	}
	return uc.render(ctx, cert)
}

func (uc *CertificateUseCase) render(ctx context.Context, cert *domain.Certificate) (string, error) {
	user, err := uc.users.GetByID(ctx, cert.UserID)
	if err != nil {
		return "", err
	}
	course, err := uc.courses.GetByID(ctx, cert.CourseID)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(`
	<html>
	<body style="font-family: Georgia, serif; background: #f8f5ef; margin: 0; padding: 0;">
		<div style="max-width: 800px; margin: 40px auto; background: #ffffff; border: 10px double #b89b5e; padding: 60px; text-align: center;">
			<h1 style="color: #b89b5e; letter-spacing: 4px; margin-bottom: 0;">CERTIFICATE</h1>
			<p style="color: #777; letter-spacing: 2px;">OF COMPLETION</p>
			<p style="margin-top: 40px;">This is to certify that</p>
			<h2 style="color: #333; border-bottom: 2px solid #b89b5e; display: inline-block; padding: 0 30px 6px;">%s</h2>
			<p>has successfully completed the course</p>
			<h3 style="color: #333;">%s</h3>
			<p style="margin-top: 40px; color: #777;">Issued on %s</p>
			<p style="font-size: 12px; color: #999;">Verification code: %s</p>
		</div>
	</body>
	</html>`, user.FullName, course.Title, cert.IssuedAt.Format("2 January 2006"), cert.SerialNo), nil
}

// SB-CERT-<год>-<8 символов uuid>
func newSerial(now time.Time) string {
	return fmt.Sprintf("SB-CERT-%d-%s", now.Year(),
		strings.ToUpper(uuid.New().String()[:8]))
}
