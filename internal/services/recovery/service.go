package recovery

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/zekroTJA/timedmap"

	"vendorhub/internal/domain"
)

const (
	subject = "VendorHub password reset request"

	bodyTemplate = "Hello Admin,\n\n" +
		"A password reset has been requested for the following VendorHub account:\n\n" +
		"Email: %s\n\n" +
		"Please verify the request and contact the user within 24 hours with new credentials.\n\n" +
		"Thank you."

	// requestWindow suppresses duplicate requests for the same address,
	// so a double click does not mail the administrator twice.
	requestWindow   = 5 * time.Minute
	cleanupInterval = time.Minute
)

// Service composes and dispatches recovery requests to the configured
// administrator contact.
type Service struct {
	admin    string
	notifier domain.Notifier
	recent   *timedmap.TimedMap
	log      *logrus.Entry
}

func New(admin string, notifier domain.Notifier, log *logrus.Entry) *Service {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Service{
		admin:    admin,
		notifier: notifier,
		recent:   timedmap.New(cleanupInterval),
		log:      log,
	}
}

// Request composes the fixed-template intent for email and hands it to
// the notification channel. An empty email fails with ErrMissingEmail; a
// repeat request for the same address inside the window fails with
// ErrAlreadyRequested.
func (s *Service) Request(email string) (domain.RecoveryIntent, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return domain.RecoveryIntent{}, domain.ErrMissingEmail
	}

	key := strings.ToLower(email)
	if s.recent.Contains(key) {
		return domain.RecoveryIntent{}, domain.ErrAlreadyRequested
	}

	intent := Compose(s.admin, email)
	if err := s.notifier.Send(intent); err != nil {
		return domain.RecoveryIntent{}, err
	}
	s.recent.Set(key, struct{}{}, requestWindow)

	s.log.WithFields(logrus.Fields{"requester": email, "admin": s.admin}).
		Info("recovery request sent to administrator")
	return intent, nil
}

// Compose builds the administrator notification for a requester.
func Compose(admin, email string) domain.RecoveryIntent {
	return domain.RecoveryIntent{
		To:        admin,
		Requester: email,
		Subject:   subject,
		Body:      fmt.Sprintf(bodyTemplate, email),
	}
}
