package notify

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
	"strings"

	log "github.com/sirupsen/logrus"

	"vendorhub/internal/domain"
)

// Mailto opens a pre-filled message to the administrator in the user's
// mail client. Opener is swappable for tests; by default it shells out
// to the platform URL opener.
type Mailto struct {
	Opener func(url string) error
}

func NewMailto() *Mailto {
	return &Mailto{Opener: openURL}
}

var _ domain.Notifier = (*Mailto)(nil)

func (m *Mailto) Send(intent domain.RecoveryIntent) error {
	u := BuildURL(intent)
	log.WithFields(log.Fields{"to": intent.To, "requester": intent.Requester}).
		Info("opening mail client for recovery request")
	if err := m.Opener(u); err != nil {
		return fmt.Errorf("open mail client: %w", err)
	}
	return nil
}

// BuildURL renders the intent as a mailto: URL. mailto uses percent
// encoding with %20 for spaces, not the form encoding's '+'. The
// recipient is escaped too, so a '?' or '&' in it cannot smuggle extra
// header fields into the URL; '@' stays literal per RFC 6068.
func BuildURL(intent domain.RecoveryIntent) string {
	return fmt.Sprintf("mailto:%s?subject=%s&body=%s",
		escapeAddr(intent.To), escape(intent.Subject), escape(intent.Body))
}

func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func escapeAddr(s string) string {
	return strings.ReplaceAll(escape(s), "%40", "@")
}

func openURL(u string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", u).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", u).Start()
	default:
		return exec.Command("xdg-open", u).Start()
	}
}

// Log is a notifier that only logs the composed message. It backs
// environments without a mail client, and keeps the recovery flow
// observable in them.
type Log struct{}

var _ domain.Notifier = Log{}

func (Log) Send(intent domain.RecoveryIntent) error {
	log.WithFields(log.Fields{
		"to":      intent.To,
		"subject": intent.Subject,
	}).Info(intent.Body)
	return nil
}
