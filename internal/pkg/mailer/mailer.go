package mailer

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/jglopez/tappedout-api/internal/config"
	"github.com/jglopez/tappedout-api/internal/domain"
)

// Mailer sends plain-text notifications over SMTP. With no host configured it
// degrades to a no-op, which keeps local development mail-server free.
type Mailer struct {
	conf *config.SMTPConfig
}

func New(conf *config.SMTPConfig) *Mailer {
	return &Mailer{
		conf: conf,
	}
}

func (m *Mailer) NotifyInscriptionConfirmed(ctx context.Context, competitor domain.User, event domain.Event, category domain.Category) error {
	subject := fmt.Sprintf("Registration confirmed: %v", event.Name)
	body := fmt.Sprintf(
		"Hi %v,\r\n\r\nYour registration for %v (%v) on %v has been received.\r\nPayment is pending.\r\n",
		competitor.FirstName, event.Name, category.Name, event.StartDate.Format("2006-01-02"))

	return m.send(competitor.Email, subject, body)
}

func (m *Mailer) NotifyInscriptionCancelled(ctx context.Context, competitor domain.User, event domain.Event) error {
	subject := fmt.Sprintf("Registration cancelled: %v", event.Name)
	body := fmt.Sprintf(
		"Hi %v,\r\n\r\nYour registration for %v has been cancelled.\r\n",
		competitor.FirstName, event.Name)

	return m.send(competitor.Email, subject, body)
}

func (m *Mailer) NotifyResultPublished(ctx context.Context, competitor domain.User, event domain.Event, result domain.Result) error {
	subject := fmt.Sprintf("Results published: %v", event.Name)
	body := fmt.Sprintf(
		"Hi %v,\r\n\r\nYour result for %v is in: position %v.\r\n",
		competitor.FirstName, event.Name, result.Position)

	return m.send(competitor.Email, subject, body)
}

func (m *Mailer) send(to, subject, body string) error {
	if m.conf == nil || m.conf.Host == "" {
		return nil
	}

	msg := fmt.Sprintf("From: %v\r\nTo: %v\r\nSubject: %v\r\n\r\n%v", m.conf.From, to, subject, body)

	addr := m.conf.Host + ":" + m.conf.Port
	auth := smtp.PlainAuth("", m.conf.Username, m.conf.Password, m.conf.Host)

	if err := smtp.SendMail(addr, auth, m.conf.From, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("smtp.SendMail -> %w", err)
	}

	return nil
}
