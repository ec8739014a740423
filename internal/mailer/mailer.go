// Package mailer dispatches the product's transactional email over two
// independently configured SMTP channels: one for booking mail, one for
// contact/support mail. Delivery is best-effort; callers decide whether a
// failure matters.
package mailer

import (
	"fmt"
	"log/slog"

	"github.com/lezit/transports-server/internal/config"
	"gopkg.in/gomail.v2"
)

type channel struct {
	dialer *gomail.Dialer
	from   string
}

func (ch *channel) send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", ch.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	if err := ch.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email to %s: %v", to, err)
	}
	return nil
}

type Mailer struct {
	logger  *slog.Logger
	booking *channel
	support *channel
	// supportInbox receives contact and support submissions.
	supportInbox string
}

func New(cfg *config.Config, logger *slog.Logger) *Mailer {
	return &Mailer{
		logger: logger,
		booking: &channel{
			dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUserBooking, cfg.SMTPPassBooking),
			from:   cfg.SMTPUserBooking,
		},
		support: &channel{
			dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUserSupport, cfg.SMTPPassSupport),
			from:   cfg.SMTPUserSupport,
		},
		supportInbox: cfg.SMTPUserSupport,
	}
}

// VerifyChannels dials each SMTP channel once at startup. Failures are
// logged and swallowed; the server still starts without working mail.
func (m *Mailer) VerifyChannels() {
	if conn, err := m.booking.dialer.Dial(); err != nil {
		m.logger.Error("booking email channel verification failed", "error", err)
	} else {
		conn.Close()
		m.logger.Info("booking email channel verified")
	}

	if conn, err := m.support.dialer.Dial(); err != nil {
		m.logger.Error("support email channel verification failed", "error", err)
	} else {
		conn.Close()
		m.logger.Info("support email channel verified")
	}
}

func (m *Mailer) SendBookingConfirmation(data BookingEmailData, to string) error {
	subject, body, err := bookingConfirmationBody(data)
	if err != nil {
		return err
	}
	return m.booking.send(to, subject, body)
}

func (m *Mailer) SendBookingCancellation(data BookingEmailData, to string) error {
	subject, body, err := bookingCancellationBody(data)
	if err != nil {
		return err
	}
	return m.booking.send(to, subject, body)
}

func (m *Mailer) SendContactForm(data ContactFormData) error {
	subject, body, err := contactFormBody(data)
	if err != nil {
		return err
	}
	return m.support.send(m.supportInbox, subject, body)
}

func (m *Mailer) SendSupportRequest(data SupportRequestData) error {
	subject, body, err := supportRequestBody(data)
	if err != nil {
		return err
	}
	return m.support.send(m.supportInbox, subject, body)
}
