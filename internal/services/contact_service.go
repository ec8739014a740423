package services

import (
	"fmt"
	"log/slog"

	"github.com/lezit/transports-server/internal/mailer"
	"github.com/lezit/transports-server/internal/models"
)

// SupportMailer is the contact/support channel of the notification
// dispatcher.
type SupportMailer interface {
	SendContactForm(data mailer.ContactFormData) error
	SendSupportRequest(data mailer.SupportRequestData) error
}

type ContactService struct {
	mail   SupportMailer
	logger *slog.Logger
}

func NewContactService(mail SupportMailer, logger *slog.Logger) *ContactService {
	return &ContactService{mail: mail, logger: logger}
}

type ContactInput struct {
	Name    string `json:"name" validate:"required,max=50"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required"`
	Subject string `json:"subject" validate:"required,max=100"`
	Message string `json:"message" validate:"required,max=1000"`
}

type SupportInput struct {
	Name        string `json:"name" validate:"required,max=50"`
	Email       string `json:"email" validate:"required,email"`
	Category    string `json:"category" validate:"required"`
	Priority    string `json:"priority" validate:"required,oneof=low medium high urgent"`
	Subject     string `json:"subject" validate:"required,max=100"`
	Description string `json:"description" validate:"required,max=1000"`
}

// SubmitContactForm validates the submission and dispatches it to the
// support inbox. Mail failure is logged and swallowed: the form submission
// still succeeds.
func (cs *ContactService) SubmitContactForm(input ContactInput) error {
	if err := models.Validate.Struct(input); err != nil {
		return models.NewValidationError(fmt.Sprintf("invalid contact form data: %v", err))
	}

	data := mailer.ContactFormData{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Subject: input.Subject,
		Message: input.Message,
	}
	if err := cs.mail.SendContactForm(data); err != nil {
		cs.logger.Error("failed to send contact form email", "error", err)
	}
	return nil
}

func (cs *ContactService) SubmitSupportRequest(input SupportInput) error {
	if err := models.Validate.Struct(input); err != nil {
		return models.NewValidationError(fmt.Sprintf("invalid support request data: %v", err))
	}

	data := mailer.SupportRequestData{
		UserName:    input.Name,
		UserEmail:   input.Email,
		Category:    input.Category,
		Priority:    input.Priority,
		Subject:     input.Subject,
		Description: input.Description,
	}
	if err := cs.mail.SendSupportRequest(data); err != nil {
		cs.logger.Error("failed to send support request email", "error", err)
	}
	return nil
}
