package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"time"
)

// All four transactional messages share one fixed HTML layout; they differ
// only in banner color, title and the label/value rows.
var layoutTmpl = template.Must(template.New("layout").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <div style="background: {{.HeaderColor}}; color: white; padding: 20px; text-align: center;">
    <h1>LEZIT TRANSPORTS</h1>
    <h2>{{.Title}}</h2>
  </div>
  <div style="padding: 20px; background: #f8f9fa;">
    {{if .Greeting}}<h3>Dear {{.Greeting}},</h3>{{end}}
    {{if .Intro}}<p>{{.Intro}}</p>{{end}}
    <div style="background: white; padding: 15px; border-radius: 8px; margin: 20px 0;">
      <h4>{{.TableTitle}}</h4>
      <table style="width: 100%; border-collapse: collapse;">
        {{range .Rows}}<tr>
          <td style="padding: 8px; border-bottom: 1px solid #eee;"><strong>{{.Label}}:</strong></td>
          <td style="padding: 8px; border-bottom: 1px solid #eee;">{{.Value}}</td>
        </tr>
        {{end}}
      </table>
    </div>
    {{if .Outro}}<div style="text-align: center; margin: 20px 0;"><p>{{.Outro}}</p></div>{{end}}
  </div>
  <div style="background: #333; color: white; padding: 15px; text-align: center; font-size: 12px;">
    <p>© 2024 LEZIT TRANSPORTS. All rights reserved.</p>
  </div>
</div>`))

type row struct {
	Label string
	Value string
}

type layoutData struct {
	HeaderColor string
	Title       string
	Greeting    string
	Intro       string
	TableTitle  string
	Rows        []row
	Outro       string
}

func renderLayout(data layoutData) (string, error) {
	var buf bytes.Buffer
	if err := layoutTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render email template: %v", err)
	}
	return buf.String(), nil
}

// BookingEmailData carries the booking fields rendered into confirmation and
// cancellation messages.
type BookingEmailData struct {
	BookingID       string
	UserName        string
	ServiceType     string
	ServiceCategory string
	PickupLocation  string
	DropLocation    string
	PickupDate      time.Time
	PickupTime      string
	VehicleType     string
	TotalAmount     float64
}

type ContactFormData struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

type SupportRequestData struct {
	UserName    string
	UserEmail   string
	Category    string
	Priority    string
	Subject     string
	Description string
}

func bookingConfirmationBody(d BookingEmailData) (subject, body string, err error) {
	subject = fmt.Sprintf("Booking Confirmation - %s Transportation", d.ServiceType)
	body, err = renderLayout(layoutData{
		HeaderColor: "linear-gradient(135deg, #667eea 0%, #764ba2 100%)",
		Title:       "Booking Confirmation",
		Greeting:    d.UserName,
		Intro:       "Your transportation booking has been confirmed successfully!",
		TableTitle:  "Booking Details:",
		Rows: []row{
			{"Booking ID", d.BookingID},
			{"Service", fmt.Sprintf("%s - %s", d.ServiceType, d.ServiceCategory)},
			{"Pickup Location", d.PickupLocation},
			{"Drop Location", d.DropLocation},
			{"Date & Time", fmt.Sprintf("%s at %s", d.PickupDate.Format("02 Jan 2006"), d.PickupTime)},
			{"Vehicle Type", d.VehicleType},
			{"Total Amount", fmt.Sprintf("₹%.2f", d.TotalAmount)},
		},
		Outro: "Thank you for choosing LEZIT TRANSPORTS!",
	})
	return subject, body, err
}

func bookingCancellationBody(d BookingEmailData) (subject, body string, err error) {
	subject = fmt.Sprintf("Booking Cancelled - %s Transportation", d.ServiceType)
	body, err = renderLayout(layoutData{
		HeaderColor: "#dc3545",
		Title:       "Booking Cancelled",
		Greeting:    d.UserName,
		Intro:       "Your transportation booking has been cancelled as requested.",
		TableTitle:  "Cancelled Booking Details:",
		Rows: []row{
			{"Booking ID", d.BookingID},
			{"Service", fmt.Sprintf("%s - %s", d.ServiceType, d.ServiceCategory)},
			{"Cancellation Date", time.Now().Format("02 Jan 2006")},
		},
		Outro: "We hope to serve you again soon!",
	})
	return subject, body, err
}

func contactFormBody(d ContactFormData) (subject, body string, err error) {
	subject = fmt.Sprintf("New Contact Form Submission - %s", d.Subject)
	body, err = renderLayout(layoutData{
		HeaderColor: "linear-gradient(135deg, #667eea 0%, #764ba2 100%)",
		Title:       "New Contact Form Submission",
		TableTitle:  "Contact Details:",
		Rows: []row{
			{"Name", d.Name},
			{"Email", d.Email},
			{"Phone", d.Phone},
			{"Subject", d.Subject},
			{"Message", d.Message},
		},
		Outro: "Please respond to this inquiry as soon as possible.",
	})
	return subject, body, err
}

func supportRequestBody(d SupportRequestData) (subject, body string, err error) {
	subject = fmt.Sprintf("Support Request - %s", d.Category)
	body, err = renderLayout(layoutData{
		HeaderColor: "#ffc107",
		Title:       "Support Request",
		TableTitle:  "Support Request Details:",
		Rows: []row{
			{"User", fmt.Sprintf("%s (%s)", d.UserName, d.UserEmail)},
			{"Category", d.Category},
			{"Priority", d.Priority},
			{"Subject", d.Subject},
			{"Description", d.Description},
		},
		Outro: "Please address this support request promptly.",
	})
	return subject, body, err
}
