package services

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"

	"github.com/sirupsen/logrus"

	"github.com/sujan03nepal/apex-trek-platform-sub000/internal/models/db_models"
)

// SMTPConfig holds SMTP plus branding config.
type SMTPConfig struct {
	Host     string // e.g. "smtp.gmail.com"
	Port     int    // e.g. 587
	Username string
	Password string
	From     string // envelope from, e.g. "bookings@apextreks.com"
	FromName string // display name

	AppName    string
	AppBaseURL string
}

func (c SMTPConfig) Configured() bool {
	return c.Host != "" && c.From != ""
}

const bookingMailTemplate = `<html>
<body style="font-family:Arial,sans-serif;color:#333">
  <h2>{{.AppName}}: booking received</h2>
  <p>Dear {{.CustomerName}},</p>
  <p>Thank you for booking <strong>{{.TrekName}}</strong>.</p>
  <table cellpadding="4">
    <tr><td>Departure</td><td>{{.DepartureDate}}</td></tr>
    <tr><td>Travelers</td><td>{{.Travelers}}</td></tr>
    <tr><td>Total price</td><td>USD {{printf "%.2f" .TotalPrice}}</td></tr>
    <tr><td>Reference</td><td>{{.Reference}}</td></tr>
  </table>
  <p>Our team will confirm availability and payment details shortly.</p>
  <p><a href="{{.BaseURL}}">{{.AppName}}</a></p>
</body>
</html>`

type smtpBookingMailer struct {
	cfg SMTPConfig
	tpl *template.Template
}

func NewSMTPBookingMailer(cfg SMTPConfig) BookingMailer {
	return &smtpBookingMailer{
		cfg: cfg,
		tpl: template.Must(template.New("booking").Parse(bookingMailTemplate)),
	}
}

func (m *smtpBookingMailer) SendBookingConfirmation(booking *db_models.Booking, trekName string) error {
	var body bytes.Buffer
	err := m.tpl.Execute(&body, map[string]interface{}{
		"AppName":       m.cfg.AppName,
		"BaseURL":       m.cfg.AppBaseURL,
		"CustomerName":  booking.CustomerName,
		"TrekName":      trekName,
		"DepartureDate": booking.DepartureDate.Format("2006-01-02"),
		"Travelers":     booking.TravelersCount,
		"TotalPrice":    booking.TotalPrice,
		"Reference":     booking.ID.String(),
	})
	if err != nil {
		return err
	}

	msg := bytes.Buffer{}
	msg.WriteString(fmt.Sprintf("From: %s <%s>\r\n", m.cfg.FromName, m.cfg.From))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", booking.CustomerEmail))
	msg.WriteString(fmt.Sprintf("Subject: Booking received - %s\r\n", trekName))
	msg.WriteString("MIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n")
	msg.Write(body.Bytes())

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	return smtp.SendMail(addr, auth, m.cfg.From, []string{booking.CustomerEmail}, msg.Bytes())
}

// noopMailer is wired when SMTP is not configured, e.g. local development.
type noopMailer struct{}

func NewNoopMailer() BookingMailer { return noopMailer{} }

func (noopMailer) SendBookingConfirmation(booking *db_models.Booking, trekName string) error {
	logrus.WithField("booking_id", booking.ID).Debug("mail disabled, skipping confirmation")
	return nil
}
