package mail_fx

import (
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"go.uber.org/fx"

	"github.com/sujan03nepal/apex-trek-platform-sub000/internal/services"
)

var Module = fx.Provide(provideBookingMailer)

func provideBookingMailer() services.BookingMailer {
	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if port == 0 {
		port = 587
	}

	cfg := services.SMTPConfig{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     port,
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     os.Getenv("SMTP_FROM"),
		FromName: "Apex Treks",

		AppName:    "Apex Treks",
		AppBaseURL: os.Getenv("APP_BASE_URL"),
	}

	if !cfg.Configured() {
		logrus.Warn("SMTP not configured, booking confirmation mail disabled")
		return services.NewNoopMailer()
	}

	return services.NewSMTPBookingMailer(cfg)
}
