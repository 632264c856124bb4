package mailing

import (
	"FreshTrack-Backend/internal/utils"
	"strconv"

	"gopkg.in/gomail.v2"
)

type MailConfig struct {
	SMTPHost     string
	SMTPPort     string
	SMTPSender   string
	SMTPEmail    string
	SMTPPassword string
}

func LoadMailConfig() MailConfig {
	return MailConfig{
		SMTPHost:     utils.GetConfig("SMTP_HOST"),
		SMTPPort:     utils.GetConfig("SMTP_PORT"),
		SMTPSender:   utils.GetConfig("SMTP_SENDER_NAME"),
		SMTPEmail:    utils.GetConfig("SMTP_AUTH_EMAIL"),
		SMTPPassword: utils.GetConfig("SMTP_AUTH_PASSWORD"),
	}
}

// buildMessage assembles the HTML mail with the configured sender name on
// the From header, so inboxes show "FreshTrack" rather than a bare address.
func buildMessage(cfg MailConfig, toEmail string, subject string, body string) *gomail.Message {
	mailer := gomail.NewMessage()
	mailer.SetAddressHeader("From", cfg.SMTPEmail, cfg.SMTPSender)
	mailer.SetHeader("To", toEmail)
	mailer.SetHeader("Subject", subject)
	mailer.SetBody("text/html", body)
	return mailer
}

func SendMail(toEmail string, subject string, body string) error {
	cfg := LoadMailConfig()

	port, err := strconv.Atoi(cfg.SMTPPort)
	if err != nil {
		return err
	}

	dialer := gomail.NewDialer(cfg.SMTPHost, port, cfg.SMTPEmail, cfg.SMTPPassword)
	return dialer.DialAndSend(buildMessage(cfg, toEmail, subject, body))
}
