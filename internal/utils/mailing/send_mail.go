package mailing

import (
	"bytes"
	"fmt"
	"html/template"
	"strconv"

	"rhea-backend/internal/utils"

	"gopkg.in/gomail.v2"
)

type MailConfig struct {
	AppURL       string
	SMTPHost     string
	SMTPPort     string
	SMTPSender   string
	SMTPEmail    string
	SMTPPassword string
}

type (
	Mailer interface {
		SendMail(toEmail string, subject string, body string) error
		SendWelcome(toEmail string, name string) error
	}

	smtpMailer struct {
		cfg MailConfig
	}
)

func LoadMailConfig() MailConfig {
	return MailConfig{
		AppURL:       utils.GetConfig("APP_URL"),
		SMTPHost:     utils.GetConfig("SMTP_HOST"),
		SMTPPort:     utils.GetConfig("SMTP_PORT"),
		SMTPSender:   utils.GetConfig("SMTP_SENDER_NAME"),
		SMTPEmail:    utils.GetConfig("SMTP_AUTH_EMAIL"),
		SMTPPassword: utils.GetConfig("SMTP_AUTH_PASSWORD"),
	}
}

func NewMailer() Mailer {
	return &smtpMailer{cfg: LoadMailConfig()}
}

func (m *smtpMailer) SendMail(toEmail string, subject string, body string) error {
	if m.cfg.SMTPHost == "" {
		return fmt.Errorf("smtp host not configured")
	}

	mailer := gomail.NewMessage()
	mailer.SetHeader("From", mailer.FormatAddress(m.cfg.SMTPEmail, m.cfg.SMTPSender))
	mailer.SetHeader("To", toEmail)
	mailer.SetHeader("Subject", subject)
	mailer.SetBody("text/html", body)
	port, err := strconv.Atoi(m.cfg.SMTPPort)
	if err != nil {
		return err
	}
	dialer := gomail.NewDialer(
		m.cfg.SMTPHost,
		port,
		m.cfg.SMTPEmail,
		m.cfg.SMTPPassword,
	)

	return dialer.DialAndSend(mailer)
}

var welcomeTemplate = template.Must(template.New("welcome").Parse(`<p>Hi {{.Name}},</p>
<p>Welcome to Rhea. Upload a selfie to get your face shape, undertone and a hairstyle picked for you.</p>
<p><a href="{{.AppURL}}">Open Rhea</a></p>`))

func (m *smtpMailer) SendWelcome(toEmail string, name string) error {
	body, err := RenderWelcome(name, m.cfg.AppURL)
	if err != nil {
		return err
	}
	return m.SendMail(toEmail, "Welcome to Rhea", body)
}

func RenderWelcome(name, appURL string) (string, error) {
	var buf bytes.Buffer
	if err := welcomeTemplate.Execute(&buf, struct {
		Name   string
		AppURL string
	}{name, appURL}); err != nil {
		return "", err
	}
	return buf.String(), nil
}
