package services

import (
	"embed"
	"fmt"
	"html/template"
	"net/smtp"
	"os"
	"strings"
	"time"

	"villa-backend/models"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

// Notifier delivers best-effort notifications after a successful write.
// Implementations must never fail the caller: delivery problems are logged
// and swallowed.
type Notifier interface {
	BookingCreated(booking models.Booking)
	ContactReceived(msg models.Message)
}

// NopNotifier is used in tests and when notifications are disabled.
type NopNotifier struct{}

func (NopNotifier) BookingCreated(models.Booking) {}
func (NopNotifier) ContactReceived(models.Message) {}

// EmailNotifier renders named templates and delivers them through the
// primary HTTP email provider, falling back to SMTP. With neither
// configured it logs the rendered mail instead of sending.
type EmailNotifier struct {
	log       *zap.Logger
	templates *template.Template
	client    *resty.Client

	apiKey     string
	from       string
	adminEmail string

	smtpHost string
	smtpPort string
	smtpUser string
	smtpPass string
}

func NewEmailNotifierFromEnv(log *zap.Logger) *EmailNotifier {
	tmpl := template.Must(template.ParseFS(templateFS, "templates/*.html"))

	return &EmailNotifier{
		log:        log,
		templates:  tmpl,
		client:     resty.New().SetTimeout(10 * time.Second),
		apiKey:     os.Getenv("RESEND_API_KEY"),
		from:       os.Getenv("EMAIL_FROM"),
		adminEmail: os.Getenv("ADMIN_EMAIL"),
		smtpHost:   os.Getenv("SMTP_HOST"),
		smtpPort:   os.Getenv("SMTP_PORT"),
		smtpUser:   os.Getenv("SMTP_USERNAME"),
		smtpPass:   os.Getenv("SMTP_PASSWORD"),
	}
}

func (n *EmailNotifier) BookingCreated(booking models.Booking) {
	data := map[string]interface{}{
		"Booking":  booking,
		"CheckIn":  booking.CheckIn.Format("02 Jan 2006"),
		"CheckOut": booking.CheckOut.Format("02 Jan 2006"),
	}

	n.deliver("booking_guest", booking.GuestEmail,
		fmt.Sprintf("We received your booking inquiry %s", booking.ReferenceCode), data)

	if n.adminEmail != "" {
		n.deliver("booking_admin", n.adminEmail,
			fmt.Sprintf("New booking inquiry %s", booking.ReferenceCode), data)
	}
}

func (n *EmailNotifier) ContactReceived(msg models.Message) {
	if n.adminEmail == "" {
		return
	}
	n.deliver("contact_admin", n.adminEmail,
		fmt.Sprintf("New contact message: %s", msg.Subject),
		map[string]interface{}{"Message": msg})
}

// deliver renders and sends one mail. Every failure ends here as a warn log;
// the request that triggered the notification is already committed.
func (n *EmailNotifier) deliver(templateName, to, subject string, data interface{}) {
	var body strings.Builder
	if err := n.templates.ExecuteTemplate(&body, templateName+".html", data); err != nil {
		n.log.Warn("notification template failed",
			zap.String("template", templateName),
			zap.Error(err),
		)
		return
	}

	if err := n.send(to, subject, body.String()); err != nil {
		n.log.Warn("notification delivery failed",
			zap.String("template", templateName),
			zap.String("to", to),
			zap.Error(err),
		)
		return
	}

	n.log.Info("notification sent",
		zap.String("template", templateName),
		zap.String("to", to),
	)
}

func (n *EmailNotifier) send(to, subject, html string) error {
	if n.apiKey != "" {
		return n.sendViaAPI(to, subject, html)
	}
	if n.smtpHost != "" && n.smtpUser != "" {
		return n.sendViaSMTP(to, subject, html)
	}

	n.log.Info("mock email (no provider configured)",
		zap.String("to", to),
		zap.String("subject", subject),
	)
	return nil
}

func (n *EmailNotifier) sendViaAPI(to, subject, html string) error {
	resp, err := n.client.R().
		SetAuthToken(n.apiKey).
		SetBody(map[string]interface{}{
			"from":    n.from,
			"to":      []string{to},
			"subject": subject,
			"html":    html,
		}).
		Post("https://api.resend.com/emails")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("email provider returned %s: %s", resp.Status(), resp.String())
	}
	return nil
}

func (n *EmailNotifier) sendViaSMTP(to, subject, html string) error {
	from := n.from
	if from == "" {
		from = n.smtpUser
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("From: %s\r\n", from))
	sb.WriteString(fmt.Sprintf("To: %s\r\n", to))
	sb.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString("Content-Type: text/html; charset=utf-8\r\n\r\n")
	sb.WriteString(html)
	sb.WriteString("\r\n")

	auth := smtp.PlainAuth("", n.smtpUser, n.smtpPass, n.smtpHost)
	addr := fmt.Sprintf("%s:%s", n.smtpHost, n.smtpPort)
	return smtp.SendMail(addr, auth, n.smtpUser, []string{to}, []byte(sb.String()))
}
