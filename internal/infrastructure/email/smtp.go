package email

import (
	"errors"
	"fmt"
	"html"
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/instamakaan/instamakaan/internal/application/notification/dto"
	"github.com/instamakaan/instamakaan/internal/application/notification/usecases"
	sharedConfig "github.com/instamakaan/instamakaan/internal/shared/config"
	"github.com/instamakaan/instamakaan/internal/shared/logger"
)

var ErrEmailServiceNotConfigured = errors.New("email service not configured")

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
}

func SMTPConfigFrom(cfg sharedConfig.EmailConfig) SMTPConfig {
	return SMTPConfig{
		Host:        cfg.SMTPHost,
		Port:        cfg.SMTPPort,
		Username:    cfg.SMTPUser,
		Password:    cfg.SMTPPassword,
		FromAddress: cfg.FromAddress,
		FromName:    cfg.FromName,
	}
}

type SMTPEmailService struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPEmailService{
		config: config,
		dialer: dialer,
	}
}

// SendAssignmentEmail tells an agent which customer to call. Customer text
// is escaped before it goes into the HTML part.
func (s *SMTPEmailService) SendAssignmentEmail(msg dto.AssignmentEmail) error {
	subject, htmlBody, plainBody := renderAssignment(msg)
	return s.sendEmail(msg.To, subject, htmlBody, plainBody)
}

func renderAssignment(msg dto.AssignmentEmail) (subject, htmlBody, plainBody string) {
	verb := "assigned"
	if msg.Reassigned {
		verb = "reassigned"
	}
	subject = fmt.Sprintf("New inquiry %s to you: %s", verb, msg.CustomerName)

	var link, plainLink string
	if msg.DashboardURL != "" {
		link = fmt.Sprintf(`<p><a href="%s">Open in dashboard</a></p>`, html.EscapeString(msg.DashboardURL))
		plainLink = "\nOpen in dashboard: " + msg.DashboardURL + "\n"
	}

	message := msg.Message
	if strings.TrimSpace(message) == "" {
		message = "(no message)"
	}

	htmlBody = fmt.Sprintf(`
		<html>
		<body>
			<h2>Hi %s,</h2>
			<p>An inquiry has been %s to you.</p>
			<table>
				<tr><td>Customer</td><td>%s</td></tr>
				<tr><td>Phone</td><td>%s</td></tr>
				<tr><td>Type</td><td>%s</td></tr>
				<tr><td>Message</td><td>%s</td></tr>
			</table>
			%s
			<p>Please get in touch with the customer as soon as possible.</p>
		</body>
		</html>
	`,
		html.EscapeString(msg.AgentName),
		verb,
		html.EscapeString(msg.CustomerName),
		html.EscapeString(msg.CustomerPhone),
		html.EscapeString(msg.InquiryType),
		html.EscapeString(message),
		link,
	)

	plainBody = fmt.Sprintf(`
Hi %s,

An inquiry has been %s to you.

Customer: %s
Phone:    %s
Type:     %s
Message:  %s
%s
Please get in touch with the customer as soon as possible.
	`, msg.AgentName, verb, msg.CustomerName, msg.CustomerPhone, msg.InquiryType, message, plainLink)

	return subject, htmlBody, plainBody
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// DisabledEmailService stands in when email.enabled is false. It logs what
// would have been sent.
type DisabledEmailService struct {
	logger logger.Interface
}

func NewDisabledEmailService(logger logger.Interface) *DisabledEmailService {
	return &DisabledEmailService{logger: logger}
}

func (d *DisabledEmailService) SendAssignmentEmail(msg dto.AssignmentEmail) error {
	d.logger.Infow("email disabled, assignment email not sent",
		"to", msg.To,
		"inquiry_id", msg.InquiryID,
	)
	return nil
}

// NewAssignmentMailer picks the SMTP service when email is enabled and
// configured.
func NewAssignmentMailer(cfg sharedConfig.EmailConfig, log logger.Interface) (usecases.AssignmentMailer, error) {
	if !cfg.Enabled {
		return NewDisabledEmailService(log), nil
	}
	if cfg.SMTPHost == "" {
		return nil, ErrEmailServiceNotConfigured
	}
	log.Infow("email service initialized",
		"host", cfg.SMTPHost,
		"port", cfg.SMTPPort,
		"from", cfg.FromAddress,
	)
	return NewSMTPEmailService(SMTPConfigFrom(cfg)), nil
}
