package email

import (
	"fmt"

	"github.com/resendlabs/resend-go"
	"go.uber.org/zap"

	"github.com/webway/campus-events-backend/internal/config"
)

// Service sends transactional mail through Resend. When no API key is
// configured every send is a no-op, so callers never have to care whether
// mail is enabled.
type Service struct {
	client *resend.Client
	from   string
	logger *zap.Logger
}

func NewService(cfg config.EmailConfig, logger *zap.Logger) *Service {
	s := &Service{logger: logger}
	if cfg.APIKey == "" {
		return s
	}

	s.client = resend.NewClient(cfg.APIKey)
	s.from = cfg.FromName + " <" + cfg.FromAddress + ">"
	return s
}

func (s *Service) Enabled() bool {
	return s.client != nil
}

func (s *Service) SendWelcomeEmail(to, fullName string) error {
	html := fmt.Sprintf(`<p>Hi %s,</p>
<p>Your account has been created. You can now sign in and browse upcoming college events.</p>`, fullName)

	return s.send(to, "Welcome to Campus Events", html)
}

func (s *Service) SendTemporaryPasswordEmail(to, fullName, tempPassword string) error {
	html := fmt.Sprintf(`<p>Hi %s,</p>
<p>An administrator has reset your password. Your temporary password is:</p>
<p><strong>%s</strong></p>
<p>Please sign in and change it immediately.</p>`, fullName, tempPassword)

	return s.send(to, "Your password has been reset", html)
}

func (s *Service) send(to, subject, html string) error {
	if !s.Enabled() {
		return nil
	}

	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{to},
		Subject: subject,
		Html:    html,
	}

	resp, err := s.client.Emails.Send(params)
	if err != nil {
		s.logger.Warn("failed to send email",
			zap.String("to", to),
			zap.String("subject", subject),
			zap.Error(err),
		)
		return err
	}

	s.logger.Info("email sent",
		zap.String("to", to),
		zap.String("subject", subject),
		zap.String("email_id", resp.Id),
	)
	return nil
}
