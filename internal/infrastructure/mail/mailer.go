package mail

import (
	"context"
	"fmt"
	"log/slog"

	gomail "github.com/wneessen/go-mail"

	"github.com/muslimtime-api/internal/config"
)

// Sender delivers verification codes to an email address.
type Sender interface {
	SendOTP(ctx context.Context, to, code string) error
}

// Mailer sends branded verification emails over SMTP.
type Mailer struct {
	client *gomail.Client
	from   string
}

// NewSender returns an SMTP-backed Mailer when credentials are configured.
// Without credentials it returns a no-op sender that only logs, so local
// environments can exercise the verification flow without a mail account.
func NewSender(cfg *config.Config) (Sender, error) {
	if cfg.SMTPUsername == "" || cfg.SMTPPassword == "" {
		slog.Warn("smtp credentials not configured, emails will not be sent")
		return &noopSender{}, nil
	}

	client, err := gomail.NewClient(cfg.SMTPHost,
		gomail.WithPort(cfg.SMTPPort),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(cfg.SMTPUsername),
		gomail.WithPassword(cfg.SMTPPassword),
		gomail.WithTLSPolicy(gomail.TLSMandatory),
	)
	if err != nil {
		return nil, fmt.Errorf("create smtp client: %w", err)
	}

	return &Mailer{client: client, from: cfg.SMTPFrom}, nil
}

func (m *Mailer) SendOTP(ctx context.Context, to, code string) error {
	msg := gomail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("set from address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("set to address: %w", err)
	}
	msg.Subject("Kode Verifikasi MuslimTime - " + code)
	msg.SetBodyString(gomail.TypeTextPlain, otpTextBody(code))

	html, err := otpHTMLBody(code)
	if err != nil {
		return fmt.Errorf("render email body: %w", err)
	}
	msg.AddAlternativeString(gomail.TypeTextHTML, html)

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send otp email: %w", err)
	}
	slog.Info("otp email sent", slog.String("to", to))
	return nil
}

type noopSender struct{}

func (*noopSender) SendOTP(_ context.Context, to, code string) error {
	slog.Info("otp email skipped, no smtp credentials",
		slog.String("to", to), slog.String("code", code))
	return nil
}
