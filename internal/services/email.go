package services

import (
	"bytes"
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/smtp"
	"time"

	"github.com/google/uuid"
	"github.com/resend/resend-go/v2"

	"github.com/campusnet/campusnet/internal/config"
	"github.com/campusnet/campusnet/internal/logging"
)

const VerificationTokenExpiry = 24 * time.Hour

var (
	ErrInvalidVerificationToken = errors.New("invalid verification token")
	ErrVerificationTokenExpired = errors.New("verification token has expired")
)

// Email is a message to be sent.
type Email struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// EmailProvider is the interface for sending emails.
type EmailProvider interface {
	Send(ctx context.Context, email *Email) error
}

// EmailService issues and verifies email verification tokens.
type EmailService struct {
	provider    EmailProvider
	db          DBConn
	users       *UserService
	fromAddress string
	fromName    string
	baseURL     string
}

// NewEmailService picks a provider based on configuration. Unknown providers
// fall back to console output.
func NewEmailService(cfg *config.EmailConfig, db DBConn, users *UserService) *EmailService {
	var provider EmailProvider

	switch cfg.Provider {
	case "resend":
		provider = NewResendProvider(cfg.ResendAPIKey, cfg.FromAddress, cfg.FromName)
	case "smtp":
		provider = NewSMTPProvider(cfg.SMTPHost, cfg.SMTPPort, cfg.FromAddress, cfg.FromName)
	default:
		provider = NewConsoleProvider()
	}

	return &EmailService{
		provider:    provider,
		db:          db,
		users:       users,
		fromAddress: cfg.FromAddress,
		fromName:    cfg.FromName,
		baseURL:     cfg.BaseURL,
	}
}

// GenerateToken creates a secure random token and returns both the token and
// its hash.
func GenerateToken() (token string, hash string, err error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", "", fmt.Errorf("generating random bytes: %w", err)
	}
	token = hex.EncodeToString(bytes)
	return token, HashToken(token), nil
}

// HashToken creates a SHA256 hash of a token.
func HashToken(token string) string {
	h := sha256.Sum256([]byte(token))
	return hex.EncodeToString(h[:])
}

// SendVerificationEmail stores a verification token and mails the link.
func (s *EmailService) SendVerificationEmail(ctx context.Context, userID uuid.UUID, email string) error {
	token, tokenHash, err := GenerateToken()
	if err != nil {
		return err
	}

	expiresAt := time.Now().Add(VerificationTokenExpiry)
	if _, err := s.db.Exec(ctx,
		`INSERT INTO email_verification_tokens (user_id, token_hash, expires_at) VALUES ($1, $2, $3)`,
		userID, tokenHash, expiresAt,
	); err != nil {
		return fmt.Errorf("storing verification token: %w", err)
	}

	verifyURL := fmt.Sprintf("%s/#verify-email?token=%s", s.baseURL, token)
	html, text := s.renderVerificationEmail(verifyURL)

	return s.provider.Send(ctx, &Email{
		To:      email,
		Subject: fmt.Sprintf("Verify your %s account", s.fromName),
		HTML:    html,
		Text:    text,
	})
}

// VerifyEmail consumes a token and marks the user verified.
func (s *EmailService) VerifyEmail(ctx context.Context, token string) error {
	tokenHash := HashToken(token)

	var userID uuid.UUID
	var expiresAt time.Time
	err := s.db.QueryRow(ctx,
		`SELECT user_id, expires_at FROM email_verification_tokens WHERE token_hash = $1`,
		tokenHash,
	).Scan(&userID, &expiresAt)
	if err != nil {
		return ErrInvalidVerificationToken
	}

	if time.Now().After(expiresAt) {
		return ErrVerificationTokenExpired
	}

	if err := s.users.MarkEmailVerified(ctx, userID); err != nil {
		return err
	}

	if _, err := s.db.Exec(ctx,
		`DELETE FROM email_verification_tokens WHERE user_id = $1`,
		userID,
	); err != nil {
		logging.Error("Failed to delete verification tokens", map[string]interface{}{"error": err.Error(), "user_id": userID.String()})
	}

	return nil
}

func (s *EmailService) renderVerificationEmail(verifyURL string) (html, text string) {
	html = fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h1 style="color: #333; font-size: 24px;">Welcome to %s!</h1>

  <p>Please verify your email address by clicking the button below:</p>

  <a href="%s"
     style="display: inline-block; background: #4F46E5; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; margin: 20px 0;">
    Verify Email Address
  </a>

  <p style="color: #666; font-size: 14px;">
    This link expires in 24 hours. If you didn't create an account, you can ignore this email.
  </p>

  <p style="color: #666; font-size: 14px;">
    Or copy this link: %s
  </p>
</body>
</html>`, s.fromName, verifyURL, verifyURL)

	text = fmt.Sprintf(`Welcome to %s!

Please verify your email address by visiting:
%s

This link expires in 24 hours.

If you didn't create an account, you can ignore this email.`, s.fromName, verifyURL)

	return html, text
}

// ResendProvider sends emails using the Resend API.
type ResendProvider struct {
	client *resend.Client
	from   string
}

func NewResendProvider(apiKey, fromAddress, fromName string) *ResendProvider {
	return &ResendProvider{
		client: resend.NewClient(apiKey),
		from:   fmt.Sprintf("%s <%s>", fromName, fromAddress),
	}
}

func (p *ResendProvider) Send(ctx context.Context, email *Email) error {
	params := &resend.SendEmailRequest{
		From:    p.from,
		To:      []string{email.To},
		Subject: email.Subject,
		Html:    email.HTML,
		Text:    email.Text,
	}

	if _, err := p.client.Emails.Send(params); err != nil {
		return fmt.Errorf("sending email via Resend: %w", err)
	}

	logging.Info("Email sent via Resend", map[string]interface{}{"to": email.To, "subject": email.Subject})
	return nil
}

// SMTPProvider sends emails via SMTP (for Mailpit in local dev).
type SMTPProvider struct {
	host        string
	port        int
	fromAddress string
	fromName    string
}

func NewSMTPProvider(host string, port int, fromAddress, fromName string) *SMTPProvider {
	return &SMTPProvider{host: host, port: port, fromAddress: fromAddress, fromName: fromName}
}

func (p *SMTPProvider) Send(ctx context.Context, email *Email) error {
	addr := fmt.Sprintf("%s:%d", p.host, p.port)

	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf("From: %s <%s>\r\n", p.fromName, p.fromAddress))
	buf.WriteString(fmt.Sprintf("To: %s\r\n", email.To))
	buf.WriteString(fmt.Sprintf("Subject: %s\r\n", email.Subject))
	buf.WriteString("MIME-Version: 1.0\r\n")
	buf.WriteString("Content-Type: text/html; charset=utf-8\r\n")
	buf.WriteString("\r\n")
	buf.WriteString(email.HTML)

	if err := smtp.SendMail(addr, nil, p.fromAddress, []string{email.To}, buf.Bytes()); err != nil {
		return fmt.Errorf("sending email via SMTP: %w", err)
	}

	logging.Info("Email sent via SMTP", map[string]interface{}{"to": email.To, "subject": email.Subject})
	return nil
}

// ConsoleProvider logs emails to console (for development).
type ConsoleProvider struct{}

func NewConsoleProvider() *ConsoleProvider {
	return &ConsoleProvider{}
}

func (p *ConsoleProvider) Send(ctx context.Context, email *Email) error {
	logging.Info("Email (console provider)", map[string]interface{}{"to": email.To, "subject": email.Subject})
	fmt.Printf("\n=== EMAIL ===\n")
	fmt.Printf("To: %s\n", email.To)
	fmt.Printf("Subject: %s\n", email.Subject)
	fmt.Printf("---\n")
	fmt.Printf("%s\n", email.Text)
	fmt.Printf("=============\n\n")
	return nil
}
