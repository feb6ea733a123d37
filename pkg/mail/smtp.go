// Package mail provides email sending and validation utilities.
package mail

import (
	"fmt"
	"net/smtp"
	"regexp"
	"strings"
)

// Config holds configuration for sending emails via SMTP.
type Config struct {
	SMTPHost  string
	SMTPPort  string
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

// Configured reports whether the config has enough to attempt delivery.
func (c Config) Configured() bool {
	return c.SMTPHost != "" && c.SMTPPort != "" && c.FromEmail != ""
}

// Send sends an HTML email.
func Send(config Config, toEmail, subject, htmlBody string) error {
	if !config.Configured() {
		return fmt.Errorf("smtp not configured")
	}

	message := fmt.Sprintf(
		"From: %s <%s>\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		config.FromName, config.FromEmail,
		toEmail,
		subject,
		htmlBody,
	)

	var auth smtp.Auth
	if config.Username != "" {
		auth = smtp.PlainAuth("", config.Username, config.Password, config.SMTPHost)
	}

	return smtp.SendMail(
		config.SMTPHost+":"+config.SMTPPort,
		auth,
		config.FromEmail,
		[]string{toEmail},
		[]byte(message),
	)
}

var addressPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidateAddress checks that an address looks like a deliverable email.
func ValidateAddress(addr string) error {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return fmt.Errorf("empty recipient address")
	}
	if !addressPattern.MatchString(addr) {
		return fmt.Errorf("invalid recipient address %q", addr)
	}
	return nil
}
