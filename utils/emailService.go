package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/venu-chandaka/online-learning-app-insightquest-internship/config"
)

// SendEmail delivers an HTML email. SendGrid is used when an API key is
// configured, otherwise plain SMTP (Gmail relay).
func SendEmail(to []string, subject string, htmlBody string) error {
	if config.AppConfig.SendGridAPIKey != "" {
		return sendViaSendGrid(to, subject, htmlBody)
	}
	return sendViaSMTP(to, subject, htmlBody)
}

func sendViaSendGrid(to []string, subject string, htmlBody string) error {
	from := sgmail.NewEmail("InsightQuest", config.AppConfig.EmailSender)
	client := sendgrid.NewSendClient(config.AppConfig.SendGridAPIKey)

	for _, rcpt := range to {
		message := sgmail.NewSingleEmail(from, subject, sgmail.NewEmail("", rcpt), "", htmlBody)
		resp, err := client.Send(message)
		if err != nil {
			log.Printf("[MAIL] SendGrid error: %v", err)
			return err
		}
		if resp.StatusCode >= 400 {
			log.Printf("[MAIL] SendGrid rejected message: %d %s", resp.StatusCode, resp.Body)
			return fmt.Errorf("sendgrid: status %d", resp.StatusCode)
		}
	}
	return nil
}

func sendViaSMTP(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.EmailPassword

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: InsightQuest <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	if err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg)); err != nil {
		log.Printf("[MAIL] SMTP error: %v", err)
		return err
	}
	return nil
}

// getEmailTemplate wraps body content in the shared layout
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1A237E; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1A237E; line-height: 1.6; }
			.content h2 { color: #1A237E; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.otp-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #5C6BC0; margin: 20px 0; font-size: 24px; letter-spacing: 6px; text-align: center; font-weight: bold; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>INSIGHTQUEST</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 InsightQuest. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// --- Triggers ---

// SendWelcomeEmail greets a freshly registered account
func SendWelcomeEmail(email, name string) {
	subject := "Welcome to InsightQuest"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Welcome to <strong>InsightQuest</strong>! Your account has been created.</p>
		<p>Verify your email with the code we sent separately, then start exploring courses.</p>
	`, name)

	go SendEmail([]string{email}, subject, getEmailTemplate("Welcome Onboard!", body))
}

// SendVerifyOtpEmail delivers an account-verification code
func SendVerifyOtpEmail(email, name, code string) {
	subject := "Your InsightQuest verification code"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Use the code below to verify your account. It expires in %d minutes.</p>
		<div class="otp-box">%s</div>
	`, name, config.AppConfig.OTPExpiryMinutes, code)

	go SendEmail([]string{email}, subject, getEmailTemplate("Verify Your Account", body))
}

// SendResetOtpEmail delivers a password-reset code
func SendResetOtpEmail(email, name, code string) {
	subject := "Your InsightQuest password reset code"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Use the code below to reset your password. It expires in %d minutes.</p>
		<div class="otp-box">%s</div>
		<p>If you did not request this, you can ignore this email.</p>
	`, name, config.AppConfig.OTPExpiryMinutes, code)

	go SendEmail([]string{email}, subject, getEmailTemplate("Password Reset", body))
}
