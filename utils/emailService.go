package utils

import (
	"fmt"
	"net/smtp"
	"strings"

	"spotapi/config"
)

// Generic Send Email
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	if from == "" || password == "" {
		// Mail is optional; nothing to send with.
		return nil
	}

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: Spot Trading <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		fmt.Println("Error sending email:", err)
		return err
	}
	return nil
}

func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #00004D; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #00004D; line-height: 1.6; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header"><h1>%s</h1></div>
			<div class="content">%s</div>
			<div class="footer">Spot Trading &middot; This is an automated message.</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// SendEnrollmentEmail sends a confirmation when a user enrolls in a course.
func SendEnrollmentEmail(email, userName, courseTitle string) error {
	body := fmt.Sprintf(`
		<h2>Enrollment Confirmed</h2>
		<p>Hi %s,</p>
		<p>You are now enrolled in <strong>%s</strong>. You can access the course from your dashboard.</p>
		<p>Happy trading!</p>
	`, userName, courseTitle)

	return SendEmail([]string{email}, "Course Enrollment Confirmation", getEmailTemplate("Spot Trading", body))
}

// SendContactNotification lets the admin inbox know a new contact message arrived.
func SendContactNotification(name, email, message string) error {
	if config.AppConfig.EmailSender == "" {
		return nil
	}

	body := fmt.Sprintf(`
		<h2>New Contact Message</h2>
		<p><strong>From:</strong> %s (%s)</p>
		<p>%s</p>
	`, name, email, message)

	return SendEmail([]string{config.AppConfig.EmailSender}, "New Contact Message", getEmailTemplate("Spot Trading", body))
}
