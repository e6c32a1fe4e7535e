package mailer

import (
	"fmt"
	"net/smtp"
	"strings"
)

// Mailer sends the one transactional message this service owns: the
// post-registration greeting.
type Mailer struct {
	host     string
	port     string
	username string
	password string
	from     string
}

func New(host, port, username, password, from string) *Mailer {
	return &Mailer{host: host, port: port, username: username, password: password, from: from}
}

func (m *Mailer) SendWelcome(name, email string) error {
	subject := "Welcome to Our Platform!"
	body := welcomeBody(name)

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", m.from)
	fmt.Fprintf(&msg, "To: %s\r\n", email)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	auth := smtp.PlainAuth("", m.username, m.password, m.host)
	return smtp.SendMail(m.host+":"+m.port, auth, m.from, []string{email}, []byte(msg.String()))
}

func welcomeBody(name string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8" /></head>
<body style="font-family: Arial, sans-serif; padding: 20px;">
  <div style="background: white; padding: 30px; border-radius: 8px; max-width: 600px; margin: auto;">
    <h2>Welcome, %s!</h2>
    <p>Thanks for signing up on our platform. We're excited to have you!</p>
    <p>If you need any help, feel free to reach out.</p>
    <p>Cheers,<br/>The Bands Team</p>
  </div>
</body>
</html>`, name)
}
