package notify

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/winespa/spa-scheduler/internal/config"
)

// SMTPNotifier sends plain-text mail through the configured relay.
type SMTPNotifier struct {
	host string
	port string
	user string
	pass string
	from string
}

func NewSMTPNotifier(cfg *config.Config) *SMTPNotifier {
	return &SMTPNotifier{
		host: cfg.SMTPHost,
		port: cfg.SMTPPort,
		user: cfg.SMTPUser,
		pass: cfg.SMTPPass,
		from: cfg.MailFrom,
	}
}

func (n *SMTPNotifier) Send(msg Message) error {
	if n.host == "" {
		return fmt.Errorf("smtp host not configured")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", n.from)
	fmt.Fprintf(&b, "To: %s\r\n", msg.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	b.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")
	b.WriteString(msg.Body)

	addr := n.host + ":" + n.port

	var auth smtp.Auth
	if n.user != "" {
		auth = smtp.PlainAuth("", n.user, n.pass, n.host)
	}

	return smtp.SendMail(addr, auth, n.from, []string{msg.To}, []byte(b.String()))
}
