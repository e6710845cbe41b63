// Package mail реализует отправку писем клиентам.
package mail

import (
	"fmt"
	"net/smtp"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/pedidos/internal/domain"
)

// SMTPSender отправляет письма через SMTP-сервер без аутентификации
// (relay внутри периметра). Реализует domain.EmailSender.
type SMTPSender struct {
	addr   string
	from   string
	logger *log.Entry
}

// NewSMTPSender создаёт отправителя. addr — host:port SMTP-сервера,
// from — адрес отправителя.
func NewSMTPSender(addr, from string) *SMTPSender {
	return &SMTPSender{
		addr:   addr,
		from:   from,
		logger: log.WithField("component", "smtp-sender"),
	}
}

// Send отправляет письмо. Ошибка транспорта возвращается как есть;
// в бизнес-ошибку её переводит вызывающее ядро.
func (s *SMTPSender) Send(to, subject, body string) error {
	msg := buildMessage(s.from, to, subject, body)
	if err := smtp.SendMail(s.addr, nil, s.from, []string{to}, msg); err != nil {
		s.logger.WithError(err).WithField("to", to).Error("failed to send email")
		return fmt.Errorf("send email: %w", err)
	}

	s.logger.WithField("to", to).Debug("email sent")
	return nil
}

// buildMessage собирает минимальное RFC 5322 сообщение.
func buildMessage(from, to, subject, body string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	b.WriteString("\r\n")
	return []byte(b.String())
}

// LogSender пишет письма в лог вместо отправки. Для локальной разработки,
// когда SMTP не настроен.
type LogSender struct {
	logger *log.Entry
}

// NewLogSender создаёт лог-отправителя.
func NewLogSender(logger *log.Entry) *LogSender {
	if logger == nil {
		logger = log.WithField("component", "log-sender")
	}
	return &LogSender{logger: logger}
}

// Send пишет письмо в лог и всегда успешен.
func (s *LogSender) Send(to, subject, body string) error {
	s.logger.WithFields(log.Fields{
		"to":      to,
		"subject": subject,
	}).Info("email suppressed, smtp is not configured")
	return nil
}

var (
	_ domain.EmailSender = (*SMTPSender)(nil)
	_ domain.EmailSender = (*LogSender)(nil)
)
