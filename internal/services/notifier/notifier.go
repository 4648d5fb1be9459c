// Package notifier отправляет пользователям письма о совершённых платежах.
// Сообщения поступают из очереди событий платежей.
package notifier

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mlazareva/education-platform/internal/lib/sl"
	"github.com/mlazareva/education-platform/internal/lib/smtp"
	"github.com/mlazareva/education-platform/internal/models"
)

// NotifierService читает события платежей и рассылает квитанции по почте.
type NotifierService struct {
	transport smtp.TransportInterface
	log       *slog.Logger
}

// NewNotifierService создает новый экземпляр NotifierService.
func NewNotifierService(transport smtp.TransportInterface, log *slog.Logger) *NotifierService {
	return &NotifierService{
		transport: transport,
		log:       log,
	}
}

// SendPaymentReceipt разбирает событие платежа и отправляет пользователю
// письмо с подтверждением оплаты.
func (s *NotifierService) SendPaymentReceipt(body []byte) error {
	var event models.PaymentEvent
	if err := json.Unmarshal(body, &event); err != nil {
		s.log.Error("failed to unmarshal payment event", sl.Err(err))
		return fmt.Errorf("error unmarshalling message: %w", err)
	}

	to := []string{event.Email}
	subject := "Подтверждение оплаты подписки"
	bodyText := fmt.Sprintf(
		"Здравствуйте, %s!\n\nМы получили вашу оплату на сумму %.2f %s.\nИдентификатор сессии оплаты: %s.\n\nСпасибо, что учитесь с нами.",
		event.Username, event.Amount, event.Currency, event.SessionID)

	return s.sendEmail(to, subject, bodyText)
}

func (s *NotifierService) sendEmail(to []string, subject, bodyText string) error {
	from := s.transport.GetSMTPFrom()
	msg := strings.Join([]string{
		"From: " + from,
		"To: " + strings.Join(to, ";"),
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"",
		bodyText,
	}, "\r\n")

	client, err := s.transport.Connect()
	if err != nil {
		s.log.Error("failed to connect to SMTP server", sl.Err(err))
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	if err := client.Mail(from); err != nil {
		s.log.Error("failed to set MAIL FROM", slog.String("from", from), sl.Err(err))
		return err
	}

	for _, addr := range to {
		if err := client.Rcpt(addr); err != nil {
			s.log.Error("failed to set RCPT TO", slog.String("recipient", addr), sl.Err(err))
			return err
		}
	}

	wc, err := client.Data()
	if err != nil {
		s.log.Error("failed to get data writer", sl.Err(err))
		return err
	}

	if _, err = wc.Write([]byte(msg)); err != nil {
		s.log.Error("failed to write email body", sl.Err(err))
		return err
	}

	if err = wc.Close(); err != nil {
		s.log.Error("failed to close data writer", sl.Err(err))
		return err
	}

	if err = client.Quit(); err != nil {
		s.log.Error("failed to quit SMTP client", sl.Err(err))
		return err
	}

	s.log.Info("email sent successfully", slog.Any("to", to))
	return nil
}
