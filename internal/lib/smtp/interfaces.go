// Package smtp реализует почтовый транспорт сервиса уведомлений.
package smtp

import "io"

// Client часть протокола SMTP, используемая при отправке письма.
// Выделен в интерфейс для подмены в тестах.
type Client interface {
	Mail(from string) error
	Rcpt(to string) error
	Data() (io.WriteCloser, error)
	Quit() error
	Close() error
}

// TransportInterface абстракция над подключением к SMTP-серверу.
type TransportInterface interface {
	Connect() (Client, error)
	GetSMTPUser() string
	GetSMTPFrom() string
}
