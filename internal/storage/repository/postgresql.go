// Package repository реализует хранилище данных образовательной платформы
// на основе PostgreSQL: пользователи, курсы, уроки, платежи и подписки.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Ошибки уровня хранилища, на которые опираются обработчики
// при выборе HTTP-статуса ответа.
var (
	// ErrNotFound возвращается, когда запрошенная запись отсутствует.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists возвращается при нарушении ограничения уникальности.
	ErrAlreadyExists = errors.New("already exists")
)

// Storage инкапсулирует соединение с базой данных PostgreSQL
// и реализует методы работы с сущностями платформы.
type Storage struct {
	DB *sql.DB
}

// New создаёт подключение к PostgreSQL и проверяет его доступность.
func New(storageConnectionString string) (*Storage, error) {
	const op = "repository.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		DB: db,
	}, nil
}

// wrapError переводит ошибки драйвера в ошибки уровня хранилища.
func wrapError(op string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return fmt.Errorf("%s: %w", op, ErrAlreadyExists)
	}
	return fmt.Errorf("%s: %w", op, err)
}
