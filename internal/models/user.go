// Package models содержит доменные структуры образовательной платформы:
// пользователей, курсы, уроки, платежи и подписки, а также вспомогательные
// типы для приёма данных из JSON-запросов.
package models

import "time"

// User представляет зарегистрированного пользователя платформы.
// Email используется как логин и уникален, Username также уникален.
type User struct {
	ID           int64      // Уникальный идентификатор пользователя
	Email        string     // Электронная почта (логин, уникальная)
	Username     string     // Имя пользователя (уникальное)
	PasswordHash string     // Хэш пароля пользователя
	FirstName    string     // Имя
	LastName     string     // Фамилия
	Phone        *string    // Номер телефона (опционально)
	City         *string    // Город (опционально)
	Avatar       *string    // Путь к аватару в файловом хранилище (опционально)
	IsModerator  bool       // Пользователь состоит в группе модераторов
	IsStaff      bool       // Доступ к административным функциям
	IsSuperuser  bool       // Суперпользователь
	IsActive     bool       // Активность учётной записи
	DateJoined   time.Time  // Дата регистрации
}

// DummyUserUpdate используется для приёма данных обновления профиля из JSON-запроса.
type DummyUserUpdate struct {
	Username  string  `json:"username" validate:"required,min=3,max=150"` // Имя пользователя
	FirstName string  `json:"first_name" validate:"omitempty,max=150"`    // Имя
	LastName  string  `json:"last_name" validate:"omitempty,max=150"`     // Фамилия
	Phone     *string `json:"phone" validate:"omitempty,max=20"`          // Номер телефона
	City      *string `json:"city" validate:"omitempty,max=100"`          // Город
	Avatar    *string `json:"avatar"`                                     // Путь к аватару
}

// UserListItem ограниченное представление пользователя для списка
// и чужих профилей.
type UserListItem struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// UserDetail полное представление профиля пользователя,
// доступное только владельцу. Встраивает список платежей.
type UserDetail struct {
	ID         int64      `json:"id"`
	Username   string     `json:"username"`
	Email      string     `json:"email"`
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	Phone      *string    `json:"phone"`
	City       *string    `json:"city"`
	Avatar     *string    `json:"avatar"`
	IsStaff    bool       `json:"is_staff"`
	IsActive   bool       `json:"is_active"`
	DateJoined time.Time  `json:"date_joined"`
	Payments   []*Payment `json:"payments"`
}
