package models

import "time"

// Способы оплаты.
const (
	PaymentMethodCash     = "cash"     // Наличные
	PaymentMethodTransfer = "transfer" // Перевод на счёт
)

// Payment представляет оплату курса или урока пользователем.
// Платёж удаляется каскадно вместе с пользователем; при удалении
// оплаченного курса или урока ссылка обнуляется, сам платёж сохраняется.
type Payment struct {
	ID            int64     `json:"id"`             // Уникальный идентификатор платежа
	UserID        int64     `json:"user_id"`        // Пользователь, совершивший оплату
	CourseID      *int64    `json:"course_id"`      // Оплаченный курс (опционально)
	LessonID      *int64    `json:"lesson_id"`      // Оплаченный урок (опционально)
	Amount        float64   `json:"amount"`         // Сумма платежа
	PaymentMethod string    `json:"payment_method"` // Способ оплаты: cash или transfer
	CreatedAt     time.Time `json:"date"`           // Дата оплаты
}

// DummyPayment используется для приёма данных платежа из JSON-запроса.
type DummyPayment struct {
	CourseID      *int64  `json:"course_id" validate:"omitempty,gt=0"`                   // Оплаченный курс
	LessonID      *int64  `json:"lesson_id" validate:"omitempty,gt=0"`                   // Оплаченный урок
	Amount        float64 `json:"amount" validate:"required,gt=0"`                       // Сумма платежа (>0)
	PaymentMethod string  `json:"payment_method" validate:"required,oneof=cash transfer"` // Способ оплаты
}

// DummyCheckout используется для приёма данных запроса на оплату подписки
// через внешнего платёжного провайдера. Сумма указывается в рублях.
type DummyCheckout struct {
	Amount      float64 `json:"amount" validate:"required,gt=0"`                 // Сумма в рублях
	ProductName string  `json:"product_name" validate:"required,min=3,max=100"` // Название продукта для провайдера
}

// PaymentFilter параметры фильтрации, поиска и сортировки списка платежей,
// передаваемые в слой доступа к данным. Nil-поле означает отсутствие фильтра.
type PaymentFilter struct {
	UserID        *int64 // Фильтр по пользователю
	CourseID      *int64 // Фильтр по курсу
	LessonID      *int64 // Фильтр по уроку
	PaymentMethod string // Фильтр по способу оплаты ("" — без фильтра)
	Search        string // Поиск по email пользователя, названию курса или урока
	OrderBy       string // Поле сортировки: date или amount, префикс "-" — по убыванию
	Limit         int    // Пагинация: размер страницы
	Offset        int    // Пагинация: смещение
}

// PaymentEvent сообщение о совершённом платеже, публикуемое в очередь
// для сервиса уведомлений.
type PaymentEvent struct {
	UserID    int64     `json:"user_id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	Amount    float64   `json:"amount"`
	Currency  string    `json:"currency"`
	SessionID string    `json:"session_id"`
	CreatedAt time.Time `json:"created_at"`
}
