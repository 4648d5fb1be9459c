package models

// Subscription связывает пользователя и курс. Само существование записи
// означает "подписан", дополнительного состояния нет. Запись удаляется
// каскадно вместе с пользователем и вместе с курсом.
type Subscription struct {
	ID       int64 `json:"id"`
	UserID   int64 `json:"user_id"`
	CourseID int64 `json:"course_id"`
}

// DummySubscription используется для приёма идентификатора курса
// из JSON-запроса переключения подписки.
type DummySubscription struct {
	CourseID int64 `json:"course_id" validate:"required,gt=0"` // Курс подписки
}
