package models

// Course представляет курс. OwnerID может быть nil: курс без владельца
// остаётся доступен, удаление владельца каскадно удаляет его курсы.
type Course struct {
	ID          int64   // Уникальный идентификатор курса
	Name        string  // Название курса
	Description string  // Описание курса
	Image       *string // Путь к превью курса (опционально)
	OwnerID     *int64  // Владелец курса (опционально)
}

// DummyCourse используется для приёма данных курса из JSON-запроса.
// Владелец не принимается из запроса, он берётся из контекста аутентификации.
type DummyCourse struct {
	Name        string  `json:"name" validate:"required,max=255"` // Название курса
	Description string  `json:"description" validate:"required"`  // Описание курса
	Image       *string `json:"image"`                            // Путь к превью
}

// CourseListItem представление курса в списке: включает производные
// поля — количество уроков и признак подписки текущего пользователя.
type CourseListItem struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	LessonsCount int    `json:"lessons_count"`
	IsSubscribed bool   `json:"is_subscribed"`
}

// CourseDetail детальное представление курса со встроенными уроками.
type CourseDetail struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	LessonsCount int       `json:"lessons_count"`
	Lessons      []*Lesson `json:"lessons"`
}
