package models

// Lesson представляет урок внутри курса. Урок удаляется каскадно вместе
// с курсом и вместе с владельцем. Владелец урока не обязан совпадать
// с владельцем курса.
type Lesson struct {
	ID          int64   `json:"id"`          // Уникальный идентификатор урока
	Name        string  `json:"name"`        // Название урока
	Description string  `json:"description"` // Описание урока
	Image       *string `json:"image"`       // Путь к превью урока (опционально)
	Video       *string `json:"video"`       // Путь к видео урока (опционально)
	CourseID    int64   `json:"course_id"`   // Курс, которому принадлежит урок
	OwnerID     *int64  `json:"owner_id"`    // Владелец урока (опционально)
}

// DummyLesson используется для приёма данных урока из JSON-запроса.
type DummyLesson struct {
	Name        string  `json:"name" validate:"required,max=255"`    // Название урока
	Description string  `json:"description" validate:"required"`     // Описание урока
	Image       *string `json:"image"`                               // Путь к превью
	Video       *string `json:"video"`                               // Путь к видео
	CourseID    int64   `json:"course_id" validate:"required,gt=0"`  // Курс урока
}
