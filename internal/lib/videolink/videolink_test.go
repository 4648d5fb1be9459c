package videolink

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		name        string
		description string
		wantErr     bool
	}{
		{
			name:        "ссылка на youtu.be разрешена",
			description: "https://youtu.be/xyz",
			wantErr:     false,
		},
		{
			name:        "ссылка на youtube.com разрешена",
			description: "https://www.youtube.com/watch?v=xyz",
			wantErr:     false,
		},
		{
			name:        "ссылка без схемы www разрешена",
			description: "www.youtube.com/watch?v=xyz смотрите https://youtu.be/xyz",
			wantErr:     false,
		},
		{
			name:        "ссылка на сторонний ресурс запрещена",
			description: "https://vimeo.com/xyz",
			wantErr:     true,
		},
		{
			name:        "http-схема тоже проверяется",
			description: "http://rutube.ru/video/1",
			wantErr:     true,
		},
		{
			name:        "упоминание домена без схемы не валидируется",
			description: "смотрите канал youtube.com и vimeo.com",
			wantErr:     false,
		},
		{
			name:        "текст без ссылок проходит",
			description: "обычное описание курса",
			wantErr:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Check(tt.description)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrForbiddenLink)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
