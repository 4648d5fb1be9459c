// Package videolink реализует проверку ссылок в описаниях курсов и уроков.
//
// Разрешены только ссылки на youtube.com и youtu.be (в том числе с www
// и без схемы). Проверка срабатывает только при наличии в тексте подстроки
// "http://" или "https://": упоминание домена без схемы не валидируется.
package videolink

import (
	"errors"
	"regexp"
	"strings"
)

// ErrForbiddenLink возвращается, когда описание содержит ссылку
// на сторонний ресурс.
var ErrForbiddenLink = errors.New("links to channels other than youtube are not allowed")

// Проверяет также сокращённые ссылки.
var allowedPattern = regexp.MustCompile(`^(?:https?://)?(?:www\.)?(youtube\.com|youtu\.be)`)

// Check проверяет описание на наличие запрещённых ссылок.
// Возвращает ErrForbiddenLink, если текст содержит схему http(s)
// и не начинается с разрешённого видеохостинга.
func Check(description string) error {
	if !strings.Contains(description, "https://") && !strings.Contains(description, "http://") {
		return nil
	}
	if !allowedPattern.MatchString(description) {
		return ErrForbiddenLink
	}
	return nil
}
