// Package upload реализует HTTP-обработчик загрузки файлов: превью курсов
// и уроков, видео и аватаров. Размер загрузки ограничен конфигурацией.
package upload

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/google/uuid"

	"github.com/mlazareva/education-platform/internal/http/response"
	"github.com/mlazareva/education-platform/internal/lib/sl"
)

// Расширения, принимаемые для загрузки.
var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".mp4":  true,
	".webm": true,
}

// Handler обрабатывает HTTP-запросы загрузки файлов.
type Handler struct {
	log      *slog.Logger
	mediaDir string
	maxBytes int64
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, mediaDir string, maxBytes int64) *Handler {
	return &Handler{
		log:      log,
		mediaDir: mediaDir,
		maxBytes: maxBytes,
	}
}

// ServeHTTP godoc
// @Summary Загрузить файл
// @Description Принимает файл в поле file multipart-формы и возвращает путь к сохраненному файлу
// @Tags Media
// @Accept  mpfd
// @Produce  json
// @Security BearerAuth
// @Param file formData file true "Загружаемый файл"
// @Success 201 {object} map[string]any "Файл сохранен"
// @Failure 400 {object} response.ErrorResponse "Некорректная форма или недопустимое расширение"
// @Failure 413 {object} response.ErrorResponse "Файл превышает допустимый размер"
// @Failure 500 {object} response.ErrorResponse "Ошибка сохранения файла"
// @Router /media [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.media.upload"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			log.Error("upload too large", slog.Int64("limit", h.maxBytes))
			w.WriteHeader(http.StatusRequestEntityTooLarge)
			render.JSON(w, r, response.Error("file exceeds upload size limit"))
			return
		}
		log.Error("failed to read form file", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid multipart form"))
		return
	}
	defer func() {
		_ = file.Close()
	}()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedExtensions[ext] {
		log.Error("forbidden file extension", slog.String("filename", header.Filename))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("file extension is not allowed"))
		return
	}

	if err := os.MkdirAll(h.mediaDir, 0o755); err != nil {
		log.Error("failed to create media dir", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to save file"))
		return
	}

	name := uuid.NewString() + ext
	path := filepath.Join(h.mediaDir, name)
	dst, err := os.Create(path)
	if err != nil {
		log.Error("failed to create file", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to save file"))
		return
	}
	defer func() {
		_ = dst.Close()
	}()

	if _, err := io.Copy(dst, file); err != nil {
		log.Error("failed to write file", sl.Err(err))
		_ = os.Remove(path)
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			w.WriteHeader(http.StatusRequestEntityTooLarge)
			render.JSON(w, r, response.Error("file exceeds upload size limit"))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to save file"))
		return
	}

	log.Info("success to upload file", slog.String("path", path))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"path": "/media/" + name,
	}))
}
