package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/mlazareva/education-platform/internal/models"
)

// CreatePayment вставляет новую запись платежа и возвращает его ID.
func (s *Storage) CreatePayment(ctx context.Context, payment models.Payment) (int64, error) {
	const op = "repository.CreatePayment"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO payments (user_id, course_id, lesson_id, amount, payment_method)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id`
	var newID int64
	err := s.DB.QueryRowContext(ctx, query,
		payment.UserID, payment.CourseID, payment.LessonID,
		payment.Amount, payment.PaymentMethod).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ReadPayment возвращает платёж по его ID.
func (s *Storage) ReadPayment(ctx context.Context, id int64) (*models.Payment, error) {
	const op = "repository.ReadPayment"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_id, course_id, lesson_id, amount, payment_method, created_at
			  FROM payments WHERE id = $1`
	row := s.DB.QueryRowContext(ctx, query, id)

	var result models.Payment
	if err := scanPayment(row.Scan, &result); err != nil {
		return nil, wrapError(op, err)
	}
	return &result, nil
}

func scanPayment(scan func(...any) error, item *models.Payment) error {
	var courseID, lessonID sql.NullInt64
	if err := scan(&item.ID, &item.UserID, &courseID, &lessonID,
		&item.Amount, &item.PaymentMethod, &item.CreatedAt); err != nil {
		return err
	}
	if courseID.Valid {
		item.CourseID = &courseID.Int64
	}
	if lessonID.Valid {
		item.LessonID = &lessonID.Int64
	}
	return nil
}

// Поля сортировки, принимаемые ListPayments.
var paymentOrderColumns = map[string]string{
	"date":   "created_at",
	"amount": "amount",
}

// ListPayments возвращает список платежей с фильтрацией по пользователю,
// курсу, уроку и способу оплаты, поиском по email пользователя и названиям
// курса и урока, а также сортировкой по дате или сумме (префикс "-" —
// по убыванию).
func (s *Storage) ListPayments(ctx context.Context, filter models.PaymentFilter) ([]*models.Payment, error) {
	const op = "repository.ListPayments"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var conditions []string
	var args []any

	addCondition := func(expr string, value any) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(expr, len(args)))
	}

	if filter.UserID != nil {
		addCondition("p.user_id = $%d", *filter.UserID)
	}
	if filter.CourseID != nil {
		addCondition("p.course_id = $%d", *filter.CourseID)
	}
	if filter.LessonID != nil {
		addCondition("p.lesson_id = $%d", *filter.LessonID)
	}
	if filter.PaymentMethod != "" {
		addCondition("p.payment_method = $%d", filter.PaymentMethod)
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf(
			"(u.email ILIKE $%d OR c.name ILIKE $%d OR l.name ILIKE $%d)", n, n, n))
	}

	query := `SELECT p.id, p.user_id, p.course_id, p.lesson_id, p.amount, p.payment_method, p.created_at
			  FROM payments p
			  JOIN users u ON u.id = p.user_id
			  LEFT JOIN courses c ON c.id = p.course_id
			  LEFT JOIN lessons l ON l.id = p.lesson_id`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	orderColumn := "p.id"
	direction := "ASC"
	if filter.OrderBy != "" {
		field := strings.TrimPrefix(filter.OrderBy, "-")
		column, ok := paymentOrderColumns[field]
		if !ok {
			return nil, fmt.Errorf("%s: unknown ordering field %q", op, field)
		}
		orderColumn = "p." + column
		if strings.HasPrefix(filter.OrderBy, "-") {
			direction = "DESC"
		}
	}
	query += fmt.Sprintf(" ORDER BY %s %s", orderColumn, direction)

	args = append(args, filter.Limit)
	query += fmt.Sprintf(" LIMIT $%d", len(args))
	args = append(args, filter.Offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Payment
	for rows.Next() {
		var item models.Payment
		if err := scanPayment(rows.Scan, &item); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// ListPaymentsByUser возвращает все платежи пользователя для встраивания
// в детальное представление профиля.
func (s *Storage) ListPaymentsByUser(ctx context.Context, userID int64) ([]*models.Payment, error) {
	const op = "repository.ListPaymentsByUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_id, course_id, lesson_id, amount, payment_method, created_at
			  FROM payments
			  WHERE user_id = $1
			  ORDER BY id`
	rows, err := s.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Payment
	for rows.Next() {
		var item models.Payment
		if err := scanPayment(rows.Scan, &item); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
