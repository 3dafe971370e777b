package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/clubfit/membership-tracker/internal/lib/dateutil"
	"github.com/clubfit/membership-tracker/internal/models"
)

// CreatePayment вставляет новый платёж и возвращает его ID.
// Платежи неизменяемы: методов обновления у хранилища нет.
func (s *Storage) CreatePayment(ctx context.Context, payment models.Payment) (string, error) {
	const op = "storage.CreatePayment"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO payments (id, member_id, amount, payment_method,
			      payment_date, months_covered, is_proportional, promotion_id)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING id`
	var newID string
	err := s.DB.QueryRowContext(ctx, query,
		payment.ID, payment.MemberID, payment.Amount, payment.PaymentMethod,
		payment.PaymentDate, payment.MonthsCovered, payment.IsProportional,
		payment.PromotionID).Scan(&newID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ListPaymentsByMemberID возвращает все платежи участника, новые первыми.
func (s *Storage) ListPaymentsByMemberID(ctx context.Context, memberID string) ([]*models.Payment, error) {
	const op = "storage.ListPaymentsByMemberID"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, member_id, amount, payment_method, payment_date,
				months_covered, is_proportional, promotion_id
			  FROM payments
			  WHERE member_id = $1
			  ORDER BY payment_date DESC`
	rows, err := s.DB.QueryContext(ctx, query, memberID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var result []*models.Payment
	for rows.Next() {
		var item models.Payment
		if err := rows.Scan(&item.ID, &item.MemberID, &item.Amount, &item.PaymentMethod,
			&item.PaymentDate, &item.MonthsCovered, &item.IsProportional,
			&item.PromotionID); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	err = rows.Close()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// GetPaymentByMemberIDAndMonth возвращает платёж участника за календарный
// месяц даты month либо nil, если платежа в этом месяце нет.
func (s *Storage) GetPaymentByMemberIDAndMonth(ctx context.Context, memberID string, month time.Time) (*models.Payment, error) {
	const op = "storage.GetPaymentByMemberIDAndMonth"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	monthStart := dateutil.MonthStart(month)
	nextMonth := monthStart.AddDate(0, 1, 0)

	query := `SELECT id, member_id, amount, payment_method, payment_date,
				months_covered, is_proportional, promotion_id
			  FROM payments
			  WHERE member_id = $1 AND payment_date >= $2 AND payment_date < $3
			  LIMIT 1`
	row := s.DB.QueryRowContext(ctx, query, memberID, monthStart, nextMonth)

	var result models.Payment
	err := row.Scan(&result.ID, &result.MemberID, &result.Amount, &result.PaymentMethod,
		&result.PaymentDate, &result.MonthsCovered, &result.IsProportional,
		&result.PromotionID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}
