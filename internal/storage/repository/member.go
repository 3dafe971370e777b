package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/clubfit/membership-tracker/internal/models"
)

// CreateMember вставляет нового участника и возвращает его ID.
func (s *Storage) CreateMember(ctx context.Context, member models.Member) (string, error) {
	const op = "storage.CreateMember"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO members (id, first_name, last_name, email, weight, age,
			      join_date, membership_status, paid_until)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			  RETURNING id`
	var newID string
	err := s.DB.QueryRowContext(ctx, query,
		member.ID, member.FirstName, member.LastName, member.Email, member.Weight,
		member.Age, member.JoinDate, member.MembershipStatus, member.PaidUntil).Scan(&newID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// GetMemberByID возвращает участника по ID либо nil, если запись отсутствует.
func (s *Storage) GetMemberByID(ctx context.Context, id string) (*models.Member, error) {
	const op = "storage.GetMemberByID"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, first_name, last_name, email, weight, age,
				join_date, membership_status, paid_until
			  FROM members WHERE id = $1`
	row := s.DB.QueryRowContext(ctx, query, id)

	var result models.Member
	err := row.Scan(&result.ID, &result.FirstName, &result.LastName, &result.Email,
		&result.Weight, &result.Age, &result.JoinDate, &result.MembershipStatus,
		&result.PaidUntil)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

// GetMemberByEmail возвращает участника по email либо nil, если запись отсутствует.
func (s *Storage) GetMemberByEmail(ctx context.Context, email string) (*models.Member, error) {
	const op = "storage.GetMemberByEmail"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, first_name, last_name, email, weight, age,
				join_date, membership_status, paid_until
			  FROM members WHERE email = $1`
	row := s.DB.QueryRowContext(ctx, query, email)

	var result models.Member
	err := row.Scan(&result.ID, &result.FirstName, &result.LastName, &result.Email,
		&result.Weight, &result.Age, &result.JoinDate, &result.MembershipStatus,
		&result.PaidUntil)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

// UpdateMemberFields обновляет только изменённые поля участника: срок оплаты
// и статус членства. Полная перезапись не выполняется, чтобы не затирать
// несвязанные поля при конкурентных изменениях.
func (s *Storage) UpdateMemberFields(ctx context.Context, id string, fields models.MemberUpdate) (int, error) {
	const op = "storage.UpdateMemberFields"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE members
			  SET membership_status = COALESCE($1, membership_status),
			      paid_until = COALESCE($2, paid_until)
			  WHERE id = $3`
	result, err := s.DB.ExecContext(ctx, query, fields.MembershipStatus, fields.PaidUntil, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// ListMembers возвращает список участников с пагинацией.
func (s *Storage) ListMembers(ctx context.Context, limit, offset int) ([]*models.Member, error) {
	const op = "storage.ListMembers"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, first_name, last_name, email, weight, age,
				join_date, membership_status, paid_until
			  FROM members
			  ORDER BY join_date
			  LIMIT $1 OFFSET $2`
	rows, err := s.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var result []*models.Member
	for rows.Next() {
		var item models.Member
		if err := rows.Scan(&item.ID, &item.FirstName, &item.LastName, &item.Email,
			&item.Weight, &item.Age, &item.JoinDate, &item.MembershipStatus,
			&item.PaidUntil); err != nil {
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
