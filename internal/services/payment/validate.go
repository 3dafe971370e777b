package payment

import (
	"context"

	"github.com/clubfit/membership-tracker/internal/lib/apperr"
	"github.com/clubfit/membership-tracker/internal/models"
)

// validate проверяет платёж перед обработкой. Проверки выполняются по
// порядку с остановкой на первой ошибке; запись не производится.
func (s *Service) validate(ctx context.Context, req models.CreatePayment) error {
	if req.MemberID == "" {
		return apperr.InvalidData("Member ID must not be empty")
	}
	if req.Amount <= 0 {
		return apperr.InvalidData("Amount must be positive")
	}
	if req.MonthsCovered <= 0 {
		return apperr.InvalidData("Months covered must be positive")
	}
	if req.PaymentMethod == "" {
		return apperr.InvalidData("Payment method is required")
	}

	member, err := s.members.GetMemberByID(ctx, req.MemberID)
	if err != nil {
		return err
	}
	if member == nil {
		return apperr.NotFound("Member not found")
	}

	existing, err := s.payments.GetPaymentByMemberIDAndMonth(ctx, req.MemberID, req.PaymentDate)
	if err != nil {
		return err
	}
	if existing != nil {
		return apperr.InvalidData("Member already paid for this month")
	}
	return nil
}
