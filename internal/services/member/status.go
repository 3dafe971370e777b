package member

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/clubfit/membership-tracker/internal/lib/apperr"
	"github.com/clubfit/membership-tracker/internal/models"
)

// ChangeStatusRequest запрос административной смены статуса участника.
type ChangeStatusRequest struct {
	MemberID          string
	NewStatus         models.MembershipStatus
	RequestedByUserID string
	Reason            string
}

// ChangeStatus выполняет прямую смену статуса в обход платёжной логики.
// Доступно только активным пользователям с ролью trainer или admin;
// перевод в deleted разрешён только администратору, выход из deleted
// запрещён всем.
func (s *Service) ChangeStatus(ctx context.Context, req ChangeStatusRequest) (*models.Member, error) {
	if req.MemberID == "" {
		return nil, apperr.InvalidData("Member ID must not be empty")
	}
	if req.NewStatus == "" {
		return nil, apperr.InvalidData("New status is required")
	}
	if req.RequestedByUserID == "" {
		return nil, apperr.InvalidData("Requesting user ID is required")
	}

	member, err := s.members.GetMemberByID(ctx, req.MemberID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, apperr.NotFound("Member not found")
	}

	requestingUser, err := s.users.GetUserByID(ctx, req.RequestedByUserID)
	if err != nil {
		return nil, err
	}
	if requestingUser == nil {
		return nil, apperr.NotFound("Requesting user not found")
	}
	if !requestingUser.IsActive {
		return nil, apperr.InvalidData("Requesting user is not active")
	}

	if err := validateStatusTransition(member.MembershipStatus, req.NewStatus, requestingUser.Role); err != nil {
		return nil, err
	}

	fields := models.MemberUpdate{MembershipStatus: &req.NewStatus}
	if _, err := s.members.UpdateMemberFields(ctx, member.ID, fields); err != nil {
		return nil, err
	}
	s.log.Info("member status changed by request",
		slog.String("member_id", member.ID),
		slog.String("new_status", string(req.NewStatus)),
		slog.String("requested_by", req.RequestedByUserID))

	cacheKey := fmt.Sprintf("member:%s", member.ID)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to invalidate member cache", slog.String("key", cacheKey), slog.Any("err", err))
	}

	updated := *member
	updated.MembershipStatus = req.NewStatus
	return &updated, nil
}

func validateStatusTransition(current, next models.MembershipStatus, userRole string) error {
	if current == next {
		return apperr.InvalidData("Member already has this status")
	}
	if current == models.StatusDeleted {
		return apperr.InvalidData("Cannot change status of deleted member")
	}
	if next == models.StatusDeleted && userRole != models.RoleAdmin {
		return apperr.InvalidData("Unauthorized status change")
	}
	if userRole != models.RoleTrainer && userRole != models.RoleAdmin {
		return apperr.InvalidData("Insufficient permissions to change member status")
	}
	return nil
}
