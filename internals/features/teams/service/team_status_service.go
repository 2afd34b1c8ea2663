package service

import (
	"context"

	"gorm.io/gorm"

	model "teamreg_backend/internals/features/teams/model"
)

/* =========================================================
   Team status projection

   Implements the payments engine's TeamProjector. Both writes
   are plain last-observation-wins updates, so re-applying the
   same transition is harmless.
========================================================= */

type TeamStatusService struct {
	DB *gorm.DB
}

func NewTeamStatusService(db *gorm.DB) *TeamStatusService {
	return &TeamStatusService{DB: db}
}

func (s *TeamStatusService) MarkPaid(ctx context.Context, teamID string) error {
	return s.setStatus(ctx, teamID, model.TeamPaymentPaid)
}

func (s *TeamStatusService) MarkPending(ctx context.Context, teamID string) error {
	return s.setStatus(ctx, teamID, model.TeamPaymentPending)
}

func (s *TeamStatusService) setStatus(ctx context.Context, teamID, status string) error {
	return s.DB.WithContext(ctx).Exec(`
		UPDATE teams
		   SET team_payment_status = ?,
		       team_updated_at     = NOW()
		 WHERE team_id = ?
	`, status, teamID).Error
}
