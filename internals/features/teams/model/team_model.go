package model

import "time"

/* ===================== Payment status ===================== */
/* Teams only distinguish "has paid" from "has not paid yet";
   everything that is not PAID shows as Pending.
*/

const (
	TeamPaymentPending = "Pending"
	TeamPaymentPaid    = "PAID"
)

type TeamModel struct {
	TeamID   string `gorm:"column:team_id;primaryKey" json:"team_id"`
	TeamName string `gorm:"column:team_name" json:"team_name"`

	// Projection of the team's payment record, last observation wins.
	TeamPaymentStatus string `gorm:"column:team_payment_status;not null;default:'Pending'" json:"team_payment_status"`

	TeamCreatedAt time.Time `gorm:"column:team_created_at;autoCreateTime" json:"team_created_at"`
	TeamUpdatedAt time.Time `gorm:"column:team_updated_at;autoUpdateTime" json:"team_updated_at"`
}

func (TeamModel) TableName() string { return "teams" }

func (t *TeamModel) HasPaid() bool { return t.TeamPaymentStatus == TeamPaymentPaid }
