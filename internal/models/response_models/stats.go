package response_models

// SummaryStats is the single-pass aggregate over the full event set.
// All figures are zero for an empty store.
type SummaryStats struct {
	TotalEvents       int64   `gorm:"column:total_events" json:"total_events"`
	ActiveEvents      int64   `gorm:"column:active_events" json:"active_events"`
	InactiveEvents    int64   `gorm:"column:inactive_events" json:"inactive_events"`
	TotalGoalAmount   float64 `gorm:"column:total_goal_amount" json:"total_goal_amount"`
	TotalRaisedAmount float64 `gorm:"column:total_raised_amount" json:"total_raised_amount"`
	AverageGoalAmount float64 `gorm:"column:average_goal_amount" json:"average_goal_amount"`
}
