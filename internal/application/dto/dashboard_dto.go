package dto

// DashboardSummaryDTO contadores del dashboard.
type DashboardSummaryDTO struct {
	TotalItems int `json:"total_items"`
	LowStock   int `json:"low_stock"`
	TodayTrans int `json:"today_trans"`
}
