package models

import "time"

// MetricChange describes the delta shown next to a dashboard card.
type MetricChange struct {
	Value      float64 `json:"value"`
	IsPositive bool    `json:"isPositive"`
}

// Metric is one configurable dashboard card. The Value is rendered as-is;
// the server fills it from GymMetrics when loading the dashboard.
type Metric struct {
	ID       string        `json:"id,omitempty"`
	Title    string        `json:"title"`
	Value    any           `json:"value"`
	Change   *MetricChange `json:"change,omitempty"`
	Color    string        `json:"color,omitempty"`
	Gradient string        `json:"gradient,omitempty"`
}

// DashboardConfig is the per-gym layout of the metrics dashboard, stored
// wholesale and replaced on every save.
type DashboardConfig struct {
	GymID           string   `json:"gym_id"`
	TodayMetrics    []Metric `json:"today_metrics"`
	OverviewMetrics []Metric `json:"overview_metrics"`
	RemovedMetrics  []Metric `json:"removed_metrics"`
}

// TableName returns the name of the database table
// associated with the DashboardConfig model.
func (d DashboardConfig) TableName() string {
	return "dashboard_config"
}

// GymMetrics is the aggregate produced for one gym over a date range.
type GymMetrics struct {
	NewMembers    int64   `json:"new_members"`
	ActiveMembers int64   `json:"active_members"`
	CheckIns      int64   `json:"check_ins"`
	Revenue       float64 `json:"revenue"`
}

// MetricsRange is the half-open window a metrics query covers.
type MetricsRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}
