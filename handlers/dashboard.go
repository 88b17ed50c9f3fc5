package handlers

import (
	"net/http"
	"time"

	"github.com/Shahid-Raza547/civiltech-backend/models"
	"github.com/Shahid-Raza547/civiltech-backend/utils"
)

// civilCategory is the fixed unit-of-work category summed into the
// dashboard's "civil" counter.
const civilCategory = "Civil"

// chartPalette is cycled over chart rows by index, so the legend
// colors stay stable across refreshes.
var chartPalette = []string{
	"#4472C4", "#ED7D31", "#A5A5A5", "#FFC000", "#5B9BD5", "#70AD47",
}

type dashboardStats struct {
	Total     int64   `json:"total"`
	Completed int64   `json:"completed"`
	Ongoing   int64   `json:"ongoing"`
	Companies int64   `json:"companies"`
	Labor     int64   `json:"labor"`
	Civil     float64 `json:"civil"`
}

// summaryStats runs six independent aggregates. Each one defaults to
// zero on an empty schema so the dashboard always renders.
func (h *Handler) summaryStats() (dashboardStats, error) {
	var stats dashboardStats

	if err := h.DB.Model(&models.Project{}).Count(&stats.Total).Error; err != nil {
		return stats, err
	}
	if err := h.DB.Model(&models.Project{}).
		Where("status = ?", models.ProjectStatusCompleted).
		Count(&stats.Completed).Error; err != nil {
		return stats, err
	}
	if err := h.DB.Model(&models.Project{}).
		Where("status = ?", models.ProjectStatusOngoing).
		Count(&stats.Ongoing).Error; err != nil {
		return stats, err
	}
	if err := h.DB.Model(&models.Company{}).Count(&stats.Companies).Error; err != nil {
		return stats, err
	}

	// Midnight in the server's zone, not the UTC day.
	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.Add(24 * time.Hour)
	if err := h.DB.Model(&models.DailyLabor{}).
		Select("COALESCE(SUM(engineers + technicians + laborers), 0)").
		Where("date >= ? AND date < ?", dayStart, dayEnd).
		Scan(&stats.Labor).Error; err != nil {
		return stats, err
	}

	if err := h.DB.Model(&models.DailyProgress{}).
		Select("COALESCE(SUM(daily_progress.completed_qty), 0)").
		Joins("JOIN categories ON categories.id = daily_progress.category_id").
		Where("categories.name = ?", civilCategory).
		Scan(&stats.Civil).Error; err != nil {
		return stats, err
	}

	return stats, nil
}

func (h *Handler) DashboardStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.summaryStats()
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, utils.CodeDBError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, stats)
}

type companyStatusRow struct {
	Company   string `json:"company"`
	Completed int64  `json:"completed"`
	Ongoing   int64  `json:"ongoing"`
}

// CompanyStatusChart returns completed/ongoing project counts per
// company, one row per company even when it has no projects.
func (h *Handler) CompanyStatusChart(w http.ResponseWriter, r *http.Request) {
	rows := []companyStatusRow{}
	q := `
		SELECT c.name AS company,
		       COALESCE(SUM(CASE WHEN p.status = 'Completed' THEN 1 ELSE 0 END), 0) AS completed,
		       COALESCE(SUM(CASE WHEN p.status = 'Ongoing' THEN 1 ELSE 0 END), 0) AS ongoing
		FROM companies c
		LEFT JOIN projects p ON p.company_id = c.id
		GROUP BY c.id, c.name
		ORDER BY c.id`
	if err := h.DB.Raw(q).Scan(&rows).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, utils.CodeDBError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, rows)
}

// Total is scanned as text: depending on the driver a DECIMAL sum
// arrives as int64, float64 or a numeric string. CoerceFloat settles it.
type workDistributionRow struct {
	Category string
	Total    string
}

type workDistributionOut struct {
	Category string  `json:"category"`
	Value    float64 `json:"value"`
	Color    string  `json:"color"`
}

// workDistribution returns the total completed quantity per category
// with a deterministic palette color per row (index mod palette size).
func (h *Handler) workDistribution() ([]workDistributionOut, error) {
	var rows []workDistributionRow
	q := `
		SELECT cat.name AS category, COALESCE(SUM(dp.completed_qty), 0) AS total
		FROM categories cat
		LEFT JOIN daily_progress dp ON dp.category_id = cat.id
		GROUP BY cat.id, cat.name
		ORDER BY cat.id`
	if err := h.DB.Raw(q).Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]workDistributionOut, 0, len(rows))
	for i, row := range rows {
		out = append(out, workDistributionOut{
			Category: row.Category,
			Value:    utils.CoerceFloat(row.Total),
			Color:    chartPalette[i%len(chartPalette)],
		})
	}
	return out, nil
}

func (h *Handler) WorkDistributionChart(w http.ResponseWriter, r *http.Request) {
	out, err := h.workDistribution()
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, utils.CodeDBError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, out)
}
