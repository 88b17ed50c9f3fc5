package handlers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shahid-Raza547/civiltech-backend/models"
)

type statsResp struct {
	Total     int64   `json:"total"`
	Completed int64   `json:"completed"`
	Ongoing   int64   `json:"ongoing"`
	Companies int64   `json:"companies"`
	Labor     int64   `json:"labor"`
	Civil     float64 `json:"civil"`
}

func fetchStats(t *testing.T, app *testApp) statsResp {
	t.Helper()

	resp := app.request(t, http.MethodGet, "/api/dashboard/stats", nil)
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var stats statsResp
	decodeData(t, resp, &stats)
	return stats
}

func TestDashboardStatsEmptySchema(t *testing.T) {
	app := newTestApp(t, fullConfig())

	stats := fetchStats(t, app)
	assert.Equal(t, statsResp{}, stats)
}

func TestDashboardStatsCounts(t *testing.T) {
	app := newTestApp(t, fullConfig())

	companyID := seedCompany(t, app, "Alpha")
	seedCompany(t, app, "Beta")

	seedProject(t, app, "Done", models.ProjectStatusCompleted, &companyID)
	seedProject(t, app, "Busy 1", models.ProjectStatusOngoing, &companyID)
	seedProject(t, app, "Busy 2", models.ProjectStatusOngoing, nil)
	seedProject(t, app, "Someday", models.ProjectStatusPlanned, nil)

	projectID := seedProject(t, app, "Active Site", models.ProjectStatusOngoing, nil)

	today := models.JSONTime(time.Now())
	require.NoError(t, app.db.Create(&models.DailyLabor{
		ProjectID: projectID, Date: &today, Engineers: 2, Technicians: 3, Laborers: 5,
	}).Error)

	// Yesterday's crew must not count toward today's labor.
	yesterday := models.JSONTime(time.Now().Add(-48 * time.Hour))
	require.NoError(t, app.db.Create(&models.DailyLabor{
		ProjectID: projectID, Date: &yesterday, Engineers: 9, Technicians: 9, Laborers: 9,
	}).Error)

	civil := models.Category{Name: "Civil", Unit: "m3"}
	other := models.Category{Name: "Electrical", Unit: "pt"}
	require.NoError(t, app.db.Create(&civil).Error)
	require.NoError(t, app.db.Create(&other).Error)

	now := models.JSONTime(time.Now())
	require.NoError(t, app.db.Create(&models.DailyProgress{
		ProjectID: projectID, CategoryID: civil.ID, Date: &now, CompletedQty: 12.5,
	}).Error)
	require.NoError(t, app.db.Create(&models.DailyProgress{
		ProjectID: projectID, CategoryID: other.ID, Date: &now, CompletedQty: 99,
	}).Error)

	stats := fetchStats(t, app)
	assert.Equal(t, int64(5), stats.Total)
	assert.Equal(t, int64(1), stats.Completed)
	assert.Equal(t, int64(3), stats.Ongoing)
	assert.Equal(t, int64(2), stats.Companies)
	assert.Equal(t, int64(10), stats.Labor)
	assert.InDelta(t, 12.5, stats.Civil, 1e-9)
}

// The labor window runs from midnight in the server's zone; an entry
// logged just inside it counts, one just before it does not.
func TestDashboardLaborWindowIsLocalDay(t *testing.T) {
	app := newTestApp(t, fullConfig())
	projectID := seedProject(t, app, "Night Shift", models.ProjectStatusOngoing, nil)

	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	early := models.JSONTime(midnight.Add(30 * time.Minute))
	require.NoError(t, app.db.Create(&models.DailyLabor{
		ProjectID: projectID, Date: &early, Laborers: 4,
	}).Error)

	lateYesterday := models.JSONTime(midnight.Add(-30 * time.Minute))
	require.NoError(t, app.db.Create(&models.DailyLabor{
		ProjectID: projectID, Date: &lateYesterday, Laborers: 7,
	}).Error)

	stats := fetchStats(t, app)
	assert.Equal(t, int64(4), stats.Labor)
}

func TestCompanyStatusChart(t *testing.T) {
	app := newTestApp(t, fullConfig())

	alpha := seedCompany(t, app, "Alpha")
	beta := seedCompany(t, app, "Beta")
	seedProject(t, app, "A1", models.ProjectStatusCompleted, &alpha)
	seedProject(t, app, "A2", models.ProjectStatusOngoing, &alpha)
	seedProject(t, app, "A3", models.ProjectStatusOngoing, &alpha)
	_ = beta

	resp := app.request(t, http.MethodGet, "/api/charts/company-status", nil)
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var rows []struct {
		Company   string `json:"company"`
		Completed int64  `json:"completed"`
		Ongoing   int64  `json:"ongoing"`
	}
	decodeData(t, resp, &rows)
	require.Len(t, rows, 2)

	assert.Equal(t, "Alpha", rows[0].Company)
	assert.Equal(t, int64(1), rows[0].Completed)
	assert.Equal(t, int64(2), rows[0].Ongoing)

	// Companies without projects still get a zero row.
	assert.Equal(t, "Beta", rows[1].Company)
	assert.Equal(t, int64(0), rows[1].Completed)
	assert.Equal(t, int64(0), rows[1].Ongoing)
}

func TestWorkDistributionPaletteCycles(t *testing.T) {
	app := newTestApp(t, fullConfig())

	palette := []string{"#4472C4", "#ED7D31", "#A5A5A5", "#FFC000", "#5B9BD5", "#70AD47"}
	for i := 0; i < 8; i++ {
		require.NoError(t, app.db.Create(&models.Category{
			Name: fmt.Sprintf("Cat %d", i), Unit: "u",
		}).Error)
	}

	resp := app.request(t, http.MethodGet, "/api/charts/work-distribution", nil)
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var rows []struct {
		Category string  `json:"category"`
		Value    float64 `json:"value"`
		Color    string  `json:"color"`
	}
	decodeData(t, resp, &rows)
	require.Len(t, rows, 8)
	for i, row := range rows {
		assert.Equal(t, palette[i%len(palette)], row.Color, "row %d", i)
		assert.Zero(t, row.Value)
	}
}

func TestWorkDistributionSums(t *testing.T) {
	app := newTestApp(t, fullConfig())
	projectID := seedProject(t, app, "Site", models.ProjectStatusOngoing, nil)

	cat := models.Category{Name: "Paving", Unit: "m2"}
	require.NoError(t, app.db.Create(&cat).Error)

	now := models.JSONTime(time.Now())
	for _, qty := range []float64{4, 6.5} {
		require.NoError(t, app.db.Create(&models.DailyProgress{
			ProjectID: projectID, CategoryID: cat.ID, Date: &now, CompletedQty: qty,
		}).Error)
	}

	resp := app.request(t, http.MethodGet, "/api/charts/work-distribution", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var rows []struct {
		Category string  `json:"category"`
		Value    float64 `json:"value"`
	}
	decodeData(t, resp, &rows)
	require.Len(t, rows, 1)
	assert.Equal(t, "Paving", rows[0].Category)
	assert.InDelta(t, 10.5, rows[0].Value, 1e-9)
}
