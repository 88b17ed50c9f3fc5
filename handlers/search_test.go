package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shahid-Raza547/civiltech-backend/models"
)

func TestSearchSpansProjectsAndCompanies(t *testing.T) {
	app := newTestApp(t, fullConfig())
	seedCompany(t, app, "Alpha Build Co")
	seedCompany(t, app, "Unrelated")
	seedProject(t, app, "Tower Alpha", models.ProjectStatusOngoing, nil)
	seedProject(t, app, "Bridge Beta", models.ProjectStatusPlanned, nil)

	resp := app.request(t, http.MethodGet, "/api/search?q=Alpha", nil)
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var rows []struct {
		Name string `json:"name"`
		Type string `json:"type"`
	}
	decodeData(t, resp, &rows)
	require.Len(t, rows, 2)

	types := map[string]string{}
	for _, row := range rows {
		types[row.Name] = row.Type
	}
	assert.Equal(t, "project", types["Tower Alpha"])
	assert.Equal(t, "company", types["Alpha Build Co"])
}

func TestSearchNoMatches(t *testing.T) {
	app := newTestApp(t, fullConfig())
	seedProject(t, app, "Tower", models.ProjectStatusOngoing, nil)

	resp := app.request(t, http.MethodGet, "/api/search?q=zzz", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"data":[]`)
}

func TestSearchRequiresQuery(t *testing.T) {
	app := newTestApp(t, fullConfig())

	resp := app.request(t, http.MethodGet, "/api/search", nil)
	require.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "q is required", decodeError(t, resp).Message)
}
