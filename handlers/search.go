package handlers

import (
	"net/http"

	"github.com/Shahid-Raza547/civiltech-backend/utils"
)

type searchRow struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// Search returns projects and companies whose name contains the query
// fragment, each row tagged with its source type. Natural store order,
// no ranking.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		utils.Error(w, http.StatusBadRequest, utils.CodeValidation, "q is required")
		return
	}
	pattern := "%" + query + "%"

	rows := []searchRow{}
	q := `
		SELECT id, name, 'project' AS type FROM projects WHERE name LIKE ?
		UNION ALL
		SELECT id, name, 'company' AS type FROM companies WHERE name LIKE ?`
	if err := h.DB.Raw(q, pattern, pattern).Scan(&rows).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, utils.CodeDBError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, rows)
}
