package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/Shahid-Raza547/civiltech-backend/models"
	"github.com/Shahid-Raza547/civiltech-backend/utils"
)

func pathID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	return uint(id), err
}

type projectFull struct {
	models.Project
	CompanyName *string `json:"companyName"`
}

// ListProjectsFull returns all projects with their company name joined.
func (h *Handler) ListProjectsFull(w http.ResponseWriter, r *http.Request) {
	var projects []models.Project
	if err := h.DB.Preload("Company").Order("id DESC").Find(&projects).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, utils.CodeDBError, err.Error())
		return
	}

	out := make([]projectFull, 0, len(projects))
	for _, p := range projects {
		row := projectFull{Project: p}
		if p.Company != nil {
			name := p.Company.Name
			row.CompanyName = &name
		}
		row.Company = nil
		out = append(out, row)
	}
	utils.JSON(w, http.StatusOK, out)
}

type createProjectReq struct {
	Name           string      `json:"name"`
	CompanyID      interface{} `json:"company_id"`
	Type           string      `json:"type"`
	Status         string      `json:"status"`
	Address        string      `json:"address"`
	Country        string      `json:"country"`
	City           string      `json:"city"`
	Area           string      `json:"area"`
	Block          string      `json:"block"`
	Street         string      `json:"street"`
	Coordinates    string      `json:"coordinates"`
	EstimatedCost  interface{} `json:"estimated_cost"`
	ApprovedCost   interface{} `json:"approved_cost"`
	ActualCost     interface{} `json:"actual_cost"`
	StartDate      interface{} `json:"start_date"`
	EndDate        interface{} `json:"end_date"`
	ProjectManager interface{} `json:"project_manager"`
	SiteEngineer   interface{} `json:"site_engineer"`
}

// CreateProject normalizes optional fields, derives GPS coordinates
// and defaults the lifecycle status to Planned.
func (h *Handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req createProjectReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, utils.CodeBadRequest, "invalid JSON")
		return
	}

	lat, long := utils.ParseCoordinates(req.Coordinates)

	p := models.Project{
		Name:           req.Name,
		CompanyID:      utils.OptionalUint(req.CompanyID),
		Type:           req.Type,
		Status:         req.Status,
		Address:        req.Address,
		Country:        req.Country,
		City:           req.City,
		Area:           req.Area,
		Block:          req.Block,
		Street:         req.Street,
		Coordinates:    req.Coordinates,
		GPSLat:         lat,
		GPSLong:        long,
		EstimatedCost:  utils.OptionalFloat(req.EstimatedCost),
		ApprovedCost:   utils.OptionalFloat(req.ApprovedCost),
		ActualCost:     utils.OptionalFloat(req.ActualCost),
		StartDate: utils.OptionalDate(req.StartDate),
		EndDate:   utils.OptionalDate(req.EndDate),
	}
	if pm := utils.OptionalString(req.ProjectManager); pm != nil {
		p.ProjectManager = *pm
	}
	if se := utils.OptionalString(req.SiteEngineer); se != nil {
		p.SiteEngineer = *se
	}
	if p.Status == "" {
		p.Status = models.ProjectStatusPlanned
	}

	if err := h.DB.Create(&p).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, utils.CodeDBError, err.Error())
		return
	}

	utils.Created(w, "Project created", p.ID)
}

func (h *Handler) GetProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, utils.CodeBadRequest, "invalid project id")
		return
	}

	var p models.Project
	if err := h.DB.Preload("Company").First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(w, http.StatusNotFound, utils.CodeNotFound, "Project not found")
		} else {
			utils.Error(w, http.StatusInternalServerError, utils.CodeDBError, err.Error())
		}
		return
	}
	utils.JSON(w, http.StatusOK, p)
}

type scopeRow struct {
	ID         uint    `json:"id"`
	ProjectID  uint    `json:"projectId"`
	CategoryID uint    `json:"categoryId"`
	Category   string  `json:"category"`
	Unit       string  `json:"unit"`
	PlannedQty float64 `json:"plannedQty"`
	ActualQty  float64 `json:"actualQty"`
}

// ProjectScope joins planned quantities with summed actuals from the
// daily progress records.
func (h *Handler) ProjectScope(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, utils.CodeBadRequest, "invalid project id")
		return
	}

	var rows []scopeRow
	q := `
		SELECT ps.id, ps.project_id, ps.category_id, cat.name AS category, cat.unit AS unit,
		       ps.planned_qty,
		       COALESCE((SELECT SUM(dp.completed_qty)
		                 FROM daily_progress dp
		                 WHERE dp.project_id = ps.project_id
		                   AND dp.category_id = ps.category_id), 0) AS actual_qty
		FROM project_scopes ps
		JOIN categories cat ON cat.id = ps.category_id
		WHERE ps.project_id = ?
		ORDER BY ps.id`
	if err := h.DB.Raw(q, id).Scan(&rows).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, utils.CodeDBError, err.Error())
		return
	}
	if rows == nil {
		rows = []scopeRow{}
	}
	utils.JSON(w, http.StatusOK, rows)
}

type photoRow struct {
	ID         uint             `json:"id"`
	ProgressID uint             `json:"progressId"`
	URL        string           `json:"url"`
	Category   string           `json:"category"`
	Date       *models.JSONTime `json:"date,omitempty"`
}

func (h *Handler) ProjectPhotos(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, utils.CodeBadRequest, "invalid project id")
		return
	}

	var rows []photoRow
	q := `
		SELECT ph.id, ph.progress_id, ph.url, cat.name AS category, dp.date AS date
		FROM progress_photos ph
		JOIN daily_progress dp ON dp.id = ph.progress_id
		JOIN categories cat ON cat.id = dp.category_id
		WHERE dp.project_id = ?
		ORDER BY ph.id DESC`
	if err := h.DB.Raw(q, id).Scan(&rows).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, utils.CodeDBError, err.Error())
		return
	}
	if rows == nil {
		rows = []photoRow{}
	}
	utils.JSON(w, http.StatusOK, rows)
}

func (h *Handler) ProjectLabor(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, utils.CodeBadRequest, "invalid project id")
		return
	}

	rows := []models.DailyLabor{}
	if err := h.DB.Where("project_id = ?", id).Order("id DESC").Find(&rows).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, utils.CodeDBError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, rows)
}

func (h *Handler) ProjectEquipment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, utils.CodeBadRequest, "invalid project id")
		return
	}

	rows := []models.EquipmentLog{}
	if err := h.DB.Where("project_id = ?", id).Order("id DESC").Find(&rows).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, utils.CodeDBError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, rows)
}
