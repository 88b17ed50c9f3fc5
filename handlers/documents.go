package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"gorm.io/gorm"

	"github.com/Shahid-Raza547/civiltech-backend/models"
	"github.com/Shahid-Raza547/civiltech-backend/utils"
)

// ProjectDocuments lists a project's documents. When the document
// table is not provisioned the listing degrades to an empty result.
func (h *Handler) ProjectDocuments(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, utils.CodeBadRequest, "invalid project id")
		return
	}

	if !h.Features.Documents {
		utils.JSON(w, http.StatusOK, []models.ProjectDocument{})
		return
	}

	docs := []models.ProjectDocument{}
	if err := h.DB.Where("project_id = ?", id).Order("id DESC").Find(&docs).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, utils.CodeDBError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, docs)
}

// UploadDocument stores the file part on disk and records its
// generated filename against the owning project.
func (h *Handler) UploadDocument(w http.ResponseWriter, r *http.Request) {
	if !h.Features.Documents {
		utils.Error(w, http.StatusBadRequest, utils.CodeFeatureDisabled, "document storage is not provisioned")
		return
	}

	if err := r.ParseMultipartForm(50 << 20); err != nil {
		utils.Error(w, http.StatusBadRequest, utils.CodeBadRequest, "bad multipart form: "+err.Error())
		return
	}

	projectID, err := strconv.ParseUint(r.FormValue("project_id"), 10, 64)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, utils.CodeValidation, "project_id is required")
		return
	}

	var project models.Project
	if err := h.DB.First(&project, projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(w, http.StatusNotFound, utils.CodeNotFound, "Project not found")
		} else {
			utils.Error(w, http.StatusInternalServerError, utils.CodeDBError, err.Error())
		}
		return
	}

	fileName, err := h.Files.Save(r, "file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			utils.Error(w, http.StatusBadRequest, utils.CodeValidation, "file is required")
		} else {
			utils.Error(w, http.StatusInternalServerError, utils.CodeDBError, err.Error())
		}
		return
	}

	doc := models.ProjectDocument{
		ProjectID:  uint(projectID),
		DocType:    r.FormValue("doc_type"),
		Title:      r.FormValue("title"),
		FileName:   fileName,
		UploadedBy: r.FormValue("uploaded_by"),
	}
	if doc.Title == "" {
		doc.Title = fileName
	}

	if err := h.DB.Create(&doc).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, utils.CodeDBError, err.Error())
		return
	}
	utils.Created(w, "Document uploaded", doc.ID)
}
