// handlers/auth.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Shahid-Raza547/civiltech-backend/middleware"
	"github.com/Shahid-Raza547/civiltech-backend/models"
	"github.com/Shahid-Raza547/civiltech-backend/utils"
)

// Register accepts a multipart form with an optional profile image.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.Error(w, http.StatusBadRequest, utils.CodeBadRequest, "bad multipart form: "+err.Error())
		return
	}

	email := strings.TrimSpace(strings.ToLower(r.FormValue("email")))
	password := r.FormValue("password")
	if email == "" || password == "" {
		utils.Error(w, http.StatusBadRequest, utils.CodeValidation, "email and password are required")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, utils.CodeDBError, "error hashing password")
		return
	}

	u := models.User{
		Name:         r.FormValue("name"),
		Email:        email,
		PasswordHash: string(hash),
		Role:         r.FormValue("role"),
	}
	if u.Role == "" {
		u.Role = "staff"
	}

	if name, err := h.Files.Save(r, "profile_image"); err == nil {
		u.ProfileImage = &name
	} else if !errors.Is(err, http.ErrMissingFile) {
		utils.Error(w, http.StatusInternalServerError, utils.CodeDBError, err.Error())
		return
	}

	if err := h.DB.Create(&u).Error; err != nil {
		if isDuplicateErr(err) {
			utils.Error(w, http.StatusBadRequest, utils.CodeValidation, "Email already registered")
		} else {
			utils.Error(w, http.StatusInternalServerError, utils.CodeDBError, err.Error())
		}
		return
	}

	utils.JSON(w, http.StatusCreated, u)
}

func isDuplicateErr(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint")
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResp struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, utils.CodeBadRequest, "invalid JSON")
		return
	}

	var u models.User
	err := h.DB.Where("email = ?", strings.TrimSpace(strings.ToLower(req.Email))).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.Error(w, http.StatusBadRequest, utils.CodeValidation, "User not found")
		return
	}
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, utils.CodeDBError, err.Error())
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		utils.Error(w, http.StatusBadRequest, utils.CodeValidation, "Invalid credentials")
		return
	}

	token, err := h.Tokens.Generate(u.ID.String(), u.Name, u.Email, u.Role)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, utils.CodeDBError, "couldn't create token")
		return
	}

	utils.JSON(w, http.StatusOK, loginResp{Token: token, User: u})
}

// Me echoes the claims validated by the JWT middleware.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r)
	if claims == nil {
		utils.Error(w, http.StatusUnauthorized, utils.CodeUnauthorized, "not authenticated")
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{
		"id":    claims.UserID,
		"name":  claims.Name,
		"email": claims.Email,
		"role":  claims.Role,
	})
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users := []models.User{}
	if err := h.DB.Order("created_at DESC").Find(&users).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, utils.CodeDBError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, users)
}
