package handlers

import (
	"gorm.io/gorm"

	"github.com/Shahid-Raza547/civiltech-backend/config"
	"github.com/Shahid-Raza547/civiltech-backend/middleware"
)

// Handler owns the injected process resources: the pooled database
// handle, the optional-feature flags probed at startup, the token
// service and the upload store.
type Handler struct {
	DB       *gorm.DB
	Features config.Features
	Tokens   *middleware.TokenService
	Files    *FileStore
}

func New(db *gorm.DB, features config.Features, tokens *middleware.TokenService, files *FileStore) *Handler {
	return &Handler{
		DB:       db,
		Features: features,
		Tokens:   tokens,
		Files:    files,
	}
}
