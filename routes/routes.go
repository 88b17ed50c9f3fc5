package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Shahid-Raza547/civiltech-backend/handlers"
	"github.com/Shahid-Raza547/civiltech-backend/middleware"
)

// Register wires the full HTTP surface onto a router and wraps it
// with CORS. Uploaded files are served read-only from /uploads/.
func Register(h *handlers.Handler, uploadDir string) http.Handler {
	r := mux.NewRouter()

	r.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadDir))),
	)

	api := r.PathPrefix("/api").Subrouter()

	// Auth & users
	api.HandleFunc("/register", h.Register).Methods("POST")
	api.HandleFunc("/login", h.Login).Methods("POST")
	api.HandleFunc("/users", h.ListUsers).Methods("GET")

	me := api.PathPrefix("/me").Subrouter()
	me.Use(h.Tokens.Middleware)
	me.HandleFunc("", h.Me).Methods("GET")

	// Projects
	api.HandleFunc("/projects-full", h.ListProjectsFull).Methods("GET")
	api.HandleFunc("/projects", h.CreateProject).Methods("POST")
	api.HandleFunc("/projects/{id}", h.GetProject).Methods("GET")
	api.HandleFunc("/projects/{id}/scope", h.ProjectScope).Methods("GET")
	api.HandleFunc("/projects/{id}/photos", h.ProjectPhotos).Methods("GET")
	api.HandleFunc("/projects/{id}/labor", h.ProjectLabor).Methods("GET")
	api.HandleFunc("/projects/{id}/equipment", h.ProjectEquipment).Methods("GET")
	api.HandleFunc("/projects/{id}/gis", h.ProjectGIS).Methods("GET")
	api.HandleFunc("/projects/{id}/gis", h.ImportGIS).Methods("POST")
	api.HandleFunc("/projects/{id}/documents", h.ProjectDocuments).Methods("GET")

	// Companies
	api.HandleFunc("/companies", h.ListCompanies).Methods("GET")
	api.HandleFunc("/companies", h.CreateCompany).Methods("POST")
	api.HandleFunc("/companies/{id}", h.GetCompany).Methods("GET")
	api.HandleFunc("/companies/{id}/projects", h.CompanyProjects).Methods("GET")
	api.HandleFunc("/companies/{id}/payments", h.CompanyPayments).Methods("GET")

	// Payments
	api.HandleFunc("/payments", h.ListPayments).Methods("GET")
	api.HandleFunc("/payments", h.CreatePayment).Methods("POST")
	api.HandleFunc("/payments/{id}", h.UpdatePayment).Methods("PUT")
	api.HandleFunc("/payments/{id}", h.DeletePayment).Methods("DELETE")

	// Dashboard & reports
	api.HandleFunc("/dashboard/stats", h.DashboardStats).Methods("GET")
	api.HandleFunc("/charts/company-status", h.CompanyStatusChart).Methods("GET")
	api.HandleFunc("/charts/work-distribution", h.WorkDistributionChart).Methods("GET")
	api.HandleFunc("/reports/dashboard/export", h.ExportDashboard).Methods("GET")

	// Documents
	api.HandleFunc("/documents", h.UploadDocument).Methods("POST")

	// Messaging. The sent route must precede the generic userId route.
	api.HandleFunc("/messages/sent/{userId}", h.Sent).Methods("GET")
	api.HandleFunc("/messages/{userId}", h.Inbox).Methods("GET")
	api.HandleFunc("/messages", h.PostMessage).Methods("POST")
	api.HandleFunc("/notifications", h.ListNotifications).Methods("GET")
	api.HandleFunc("/notifications", h.ClearNotifications).Methods("DELETE")

	// Search
	api.HandleFunc("/search", h.Search).Methods("GET")

	// Master data
	api.HandleFunc("/categories", h.ListCategories).Methods("GET")
	api.HandleFunc("/categories", h.CreateCategory).Methods("POST")
	api.HandleFunc("/fleet", h.ListFleet).Methods("GET")
	api.HandleFunc("/fleet", h.CreateFleet).Methods("POST")
	api.HandleFunc("/labor-roles", h.ListLaborRoles).Methods("GET")
	api.HandleFunc("/labor-roles", h.CreateLaborRole).Methods("POST")

	// Operational logs
	api.HandleFunc("/labor", h.ListLabor).Methods("GET")
	api.HandleFunc("/labor", h.CreateLabor).Methods("POST")
	api.HandleFunc("/equipment", h.ListEquipment).Methods("GET")
	api.HandleFunc("/equipment", h.CreateEquipment).Methods("POST")

	return middleware.CORS(r)
}
