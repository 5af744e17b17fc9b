package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/CHIRAG-singh123/ERP-CRM-Zentro-sub003/internal/application/auth"
	"github.com/CHIRAG-singh123/ERP-CRM-Zentro-sub003/internal/application/usecase"
	"github.com/CHIRAG-singh123/ERP-CRM-Zentro-sub003/pkg/filecheck"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	CompanyUC  *usecase.CompanyUseCase
	ContactUC  *usecase.ContactUseCase
	DealUC     *usecase.DealUseCase
	EmployeeUC *usecase.EmployeeUseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
	Upload     filecheck.Options
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Everything else requires a Bearer token
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Companies
	companies := protected.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC, deps.Upload)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Post("/import", companyHandler.Import)
	companies.Get("/export", companyHandler.Export)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Put("/:id", companyHandler.Update)
	companies.Delete("/:id", companyHandler.Delete)
	companies.Post("/:id/send-email", companyHandler.SendEmail)

	// Contacts
	contacts := protected.Group("/contacts")
	contactHandler := NewContactHandler(deps.ContactUC, deps.Upload)
	contacts.Get("/", contactHandler.List)
	contacts.Post("/", contactHandler.Create)
	contacts.Post("/import", contactHandler.Import)
	contacts.Get("/export", contactHandler.Export)
	contacts.Get("/:id", contactHandler.GetByID)
	contacts.Put("/:id", contactHandler.Update)
	contacts.Delete("/:id", contactHandler.Delete)
	contacts.Post("/:id/send-email", contactHandler.SendEmail)

	// Deals
	deals := protected.Group("/deals")
	dealHandler := NewDealHandler(deps.DealUC, deps.Upload)
	deals.Get("/", dealHandler.List)
	deals.Post("/", dealHandler.Create)
	deals.Post("/import", dealHandler.Import)
	deals.Get("/export", dealHandler.Export)
	deals.Get("/:id", dealHandler.GetByID)

	// Admin employee panel (Bearer token + admin role)
	admin := protected.Group("/admin", RequireAdmin())
	employees := admin.Group("/employees")
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC, deps.Upload)
	employees.Get("/", employeeHandler.List)
	employees.Post("/", employeeHandler.Create)
	employees.Post("/upload-csv", employeeHandler.UploadCSV)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Put("/:id", employeeHandler.Update)
	employees.Delete("/:id", employeeHandler.Delete)
	employees.Post("/:id/promote", employeeHandler.Promote)
}
