package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Activos-api/internal/application/assets"
	"github.com/jhoicas/Activos-api/internal/application/auth"
	"github.com/jhoicas/Activos-api/internal/application/portal"
	"github.com/jhoicas/Activos-api/internal/application/requests"
	"github.com/jhoicas/Activos-api/internal/application/usecase"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.UseCase
	CategoryUC *usecase.CategoryUseCase
	AssetUC    *assets.AssetUseCase
	RequestUC  *requests.RequestUseCase
	PortalUC   *portal.PortalUseCase
	DoctorUC   *usecase.DoctorUseCase
	PatientUC  *usecase.PatientUseCase
	DiseaseUC  *usecase.DiseaseUseCase
	VisitUC    *usecase.VisitUseCase
	JWTSecret  string
}

// Router registra las rutas de la API y del portal.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas de backend (requieren Bearer Token y rol de staff)
	staff := api.Group("/", AuthMiddleware(deps.JWTSecret), RequireRole(entity.StaffRoles...))

	// Categorías de activos
	categories := staff.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Activos
	assetsGroup := staff.Group("/assets")
	assetHandler := NewAssetHandler(deps.AssetUC)
	assetsGroup.Post("/", assetHandler.Create)
	assetsGroup.Get("/", assetHandler.List)
	assetsGroup.Get("/:id", assetHandler.GetByID)
	assetsGroup.Patch("/:id", assetHandler.Update)
	assetsGroup.Post("/:id/movements", assetHandler.RegisterMovement)
	assetsGroup.Get("/:id/movements", assetHandler.ListMovements)
	assetsGroup.Post("/:id/set-in-use", assetHandler.SetInUse)
	assetsGroup.Post("/:id/set-maintenance", assetHandler.SetMaintenance)
	assetsGroup.Post("/:id/set-available", assetHandler.SetAvailable)
	assetsGroup.Post("/:id/retire", assetHandler.Retire)

	// Solicitudes de activos (workflow)
	requestsGroup := staff.Group("/requests")
	requestHandler := NewRequestHandler(deps.RequestUC)
	requestsGroup.Post("/", requestHandler.Create)
	requestsGroup.Get("/", requestHandler.List)
	requestsGroup.Get("/:id", requestHandler.GetByID)
	requestsGroup.Patch("/:id", requestHandler.Update)
	requestsGroup.Post("/:id/submit", requestHandler.Submit)
	requestsGroup.Post("/:id/start", requestHandler.StartProgress)
	requestsGroup.Post("/:id/approve", requestHandler.Approve)
	requestsGroup.Post("/:id/complete", requestHandler.Complete)
	requestsGroup.Post("/:id/reject", requestHandler.Reject)
	requestsGroup.Post("/:id/cancel", requestHandler.Cancel)

	// Hospital
	doctors := staff.Group("/doctors")
	doctorHandler := NewDoctorHandler(deps.DoctorUC, deps.PatientUC, deps.VisitUC)
	doctors.Post("/", doctorHandler.Create)
	doctors.Get("/", doctorHandler.List)
	doctors.Get("/:id", doctorHandler.GetByID)
	doctors.Patch("/:id", doctorHandler.Update)
	doctors.Delete("/:id", doctorHandler.Delete)
	doctors.Get("/:id/patients", doctorHandler.ListPatients)
	doctors.Get("/:id/visits", doctorHandler.ListVisits)

	patients := staff.Group("/patients")
	patientHandler := NewPatientHandler(deps.PatientUC, deps.VisitUC)
	patients.Post("/", patientHandler.Create)
	patients.Get("/", patientHandler.List)
	patients.Get("/:id", patientHandler.GetByID)
	patients.Patch("/:id", patientHandler.Update)
	patients.Delete("/:id", patientHandler.Delete)
	patients.Get("/:id/visits", patientHandler.ListVisits)

	diseases := staff.Group("/diseases")
	diseaseHandler := NewDiseaseHandler(deps.DiseaseUC)
	diseases.Post("/", diseaseHandler.Create)
	diseases.Get("/", diseaseHandler.List)
	diseases.Get("/:id", diseaseHandler.GetByID)
	diseases.Patch("/:id", diseaseHandler.Update)
	diseases.Delete("/:id", diseaseHandler.Delete)

	visits := staff.Group("/visits")
	visitHandler := NewVisitHandler(deps.VisitUC)
	visits.Post("/", visitHandler.Create)
	visits.Get("/", visitHandler.List)
	visits.Get("/:id", visitHandler.GetByID)
	visits.Patch("/:id", visitHandler.Update)
	visits.Post("/:id/complete", visitHandler.Complete)
	visits.Post("/:id/cancel", visitHandler.Cancel)

	// Portal de empleados: cualquier usuario autenticado, recortado a lo suyo
	my := app.Group("/my", AuthMiddleware(deps.JWTSecret))
	portalHandler := NewPortalHandler(deps.PortalUC)
	my.Get("/", portalHandler.Home)
	my.Get("/assets", portalHandler.ListAssets)
	my.Get("/assets/:id", portalHandler.GetAsset)
	my.Get("/requests/new", portalHandler.NewRequestForm)
	my.Get("/requests", portalHandler.ListRequests)
	my.Post("/requests", portalHandler.CreateRequest)
	my.Get("/requests/:id", portalHandler.GetRequest)
	my.Post("/requests/:id/comment", portalHandler.AddComment)
}
