package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/application/auth"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/application/usecase"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	OrderUC    *usecase.OrderUseCase
	NoteUC     *usecase.NoteUseCase
	TaskUC     *usecase.TaskUseCase
	TaskNoteUC *usecase.TaskNoteUseCase
	AttachUC   *usecase.AttachmentUseCase
	SettingsUC *usecase.SettingsUseCase
	SectionUC  *usecase.SectionUseCase
	UserUC     *usecase.UserUseCase
	ExportUC   *usecase.ExportUseCase

	Users      repository.UserRepository
	JWTSecret  string
	CookieName string
	ExpMinutes int
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.CookieName, deps.ExpMinutes)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Post("/guest", authHandler.Guest)

	// Rutas protegidas (cookie de sesión o Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.CookieName, deps.Users))
	write := RequireWrite()
	adminOrEmployee := RequireAdminOrEmployee()
	admin := RequireAdmin()

	// Orders (protegido; escritura con rol)
	orderHandler := NewOrderHandler(deps.OrderUC)
	exportHandler := NewExportHandler(deps.ExportUC)
	protected.Get("/orders", orderHandler.List)
	protected.Get("/orders/export/pdf", exportHandler.Orders)
	protected.Post("/orders", write, orderHandler.Create)
	protected.Put("/orders/:id", write, orderHandler.Update)
	protected.Delete("/orders/:id", write, orderHandler.Delete)

	// Notes (protegido)
	noteHandler := NewNoteHandler(deps.NoteUC)
	protected.Get("/orders/:orderId/notes", noteHandler.ListByOrder)
	protected.Post("/notes", write, noteHandler.Create)
	protected.Put("/notes/:id", write, noteHandler.Update)
	protected.Delete("/notes/:id", write, noteHandler.Delete)

	// Tasks (protegido)
	taskHandler := NewTaskHandler(deps.TaskUC)
	protected.Get("/tasks", taskHandler.List)
	protected.Get("/tasks/export/pdf", exportHandler.Tasks)
	protected.Post("/tasks", write, taskHandler.Create)
	protected.Put("/tasks/:id", write, taskHandler.Update)
	protected.Delete("/tasks/:id", write, taskHandler.Delete)

	// Task notes (protegido)
	taskNoteHandler := NewTaskNoteHandler(deps.TaskNoteUC)
	protected.Get("/tasks/:taskId/notes", taskNoteHandler.ListByTask)
	protected.Post("/task-notes", write, taskNoteHandler.Create)
	protected.Put("/task-notes/:id", write, taskNoteHandler.Update)
	protected.Delete("/task-notes/:id", write, taskNoteHandler.Delete)

	// Attachments (protegido)
	attachmentHandler := NewAttachmentHandler(deps.AttachUC)
	protected.Get("/tasks/:taskId/attachments", attachmentHandler.ListByTask)
	protected.Post("/attachments", write, attachmentHandler.Create)
	protected.Delete("/attachments/:id", write, attachmentHandler.Delete)

	// Settings y PIN (protegido, cualquier autenticado)
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	protected.Get("/settings", settingsHandler.Get)
	protected.Put("/settings", settingsHandler.Update)
	protected.Post("/pin/verify", settingsHandler.VerifyPin)
	protected.Post("/pin/set", settingsHandler.SetPin)

	// Sections (lectura autenticada; escritura admin o employee)
	sectionHandler := NewSectionHandler(deps.SectionUC)
	protected.Get("/sections", sectionHandler.List)
	protected.Post("/sections", adminOrEmployee, sectionHandler.Create)
	protected.Put("/sections/:id", adminOrEmployee, sectionHandler.Update)
	protected.Delete("/sections/:id", adminOrEmployee, sectionHandler.Delete)

	// Users (solo admin)
	userHandler := NewUserHandler(deps.UserUC)
	protected.Get("/users", admin, userHandler.List)
	protected.Post("/users", admin, userHandler.Create)
	protected.Put("/users/:id", admin, userHandler.Update)
	protected.Delete("/users/:id", admin, userHandler.Delete)
}
