package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/application/auth"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/application/bootstrap"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/application/usecase"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/application/userdefaults"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/domain/repository"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/infrastructure/memory"
	infrapdf "github.com/luxuryfaisal/QimmatAlaseel/internal/infrastructure/pdf"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/infrastructure/postgres"
	httpRouter "github.com/luxuryfaisal/QimmatAlaseel/internal/interfaces/http"
	"github.com/luxuryfaisal/QimmatAlaseel/pkg/config"
	"github.com/luxuryfaisal/QimmatAlaseel/pkg/logger"
)

// repos agrupa los puertos de persistencia resueltos según STORAGE_DRIVER.
type repos struct {
	users       repository.UserRepository
	orders      repository.OrderRepository
	notes       repository.NoteRepository
	tasks       repository.TaskRepository
	taskNotes   repository.TaskNoteRepository
	attachments repository.AttachmentRepository
	settings    repository.SettingsRepository
	sections    repository.SectionRepository
	tx          usecase.TxRunner
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var r repos
	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		r = repos{
			users:       postgres.NewUserRepository(pool),
			orders:      postgres.NewOrderRepository(pool),
			notes:       postgres.NewNoteRepository(pool),
			tasks:       postgres.NewTaskRepository(pool),
			taskNotes:   postgres.NewTaskNoteRepository(pool),
			attachments: postgres.NewAttachmentRepository(pool),
			settings:    postgres.NewSettingsRepository(pool),
			sections:    postgres.NewSectionRepository(pool),
			tx:          postgres.NewTxRunner(pool),
		}
	default:
		store := memory.NewStore()
		r = repos{
			users:       store.Users(),
			orders:      store.Orders(),
			notes:       store.Notes(),
			tasks:       store.Tasks(),
			taskNotes:   store.TaskNotes(),
			attachments: store.Attachments(),
			settings:    store.Settings(),
			sections:    store.Sections(),
			tx:          store,
		}
	}

	defaults := userdefaults.New(r.sections)

	// Primer arranque: admin por defecto, secciones y pedidos de ejemplo.
	seeded, err := bootstrap.New(r.users, r.orders, defaults, cfg.Storage.SeedSampleOrders).Run()
	if err != nil {
		log.Fatal().Err(err).Msg("bootstrap inicial")
	}
	if seeded {
		log.Info().Msg("usuario admin inicial creado y datos de ejemplo sembrados")
	}

	orderUC := usecase.NewOrderUseCase(r.orders, r.tx)
	noteUC := usecase.NewNoteUseCase(r.notes, r.orders)
	taskUC := usecase.NewTaskUseCase(r.tasks, r.tx)
	taskNoteUC := usecase.NewTaskNoteUseCase(r.taskNotes, r.tasks)
	attachUC := usecase.NewAttachmentUseCase(r.attachments, r.tasks)
	settingsUC := usecase.NewSettingsUseCase(r.settings)
	sectionUC := usecase.NewSectionUseCase(r.sections)
	userUC := usecase.NewUserUseCase(r.users, defaults)
	exportUC := usecase.NewExportUseCase(r.orders, r.tasks, r.settings, infrapdf.NewMarotoReportGenerator())
	authUC := auth.NewAuthUseCase(r.users, r.settings, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "QimmatAlaseel API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		OrderUC:    orderUC,
		NoteUC:     noteUC,
		TaskUC:     taskUC,
		TaskNoteUC: taskNoteUC,
		AttachUC:   attachUC,
		SettingsUC: settingsUC,
		SectionUC:  sectionUC,
		UserUC:     userUC,
		ExportUC:   exportUC,
		Users:      r.users,
		JWTSecret:  cfg.JWT.Secret,
		CookieName: cfg.JWT.CookieName,
		ExpMinutes: cfg.JWT.Expiration,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
