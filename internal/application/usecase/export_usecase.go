package usecase

import (
	"context"
	"fmt"

	"github.com/luxuryfaisal/QimmatAlaseel/internal/domain/entity"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/domain/repository"
)

// ReportPDFGenerator puerto de salida para la generación de reportes PDF.
// La implementación vive en infrastructure/pdf.
type ReportPDFGenerator interface {
	GenerateOrdersReport(ctx context.Context, title string, orders []*entity.Order) ([]byte, error)
	GenerateTasksReport(ctx context.Context, title string, tasks []*entity.Task) ([]byte, error)
}

// ExportUseCase arma los reportes PDF de pedidos y tareas del propietario.
// El título del reporte sale del nombre de sección configurado por el dueño.
type ExportUseCase struct {
	orders   repository.OrderRepository
	tasks    repository.TaskRepository
	settings repository.SettingsRepository
	pdf      ReportPDFGenerator
}

func NewExportUseCase(
	orders repository.OrderRepository,
	tasks repository.TaskRepository,
	settings repository.SettingsRepository,
	pdf ReportPDFGenerator,
) *ExportUseCase {
	return &ExportUseCase{orders: orders, tasks: tasks, settings: settings, pdf: pdf}
}

// ExportOrders genera el PDF con todos los pedidos del propietario.
func (uc *ExportUseCase) ExportOrders(ctx context.Context, ownerID string) ([]byte, error) {
	list, err := uc.orders.ListByOwner(ownerID)
	if err != nil {
		return nil, fmt.Errorf("listar pedidos para exportar: %w", err)
	}
	return uc.pdf.GenerateOrdersReport(ctx, uc.reportTitle(ownerID, true), list)
}

// ExportTasks genera el PDF con todas las tareas del propietario.
func (uc *ExportUseCase) ExportTasks(ctx context.Context, ownerID string) ([]byte, error) {
	list, err := uc.tasks.ListByOwner(ownerID)
	if err != nil {
		return nil, fmt.Errorf("listar tareas para exportar: %w", err)
	}
	return uc.pdf.GenerateTasksReport(ctx, uc.reportTitle(ownerID, false), list)
}

func (uc *ExportUseCase) reportTitle(ownerID string, forOrders bool) string {
	s, err := uc.settings.GetByOwner(ownerID)
	if err != nil || s == nil {
		if forOrders {
			return entity.DefaultOrdersSectionName
		}
		return entity.DefaultTasksSectionName
	}
	if forOrders {
		return s.OrdersSectionName
	}
	return s.TasksSectionName
}
