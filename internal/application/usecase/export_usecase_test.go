package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxuryfaisal/QimmatAlaseel/internal/application/dto"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/application/usecase"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/domain/entity"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/infrastructure/memory"
)

// generadorEspia captura el título y las filas que recibe el generador.
type generadorEspia struct {
	titulo string
	filas  int
}

func (g *generadorEspia) GenerateOrdersReport(_ context.Context, title string, orders []*entity.Order) ([]byte, error) {
	g.titulo = title
	g.filas = len(orders)
	return []byte("%PDF-falso"), nil
}

func (g *generadorEspia) GenerateTasksReport(_ context.Context, title string, tasks []*entity.Task) ([]byte, error) {
	g.titulo = title
	g.filas = len(tasks)
	return []byte("%PDF-falso"), nil
}

func TestExportOrders_TituloPorDefectoSinConfiguracion(t *testing.T) {
	store := memory.NewStore()
	orderUC := usecase.NewOrderUseCase(store.Orders(), store)
	espia := &generadorEspia{}
	uc := usecase.NewExportUseCase(store.Orders(), store.Tasks(), store.Settings(), espia)

	_, err := orderUC.Create(ownerA, dto.CreateOrderRequest{OrderNumber: "1"})
	require.NoError(t, err)
	_, err = orderUC.Create(ownerA, dto.CreateOrderRequest{OrderNumber: "2"})
	require.NoError(t, err)

	out, err := uc.ExportOrders(context.Background(), ownerA)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
	assert.Equal(t, entity.DefaultOrdersSectionName, espia.titulo)
	assert.Equal(t, 2, espia.filas)
}

func TestExportTasks_TituloSaleDeLaConfiguracionDelDueno(t *testing.T) {
	store := memory.NewStore()
	settingsUC := usecase.NewSettingsUseCase(store.Settings())
	espia := &generadorEspia{}
	uc := usecase.NewExportUseCase(store.Orders(), store.Tasks(), store.Settings(), espia)

	_, err := settingsUC.Update(ownerA, dto.UpdateSettingsRequest{TasksSectionName: strPtr("مهامي الخاصة")})
	require.NoError(t, err)

	_, err = uc.ExportTasks(context.Background(), ownerA)
	require.NoError(t, err)
	assert.Equal(t, "مهامي الخاصة", espia.titulo)
}

func TestExportOrders_SoloLasFilasDelPropietario(t *testing.T) {
	store := memory.NewStore()
	orderUC := usecase.NewOrderUseCase(store.Orders(), store)
	espia := &generadorEspia{}
	uc := usecase.NewExportUseCase(store.Orders(), store.Tasks(), store.Settings(), espia)

	_, err := orderUC.Create(ownerA, dto.CreateOrderRequest{OrderNumber: "de-a"})
	require.NoError(t, err)
	_, err = orderUC.Create(ownerB, dto.CreateOrderRequest{OrderNumber: "de-b"})
	require.NoError(t, err)

	_, err = uc.ExportOrders(context.Background(), ownerB)
	require.NoError(t, err)
	assert.Equal(t, 1, espia.filas, "el reporte nunca mezcla propietarios")
}
