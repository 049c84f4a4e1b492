package usecase_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxuryfaisal/QimmatAlaseel/internal/application/dto"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/application/usecase"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/domain"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/domain/entity"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/infrastructure/memory"
)

const (
	ownerA = "owner-a"
	ownerB = "owner-b"
)

func strPtr(s string) *string { return &s }

// ──────────────────────────────────────────────────────────────────────────────
// Orders
// ──────────────────────────────────────────────────────────────────────────────

func TestOrderCreate_EstadoPorDefecto(t *testing.T) {
	store := memory.NewStore()
	uc := usecase.NewOrderUseCase(store.Orders(), store)

	out, err := uc.Create(ownerA, dto.CreateOrderRequest{OrderNumber: "251024435", PartNumber: "87-2"})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusUnderReview, out.Status, "sin estado explícito se usa el estado inicial")
	assert.Equal(t, ownerA, out.OwnerID)
	assert.NotEmpty(t, out.ID)

	// Round-trip: lo creado se recupera igual.
	got, err := uc.Get(out.ID, ownerA)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, out.OrderNumber, got.OrderNumber)
	assert.Equal(t, out.Status, got.Status)
}

func TestOrderUpdate_ParchePreservaCamposYRefrescaUpdatedAt(t *testing.T) {
	store := memory.NewStore()
	uc := usecase.NewOrderUseCase(store.Orders(), store)

	created, err := uc.Create(ownerA, dto.CreateOrderRequest{OrderNumber: "100", PartNumber: "87-2", LastInquiry: "ayer"})
	require.NoError(t, err)

	out, err := uc.Update(created.ID, ownerA, dto.UpdateOrderRequest{Status: strPtr("منجز")})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "منجز", out.Status)
	assert.Equal(t, "100", out.OrderNumber, "los campos no parcheados se preservan")
	assert.Equal(t, "87-2", out.PartNumber)
	assert.Equal(t, "ayer", out.LastInquiry)
	assert.False(t, out.UpdatedAt.Before(created.UpdatedAt), "UpdatedAt debe refrescarse")
}

// Dos parches concurrentes de campos distintos se serializan en el
// repositorio: cada uno parchea sobre lo último escrito y ninguno pisa el
// campo del otro.
func TestOrderUpdate_ParchesConcurrentesDeCamposDistintosNoSePisan(t *testing.T) {
	store := memory.NewStore()
	uc := usecase.NewOrderUseCase(store.Orders(), store)

	created, err := uc.Create(ownerA, dto.CreateOrderRequest{OrderNumber: "100", PartNumber: "87-2"})
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, err := uc.Update(created.ID, ownerA, dto.UpdateOrderRequest{Status: strPtr("منجز")})
		assert.NoError(t, err)
	}()
	go func() {
		defer wg.Done()
		_, err := uc.Update(created.ID, ownerA, dto.UpdateOrderRequest{PartNumber: strPtr("99-1")})
		assert.NoError(t, err)
	}()
	wg.Wait()

	got, err := uc.Get(created.ID, ownerA)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "منجز", got.Status)
	assert.Equal(t, "99-1", got.PartNumber)
	assert.Equal(t, "100", got.OrderNumber)
}

func TestOrderUpdate_DePropietarioAjenoDevuelveNil(t *testing.T) {
	store := memory.NewStore()
	uc := usecase.NewOrderUseCase(store.Orders(), store)

	created, err := uc.Create(ownerA, dto.CreateOrderRequest{OrderNumber: "100"})
	require.NoError(t, err)

	out, err := uc.Update(created.ID, ownerB, dto.UpdateOrderRequest{Status: strPtr("x")})
	require.NoError(t, err)
	assert.Nil(t, out, "ajeno e inexistente son indistinguibles")
}

func TestOrderDelete_CascadaEliminaSoloNotasDelPropietario(t *testing.T) {
	store := memory.NewStore()
	orderUC := usecase.NewOrderUseCase(store.Orders(), store)
	noteUC := usecase.NewNoteUseCase(store.Notes(), store.Orders())

	ord, err := orderUC.Create(ownerA, dto.CreateOrderRequest{OrderNumber: "100"})
	require.NoError(t, err)
	_, err = noteUC.Create(ownerA, dto.CreateNoteRequest{OrderID: ord.ID, Content: "nota 1"})
	require.NoError(t, err)
	_, err = noteUC.Create(ownerA, dto.CreateNoteRequest{OrderID: ord.ID, Content: "nota 2"})
	require.NoError(t, err)

	ok, err := orderUC.Delete(context.Background(), ord.ID, ownerA)
	require.NoError(t, err)
	require.True(t, ok)

	notes, err := noteUC.ListByOrder(ord.ID, ownerA)
	require.NoError(t, err)
	assert.Empty(t, notes, "las notas deben caer con el pedido")
}

func TestOrderDelete_AjenoNoTocaNada(t *testing.T) {
	store := memory.NewStore()
	orderUC := usecase.NewOrderUseCase(store.Orders(), store)
	noteUC := usecase.NewNoteUseCase(store.Notes(), store.Orders())

	ord, err := orderUC.Create(ownerA, dto.CreateOrderRequest{OrderNumber: "100"})
	require.NoError(t, err)
	_, err = noteUC.Create(ownerA, dto.CreateNoteRequest{OrderID: ord.ID, Content: "nota"})
	require.NoError(t, err)

	ok, err := orderUC.Delete(context.Background(), ord.ID, ownerB)
	require.NoError(t, err)
	assert.False(t, ok)

	notes, err := noteUC.ListByOrder(ord.ID, ownerA)
	require.NoError(t, err)
	assert.Len(t, notes, 1, "un delete fallido no debe tocar las notas")
}

// ──────────────────────────────────────────────────────────────────────────────
// Notes: integridad referencial del padre
// ──────────────────────────────────────────────────────────────────────────────

func TestNoteCreate_PadreAjenoFallaSinCrearRegistro(t *testing.T) {
	store := memory.NewStore()
	orderUC := usecase.NewOrderUseCase(store.Orders(), store)
	noteUC := usecase.NewNoteUseCase(store.Notes(), store.Orders())

	ord, err := orderUC.Create(ownerB, dto.CreateOrderRequest{OrderNumber: "200"})
	require.NoError(t, err)

	// A intenta colgar una nota del pedido de B.
	out, err := noteUC.Create(ownerA, dto.CreateNoteRequest{OrderID: ord.ID, Content: "intrusa"})
	assert.ErrorIs(t, err, domain.ErrParentNotFound)
	assert.Nil(t, out)

	// No debe quedar registro colgante en ningún ámbito.
	notesA, err := noteUC.ListByOrder(ord.ID, ownerA)
	require.NoError(t, err)
	assert.Empty(t, notesA)
	notesB, err := noteUC.ListByOrder(ord.ID, ownerB)
	require.NoError(t, err)
	assert.Empty(t, notesB)
}

func TestNoteCreate_PadreInexistenteFalla(t *testing.T) {
	store := memory.NewStore()
	noteUC := usecase.NewNoteUseCase(store.Notes(), store.Orders())

	_, err := noteUC.Create(ownerA, dto.CreateNoteRequest{OrderID: "no-existe", Content: "x"})
	assert.ErrorIs(t, err, domain.ErrParentNotFound)
}
