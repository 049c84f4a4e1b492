package entity

import "time"

// Tipos base de una Section.
const (
	SectionBaseOrders = "orders"
	SectionBaseTasks  = "tasks"
)

// DefaultSectionColor color por defecto de una sección nueva.
const DefaultSectionColor = "#3b82f6"

// Section agrupación configurable por el usuario (tipo pedidos o tareas),
// independiente de los registros Order/Task subyacentes.
type Section struct {
	ID           string
	OwnerID      string
	Name         string
	BaseType     string // orders | tasks
	Color        string
	OrderIndex   int    // clave de ordenación; en el API viaja como string
	ColumnLabels string // JSON crudo con etiquetas de columnas personalizadas
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
