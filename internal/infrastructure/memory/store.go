// Package memory implementa los puertos de persistencia sobre mapas en
// memoria. Es el almacenamiento de referencia: sin durabilidad más allá del
// proceso, pensado para desarrollo y tests (cada test instancia su Store
// aislado en vez de compartir estado global).
//
// Un único RWMutex protege todas las colecciones. Las cascadas se ejecutan
// bajo el lock de escritura completo vía TxRunner, de modo que ningún lector
// observa una cascada a medias.
package memory

import (
	"sync"

	"github.com/luxuryfaisal/QimmatAlaseel/internal/domain/entity"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/domain/repository"
)

// Store contenedor de las colecciones en memoria.
type Store struct {
	mu sync.RWMutex

	users       map[string]*entity.User
	orders      map[string]*entity.Order
	notes       map[string]*entity.Note
	tasks       map[string]*entity.Task
	taskNotes   map[string]*entity.TaskNote
	attachments map[string]*entity.Attachment
	settings    map[string]*entity.Settings // clave: ownerID (una fila por propietario)
	sections    map[string]*entity.Section
}

// NewStore construye un almacén vacío.
func NewStore() *Store {
	return &Store{
		users:       make(map[string]*entity.User),
		orders:      make(map[string]*entity.Order),
		notes:       make(map[string]*entity.Note),
		tasks:       make(map[string]*entity.Task),
		taskNotes:   make(map[string]*entity.TaskNote),
		attachments: make(map[string]*entity.Attachment),
		settings:    make(map[string]*entity.Settings),
		sections:    make(map[string]*entity.Section),
	}
}

// Accesores de puertos. Cada adaptador toma el lock del Store por operación.
func (s *Store) Users() repository.UserRepository             { return userRepo{s: s} }
func (s *Store) Orders() repository.OrderRepository           { return orderRepo{s: s} }
func (s *Store) Notes() repository.NoteRepository             { return noteRepo{s: s} }
func (s *Store) Tasks() repository.TaskRepository             { return taskRepo{s: s} }
func (s *Store) TaskNotes() repository.TaskNoteRepository     { return taskNoteRepo{s: s} }
func (s *Store) Attachments() repository.AttachmentRepository { return attachmentRepo{s: s} }
func (s *Store) Settings() repository.SettingsRepository      { return settingsRepo{s: s} }
func (s *Store) Sections() repository.SectionRepository       { return sectionRepo{s: s} }
