package memory

import (
	"sort"

	"github.com/luxuryfaisal/QimmatAlaseel/internal/domain/entity"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/domain/repository"
)

var (
	_ repository.SettingsRepository = settingsRepo{}
	_ repository.SectionRepository  = sectionRepo{}
)

// settingsRepo adaptador en memoria del puerto SettingsRepository.
// La colección está indexada por ownerID: una fila por propietario.
type settingsRepo struct {
	s *Store
}

func (r settingsRepo) GetByOwner(ownerID string) (*entity.Settings, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	st, ok := r.s.settings[ownerID]
	if !ok {
		return nil, nil
	}
	cp := *st
	return &cp, nil
}

// Upsert crea o parchea la fila del propietario bajo el lock de escritura:
// existencia, creación y parche son una sola unidad.
func (r settingsRepo) Upsert(ownerID string, create func() *entity.Settings, patch func(*entity.Settings)) (*entity.Settings, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var cp entity.Settings
	if existing, ok := r.s.settings[ownerID]; ok {
		cp = *existing
	} else {
		cp = *create()
	}
	patch(&cp)
	r.s.settings[ownerID] = &cp
	out := cp
	return &out, nil
}

// sectionRepo adaptador en memoria del puerto SectionRepository.
type sectionRepo struct {
	s *Store
}

func (r sectionRepo) Create(sec *entity.Section) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *sec
	r.s.sections[sec.ID] = &cp
	return nil
}

func (r sectionRepo) GetByID(id, ownerID string) (*entity.Section, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	sec, ok := r.s.sections[id]
	if !ok || sec.OwnerID != ownerID {
		return nil, nil
	}
	cp := *sec
	return &cp, nil
}

func (r sectionRepo) ListByOwner(ownerID string) ([]*entity.Section, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]*entity.Section, 0)
	for _, sec := range r.s.sections {
		if sec.OwnerID == ownerID {
			cp := *sec
			list = append(list, &cp)
		}
	}
	// Comparación numérica del índice de orden.
	sort.Slice(list, func(i, j int) bool {
		return list[i].OrderIndex < list[j].OrderIndex
	})
	return list, nil
}

func (r sectionRepo) Update(id, ownerID string, patch func(*entity.Section)) (*entity.Section, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	existing, ok := r.s.sections[id]
	if !ok || existing.OwnerID != ownerID {
		return nil, nil
	}
	cp := *existing
	patch(&cp)
	r.s.sections[id] = &cp
	out := cp
	return &out, nil
}

func (r sectionRepo) Delete(id, ownerID string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sec, ok := r.s.sections[id]
	if !ok || sec.OwnerID != ownerID {
		return false, nil
	}
	delete(r.s.sections, id)
	return true, nil
}
