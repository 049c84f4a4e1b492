package memory

import (
	"sort"

	"github.com/luxuryfaisal/QimmatAlaseel/internal/domain/entity"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/domain/repository"
)

var (
	_ repository.OrderRepository = orderRepo{}
	_ repository.NoteRepository  = noteRepo{}
)

// orderRepo adaptador en memoria del puerto OrderRepository. Con inTx es una
// vista sin bloqueo para usar dentro de TxRunner (el lock ya está tomado).
type orderRepo struct {
	s    *Store
	inTx bool
}

func (r orderRepo) wlock() func() {
	if r.inTx {
		return func() {}
	}
	r.s.mu.Lock()
	return r.s.mu.Unlock
}

func (r orderRepo) rlock() func() {
	if r.inTx {
		return func() {}
	}
	r.s.mu.RLock()
	return r.s.mu.RUnlock
}

func (r orderRepo) Create(order *entity.Order) error {
	defer r.wlock()()
	cp := *order
	r.s.orders[order.ID] = &cp
	return nil
}

func (r orderRepo) GetByID(id, ownerID string) (*entity.Order, error) {
	defer r.rlock()()
	o, ok := r.s.orders[id]
	if !ok || o.OwnerID != ownerID {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r orderRepo) ListByOwner(ownerID string) ([]*entity.Order, error) {
	defer r.rlock()()
	list := make([]*entity.Order, 0)
	for _, o := range r.s.orders {
		if o.OwnerID == ownerID {
			cp := *o
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].UpdatedAt.After(list[j].UpdatedAt)
	})
	return list, nil
}

// Update lee, parchea y reescribe bajo el mismo lock de escritura: dos
// parches concurrentes se serializan y ninguno pisa los campos del otro.
func (r orderRepo) Update(id, ownerID string, patch func(*entity.Order)) (*entity.Order, error) {
	defer r.wlock()()
	existing, ok := r.s.orders[id]
	if !ok || existing.OwnerID != ownerID {
		return nil, nil
	}
	cp := *existing
	patch(&cp)
	r.s.orders[id] = &cp
	out := cp
	return &out, nil
}

func (r orderRepo) Delete(id, ownerID string) (bool, error) {
	defer r.wlock()()
	o, ok := r.s.orders[id]
	if !ok || o.OwnerID != ownerID {
		return false, nil
	}
	delete(r.s.orders, id)
	return true, nil
}

// noteRepo adaptador en memoria del puerto NoteRepository.
type noteRepo struct {
	s    *Store
	inTx bool
}

func (r noteRepo) wlock() func() {
	if r.inTx {
		return func() {}
	}
	r.s.mu.Lock()
	return r.s.mu.Unlock
}

func (r noteRepo) rlock() func() {
	if r.inTx {
		return func() {}
	}
	r.s.mu.RLock()
	return r.s.mu.RUnlock
}

func (r noteRepo) Create(note *entity.Note) error {
	defer r.wlock()()
	cp := *note
	r.s.notes[note.ID] = &cp
	return nil
}

func (r noteRepo) GetByID(id, ownerID string) (*entity.Note, error) {
	defer r.rlock()()
	n, ok := r.s.notes[id]
	if !ok || n.OwnerID != ownerID {
		return nil, nil
	}
	cp := *n
	return &cp, nil
}

func (r noteRepo) ListByOrder(orderID, ownerID string) ([]*entity.Note, error) {
	defer r.rlock()()
	list := make([]*entity.Note, 0)
	for _, n := range r.s.notes {
		if n.OrderID == orderID && n.OwnerID == ownerID {
			cp := *n
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r noteRepo) Update(id, ownerID string, patch func(*entity.Note)) (*entity.Note, error) {
	defer r.wlock()()
	existing, ok := r.s.notes[id]
	if !ok || existing.OwnerID != ownerID {
		return nil, nil
	}
	cp := *existing
	patch(&cp)
	r.s.notes[id] = &cp
	out := cp
	return &out, nil
}

func (r noteRepo) Delete(id, ownerID string) (bool, error) {
	defer r.wlock()()
	n, ok := r.s.notes[id]
	if !ok || n.OwnerID != ownerID {
		return false, nil
	}
	delete(r.s.notes, id)
	return true, nil
}

// DeleteByOrder borra las notas del par (orderID, ownerID). Las notas del
// mismo orderID pero de otro propietario quedan intactas.
func (r noteRepo) DeleteByOrder(orderID, ownerID string) error {
	defer r.wlock()()
	for id, n := range r.s.notes {
		if n.OrderID == orderID && n.OwnerID == ownerID {
			delete(r.s.notes, id)
		}
	}
	return nil
}
