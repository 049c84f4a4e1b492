package memory

import (
	"sort"

	"github.com/luxuryfaisal/QimmatAlaseel/internal/domain/entity"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/domain/repository"
)

var (
	_ repository.TaskRepository       = taskRepo{}
	_ repository.TaskNoteRepository   = taskNoteRepo{}
	_ repository.AttachmentRepository = attachmentRepo{}
)

// taskRepo adaptador en memoria del puerto TaskRepository.
type taskRepo struct {
	s    *Store
	inTx bool
}

func (r taskRepo) wlock() func() {
	if r.inTx {
		return func() {}
	}
	r.s.mu.Lock()
	return r.s.mu.Unlock
}

func (r taskRepo) rlock() func() {
	if r.inTx {
		return func() {}
	}
	r.s.mu.RLock()
	return r.s.mu.RUnlock
}

func (r taskRepo) Create(task *entity.Task) error {
	defer r.wlock()()
	cp := *task
	r.s.tasks[task.ID] = &cp
	return nil
}

func (r taskRepo) GetByID(id, ownerID string) (*entity.Task, error) {
	defer r.rlock()()
	t, ok := r.s.tasks[id]
	if !ok || t.OwnerID != ownerID {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r taskRepo) ListByOwner(ownerID string) ([]*entity.Task, error) {
	defer r.rlock()()
	list := make([]*entity.Task, 0)
	for _, t := range r.s.tasks {
		if t.OwnerID == ownerID {
			cp := *t
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].UpdatedAt.After(list[j].UpdatedAt)
	})
	return list, nil
}

// Update aplica patch bajo el lock de escritura; la lectura y la
// reescritura son una sola unidad.
func (r taskRepo) Update(id, ownerID string, patch func(*entity.Task)) (*entity.Task, error) {
	defer r.wlock()()
	existing, ok := r.s.tasks[id]
	if !ok || existing.OwnerID != ownerID {
		return nil, nil
	}
	cp := *existing
	patch(&cp)
	r.s.tasks[id] = &cp
	out := cp
	return &out, nil
}

func (r taskRepo) Delete(id, ownerID string) (bool, error) {
	defer r.wlock()()
	t, ok := r.s.tasks[id]
	if !ok || t.OwnerID != ownerID {
		return false, nil
	}
	delete(r.s.tasks, id)
	return true, nil
}

// taskNoteRepo adaptador en memoria del puerto TaskNoteRepository.
type taskNoteRepo struct {
	s    *Store
	inTx bool
}

func (r taskNoteRepo) wlock() func() {
	if r.inTx {
		return func() {}
	}
	r.s.mu.Lock()
	return r.s.mu.Unlock
}

func (r taskNoteRepo) rlock() func() {
	if r.inTx {
		return func() {}
	}
	r.s.mu.RLock()
	return r.s.mu.RUnlock
}

func (r taskNoteRepo) Create(note *entity.TaskNote) error {
	defer r.wlock()()
	cp := *note
	r.s.taskNotes[note.ID] = &cp
	return nil
}

func (r taskNoteRepo) GetByID(id, ownerID string) (*entity.TaskNote, error) {
	defer r.rlock()()
	n, ok := r.s.taskNotes[id]
	if !ok || n.OwnerID != ownerID {
		return nil, nil
	}
	cp := *n
	return &cp, nil
}

func (r taskNoteRepo) ListByTask(taskID, ownerID string) ([]*entity.TaskNote, error) {
	defer r.rlock()()
	list := make([]*entity.TaskNote, 0)
	for _, n := range r.s.taskNotes {
		if n.TaskID == taskID && n.OwnerID == ownerID {
			cp := *n
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r taskNoteRepo) Update(id, ownerID string, patch func(*entity.TaskNote)) (*entity.TaskNote, error) {
	defer r.wlock()()
	existing, ok := r.s.taskNotes[id]
	if !ok || existing.OwnerID != ownerID {
		return nil, nil
	}
	cp := *existing
	patch(&cp)
	r.s.taskNotes[id] = &cp
	out := cp
	return &out, nil
}

func (r taskNoteRepo) Delete(id, ownerID string) (bool, error) {
	defer r.wlock()()
	n, ok := r.s.taskNotes[id]
	if !ok || n.OwnerID != ownerID {
		return false, nil
	}
	delete(r.s.taskNotes, id)
	return true, nil
}

func (r taskNoteRepo) DeleteByTask(taskID, ownerID string) error {
	defer r.wlock()()
	for id, n := range r.s.taskNotes {
		if n.TaskID == taskID && n.OwnerID == ownerID {
			delete(r.s.taskNotes, id)
		}
	}
	return nil
}

// attachmentRepo adaptador en memoria del puerto AttachmentRepository.
type attachmentRepo struct {
	s    *Store
	inTx bool
}

func (r attachmentRepo) wlock() func() {
	if r.inTx {
		return func() {}
	}
	r.s.mu.Lock()
	return r.s.mu.Unlock
}

func (r attachmentRepo) rlock() func() {
	if r.inTx {
		return func() {}
	}
	r.s.mu.RLock()
	return r.s.mu.RUnlock
}

func (r attachmentRepo) Create(att *entity.Attachment) error {
	defer r.wlock()()
	cp := *att
	r.s.attachments[att.ID] = &cp
	return nil
}

func (r attachmentRepo) ListByTask(taskID, ownerID string) ([]*entity.Attachment, error) {
	defer r.rlock()()
	list := make([]*entity.Attachment, 0)
	for _, a := range r.s.attachments {
		if a.TaskID == taskID && a.OwnerID == ownerID {
			cp := *a
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r attachmentRepo) CountByTask(taskID, ownerID string) (int, error) {
	defer r.rlock()()
	count := 0
	for _, a := range r.s.attachments {
		if a.TaskID == taskID && a.OwnerID == ownerID {
			count++
		}
	}
	return count, nil
}

func (r attachmentRepo) Delete(id, ownerID string) (bool, error) {
	defer r.wlock()()
	a, ok := r.s.attachments[id]
	if !ok || a.OwnerID != ownerID {
		return false, nil
	}
	delete(r.s.attachments, id)
	return true, nil
}

func (r attachmentRepo) DeleteByTask(taskID, ownerID string) error {
	defer r.wlock()()
	for id, a := range r.s.attachments {
		if a.TaskID == taskID && a.OwnerID == ownerID {
			delete(r.s.attachments, id)
		}
	}
	return nil
}
