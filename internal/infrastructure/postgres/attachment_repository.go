package postgres

import (
	"context"
	"fmt"

	"github.com/luxuryfaisal/QimmatAlaseel/internal/domain/entity"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/domain/repository"
)

var _ repository.AttachmentRepository = (*AttachmentRepo)(nil)

// AttachmentRepo implementación del puerto AttachmentRepository sobre PostgreSQL.
// Los datos base64 viven en una columna TEXT; el tamaño decodificado se
// persiste aparte para no recalcularlo en cada listado.
type AttachmentRepo struct {
	q Querier
}

func NewAttachmentRepository(q Querier) *AttachmentRepo {
	return &AttachmentRepo{q: q}
}

// Create persiste un nuevo adjunto.
func (r *AttachmentRepo) Create(att *entity.Attachment) error {
	query := `
		INSERT INTO attachments (id, owner_id, task_id, filename, data_base64, mime_type, size, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		att.ID, att.OwnerID, att.TaskID, att.Filename, att.DataBase64, att.MimeType, att.Size, att.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert attachment: %w", err)
	}
	return nil
}

// ListByTask lista los adjuntos del par (task_id, owner_id).
func (r *AttachmentRepo) ListByTask(taskID, ownerID string) ([]*entity.Attachment, error) {
	query := `
		SELECT id, owner_id, task_id, filename, data_base64, mime_type, size, created_at
		FROM attachments WHERE task_id = $1 AND owner_id = $2`
	rows, err := r.q.Query(context.Background(), query, taskID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list attachments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Attachment
	for rows.Next() {
		var a entity.Attachment
		if err := rows.Scan(&a.ID, &a.OwnerID, &a.TaskID, &a.Filename, &a.DataBase64, &a.MimeType, &a.Size, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan attachment: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// CountByTask cuenta los adjuntos del par (task_id, owner_id); lo usa el
// límite por tarea.
func (r *AttachmentRepo) CountByTask(taskID, ownerID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM attachments WHERE task_id = $1 AND owner_id = $2`,
		taskID, ownerID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count attachments: %w", err)
	}
	return count, nil
}

// Delete elimina el adjunto del par (id, owner); false si ausente o ajeno.
func (r *AttachmentRepo) Delete(id, ownerID string) (bool, error) {
	tag, err := r.q.Exec(context.Background(),
		`DELETE FROM attachments WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return false, fmt.Errorf("delete attachment: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// DeleteByTask elimina los adjuntos del par (task_id, owner_id); lo usa la
// cascada de Task.
func (r *AttachmentRepo) DeleteByTask(taskID, ownerID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM attachments WHERE task_id = $1 AND owner_id = $2`, taskID, ownerID)
	if err != nil {
		return fmt.Errorf("delete attachments by task: %w", err)
	}
	return nil
}
