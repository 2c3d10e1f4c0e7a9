package repository

import (
	"context"

	"recarma/internal/infra"
	"recarma/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DocumentRepository struct {
	db *pgxpool.Pool
}

func NewDocumentRepository(db *pgxpool.Pool) *DocumentRepository {
	return &DocumentRepository{db: db}
}

func (r *DocumentRepository) Create(ctx context.Context, doc commands.DocumentRecord) (uuid.UUID, error) {
	const query = `
		INSERT INTO documents (id, vehicle_id, owner_id, type, file_name, content, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, now())`

	id := uuid.New()
	_, err := r.db.Exec(ctx, query, id, doc.VehicleID, doc.OwnerID, doc.Type, doc.FileName, doc.Content)
	if err != nil {
		if infra.IsForeignKeyViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("vehicle does not exist", err, infra.KindForeignKeyViolated)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to store document", err)
	}
	return id, nil
}
