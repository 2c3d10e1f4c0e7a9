package commands

import (
	"context"

	"recarma/internal/infra"
	"recarma/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidDocumentType = errs.New("invalid document type")
	ErrEmptyDocument       = errs.New("document file is empty")
)

// Supported verification document types (registration certificate and
// insurance copy).
var documentTypes = map[string]bool{
	"RC":        true,
	"INSURANCE": true,
}

type UploadDocumentParams struct {
	VehicleID uuid.UUID
	Type      string
	FileName  string
	Content   []byte
}

type DocumentCommands interface {
	Upload(ctx context.Context, ownerID uuid.UUID, params UploadDocumentParams) (uuid.UUID, error)
}

type documentCommandsImpl struct {
	documentRepo DocumentRepository
	vehicleRepo  VehicleRepository
}

func NewDocumentCommands(documentRepo DocumentRepository, vehicleRepo VehicleRepository) DocumentCommands {
	return &documentCommandsImpl{
		documentRepo: documentRepo,
		vehicleRepo:  vehicleRepo,
	}
}

// Upload stores a verification document against an owned vehicle and
// returns an acknowledgement id. Fire-and-forget from the caller's side:
// no further processing is modeled here.
func (c *documentCommandsImpl) Upload(ctx context.Context, ownerID uuid.UUID, params UploadDocumentParams) (uuid.UUID, error) {
	if !documentTypes[params.Type] {
		return uuid.Nil, ErrInvalidDocumentType
	}
	if len(params.Content) == 0 {
		return uuid.Nil, ErrEmptyDocument
	}

	v, err := c.vehicleRepo.FindByID(ctx, params.VehicleID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, errs.Mark(err, ErrVehicleNotFound)
		}
		return uuid.Nil, err
	}
	if v.OwnerID() != ownerID {
		return uuid.Nil, ErrVehicleNotFound
	}

	return c.documentRepo.Create(ctx, DocumentRecord{
		VehicleID: params.VehicleID,
		OwnerID:   ownerID,
		Type:      params.Type,
		FileName:  params.FileName,
		Content:   params.Content,
	})
}
