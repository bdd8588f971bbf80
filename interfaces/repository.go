package interfaces

import (
	"context"

	"github.com/customeros/notestack/dto"
	"github.com/customeros/notestack/internal/models"
)

type UserRepository interface {
	FindByEmail(ctx context.Context, email string, limit int) ([]*models.User, error)
}

type FileRepository interface {
	UploadOne(ctx context.Context, data []byte, metadata dto.FileMetadata) (*models.File, error)
}

type NoteRepository interface {
	CreateOne(ctx context.Context, note *models.Note) error
}
