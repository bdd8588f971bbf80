package repository

import (
	"context"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/customeros/notestack/dto"
	"github.com/customeros/notestack/interfaces"
	"github.com/customeros/notestack/internal/models"
	"github.com/customeros/notestack/internal/tracing"
	"github.com/customeros/notestack/internal/utils"
)

type fileRepository struct {
	db      *gorm.DB
	storage interfaces.StorageService
}

func NewFileRepository(db *gorm.DB, storageService interfaces.StorageService) interfaces.FileRepository {
	return &fileRepository{
		db:      db,
		storage: storageService,
	}
}

// UploadOne pushes data to object storage and then records the file row.
// If the row insert fails the object stays in the bucket.
func (r *fileRepository) UploadOne(ctx context.Context, data []byte, metadata dto.FileMetadata) (*models.File, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "fileRepository.UploadOne")
	defer span.Finish()
	tracing.SetDefaultPostgresRepositorySpanTags(ctx, span)
	tracing.LogObjectAsJson(span, "metadata", metadata)

	file := &models.File{
		ID:               utils.GenerateNanoIDWithPrefix("file", 16),
		Storage:          metadata.Storage,
		FilenameDownload: metadata.FilenameDownload,
		Title:            metadata.Title,
		Type:             metadata.Type,
		UploadedBy:       metadata.UploadedBy,
		Filesize:         int64(len(data)),
	}
	file.FilenameDisk = file.ID + "." + utils.GetFileExtensionFromContentType(file.Type)
	tracing.TagEntity(span, file.ID)

	if err := r.storage.Upload(ctx, file.FilenameDisk, data, file.Type); err != nil {
		tracing.TraceErr(span, err)
		return nil, errors.Wrap(err, "failed to upload file")
	}

	if err := r.db.WithContext(ctx).Create(file).Error; err != nil {
		tracing.TraceErr(span, err)
		return nil, errors.Wrap(err, "failed to save file record")
	}

	return file, nil
}
