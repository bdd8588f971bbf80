package repository

import (
	"context"

	"github.com/opentracing/opentracing-go"
	"gorm.io/gorm"

	"github.com/customeros/notestack/interfaces"
	"github.com/customeros/notestack/internal/models"
	"github.com/customeros/notestack/internal/tracing"
)

type noteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) interfaces.NoteRepository {
	return &noteRepository{db: db}
}

func (r *noteRepository) CreateOne(ctx context.Context, note *models.Note) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "noteRepository.CreateOne")
	defer span.Finish()
	tracing.SetDefaultPostgresRepositorySpanTags(ctx, span)

	if note == nil || note.OriginalScan == "" {
		tracing.TraceErr(span, ErrInvalidInput)
		return ErrInvalidInput
	}

	if err := r.db.WithContext(ctx).Omit("Scan").Create(note).Error; err != nil {
		tracing.TraceErr(span, err)
		return err
	}
	tracing.TagEntity(span, note.ID)
	return nil
}
