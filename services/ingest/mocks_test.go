package ingest

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/customeros/notestack/dto"
	"github.com/customeros/notestack/internal/logger"
	"github.com/customeros/notestack/internal/models"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string, limit int) ([]*models.User, error) {
	args := m.Called(ctx, email, limit)
	users, _ := args.Get(0).([]*models.User)
	return users, args.Error(1)
}

type mockFileRepository struct {
	mock.Mock
}

func (m *mockFileRepository) UploadOne(ctx context.Context, data []byte, metadata dto.FileMetadata) (*models.File, error) {
	args := m.Called(ctx, data, metadata)
	file, _ := args.Get(0).(*models.File)
	return file, args.Error(1)
}

type mockNoteRepository struct {
	mock.Mock
}

func (m *mockNoteRepository) CreateOne(ctx context.Context, note *models.Note) error {
	args := m.Called(ctx, note)
	if note != nil && note.ID == "" && args.Error(0) == nil {
		note.ID = "note_test"
	}
	return args.Error(0)
}

type mockEventPublisher struct {
	mock.Mock
}

func (m *mockEventPublisher) PublishNoteCreated(ctx context.Context, event dto.NoteCreated) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *mockEventPublisher) Close() error {
	return nil
}

func getLogger() logger.Logger {
	appLogger := logger.NewAppLogger(&logger.Config{
		DevMode: true,
	})
	appLogger.InitLogger()
	return appLogger
}
