package interfaces

import (
	"context"

	"github.com/customeros/notestack/dto"
)

type EventPublisher interface {
	PublishNoteCreated(ctx context.Context, event dto.NoteCreated) error
	Close() error
}
