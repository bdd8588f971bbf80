package ingest

import (
	"context"
	"sync"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/log"
	"github.com/pkg/errors"

	"github.com/customeros/notestack/dto"
	"github.com/customeros/notestack/interfaces"
	mserrors "github.com/customeros/notestack/internal/errors"
	"github.com/customeros/notestack/internal/logger"
	"github.com/customeros/notestack/internal/models"
	"github.com/customeros/notestack/internal/tracing"
	"github.com/customeros/notestack/internal/utils"
)

const (
	// StorageBackend is the storage location recorded on every uploaded scan.
	StorageBackend = "s3"
	// ScanContentType is recorded for every attachment regardless of the part's content type.
	ScanContentType = utils.ContentTypePDF

	// DefaultPublishTimeout bounds a single note.created publication.
	DefaultPublishTimeout = 10 * time.Second
)

// Coordinator runs the resolve, store, record workflow for a finished session.
type Coordinator struct {
	log       logger.Logger
	users     interfaces.UserRepository
	files     interfaces.FileRepository
	notes     interfaces.NoteRepository
	publisher interfaces.EventPublisher

	publishTimeout time.Duration
	publishes      sync.WaitGroup
}

// NewCoordinator wires the collaborators. publisher may be nil.
func NewCoordinator(log logger.Logger, users interfaces.UserRepository, files interfaces.FileRepository, notes interfaces.NoteRepository, publisher interfaces.EventPublisher) *Coordinator {
	return &Coordinator{
		log:       log,
		users:     users,
		files:     files,
		notes:     notes,
		publisher: publisher,

		publishTimeout: DefaultPublishTimeout,
	}
}

// Ingest persists the session as a stored file plus a note.
//
// It returns ErrHeaderNotFound when no sender was resolved, ErrUserNotFound when the
// sender has no directory entry, and ErrUploadUnavailable for any collaborator failure.
// Nothing is rolled back: a stored file whose note could not be created is left behind.
func (c *Coordinator) Ingest(ctx context.Context, session *Session) (*models.Note, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "Coordinator.Ingest")
	defer span.Finish()
	tracing.SetDefaultServiceSpanTags(ctx, span)

	if session == nil || !session.HasSender() {
		tracing.TraceErr(span, mserrors.ErrHeaderNotFound)
		return nil, mserrors.ErrHeaderNotFound
	}
	span.LogFields(log.String("sender", session.SenderEmail))

	users, err := c.users.FindByEmail(ctx, session.SenderEmail, 1)
	if err != nil {
		return nil, c.unavailable(span, errors.Wrap(err, "user lookup failed"))
	}
	if len(users) == 0 {
		tracing.TraceErr(span, mserrors.ErrUserNotFound)
		c.log.Infof("no user found for sender %s", session.SenderEmail)
		return nil, mserrors.ErrUserNotFound
	}
	user := users[0]
	ctx = utils.SetUserInContext(ctx, user.ID, session.SenderEmail)

	title := utils.FormatTitle(utils.FilenameStem(session.AttachmentName))

	file, err := c.files.UploadOne(ctx, session.AttachmentBytes(), dto.FileMetadata{
		Storage:          StorageBackend,
		FilenameDownload: session.AttachmentName,
		UploadedBy:       user.ID,
		Type:             ScanContentType,
		Title:            title,
	})
	if err != nil {
		return nil, c.unavailable(span, errors.Wrap(err, "file upload failed"))
	}
	if file == nil {
		return nil, c.unavailable(span, errors.New("file store returned no file"))
	}

	note := &models.Note{
		Title:        title,
		OCR:          session.OCR(),
		OriginalScan: file.ID,
		FromUser:     session.SenderEmail,
	}
	if err := c.notes.CreateOne(ctx, note); err != nil {
		c.log.Warnf("file %s stored without a note", file.ID)
		return nil, c.unavailable(span, errors.Wrap(err, "note creation failed"))
	}
	tracing.TagEntity(span, note.ID)
	c.log.Infof("note %s created from %s for user %s", note.ID, session.AttachmentName, user.ID)

	c.publishNoteCreated(ctx, note, user.ID)

	return note, nil
}

func (c *Coordinator) unavailable(span opentracing.Span, cause error) error {
	tracing.TraceErr(span, cause)
	c.log.Errorf("ingestion failed: %v", cause)
	return mserrors.ErrUploadUnavailable
}

// publishNoteCreated is best effort: the note already exists, so failures are only logged.
// The event is sent in the background on a context detached from the request.
func (c *Coordinator) publishNoteCreated(ctx context.Context, note *models.Note, userId string) {
	if c.publisher == nil {
		return
	}
	event := dto.NoteCreated{
		NoteId:       note.ID,
		Title:        note.Title,
		OriginalScan: note.OriginalScan,
		FromUser:     note.FromUser,
		UploadedBy:   userId,
		IngestionId:  utils.GetIngestionIdFromContext(ctx),
	}
	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.publishTimeout)

	c.publishes.Add(1)
	go func() {
		defer c.publishes.Done()
		defer cancel()
		defer tracing.RecoverAndLogToJaeger(c.log)

		if err := c.publisher.PublishNoteCreated(publishCtx, event); err != nil {
			c.log.Warnf("failed to publish note.created for %s: %v", event.NoteId, err)
		}
	}()
}

// Wait blocks until background publications have finished.
func (c *Coordinator) Wait() {
	c.publishes.Wait()
}
