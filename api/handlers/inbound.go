package handlers

import (
	"context"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/log"
	"github.com/pkg/errors"

	mserrors "github.com/customeros/notestack/internal/errors"
	"github.com/customeros/notestack/internal/logger"
	"github.com/customeros/notestack/internal/models"
	"github.com/customeros/notestack/internal/tracing"
	"github.com/customeros/notestack/internal/utils"
	"github.com/customeros/notestack/services/ingest"
)

// Ingester persists a finished session.
type Ingester interface {
	Ingest(ctx context.Context, session *ingest.Session) (*models.Note, error)
}

type InboundHandler struct {
	log          logger.Logger
	ingester     Ingester
	maxPartBytes int64
}

func NewInboundHandler(log logger.Logger, ingester Ingester, maxPartBytes int64) *InboundHandler {
	return &InboundHandler{
		log:          log,
		ingester:     ingester,
		maxPartBytes: maxPartBytes,
	}
}

// Receive accepts a relayed email as multipart/form-data and turns it into a note.
func (h *InboundHandler) Receive() gin.HandlerFunc {
	return func(c *gin.Context) {
		span, ctx := opentracing.StartSpanFromContext(c.Request.Context(), "InboundHandler.Receive")
		defer span.Finish()
		tracing.SetDefaultRestSpanTags(ctx, span)

		reporter := newOutcomeReporter(c)

		session, err := h.readSession(ctx, c.Request)
		if err != nil {
			tracing.TraceErr(span, err)
			h.log.Warnf("rejected inbound request: %v", err)
			reporter.Report(err)
			return
		}

		note, err := h.ingester.Ingest(ctx, session)
		if err != nil {
			tracing.TraceErr(span, err)
			reporter.Report(err)
			return
		}

		tracing.TagEntity(span, note.ID)
		reporter.Report(nil)
	}
}

// readSession drains the multipart stream part by part into a fresh accumulator.
func (h *InboundHandler) readSession(ctx context.Context, r *http.Request) (*ingest.Session, error) {
	span, _ := opentracing.StartSpanFromContext(ctx, "InboundHandler.readSession")
	defer span.Finish()

	reader, err := r.MultipartReader()
	if err != nil {
		return nil, mserrors.MalformedRequest(err)
	}

	acc := ingest.NewAccumulator(h.maxPartBytes)
	parts := 0
	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, mserrors.MalformedRequest(err)
		}
		parts++

		err = h.readPart(acc, part)
		part.Close()
		if err != nil {
			return nil, err
		}
	}
	span.LogFields(log.Int("parts", parts))

	return acc.Session(), nil
}

// isFilePart follows multipart/form-data relays: a filename or an octet-stream body makes a file.
func isFilePart(part *multipart.Part) bool {
	if part.FileName() != "" {
		return true
	}
	return utils.MediaType(part.Header.Get("Content-Type")) == utils.ContentTypeOctetStream
}

func (h *InboundHandler) readPart(acc *ingest.Accumulator, part *multipart.Part) error {
	if !isFilePart(part) {
		value, err := readField(part, acc.MaxPartBytes())
		if err != nil {
			return err
		}
		if err := acc.HandleField(part.FormName(), string(value)); err != nil {
			h.log.Debugf("field %s: %v", part.FormName(), err)
		}
		return nil
	}

	w := acc.BeginFile(ingest.FileEvent{
		FieldName:   part.FormName(),
		Filename:    part.FileName(),
		ContentType: part.Header.Get("Content-Type"),
	})
	if _, err := io.Copy(w, part); err != nil {
		if errors.Is(err, mserrors.ErrPayloadTooLarge) {
			return err
		}
		return mserrors.MalformedRequest(err)
	}
	return nil
}

// readField buffers a field value, failing with ErrPayloadTooLarge past maxBytes (0 = unbounded).
func readField(part *multipart.Part, maxBytes int64) ([]byte, error) {
	var r io.Reader = part
	if maxBytes > 0 {
		r = io.LimitReader(part, maxBytes+1)
	}
	value, err := io.ReadAll(r)
	if err != nil {
		return nil, mserrors.MalformedRequest(err)
	}
	if maxBytes > 0 && int64(len(value)) > maxBytes {
		return nil, mserrors.ErrPayloadTooLarge
	}
	return value, nil
}
