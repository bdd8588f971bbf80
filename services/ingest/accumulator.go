package ingest

import (
	"bytes"
	"io"

	mserrors "github.com/customeros/notestack/internal/errors"
	"github.com/customeros/notestack/internal/utils"
)

// Session is the state accumulated from one inbound request.
// It is owned by the goroutine reading the request and must not be shared.
type Session struct {
	SenderEmail    string
	OCRText        *bytes.Buffer // nil until a text/plain file part arrives
	Attachment     *bytes.Buffer // nil until a binary file part arrives
	AttachmentName string
}

// HasSender reports whether a headers field resolved a sender.
func (s *Session) HasSender() bool {
	return s.SenderEmail != ""
}

// OCR returns the transcript received so far, or "" when none was sent.
func (s *Session) OCR() string {
	if s.OCRText == nil {
		return ""
	}
	return s.OCRText.String()
}

// AttachmentBytes returns the binary payload, nil when no binary part arrived.
func (s *Session) AttachmentBytes() []byte {
	if s.Attachment == nil {
		return nil
	}
	return s.Attachment.Bytes()
}

// FileEvent describes a file part as announced by the multipart stream.
type FileEvent struct {
	FieldName   string
	Filename    string
	ContentType string
}

type partRole int

const (
	roleOCR partRole = iota
	roleAttachment
)

// Accumulator routes part events into a Session.
type Accumulator struct {
	session      *Session
	maxPartBytes int64
}

// NewAccumulator starts an empty session. maxPartBytes caps the OCR text and the attachment
// separately; <= 0 disables the cap.
func NewAccumulator(maxPartBytes int64) *Accumulator {
	return &Accumulator{
		session:      &Session{},
		maxPartBytes: maxPartBytes,
	}
}

// HandleField records a fully buffered form field. Only the headers field is used;
// each occurrence replaces the result of the previous one.
func (a *Accumulator) HandleField(name, value string) error {
	if name != HeadersField {
		return nil
	}
	sender, err := ExtractSender(value)
	a.session.SenderEmail = sender
	return err
}

// BeginFile announces a file part and returns the writer its body chunks go to.
// The attachment filename is taken from the first binary file event only.
func (a *Accumulator) BeginFile(event FileEvent) io.Writer {
	if utils.MediaType(event.ContentType) == utils.ContentTypePlainText {
		if a.session.OCRText == nil {
			a.session.OCRText = &bytes.Buffer{}
		}
		return &partWriter{acc: a, role: roleOCR}
	}

	if a.session.Attachment == nil {
		a.session.Attachment = &bytes.Buffer{}
		a.session.AttachmentName = event.Filename
	}
	return &partWriter{acc: a, role: roleAttachment}
}

// Session returns the accumulated state. Call once the stream has ended.
func (a *Accumulator) Session() *Session {
	return a.session
}

func (a *Accumulator) write(role partRole, chunk []byte) (int, error) {
	buf := a.session.Attachment
	if role == roleOCR {
		buf = a.session.OCRText
	}
	if a.maxPartBytes > 0 && int64(buf.Len()+len(chunk)) > a.maxPartBytes {
		return 0, mserrors.ErrPayloadTooLarge
	}
	return buf.Write(chunk)
}

// MaxPartBytes is the per-role cap, 0 when unbounded.
func (a *Accumulator) MaxPartBytes() int64 {
	if a.maxPartBytes < 0 {
		return 0
	}
	return a.maxPartBytes
}

type partWriter struct {
	acc  *Accumulator
	role partRole
}

func (w *partWriter) Write(chunk []byte) (int, error) {
	return w.acc.write(w.role, chunk)
}
