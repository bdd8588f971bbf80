package handlers

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/customeros/notestack/dto"
	"github.com/customeros/notestack/internal/logger"
	"github.com/customeros/notestack/internal/models"
	"github.com/customeros/notestack/services/ingest"
)

const invoiceHeaders = "Received: by mx.example.com\nReply-To: John Doe <jdoe@example.com>\nSubject: scan"

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
	if args.Error(0) == nil {
		note.ID = "note_1"
	}
	return args.Error(0)
}

type formPart struct {
	field       string
	filename    string
	contentType string
	body        string
}

func buildMultipart(t *testing.T, parts ...formPart) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for _, p := range parts {
		if p.filename == "" && p.contentType == "" {
			require.NoError(t, writer.WriteField(p.field, p.body))
			continue
		}
		header := make(textproto.MIMEHeader)
		if p.filename == "" {
			header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"`, p.field))
		} else {
			header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, p.field, p.filename))
		}
		if p.contentType != "" {
			header.Set("Content-Type", p.contentType)
		}
		w, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = w.Write([]byte(p.body))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

type testEnv struct {
	router *gin.Engine
	users  *mockUserRepository
	files  *mockFileRepository
	notes  *mockNoteRepository
}

func newTestEnv(maxPartBytes int64) *testEnv {
	gin.SetMode(gin.TestMode)
	appLogger := logger.NewAppLogger(&logger.Config{DevMode: true})
	appLogger.InitLogger()

	env := &testEnv{
		users: new(mockUserRepository),
		files: new(mockFileRepository),
		notes: new(mockNoteRepository),
	}
	coordinator := ingest.NewCoordinator(appLogger, env.users, env.files, env.notes, nil)
	h := NewInboundHandler(appLogger, coordinator, maxPartBytes)

	env.router = gin.New()
	env.router.POST("/v1/inbound", h.Receive())
	return env
}

func (e *testEnv) post(body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/v1/inbound", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func TestReceive_EndToEnd(t *testing.T) {
	// Arrange
	env := newTestEnv(0)
	pdf := "%PDF-1.4 fake"
	body, contentType := buildMultipart(t,
		formPart{field: "headers", body: invoiceHeaders},
		formPart{field: "attachment1", filename: "invoice.pdf", contentType: "application/pdf", body: pdf},
		formPart{field: "attachment2", filename: "invoice.txt", contentType: "text/plain", body: "Total due: 100"},
	)

	env.users.On("FindByEmail", mock.Anything, "jdoe@example.com", 1).
		Return([]*models.User{{ID: "42", Email: "jdoe@example.com"}}, nil)
	env.files.On("UploadOne", mock.Anything, []byte(pdf), dto.FileMetadata{
		Storage:          "s3",
		FilenameDownload: "invoice.pdf",
		UploadedBy:       "42",
		Type:             "application/pdf",
		Title:            "Invoice",
	}).Return(&models.File{ID: "file_1"}, nil)
	env.notes.On("CreateOne", mock.Anything, mock.MatchedBy(func(note *models.Note) bool {
		return note.Title == "Invoice" &&
			note.OCR == "Total due: 100" &&
			note.OriginalScan == "file_1" &&
			note.FromUser == "jdoe@example.com"
	})).Return(nil)

	// Act
	w := env.post(body, contentType)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":200,"message":"Files uploaded successfully"}`, w.Body.String())
	env.users.AssertExpectations(t)
	env.files.AssertExpectations(t)
	env.notes.AssertExpectations(t)
}

func TestReceive_NotMultipart(t *testing.T) {
	// Arrange
	env := newTestEnv(0)

	// Act
	w := env.post(bytes.NewBufferString(`{"headers":"x"}`), "application/json")

	// Assert
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "multipart")
	env.users.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything, mock.Anything)
}

func TestReceive_TruncatedStream(t *testing.T) {
	// Arrange
	env := newTestEnv(0)
	body, contentType := buildMultipart(t,
		formPart{field: "headers", body: invoiceHeaders},
		formPart{field: "attachment1", filename: "invoice.pdf", contentType: "application/pdf", body: "%PDF"},
	)
	truncated := bytes.NewBuffer(body.Bytes()[:body.Len()/2])

	// Act
	w := env.post(truncated, contentType)

	// Assert
	assert.Equal(t, http.StatusBadRequest, w.Code)
	env.users.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything, mock.Anything)
}

func TestReceive_NoHeaders(t *testing.T) {
	// Arrange
	env := newTestEnv(0)
	body, contentType := buildMultipart(t,
		formPart{field: "attachment1", filename: "invoice.pdf", contentType: "application/pdf", body: "%PDF"},
	)

	// Act
	w := env.post(body, contentType)

	// Assert
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Reply-To header not found"}`, w.Body.String())
	env.files.AssertNotCalled(t, "UploadOne", mock.Anything, mock.Anything, mock.Anything)
}

func TestReceive_UserNotFound(t *testing.T) {
	// Arrange
	env := newTestEnv(0)
	body, contentType := buildMultipart(t,
		formPart{field: "headers", body: invoiceHeaders},
		formPart{field: "attachment1", filename: "invoice.pdf", contentType: "application/pdf", body: "%PDF"},
	)
	env.users.On("FindByEmail", mock.Anything, "jdoe@example.com", 1).Return([]*models.User{}, nil)

	// Act
	w := env.post(body, contentType)

	// Assert
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"User not found"}`, w.Body.String())
	env.files.AssertNotCalled(t, "UploadOne", mock.Anything, mock.Anything, mock.Anything)
	env.notes.AssertNotCalled(t, "CreateOne", mock.Anything, mock.Anything)
}

func TestReceive_UploadFailure(t *testing.T) {
	// Arrange
	env := newTestEnv(0)
	body, contentType := buildMultipart(t,
		formPart{field: "headers", body: invoiceHeaders},
		formPart{field: "attachment1", filename: "invoice.pdf", contentType: "application/pdf", body: "%PDF"},
	)
	env.users.On("FindByEmail", mock.Anything, "jdoe@example.com", 1).
		Return([]*models.User{{ID: "42"}}, nil)
	env.files.On("UploadOne", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("bucket unreachable"))

	// Act
	w := env.post(body, contentType)

	// Assert
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.JSONEq(t, `{"error":"Unable to upload file"}`, w.Body.String())
	assert.NotContains(t, w.Body.String(), "bucket")
	env.notes.AssertNotCalled(t, "CreateOne", mock.Anything, mock.Anything)
}

func TestReceive_AttachmentTooLarge(t *testing.T) {
	// Arrange
	env := newTestEnv(int64(len(invoiceHeaders)))
	body, contentType := buildMultipart(t,
		formPart{field: "headers", body: invoiceHeaders},
		formPart{field: "attachment1", filename: "invoice.pdf", contentType: "application/pdf", body: strings.Repeat("%PDF", 64)},
	)

	// Act
	w := env.post(body, contentType)

	// Assert
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	env.users.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything, mock.Anything)
}

func TestReceive_SplitAttachmentsConcatenate(t *testing.T) {
	// Arrange
	env := newTestEnv(0)
	body, contentType := buildMultipart(t,
		formPart{field: "headers", body: invoiceHeaders},
		formPart{field: "attachment1", filename: "scan.pdf", contentType: "application/pdf", body: "AB"},
		formPart{field: "attachment2", filename: "scan-2.pdf", contentType: "application/pdf; name=scan-2.pdf", body: "CD"},
	)
	env.users.On("FindByEmail", mock.Anything, "jdoe@example.com", 1).
		Return([]*models.User{{ID: "42"}}, nil)
	env.files.On("UploadOne", mock.Anything, []byte("ABCD"), mock.MatchedBy(func(meta dto.FileMetadata) bool {
		return meta.FilenameDownload == "scan.pdf" && meta.Title == "Scan"
	})).Return(&models.File{ID: "file_1"}, nil)
	env.notes.On("CreateOne", mock.Anything, mock.MatchedBy(func(note *models.Note) bool {
		return note.OCR == ""
	})).Return(nil)

	// Act
	w := env.post(body, contentType)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	env.files.AssertExpectations(t)
	env.notes.AssertExpectations(t)
}

func TestReceive_OCRTooLarge(t *testing.T) {
	// Arrange
	env := newTestEnv(32)
	body, contentType := buildMultipart(t,
		formPart{field: "headers", body: "Reply-To: <a@b.io>"},
		formPart{field: "attachment1", filename: "dump.txt", contentType: "text/plain", body: strings.Repeat("x", 64)},
	)

	// Act
	w := env.post(body, contentType)

	// Assert
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	env.users.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything, mock.Anything)
}

func TestReceive_FieldTooLarge(t *testing.T) {
	// Arrange
	env := newTestEnv(16)
	body, contentType := buildMultipart(t,
		formPart{field: "headers", body: invoiceHeaders},
	)

	// Act
	w := env.post(body, contentType)

	// Assert
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	env.users.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything, mock.Anything)
}

func TestReceive_OctetStreamWithoutFilenameIsAttachment(t *testing.T) {
	// Arrange
	env := newTestEnv(0)
	body, contentType := buildMultipart(t,
		formPart{field: "headers", body: invoiceHeaders},
		formPart{field: "attachment1", contentType: "application/octet-stream", body: "%PDF"},
	)
	env.users.On("FindByEmail", mock.Anything, "jdoe@example.com", 1).
		Return([]*models.User{{ID: "42"}}, nil)
	env.files.On("UploadOne", mock.Anything, []byte("%PDF"), mock.MatchedBy(func(meta dto.FileMetadata) bool {
		return meta.FilenameDownload == "" && meta.Title == ""
	})).Return(&models.File{ID: "file_1"}, nil)
	env.notes.On("CreateOne", mock.Anything, mock.Anything).Return(nil)

	// Act
	w := env.post(body, contentType)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	env.files.AssertExpectations(t)
}
