package storage

import (
	"context"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockS3Client struct {
	mock.Mock
}

func (m *mockS3Client) Upload(ctx context.Context, input s3manager.UploadInput) (string, error) {
	args := m.Called(ctx, input)
	return args.String(0), args.Error(1)
}

func TestObjectStorageService_Upload(t *testing.T) {
	// Arrange
	client := &mockS3Client{}
	var captured s3manager.UploadInput
	client.On("Upload", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { captured = args.Get(1).(s3manager.UploadInput) }).
		Return("https://bucket/file_1.pdf", nil)
	svc := NewStorageService(client, StorageConfig{BucketName: "scans"})

	// Act
	err := svc.Upload(context.Background(), "file_1.pdf", []byte("%PDF-1.7"), "application/pdf")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "scans", aws.StringValue(captured.Bucket))
	assert.Equal(t, "file_1.pdf", aws.StringValue(captured.Key))
	assert.Equal(t, "application/pdf", aws.StringValue(captured.ContentType))
	assert.Nil(t, captured.ACL)
	body, err := io.ReadAll(captured.Body)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.7", string(body))
	client.AssertExpectations(t)
}

func TestObjectStorageService_UploadPublic(t *testing.T) {
	client := &mockS3Client{}
	client.On("Upload", mock.Anything, mock.MatchedBy(func(in s3manager.UploadInput) bool {
		return aws.StringValue(in.ACL) == "public-read"
	})).Return("", nil)
	svc := NewStorageService(client, StorageConfig{BucketName: "scans", IsPublic: true})

	err := svc.Upload(context.Background(), "k", nil, "application/pdf")

	assert.NoError(t, err)
	client.AssertExpectations(t)
}

func TestObjectStorageService_UploadError(t *testing.T) {
	client := &mockS3Client{}
	client.On("Upload", mock.Anything, mock.Anything).Return("", errors.New("connection reset"))
	svc := NewStorageService(client, StorageConfig{BucketName: "scans"})

	err := svc.Upload(context.Background(), "file_1.pdf", []byte("x"), "application/pdf")

	assert.ErrorContains(t, err, "connection reset")
	assert.ErrorContains(t, err, "file_1.pdf")
}

func TestObjectStorageService_UploadEmptyKey(t *testing.T) {
	client := &mockS3Client{}
	svc := NewStorageService(client, StorageConfig{BucketName: "scans"})

	err := svc.Upload(context.Background(), "", []byte("x"), "application/pdf")

	assert.Error(t, err)
	client.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
}

func TestR2Endpoint(t *testing.T) {
	assert.Equal(t, "https://acc123.r2.cloudflarestorage.com", r2Endpoint("acc123"))
}

func TestStorageConstructors(t *testing.T) {
	assert.NotNil(t, NewS3StorageService("eu-west-1", "id", "secret", "scans", false))
	assert.NotNil(t, NewR2StorageService("acc123", "id", "secret", "scans", true))
}
