package storage

import (
	"bytes"
	"context"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"

	"github.com/customeros/notestack/interfaces"
	"github.com/customeros/notestack/internal/tracing"
	"github.com/customeros/notestack/services/storage/aws_client"
)

// ObjectStorageService implements StorageService using S3Client
type ObjectStorageService struct {
	client     aws_client.S3Client
	bucketName string
	isPublic   bool
}

type StorageConfig struct {
	BucketName string
	IsPublic   bool // objects get a public-read ACL
}

func NewStorageService(client aws_client.S3Client, config StorageConfig) interfaces.StorageService {
	return &ObjectStorageService{
		client:     client,
		bucketName: config.BucketName,
		isPublic:   config.IsPublic,
	}
}

// Upload stores data under key. Empty payloads are stored as empty objects.
func (s *ObjectStorageService) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "ObjectStorageService.Upload")
	defer span.Finish()
	tracing.SetDefaultStorageSpanTags(ctx, span)
	span.SetTag("size", len(data))

	if key == "" {
		err := errors.New("storage key is empty")
		tracing.TraceErr(span, err)
		return err
	}

	uploadInput := s3manager.UploadInput{
		Bucket:      aws.String(s.bucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	}

	if s.isPublic {
		uploadInput.ACL = aws.String("public-read")
	}

	location, err := s.client.Upload(ctx, uploadInput)
	if err != nil {
		tracing.TraceErr(span, err)
		return errors.Wrapf(err, "upload %s to bucket %s", key, s.bucketName)
	}
	span.SetTag("location", location)
	return nil
}
