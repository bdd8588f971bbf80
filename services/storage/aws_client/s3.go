package aws_client

import (
	"context"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/opentracing/opentracing-go"

	"github.com/customeros/notestack/internal/tracing"
)

type S3Client interface {
	Upload(ctx context.Context, uploadContainer s3manager.UploadInput) (string, error)
}

type s3Client struct {
	Uploader *s3manager.Uploader
	Config   *aws.Config
}

func NewS3Client(config *aws.Config) S3Client {
	s := session.Must(session.NewSession(config))
	return &s3Client{
		Uploader: s3manager.NewUploader(s),
		Config:   config,
	}
}

// Upload returns the object location reported by the backend.
func (s *s3Client) Upload(ctx context.Context, uploadContainer s3manager.UploadInput) (string, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "s3Client.Upload")
	defer span.Finish()
	tracing.SetDefaultStorageSpanTags(ctx, span)
	span.SetTag("bucket", aws.StringValue(uploadContainer.Bucket))
	span.SetTag("key", aws.StringValue(uploadContainer.Key))

	output, err := s.Uploader.UploadWithContext(ctx, &uploadContainer)
	if err != nil {
		tracing.TraceErr(span, err)
		return "", err
	}
	return output.Location, nil
}
