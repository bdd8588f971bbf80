package storage

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"

	"github.com/customeros/notestack/interfaces"
	"github.com/customeros/notestack/services/storage/aws_client"
)

const r2Region = "auto"

// NewS3StorageService stores scans in an AWS S3 bucket.
func NewS3StorageService(awsRegion, accessKeyID, accessKeySecret, scanBucket string, isPublic bool) interfaces.StorageService {
	return newScanStorage(&aws.Config{
		Region:      aws.String(awsRegion),
		Credentials: credentials.NewStaticCredentials(accessKeyID, accessKeySecret, ""),
	}, scanBucket, isPublic)
}

// NewR2StorageService stores scans in a Cloudflare R2 bucket through its S3-compatible endpoint.
func NewR2StorageService(accountID, accessKeyID, accessKeySecret, scanBucket string, isPublic bool) interfaces.StorageService {
	return newScanStorage(&aws.Config{
		Endpoint:         aws.String(r2Endpoint(accountID)),
		Region:           aws.String(r2Region),
		Credentials:      credentials.NewStaticCredentials(accessKeyID, accessKeySecret, ""),
		S3ForcePathStyle: aws.Bool(true),
	}, scanBucket, isPublic)
}

func r2Endpoint(accountID string) string {
	return "https://" + accountID + ".r2.cloudflarestorage.com"
}

func newScanStorage(cfg *aws.Config, scanBucket string, isPublic bool) interfaces.StorageService {
	return NewStorageService(aws_client.NewS3Client(cfg), StorageConfig{
		BucketName: scanBucket,
		IsPublic:   isPublic,
	})
}
