package storage

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/winespa/spa-scheduler/internal/config"
)

// Uploader stores novelty support documents (incapacidad) in S3.
type Uploader struct {
	client *s3.Client
	bucket string
}

func NewUploader(cfg *config.Config) *Uploader {
	client := s3.New(s3.Options{
		Region: cfg.S3Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.AWSKey, cfg.AWSSecret, ""),
		),
		BaseEndpoint: endpointOrNil(cfg.S3Endpoint),
	})

	return &Uploader{
		client: client,
		bucket: cfg.S3Bucket,
	}
}

func endpointOrNil(endpoint string) *string {
	if endpoint == "" {
		return nil
	}
	return aws.String(endpoint)
}

// UploadSupportDoc stores the file under a fresh key and returns it. The
// original filename only contributes its extension.
func (u *Uploader) UploadSupportDoc(
	ctx context.Context,
	filename string,
	contentType string,
	body io.Reader,
) (string, error) {

	key := fmt.Sprintf("incapacidades/%s%s", uuid.NewString(), path.Ext(filename))

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("upload support doc: %w", err)
	}

	return key, nil
}
