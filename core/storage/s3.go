package storage

import (
	"bytes"
	"context"
	"fmt"

	"team-scheduler/core/config"
	"team-scheduler/core/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Uploader writes objects to the export bucket.
type Uploader interface {
	Put(ctx context.Context, key, contentType string, body []byte) error
}

type putObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type S3Uploader struct {
	client putObjectAPI
	bucket string
}

// NewS3Uploader builds a client for AWS S3 or any S3-compatible endpoint
// (path-style addressing when Endpoint is set).
func NewS3Uploader(cfg config.StorageConfig) *S3Uploader {
	opts := s3.Options{
		Region: cfg.Region,
	}
	if cfg.AccessKeyID != "" {
		opts.Credentials = credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
		opts.UsePathStyle = true
	}
	return &S3Uploader{client: s3.New(opts), bucket: cfg.Bucket}
}

func (u *S3Uploader) Put(ctx context.Context, key, contentType string, body []byte) error {
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(body))),
	})
	if err != nil {
		logger.Error("Storage:Put", "bucket", u.bucket, "key", key, "error", err)
		return fmt.Errorf("put s3://%s/%s: %w", u.bucket, key, err)
	}
	logger.Info("Storage:Put", "bucket", u.bucket, "key", key, "bytes", len(body))
	return nil
}
