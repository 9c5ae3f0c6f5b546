package storage

import (
	"context"
	"errors"
	"io"
	"testing"

	"team-scheduler/core/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	input *s3.PutObjectInput
	body  []byte
	err   error
}

func (f *fakeS3) PutObject(ctx context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = params
	f.body, _ = io.ReadAll(params.Body)
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

func TestS3Uploader_Put(t *testing.T) {
	fake := &fakeS3{}
	u := &S3Uploader{client: fake, bucket: "exports"}

	require.NoError(t, u.Put(context.Background(), "exports/alice-1/2025-03.json", "application/json", []byte(`{"a":1}`)))
	assert.Equal(t, "exports", aws.ToString(fake.input.Bucket))
	assert.Equal(t, "exports/alice-1/2025-03.json", aws.ToString(fake.input.Key))
	assert.Equal(t, "application/json", aws.ToString(fake.input.ContentType))
	assert.Equal(t, int64(7), aws.ToInt64(fake.input.ContentLength))
	assert.Equal(t, `{"a":1}`, string(fake.body))
}

func TestS3Uploader_PutError(t *testing.T) {
	cause := errors.New("access denied")
	u := &S3Uploader{client: &fakeS3{err: cause}, bucket: "exports"}

	err := u.Put(context.Background(), "k", "application/json", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
}

func TestNewS3Uploader(t *testing.T) {
	u := NewS3Uploader(config.StorageConfig{
		Bucket:          "exports",
		Region:          "us-east-1",
		Endpoint:        "http://localhost:9000",
		AccessKeyID:     "minio",
		SecretAccessKey: "minio123",
	})
	assert.Equal(t, "exports", u.bucket)
	assert.NotNil(t, u.client)
}
