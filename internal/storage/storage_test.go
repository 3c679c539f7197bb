package storage

import (
	"context"
	"errors"
	"io"
	"regexp"
	"testing"
	"time"

	"recipe-sharing-backend/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePutter struct {
	input *s3.PutObjectInput
	body  []byte
	err   error
}

func (f *fakePutter) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = params
	f.body, _ = io.ReadAll(params.Body)
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

func TestObjectKey(t *testing.T) {
	now := time.Date(2024, 5, 17, 10, 0, 0, 0, time.UTC)

	key := objectKey(now, "image/png")
	assert.Regexp(t, regexp.MustCompile(`^recipes/2024/5/17/[0-9a-f-]{36}\.png$`), key)
	assert.NotEqual(t, key, objectKey(now, "image/png"))
}

func TestS3Store_StoreImage(t *testing.T) {
	putter := &fakePutter{}
	store := newS3Store(putter, config.StorageConfig{
		Bucket:   "recipe-images",
		Endpoint: "localhost:9000",
	})

	url, err := store.StoreImage(context.Background(), []byte("png-bytes"), "image/png")
	require.NoError(t, err)

	require.NotNil(t, putter.input)
	assert.Equal(t, "recipe-images", aws.ToString(putter.input.Bucket))
	assert.Equal(t, "image/png", aws.ToString(putter.input.ContentType))
	assert.Equal(t, []byte("png-bytes"), putter.body)
	assert.Equal(t, "http://localhost:9000/recipe-images/"+aws.ToString(putter.input.Key), url)
}

func TestS3Store_PublicBaseURL(t *testing.T) {
	putter := &fakePutter{}
	store := newS3Store(putter, config.StorageConfig{
		Bucket:        "recipe-images",
		PublicBaseURL: "https://cdn.example/",
	})

	url, err := store.StoreImage(context.Background(), []byte("x"), "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/"+aws.ToString(putter.input.Key), url)
}

func TestS3Store_StoreImage_Error(t *testing.T) {
	putter := &fakePutter{err: errors.New("connection refused")}
	store := newS3Store(putter, config.StorageConfig{Bucket: "b", Region: "us-east-1"})

	_, err := store.StoreImage(context.Background(), []byte("x"), "image/png")
	assert.ErrorContains(t, err, "connection refused")
}

func TestS3Endpoint(t *testing.T) {
	assert.Equal(t, "", s3Endpoint(config.StorageConfig{}))
	assert.Equal(t, "https://minio.local", s3Endpoint(config.StorageConfig{Endpoint: "minio.local", UseSSL: true}))
	assert.Equal(t, "http://minio.local:9000", s3Endpoint(config.StorageConfig{Endpoint: "http://minio.local:9000", UseSSL: true}))
}

func TestNew_UnknownDriver(t *testing.T) {
	_, err := New(context.Background(), config.StorageConfig{Driver: "ftp"})
	assert.ErrorContains(t, err, "unknown storage driver")
}
