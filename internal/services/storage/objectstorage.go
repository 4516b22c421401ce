package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/gabriel-vasile/mimetype"

	"github.com/teemo-ai/estimation-server/internal/config"
)

// ObjectStorage talks to an S3-compatible blob store. The default endpoint
// is the GCS interoperability API, so gs:// references resolve without a
// separate client.
type ObjectStorage struct {
	client *s3.Client
	cfg    *config.ObjectStoreConfig
}

func NewObjectStorage(cfg *config.ObjectStoreConfig) (*ObjectStorage, error) {
	credentialsProvider := credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")
	awsCfg, err := awsConfig.LoadDefaultConfig(
		context.TODO(),
		awsConfig.WithRegion(cfg.Region),
		awsConfig.WithCredentialsProvider(credentialsProvider),
	)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = &cfg.EndpointURL
		o.UsePathStyle = true
	})

	return &ObjectStorage{client: client, cfg: cfg}, nil
}

func (o *ObjectStorage) Download(ctx context.Context, ref ObjectRef) (string, error) {
	object, err := o.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: &ref.Bucket,
		Key:    &ref.Key,
	})
	if err != nil {
		return "", mapObjectError(err, ref)
	}
	defer object.Body.Close()

	content, err := io.ReadAll(object.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read object body: %w", err)
	}

	return string(content), nil
}

// Upload creates or overwrites the object at ref.
func (o *ObjectStorage) Upload(ctx context.Context, ref ObjectRef, data []byte) error {
	mtype := mimetype.Detect(data).String()

	_, err := o.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &ref.Bucket,
		Key:         &ref.Key,
		Body:        bytes.NewReader(data),
		ContentType: &mtype,
	})
	if err != nil {
		if denied := mapObjectError(err, ref); errors.Is(denied, ErrAccessDenied) {
			return denied
		}
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}

	return nil
}

func mapObjectError(err error, ref ObjectRef) error {
	var noKey *s3types.NoSuchKey
	var noBucket *s3types.NoSuchBucket
	if errors.As(err, &noKey) || errors.As(err, &noBucket) {
		return fmt.Errorf("%w: %s/%s", ErrNotFound, ref.Bucket, ref.Key)
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NoSuchBucket", "NotFound":
			return fmt.Errorf("%w: %s/%s", ErrNotFound, ref.Bucket, ref.Key)
		case "AccessDenied", "Forbidden":
			return fmt.Errorf("%w: %s/%s", ErrAccessDenied, ref.Bucket, ref.Key)
		}
	}

	return fmt.Errorf("object store request failed: %w", err)
}
