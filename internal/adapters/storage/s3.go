package storage

import (
	"bytes"
	"context"
	"errors"
	"net/url"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"

	"eventsgateway/internal/domain"
)

// S3Config holds configuration for an S3-compatible bucket.
type S3Config struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	// PublicBaseURL is the prefix objects are publicly served under, e.g. a CDN origin.
	PublicBaseURL string
}

type s3Store struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
}

// NewS3Store returns a BlobStore writing to an S3 bucket with static credentials.
// A non-empty Endpoint switches to path-style addressing for S3-compatible servers.
func NewS3Store(cfg S3Config) domain.BlobStore {
	awsCfg := aws.Config{
		Region: cfg.Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(
				cfg.AccessKeyID,
				cfg.SecretAccessKey,
				"",
			),
		),
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})
	return &s3Store{
		client:        client,
		bucket:        cfg.Bucket,
		publicBaseURL: cfg.PublicBaseURL,
	}
}

// Upload puts data under name. If-None-Match makes the bucket refuse to overwrite an existing key.
// The gateway's own S3 credentials are used; the caller credential only scopes the object name.
func (s *s3Store) Upload(ctx context.Context, _ domain.Credential, name, contentType string, data []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(name),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
		IfNoneMatch:   aws.String("*"),
	})
	return translateError(err)
}

func (s *s3Store) PublicURL(name string) string {
	return s.publicBaseURL + "/" + url.PathEscape(name)
}

// translateError turns responses S3 sent back into domain.BackendError. Transport and
// signing failures are returned as is.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return err
	}
	be := &domain.BackendError{Message: apiErr.ErrorMessage()}
	if be.Message == "" {
		be.Message = apiErr.ErrorCode()
	}
	var respErr *awshttp.ResponseError
	if errors.As(err, &respErr) {
		be.Status = respErr.HTTPStatusCode()
	}
	return be
}
