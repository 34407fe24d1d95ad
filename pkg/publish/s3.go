package publish

import (
	"bytes"
	"context"
	"os"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/vango-dev/jst/internal/errors"
)

// S3API is the part of the S3 client S3Store uses.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Store stores objects in an S3 bucket.
type S3Store struct {
	client S3API
	bucket string
	prefix string

	// CacheControl is sent with every object when set.
	CacheControl string
}

// NewS3Store creates a store writing to bucket. Keys are joined to prefix.
func NewS3Store(client S3API, bucket, prefix string) *S3Store {
	return &S3Store{client: client, bucket: bucket, prefix: strings.Trim(prefix, "/")}
}

// S3Options configures NewS3Client.
type S3Options struct {
	Region string
	// Endpoint overrides the service endpoint, e.g. for MinIO or LocalStack.
	// Setting it also switches to path-style addressing.
	Endpoint string
}

// NewS3Client builds an S3 client with credentials taken from the standard
// AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY and AWS_SESSION_TOKEN variables.
func NewS3Client(opts S3Options) *s3.Client {
	region := opts.Region
	if region == "" {
		region = os.Getenv("AWS_REGION")
	}
	if region == "" {
		region = "us-east-1"
	}
	return s3.New(s3.Options{
		Region:       region,
		Credentials:  aws.NewCredentialsCache(envCredentials{}),
		BaseEndpoint: nonEmpty(opts.Endpoint),
		UsePathStyle: opts.Endpoint != "",
	})
}

type envCredentials struct{}

func (envCredentials) Retrieve(ctx context.Context) (aws.Credentials, error) {
	creds := aws.Credentials{
		AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
		SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
		Source:          "environment",
	}
	if creds.AccessKeyID == "" || creds.SecretAccessKey == "" {
		return aws.Credentials{}, errors.New("J061").
			WithDetail("AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY are not set").
			WithSuggestion("Export AWS credentials or publish to a directory with --out")
	}
	return creds, nil
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return aws.String(s)
}

// Key returns the object key for key.
func (s *S3Store) Key(key string) string {
	key = strings.TrimPrefix(key, "/")
	if s.prefix == "" {
		return key
	}
	return path.Join(s.prefix, key)
}

// Put uploads data with a single PutObject call.
func (s *S3Store) Put(ctx context.Context, key string, data []byte, contentType string) error {
	if !validKey(key) {
		return errors.New("J061").WithDetailf("invalid key %q", key)
	}
	input := &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(s.Key(key)),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(contentType),
	}
	if s.CacheControl != "" {
		input.CacheControl = aws.String(s.CacheControl)
	}
	if _, err := s.client.PutObject(ctx, input); err != nil {
		return errors.New("J061").WithDetailf("s3://%s/%s", s.bucket, s.Key(key)).Wrap(err)
	}
	return nil
}
