// Package objectstore wraps the S3-compatible bucket that hosts product and
// category images.
package objectstore

import (
	"context"
	"fmt"
	"strings"
	"time"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Options configures access to the bucket. Endpoint is set when targeting an
// S3-compatible service (LocalStack, MinIO, Supabase storage gateway) instead
// of AWS; static keys are used when both are present, otherwise the default
// credential chain applies.
type Options struct {
	Bucket    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

// PhotoBucket issues presigned PUT URLs for direct image uploads and derives
// the public URL for a stored object.
type PhotoBucket struct {
	client   *s3.Client
	bucket   string
	endpoint string
	region   string
}

// New loads AWS configuration and returns a PhotoBucket.
func New(ctx context.Context, opts Options) (*PhotoBucket, error) {
	loadOpts := []func(*awscfg.LoadOptions) error{
		awscfg.WithRegion(opts.Region),
	}
	if opts.AccessKey != "" && opts.SecretKey != "" {
		loadOpts = append(loadOpts, awscfg.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, "")))
	}
	cfg, err := awscfg.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	clientOpts := []func(*s3.Options){}
	if opts.Endpoint != "" {
		clientOpts = append(clientOpts, func(o *s3.Options) {
			o.BaseEndpoint = sdkaws.String(opts.Endpoint)
			o.UsePathStyle = true
		})
	}

	return &PhotoBucket{
		client:   s3.NewFromConfig(cfg, clientOpts...),
		bucket:   opts.Bucket,
		endpoint: opts.Endpoint,
		region:   opts.Region,
	}, nil
}

// PresignPut generates a presigned PUT URL for the given object key.
func (b *PhotoBucket) PresignPut(ctx context.Context, key, contentType string, expiry time.Duration) (string, map[string]string, error) {
	presigner := s3.NewPresignClient(b.client)

	input := &s3.PutObjectInput{
		Bucket:      &b.bucket,
		Key:         &key,
		ContentType: &contentType,
	}

	presigned, err := presigner.PresignPutObject(ctx, input, func(o *s3.PresignOptions) {
		o.Expires = expiry
	})
	if err != nil {
		return "", nil, fmt.Errorf("failed to presign put object: %w", err)
	}

	headers := make(map[string]string)
	for k, v := range presigned.SignedHeader {
		if len(v) > 0 {
			headers[k] = v[0]
		}
	}

	return presigned.URL, headers, nil
}

// PublicURL returns the public address of an uploaded object.
func (b *PhotoBucket) PublicURL(key string) string {
	if b.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", strings.TrimRight(b.endpoint, "/"), b.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", b.bucket, b.region, key)
}
