package services

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"

	"portfolio-backend/config"
)

// MediaStore is the binary-asset collaborator behind avatar and image
// fields: it accepts an upload and returns a retrievable reference.
type MediaStore interface {
	Put(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}

// S3MediaStore stores uploads in an S3 bucket and returns public URLs rooted
// at MEDIA_BASE_URL (CDN or bucket website endpoint).
type S3MediaStore struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

// NewS3MediaStore builds a store from S3_BUCKET, S3_REGION and
// MEDIA_BASE_URL. Returns nil when no bucket is configured; a nil store
// disables uploads rather than failing startup.
func NewS3MediaStore(ctx context.Context, c map[string]string) *S3MediaStore {
	bucket := config.GetString(c, "S3_BUCKET", "")
	if bucket == "" {
		log.Warn().Msg("media uploads disabled: S3_BUCKET not set")
		return nil
	}

	region := config.GetString(c, "S3_REGION", "us-east-1")
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		log.Error().Err(err).Msg("media uploads disabled: could not load AWS config")
		return nil
	}

	baseURL := config.GetString(c, "MEDIA_BASE_URL", fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, region))

	return &S3MediaStore{
		client:  s3.NewFromConfig(awsCfg),
		bucket:  bucket,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

func (s *S3MediaStore) Put(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("uploading %s to bucket %s: %w", key, s.bucket, err)
	}

	return s.baseURL + "/" + key, nil
}
