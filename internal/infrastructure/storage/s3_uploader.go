package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"mime"
	"path/filepath"
	"strings"
	"time"

	appconfig "vitrine/internal/config"
	"vitrine/internal/infrastructure/database"
	"vitrine/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

var ErrBucketNotConfigured = errors.New("media bucket not configured")

type objectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Uploader stores wizard media in a bucket and hands back the public URL.
//
// Keys look like <basePath>/2006/01/02/<uuid><ext>. When a CDN domain is
// configured the URL points at it, otherwise at the bucket itself.
type S3Uploader struct {
	client    objectPutter
	bucket    string
	region    string
	cdnDomain string
	basePath  string
	now       func() time.Time
}

var _ interfaces.IMediaUploader = (*S3Uploader)(nil)

func NewS3Uploader(ctx context.Context, cfg appconfig.Config) (*S3Uploader, error) {
	if cfg.MediaBucket == "" {
		return nil, ErrBucketNotConfigured
	}
	awsCfg, err := database.LoadAWSConfig(ctx, cfg.AWS)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.AWS.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.AWS.S3Endpoint)
			o.UsePathStyle = true
		}
	})

	return newS3Uploader(client, cfg.MediaBucket, cfg.AWS.Region, cfg.MediaCDNDomain, cfg.MediaBasePath), nil
}

func newS3Uploader(client objectPutter, bucket, region, cdnDomain, basePath string) *S3Uploader {
	return &S3Uploader{
		client:    client,
		bucket:    bucket,
		region:    region,
		cdnDomain: strings.TrimRight(cdnDomain, "/"),
		basePath:  strings.Trim(basePath, "/"),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *S3Uploader) Upload(ctx context.Context, filename string, contentType string, body io.Reader) (string, error) {
	key := s.generateKey(filename)
	if contentType == "" {
		contentType = guessContentType(filename)
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		log.Printf("[media][s3] put object failed bucket=%s key=%s err=%v", s.bucket, key, err)
		return "", fmt.Errorf("upload %s: %w", filename, err)
	}

	url := s.getPublicURL(key)
	log.Printf("[media][s3] uploaded key=%s content_type=%s", key, contentType)
	return url, nil
}

func (s *S3Uploader) generateKey(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	name := uuid.NewString() + ext

	datePath := s.now().Format("2006/01/02")
	if s.basePath != "" {
		return fmt.Sprintf("%s/%s/%s", s.basePath, datePath, name)
	}
	return fmt.Sprintf("%s/%s", datePath, name)
}

func (s *S3Uploader) getPublicURL(key string) string {
	if s.cdnDomain != "" {
		return fmt.Sprintf("https://%s/%s", s.cdnDomain, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}

func guessContentType(filename string) string {
	if ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(filename))); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
