package repositories

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/rohits-web03/quickdrop/internal/config"
)

var ErrReportStoreDisabled = errors.New("report storage is not configured")

// ReportStore keeps rendered dashboard reports in an R2 (or any S3
// compatible) bucket.
type ReportStore struct {
	client   *s3.Client
	bucket   string
	endpoint string
}

// NewReportStore builds a client using static credentials and a custom
// endpoint. R2_ENDPOINT overrides the Cloudflare endpoint derived from the
// account id.
func NewReportStore(cfg config.R2Config) (*ReportStore, error) {
	if !cfg.Enabled() {
		return nil, ErrReportStoreDisabled
	}

	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.AccountID)
	}

	awsCfg := aws.Config{
		Credentials: credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Region:      cfg.Region,
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true
	})

	log.Println("Successfully initialized R2 client")

	return &ReportStore{client: client, bucket: cfg.BucketName, endpoint: endpoint}, nil
}

// ReportKey names the object a report generated at t is stored under.
func ReportKey(t time.Time) string {
	return "reports/" + t.UTC().Format("2006/01/02/150405") + ".html"
}

// Upload stores body under key.
func (s *ReportStore) Upload(ctx context.Context, key string, body []byte, contentType string) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("upload %s: %w", key, err)
	}
	return nil
}

// PresignGetURL creates a presigned URL for downloading a stored report.
func (s *ReportStore) PresignGetURL(ctx context.Context, key string, expires time.Duration) (string, error) {
	presigner := s3.NewPresignClient(s.client)
	req, err := presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(expires))
	if err != nil {
		return "", err
	}
	return req.URL, nil
}

// Exists checks if a given object key exists in the bucket.
func (s *ReportStore) Exists(ctx context.Context, key string) (bool, error) {
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var nf *s3types.NotFound
		if errors.As(err, &nf) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
