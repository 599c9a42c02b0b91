// Package backup uploads snapshots of the durable store files to
// S3-compatible object storage. Snapshots are an admin-only convenience:
// one upload per request, no schedule, no retries.
package backup

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/recordkeeper/internal/config"
	"github.com/dmitrijs2005/recordkeeper/internal/logging"
)

// putObjectAPI is the slice of the S3 client the uploader needs. Tests can
// provide a stub.
type putObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type Service struct {
	cfg *config.Config
	log logging.Logger

	// newClient is a test seam; the default builds a real S3 client.
	newClient func(ctx context.Context) (putObjectAPI, error)
}

func NewService(cfg *config.Config, log logging.Logger) *Service {
	s := &Service{cfg: cfg, log: log.With("component", "backup")}
	s.newClient = s.s3Client
	return s
}

func (s *Service) s3Client(ctx context.Context) (putObjectAPI, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(s.cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.cfg.S3AccessKey,
			s.cfg.S3SecretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if s.cfg.S3BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(s.cfg.S3BaseEndpoint)
		}
		o.UsePathStyle = true
	}), nil
}

// snapshotKey builds the object key for one uploaded store file. All files
// of one run share a date and run-id prefix.
func snapshotKey(runID uuid.UUID, file string) string {
	d := time.Now()
	return fmt.Sprintf("snapshots/%d/%02d/%02d/%s/%s", d.Year(), d.Month(), d.Day(), runID, filepath.Base(file))
}

// Upload pushes the given store files to the configured bucket. A file that
// does not exist yet (store never saved) is skipped; any other failure is
// surfaced once and aborts the run.
func (s *Service) Upload(ctx context.Context, files []string) error {
	client, err := s.newClient(ctx)
	if err != nil {
		return fmt.Errorf("configuring object storage: %w", err)
	}

	runID := uuid.New()
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				s.log.Warn(ctx, "store file absent, skipping", "file", file)
				continue
			}
			return fmt.Errorf("reading %s: %w", file, err)
		}

		key := snapshotKey(runID, file)
		_, err = client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(s.cfg.S3Bucket),
			Key:         aws.String(key),
			Body:        bytes.NewReader(data),
			ContentType: aws.String("application/json"),
		})
		if err != nil {
			return fmt.Errorf("uploading %s: %w", key, err)
		}
		s.log.Info(ctx, "snapshot uploaded", "key", key, "bytes", len(data))
	}
	return nil
}
