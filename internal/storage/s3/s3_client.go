// Package s3 archives accepted document uploads to an S3 bucket.
package s3

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"bizworth/internal/config"
)

// Archiver stores accepted uploads. A nil *Archive is a valid no-op
// archiver, so callers never need to branch on configuration.
type Archiver interface {
	Archive(filename, contentType string, data []byte)
}

// Archive uploads documents to one bucket, keyed by date and a request id.
type Archive struct {
	bucket   string
	uploader *manager.Uploader
}

// NewArchive builds the archiver, or returns nil (disabled) when no bucket
// is configured or AWS config cannot be loaded.
func NewArchive(cfg *config.ArchiveConfig) *Archive {
	if cfg.Bucket == "" {
		return nil
	}

	var opts []func(*awsconfig.LoadOptions) error
	opts = append(opts, awsconfig.WithRegion(cfg.Region))
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		log.Printf("s3.Archive: loading aws config: %v, archival disabled", err)
		return nil
	}

	var s3Opts []func(*s3.Options)
	if cfg.Endpoint != "" {
		s3Opts = append(s3Opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		})
	}

	client := s3.NewFromConfig(awsCfg, s3Opts...)
	return &Archive{
		bucket:   cfg.Bucket,
		uploader: manager.NewUploader(client),
	}
}

// Archive uploads one document in the background. Failures are logged and
// never surfaced; archival must not affect the extraction response.
func (a *Archive) Archive(filename, contentType string, data []byte) {
	if a == nil {
		return
	}
	key := fmt.Sprintf("uploads/%s/%s-%s",
		time.Now().UTC().Format("2006-01-02"), uuid.NewString(), filename)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		_, err := a.uploader.Upload(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(a.bucket),
			Key:         aws.String(key),
			Body:        bytes.NewReader(data),
			ContentType: aws.String(contentType),
		})
		if err != nil {
			log.Printf("s3.Archive: uploading %s: %v", key, err)
			return
		}
		log.Printf("s3.Archive: stored %s (%d bytes)", key, len(data))
	}()
}
