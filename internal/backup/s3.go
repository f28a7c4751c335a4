package backup

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// jsonlContentType matches the JSONL payload the scheduler exports.
const jsonlContentType = "application/x-ndjson"

// S3Destination writes each backup to an S3-compatible bucket under a
// dated object key, so a day's attendance runs accumulate instead of
// overwriting one another.
type S3Destination struct {
	client *s3.Client
	bucket string
	prefix string
	now    func() time.Time
}

// NewS3Destination creates an S3 destination rooted at prefix. If endpoint
// is non-empty, path-style addressing is enabled (for MinIO and similar).
func NewS3Destination(ctx context.Context, bucket, prefix, region, endpoint string) (*S3Destination, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	var s3opts []func(*s3.Options)
	if endpoint != "" {
		s3opts = append(s3opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		})
	}

	return &S3Destination{
		client: s3.NewFromConfig(cfg, s3opts...),
		bucket: bucket,
		prefix: prefix,
		now:    time.Now,
	}, nil
}

// objectKey names one backup run: <prefix>/<day>/attendance-<clock>.jsonl,
// e.g. rollcall/2026-08-28/attendance-091500.jsonl. Times are UTC so keys
// sort chronologically regardless of the machine's zone.
func (d *S3Destination) objectKey(t time.Time) string {
	t = t.UTC()
	name := "attendance-" + t.Format("150405") + ".jsonl"
	return path.Join(d.prefix, t.Format("2006-01-02"), name)
}

// Write uploads one JSONL backup under a fresh dated key.
func (d *S3Destination) Write(ctx context.Context, data []byte) error {
	key := d.objectKey(d.now())
	_, err := d.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(d.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(jsonlContentType),
	})
	if err != nil {
		return fmt.Errorf("s3 put %s: %w", key, err)
	}
	return nil
}
