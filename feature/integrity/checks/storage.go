package checks

import (
	"bytes"
	"context"
	"fmt"

	"ue-intellisense/core/backup"
	"ue-intellisense/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// StorageReport describes what the backup bucket is missing.
type StorageReport struct {
	Bucket         string   `json:"bucket"`
	BucketMissing  bool     `json:"bucket_missing"`
	MissingFolders []string `json:"missing_folders"`
}

// Healthy reports whether nothing is missing.
func (r *StorageReport) Healthy() bool {
	return !r.BucketMissing && len(r.MissingFolders) == 0
}

// RequiredFolders lists the folders that must exist in the bucket.
var RequiredFolders = []string{backup.Prefix}

// CheckStorage inspects the backup bucket.
func CheckStorage(ctx context.Context, client storage.Client, bucket string) (*StorageReport, error) {
	report := &StorageReport{Bucket: bucket, MissingFolders: []string{}}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		report.BucketMissing = true
		report.MissingFolders = append(report.MissingFolders, RequiredFolders...)
		return report, nil
	}

	for _, folder := range RequiredFolders {
		opts := minio.ListObjectsOptions{
			Prefix:    folder + "/",
			Recursive: false,
			MaxKeys:   1,
		}

		found := false
		for range client.ListObjects(ctx, bucket, opts) {
			found = true
			break
		}

		if !found {
			report.MissingFolders = append(report.MissingFolders, folder)
		}
	}

	return report, nil
}

// FixStorage creates the bucket and the folders a report lists as missing.
func FixStorage(ctx context.Context, client storage.Client, region string, logger *zap.Logger, report *StorageReport) error {
	if report.BucketMissing {
		if err := client.MakeBucket(ctx, report.Bucket, minio.MakeBucketOptions{Region: region}); err != nil {
			logger.Error("Failed to create bucket", zap.String("bucket", report.Bucket), zap.Error(err))
			return fmt.Errorf("failed to create bucket %s: %w", report.Bucket, err)
		}
		logger.Info("Created missing bucket", zap.String("bucket", report.Bucket))
	}

	for _, folder := range report.MissingFolders {
		_, err := client.PutObject(ctx, report.Bucket, folder+"/", bytes.NewReader([]byte{}), 0, minio.PutObjectOptions{})
		if err != nil {
			logger.Error("Failed to create folder", zap.String("folder", folder), zap.Error(err))
			return err
		}
		logger.Info("Created missing folder", zap.String("folder", folder))
	}
	return nil
}
