// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind the Client interface so backups work
// against AWS S3 or a self-hosted MinIO, and so tests can use mocks.Client.
//
// # Operations
//
//   - BucketExists / MakeBucket: bucket checks for the integrity command.
//   - PutObject: uploads a backup.
//   - GetObject: reads a backup back for restore.
//   - ListObjects: lists backups under a prefix.
//   - RemoveObjects: prunes old backups.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
package storage
