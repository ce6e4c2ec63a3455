package backup

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"sort"
	"strings"
	"time"

	"ue-intellisense/core/project"
	"ue-intellisense/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Prefix is the root folder of every backup in the bucket.
const Prefix = "backups"

const fileName = "c_cpp_properties.json"

// Object is one stored c_cpp_properties.json backup.
type Object struct {
	Key          string    `json:"key" yaml:"key"`
	RunID        string    `json:"run_id" yaml:"run_id"`
	Workspace    string    `json:"workspace" yaml:"workspace"`
	Size         int64     `json:"size" yaml:"size"`
	LastModified time.Time `json:"last_modified" yaml:"last_modified"`
}

// Uploader copies c_cpp_properties.json files to object storage before they
// are rewritten, and brings them back on request.
type Uploader struct {
	client storage.Client
	bucket string
	logger *zap.Logger
}

// NewUploader creates an uploader writing to bucket.
func NewUploader(client storage.Client, bucket string, logger *zap.Logger) *Uploader {
	return &Uploader{client: client, bucket: bucket, logger: logger}
}

// Key returns the object name of a workspace's backup for a run.
func Key(name, runID, workspace string) string {
	return path.Join(Prefix, name, runID, workspace, fileName)
}

// Upload stores the original content of every pending write and returns the
// object keys.
func (u *Uploader) Upload(ctx context.Context, runID, name string, pending []project.PendingWrite) ([]string, error) {
	exists, err := u.client.BucketExists(ctx, u.bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", u.bucket)
	}

	keys := make([]string, 0, len(pending))
	for _, w := range pending {
		key := Key(name, runID, w.Workspace)
		_, err := u.client.PutObject(ctx, u.bucket, key, bytes.NewReader(w.Original), int64(len(w.Original)), minio.PutObjectOptions{
			ContentType: "application/json",
		})
		if err != nil {
			return keys, fmt.Errorf("failed to upload %s: %w", key, err)
		}
		u.logger.Debug("Backed up c_cpp_properties.json", zap.String("workspace", w.Workspace), zap.String("key", key))
		keys = append(keys, key)
	}
	return keys, nil
}

// List returns the backups of a project, newest first.
func (u *Uploader) List(ctx context.Context, name string) ([]Object, error) {
	prefix := path.Join(Prefix, name) + "/"
	opts := minio.ListObjectsOptions{Prefix: prefix, Recursive: true}

	var objects []Object
	for info := range u.client.ListObjects(ctx, u.bucket, opts) {
		if info.Err != nil {
			return nil, fmt.Errorf("failed to list backups: %w", info.Err)
		}
		parts := strings.Split(strings.TrimPrefix(info.Key, prefix), "/")
		if len(parts) != 3 || parts[2] != fileName {
			continue
		}
		objects = append(objects, Object{
			Key:          info.Key,
			RunID:        parts[0],
			Workspace:    parts[1],
			Size:         info.Size,
			LastModified: info.LastModified,
		})
	}

	sort.SliceStable(objects, func(i, j int) bool {
		return objects[i].LastModified.After(objects[j].LastModified)
	})
	return objects, nil
}

// Restore writes the backups of a run over the project's current
// c_cpp_properties.json files and returns the paths written.
func (u *Uploader) Restore(ctx context.Context, p *project.Project, runID string) ([]string, error) {
	objects, err := u.List(ctx, p.Name())
	if err != nil {
		return nil, err
	}

	var restored []string
	for _, obj := range objects {
		if obj.RunID != runID {
			continue
		}
		ws, ok := p.Workspace(obj.Workspace)
		if !ok {
			u.logger.Warn("Backup workspace is not part of the project", zap.String("workspace", obj.Workspace))
			continue
		}

		data, err := u.read(ctx, obj.Key)
		if err != nil {
			return restored, err
		}
		dest := ws.PropertiesPath()
		if err := os.WriteFile(dest, data, 0644); err != nil {
			return restored, fmt.Errorf("failed to write %s: %w", dest, err)
		}
		restored = append(restored, dest)
	}

	if len(restored) == 0 {
		return nil, fmt.Errorf("no backup found for run %s", runID)
	}
	return restored, nil
}

func (u *Uploader) read(ctx context.Context, key string) ([]byte, error) {
	obj, err := u.client.GetObject(ctx, u.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to download %s: %w", key, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return data, nil
}

// Prune deletes every backup of a project except those of the keep most
// recent runs, and returns the deleted keys.
func (u *Uploader) Prune(ctx context.Context, name string, keep int) ([]string, error) {
	objects, err := u.List(ctx, name)
	if err != nil {
		return nil, err
	}

	kept := make(map[string]bool)
	var stale []string
	for _, obj := range objects {
		if !kept[obj.RunID] && len(kept) < keep {
			kept[obj.RunID] = true
		}
		if !kept[obj.RunID] {
			stale = append(stale, obj.Key)
		}
	}
	if len(stale) == 0 {
		return nil, nil
	}

	objectsCh := make(chan minio.ObjectInfo, len(stale))
	for _, key := range stale {
		objectsCh <- minio.ObjectInfo{Key: key}
	}
	close(objectsCh)

	for rErr := range u.client.RemoveObjects(ctx, u.bucket, objectsCh, minio.RemoveObjectsOptions{}) {
		if rErr.Err != nil {
			return nil, fmt.Errorf("failed to delete %s: %w", rErr.ObjectName, rErr.Err)
		}
	}

	u.logger.Info("Pruned backups", zap.String("project", name), zap.Int("deleted", len(stale)))
	return stale, nil
}
