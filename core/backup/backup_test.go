package backup

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"ue-intellisense/core/project"
	"ue-intellisense/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func objectsChan(objects ...minio.ObjectInfo) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo, len(objects))
	for _, o := range objects {
		ch <- o
	}
	close(ch)
	return ch
}

func TestKey(t *testing.T) {
	assert.Equal(t, "backups/MyGame/run-1/UE5/c_cpp_properties.json", Key("MyGame", "run-1", "UE5"))
}

func TestUploader_Upload(t *testing.T) {
	pending := []project.PendingWrite{
		{Workspace: "MyGame", Original: []byte(`{"a":1}`)},
		{Workspace: "UE5", Original: []byte(`{"b":2}`)},
	}

	t.Run("Success", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "backups-bucket").Return(true, nil)
		client.On("PutObject", mock.Anything, "backups-bucket", "backups/MyGame/run-1/MyGame/c_cpp_properties.json", mock.Anything, int64(7), mock.Anything).
			Return(minio.UploadInfo{}, nil)
		client.On("PutObject", mock.Anything, "backups-bucket", "backups/MyGame/run-1/UE5/c_cpp_properties.json", mock.Anything, int64(7), mock.Anything).
			Return(minio.UploadInfo{}, nil)

		u := NewUploader(client, "backups-bucket", zap.NewNop())
		keys, err := u.Upload(context.Background(), "run-1", "MyGame", pending)

		require.NoError(t, err)
		assert.Len(t, keys, 2)
		client.AssertExpectations(t)
	})

	t.Run("Bucket Missing", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "backups-bucket").Return(false, nil)

		u := NewUploader(client, "backups-bucket", zap.NewNop())
		_, err := u.Upload(context.Background(), "run-1", "MyGame", pending)

		assert.ErrorContains(t, err, "does not exist")
		client.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Upload Failure", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "backups-bucket").Return(true, nil)
		client.On("PutObject", mock.Anything, "backups-bucket", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(minio.UploadInfo{}, errors.New("boom"))

		u := NewUploader(client, "backups-bucket", zap.NewNop())
		keys, err := u.Upload(context.Background(), "run-1", "MyGame", pending)

		assert.ErrorContains(t, err, "boom")
		assert.Empty(t, keys)
	})
}

func TestUploader_List(t *testing.T) {
	now := time.Now()
	client := new(mocks.Client)
	client.On("ListObjects", mock.Anything, "b", mock.MatchedBy(func(o minio.ListObjectsOptions) bool {
		return o.Prefix == "backups/MyGame/" && o.Recursive
	})).Return(objectsChan(
		minio.ObjectInfo{Key: "backups/MyGame/old/MyGame/c_cpp_properties.json", LastModified: now.Add(-time.Hour)},
		minio.ObjectInfo{Key: "backups/MyGame/new/UE5/c_cpp_properties.json", LastModified: now, Size: 12},
		minio.ObjectInfo{Key: "backups/MyGame/stray.txt", LastModified: now},
	))

	u := NewUploader(client, "b", zap.NewNop())
	objects, err := u.List(context.Background(), "MyGame")

	require.NoError(t, err)
	require.Len(t, objects, 2)
	assert.Equal(t, "new", objects[0].RunID)
	assert.Equal(t, "UE5", objects[0].Workspace)
	assert.Equal(t, int64(12), objects[0].Size)
	assert.Equal(t, "old", objects[1].RunID)
}

func TestUploader_ListError(t *testing.T) {
	client := new(mocks.Client)
	client.On("ListObjects", mock.Anything, "b", mock.Anything).
		Return(objectsChan(minio.ObjectInfo{Err: errors.New("denied")}))

	_, err := NewUploader(client, "b", zap.NewNop()).List(context.Background(), "MyGame")
	assert.ErrorContains(t, err, "denied")
}

func TestUploader_Prune(t *testing.T) {
	now := time.Now()
	client := new(mocks.Client)
	client.On("ListObjects", mock.Anything, "b", mock.Anything).Return(objectsChan(
		minio.ObjectInfo{Key: "backups/P/r1/Main/c_cpp_properties.json", LastModified: now.Add(-3 * time.Hour)},
		minio.ObjectInfo{Key: "backups/P/r2/Main/c_cpp_properties.json", LastModified: now.Add(-2 * time.Hour)},
		minio.ObjectInfo{Key: "backups/P/r3/Main/c_cpp_properties.json", LastModified: now.Add(-time.Hour)},
		minio.ObjectInfo{Key: "backups/P/r3/UE5/c_cpp_properties.json", LastModified: now.Add(-time.Hour)},
	))

	var removed []string
	closed := make(chan minio.RemoveObjectError)
	close(closed)
	client.On("RemoveObjects", mock.Anything, "b", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			for obj := range args.Get(2).(<-chan minio.ObjectInfo) {
				removed = append(removed, obj.Key)
			}
		}).
		Return((<-chan minio.RemoveObjectError)(closed))

	deleted, err := NewUploader(client, "b", zap.NewNop()).Prune(context.Background(), "P", 2)

	require.NoError(t, err)
	assert.Equal(t, []string{"backups/P/r1/Main/c_cpp_properties.json"}, deleted)
	assert.Equal(t, deleted, removed)
}

func TestUploader_PruneNothing(t *testing.T) {
	client := new(mocks.Client)
	client.On("ListObjects", mock.Anything, "b", mock.Anything).Return(objectsChan(
		minio.ObjectInfo{Key: "backups/P/r1/Main/c_cpp_properties.json"},
	))

	deleted, err := NewUploader(client, "b", zap.NewNop()).Prune(context.Background(), "P", 5)

	require.NoError(t, err)
	assert.Empty(t, deleted)
	client.AssertNotCalled(t, "RemoveObjects", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUploader_Restore(t *testing.T) {
	root := t.TempDir()
	files := map[string]string{
		"Demo.code-workspace":                  `{"folders":[{"name":"Demo","path":"."},{"name":"UE5","path":"Engine"}]}`,
		".vscode/c_cpp_properties.json":        `{"configurations":[{"name":"Demo","cppStandard":"c++20"}]}`,
		"Engine/.vscode/c_cpp_properties.json": `{"configurations":[{"name":"UE5","cppStandard":"c++20"}]}`,
	}
	for rel, content := range files {
		p := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	}
	p, err := project.Open(project.Config{Root: root})
	require.NoError(t, err)

	original := `{"configurations":[{"name":"Demo","cppStandard":"c++14"}]}`
	client := new(mocks.Client)
	client.On("ListObjects", mock.Anything, "b", mock.Anything).Return(objectsChan(
		minio.ObjectInfo{Key: "backups/Demo/run-9/Demo/c_cpp_properties.json"},
		minio.ObjectInfo{Key: "backups/Demo/run-8/UE5/c_cpp_properties.json"},
	))
	client.On("GetObject", mock.Anything, "b", "backups/Demo/run-9/Demo/c_cpp_properties.json", mock.Anything).
		Return(io.NopCloser(bytes.NewReader([]byte(original))), nil)

	u := NewUploader(client, "b", zap.NewNop())
	restored, err := u.Restore(context.Background(), p, "run-9")

	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, ".vscode", "c_cpp_properties.json")}, restored)
	data, err := os.ReadFile(restored[0])
	require.NoError(t, err)
	assert.Equal(t, original, string(data))

	_, err = u.Restore(context.Background(), p, "missing")
	assert.ErrorContains(t, err, "no backup found")
}
