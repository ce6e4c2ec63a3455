package checks

import (
	"context"
	"errors"
	"testing"

	"ue-intellisense/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCheckStorage(t *testing.T) {
	t.Run("Bucket Missing", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "backups").Return(false, nil)

		report, err := CheckStorage(context.Background(), mockClient, "backups")
		require.NoError(t, err)
		assert.True(t, report.BucketMissing)
		assert.Equal(t, RequiredFolders, report.MissingFolders)
		assert.False(t, report.Healthy())
	})

	t.Run("Bucket Error", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "backups").Return(false, errors.New("denied"))

		_, err := CheckStorage(context.Background(), mockClient, "backups")
		assert.ErrorContains(t, err, "denied")
	})

	t.Run("Folder Missing", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "backups").Return(true, nil)
		ch := make(chan minio.ObjectInfo)
		close(ch)
		mockClient.On("ListObjects", mock.Anything, "backups", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))

		report, err := CheckStorage(context.Background(), mockClient, "backups")
		require.NoError(t, err)
		assert.False(t, report.BucketMissing)
		assert.Equal(t, []string{"backups"}, report.MissingFolders)
	})

	t.Run("All Present", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "backups").Return(true, nil)
		for _, folder := range RequiredFolders {
			ch := make(chan minio.ObjectInfo, 1)
			ch <- minio.ObjectInfo{Key: folder + "/"}
			close(ch)
			mockClient.On("ListObjects", mock.Anything, "backups", mock.MatchedBy(func(opts minio.ListObjectsOptions) bool {
				return opts.Prefix == folder+"/"
			})).Return((<-chan minio.ObjectInfo)(ch))
		}

		report, err := CheckStorage(context.Background(), mockClient, "backups")
		require.NoError(t, err)
		assert.True(t, report.Healthy())
	})
}

func TestFixStorage(t *testing.T) {
	logger := zap.NewNop()

	t.Run("Creates Bucket And Folders", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("MakeBucket", mock.Anything, "backups", minio.MakeBucketOptions{Region: "eu-west-1"}).Return(nil)
		mockClient.On("PutObject", mock.Anything, "backups", "backups/", mock.Anything, int64(0), mock.Anything).Return(minio.UploadInfo{}, nil)

		report := &StorageReport{Bucket: "backups", BucketMissing: true, MissingFolders: []string{"backups"}}
		err := FixStorage(context.Background(), mockClient, "eu-west-1", logger, report)
		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Folders Only", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("PutObject", mock.Anything, "backups", mock.Anything, mock.Anything, int64(0), mock.Anything).Return(minio.UploadInfo{}, nil)

		report := &StorageReport{Bucket: "backups", MissingFolders: []string{"backups"}}
		assert.NoError(t, FixStorage(context.Background(), mockClient, "", logger, report))
		mockClient.AssertNumberOfCalls(t, "PutObject", 1)
		mockClient.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("MakeBucket Failure", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("MakeBucket", mock.Anything, "backups", mock.Anything).Return(errors.New("quota"))

		report := &StorageReport{Bucket: "backups", BucketMissing: true}
		assert.ErrorContains(t, FixStorage(context.Background(), mockClient, "", logger, report), "quota")
	})
}
