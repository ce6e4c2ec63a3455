package integrity

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"ue-intellisense/core/project"
	"ue-intellisense/core/storage/mocks"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T) (*fiber.App, *mocks.Client, sqlmock.Sqlmock) {
	app := fiber.New()
	mockClient := new(mocks.Client)
	db, sqlMock := setupMockDB(t)
	svc := NewService(project.Config{Root: writeProject(t)}, mockClient, testStorage, zap.NewNop(), db)
	NewHandler(svc).RegisterRoutes(app)
	return app, mockClient, sqlMock
}

func TestHandleWorkspaceCheck(t *testing.T) {
	app, _, _ := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/workspace", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["healthy"])
}

func TestHandleStorageCheck(t *testing.T) {
	t.Run("Checked", func(t *testing.T) {
		app, mockClient, _ := setupTestApp(t)
		mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
		ch := make(chan minio.ObjectInfo)
		close(ch)
		mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))

		resp, err := app.Test(httptest.NewRequest("GET", "/integrity/storage", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "checked", body["status"])
	})

	t.Run("Fixed", func(t *testing.T) {
		app, mockClient, _ := setupTestApp(t)
		mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(false, nil)
		mockClient.On("MakeBucket", mock.Anything, "test-bucket", mock.Anything).Return(nil)
		mockClient.On("PutObject", mock.Anything, "test-bucket", "backups/", mock.Anything, int64(0), mock.Anything).Return(minio.UploadInfo{}, nil)

		resp, err := app.Test(httptest.NewRequest("GET", "/integrity/storage?fix=true", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "fixed", body["status"])
		mockClient.AssertExpectations(t)
	})

	t.Run("Error", func(t *testing.T) {
		app, mockClient, _ := setupTestApp(t)
		mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(false, assert.AnError)

		resp, err := app.Test(httptest.NewRequest("GET", "/integrity/storage", nil))
		require.NoError(t, err)
		assert.Equal(t, 500, resp.StatusCode)
	})
}

func TestHandleServerCheck(t *testing.T) {
	app, _, sqlMock := setupTestApp(t)

	sqlMock.ExpectQuery(".*").WillReturnRows(sqlmock.NewRows([]string{"Field", "Type"}))
	sqlMock.ExpectQuery(".*").WillReturnRows(sqlmock.NewRows([]string{"Field", "Type"}))

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/server", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, false, body["matched"])
}

func TestHandleIntegrityCheck(t *testing.T) {
	app, mockClient, sqlMock := setupTestApp(t)

	// Fail fast on storage and server; the combined report still succeeds.
	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(false, assert.AnError)
	sqlMock.ExpectQuery(".*").WillReturnError(assert.AnError)
	sqlMock.ExpectQuery(".*").WillReturnError(assert.AnError)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity", nil), 2000)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body, "workspace")
	assert.Equal(t, "error", body["storage"].(map[string]any)["status"])
	assert.Contains(t, body, "server")
}
