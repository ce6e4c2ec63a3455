package history

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T) (*fiber.App, *Repository) {
	repo := setupRepo(t)
	app := fiber.New()
	NewHandler(repo, zap.NewNop()).RegisterRoutes(app)
	return app, repo
}

func TestHandleList(t *testing.T) {
	app, repo := setupTestApp(t)
	require.NoError(t, repo.Record(context.Background(), &Run{Project: "MyGame"}))
	require.NoError(t, repo.Record(context.Background(), &Run{Project: "Other"}))

	resp, err := app.Test(httptest.NewRequest("GET", "/history?project=MyGame&limit=5", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var runs []Run
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&runs))
	require.Len(t, runs, 1)
	assert.Equal(t, "MyGame", runs[0].Project)
}

func TestHandleGet(t *testing.T) {
	app, repo := setupTestApp(t)
	run := &Run{Project: "MyGame"}
	require.NoError(t, repo.Record(context.Background(), run))

	resp, err := app.Test(httptest.NewRequest("GET", "/history/"+run.ID, nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/history/unknown", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestLoader(t *testing.T) {
	feature := NewFeature(nil, zap.NewNop())
	assert.Equal(t, "history", feature.Name())
	assert.False(t, feature.IsEnabled())

	feature = NewFeature(setupRepo(t), zap.NewNop())
	assert.True(t, feature.IsEnabled())
	assert.NoError(t, feature.Load(fiber.New()))
}
