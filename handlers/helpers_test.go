package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Shahid-Raza547/civiltech-backend/config"
	"github.com/Shahid-Raza547/civiltech-backend/handlers"
	"github.com/Shahid-Raza547/civiltech-backend/middleware"
	"github.com/Shahid-Raza547/civiltech-backend/routes"
)

type testApp struct {
	handler http.Handler
	db      *gorm.DB
	uploads string
}

func fullConfig() config.Config {
	return config.Config{EnableGIS: true, EnableDocuments: true}
}

// newTestApp builds the whole stack over an in-memory sqlite database.
// A single pooled connection keeps the memory database alive for the
// test's lifetime.
func newTestApp(t *testing.T, cfg config.Config) *testApp {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	require.NoError(t, config.Migrate(db, cfg))

	uploads := t.TempDir()
	h := handlers.New(
		db,
		config.DetectFeatures(db),
		middleware.NewTokenService("test-secret"),
		handlers.NewFileStore(uploads),
	)

	return &testApp{
		handler: routes.Register(h, uploads),
		db:      db,
		uploads: uploads,
	}
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *apiError       `json:"error"`
}

func (app *testApp) request(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	resp := httptest.NewRecorder()
	app.handler.ServeHTTP(resp, req)
	return resp
}

func (app *testApp) requestRaw(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp := httptest.NewRecorder()
	app.handler.ServeHTTP(resp, req)
	return resp
}

func (app *testApp) requestWithToken(t *testing.T, method, path, token string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp := httptest.NewRecorder()
	app.handler.ServeHTTP(resp, req)
	return resp
}

func (app *testApp) multipart(t *testing.T, path string, fields map[string]string, fileField, fileName string, content []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if fileField != "" {
		part, err := mw.CreateFormFile(fileField, fileName)
		require.NoError(t, err)
		_, err = io.Copy(part, bytes.NewReader(content))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp := httptest.NewRecorder()
	app.handler.ServeHTTP(resp, req)
	return resp
}

// decodeData unwraps the success envelope into dest.
func decodeData(t *testing.T, resp *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &env))
	require.True(t, env.Success, "expected success envelope, got %s", resp.Body.String())
	require.NoError(t, json.Unmarshal(env.Data, dest))
}

// decodeError unwraps the error envelope.
func decodeError(t *testing.T, resp *httptest.ResponseRecorder) apiError {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &env))
	require.False(t, env.Success, "expected error envelope, got %s", resp.Body.String())
	require.NotNil(t, env.Error)
	return *env.Error
}

type createdResp struct {
	Message string `json:"message"`
	ID      uint   `json:"id"`
}

func created(t *testing.T, resp *httptest.ResponseRecorder) createdResp {
	t.Helper()

	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())
	var out createdResp
	decodeData(t, resp, &out)
	return out
}
