// helpers_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"leetcode_journey/internal/config"
	"leetcode_journey/internal/model"
	"leetcode_journey/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// httpRequestDetails はHTTPリクエストの送信に必要な情報をまとめます。
type httpRequestDetails struct {
	Method  string
	Path    string
	Body    interface{}
	Headers map[string]string
}

// sendRequest はHTTPリクエストを送信し、ステータスコードを検証してボディを返します。
func sendRequest(t *testing.T, server *httptest.Server, details httpRequestDetails, expectedCode int) (*http.Response, []byte) {
	t.Helper()

	var reqBodyReader io.Reader
	if details.Body != nil {
		if strPayload, ok := details.Body.(string); ok {
			reqBodyReader = strings.NewReader(strPayload)
		} else {
			reqBodyBytes, err := json.Marshal(details.Body)
			require.NoError(t, err, "Failed to marshal request body")
			reqBodyReader = bytes.NewBuffer(reqBodyBytes)
		}
	}

	req, err := http.NewRequest(details.Method, server.URL+details.Path, reqBodyReader)
	require.NoError(t, err, "Failed to create request")

	if reqBodyReader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range details.Headers {
		req.Header.Set(key, value)
	}

	resp, err := server.Client().Do(req)
	require.NoError(t, err, "Failed to execute request")
	defer resp.Body.Close()

	assert.Equal(t, expectedCode, resp.StatusCode, "Status code mismatch")

	respBodyBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "Failed to read response body")

	return resp, respBodyBytes
}

// verifyErrorResponse はエラーレスポンスのボディを検証します。
func verifyErrorResponse(t *testing.T, bodyBytes []byte, expectedErrorMsgPart string) {
	t.Helper()
	var errResp model.APIErrorResponse
	require.NoError(t, json.Unmarshal(bodyBytes, &errResp), "raw body: %s", string(bodyBytes))
	assert.Equal(t, "error", errResp.Status)
	assert.Contains(t, errResp.Message, expectedErrorMsgPart)
}

// setupTestDB はテストごとに独立したインメモリ sqlite を用意します。
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := repository.NewDB(config.DatabaseConfig{Driver: config.DriverSQLite, URL: dsn}, testLogger)
	require.NoError(t, err)
	require.NoError(t, repository.Migrate(db))
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

// testConfig は既定値の CORS 設定を持つテスト用設定
func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{ReviewLimit: 20},
		CORS: config.CORSConfig{
			AllowedOrigins: config.DefaultAllowedOrigins,
			AllowedMethods: config.DefaultAllowedMethods,
			AllowedHeaders: config.DefaultAllowedHeaders,
			MaxAge:         config.DefaultCORSMaxAge,
		},
	}
}
