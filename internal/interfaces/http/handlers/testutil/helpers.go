package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/instamakaan/instamakaan/internal/shared/authorization"
	"github.com/instamakaan/instamakaan/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// NewTestContext builds a gin context for calling a handler method directly.
// A non-nil body is sent as JSON; a string body is sent verbatim so tests can
// post malformed payloads.
func NewTestContext(method, path string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	switch b := body.(type) {
	case nil:
		c.Request = httptest.NewRequest(method, path, nil)
	case string:
		c.Request = httptest.NewRequest(method, path, bytes.NewBufferString(b))
		c.Request.Header.Set("Content-Type", "application/json")
	default:
		raw, _ := json.Marshal(b)
		c.Request = httptest.NewRequest(method, path, bytes.NewReader(raw))
		c.Request.Header.Set("Content-Type", "application/json")
	}
	return c, w
}

// SetActor simulates the auth middleware for the given caller.
func SetActor(c *gin.Context, actor authorization.Actor) {
	authorization.SetActor(c, actor)
}

// PublicVisitor leaves the context anonymous; handlers under the public
// routes must not require an actor.
func PublicVisitor(c *gin.Context) {
	authorization.SetActor(c, authorization.Actor{})
}

// AdminActor, AgentActor and OwnerActor build callers for handler tests.
func AdminActor() authorization.Actor {
	return authorization.NewActor("admin_1", authorization.RoleAdmin, "Admin")
}

func AgentActor(id string) authorization.Actor {
	return authorization.NewActor(id, authorization.RoleAgent, "Agent "+id)
}

func OwnerActor(id string) authorization.Actor {
	return authorization.NewActor(id, authorization.RoleOwner, "Owner "+id)
}

// SetURLParam sets a URL parameter on the gin context.
func SetURLParam(c *gin.Context, key, value string) {
	c.Params = append(c.Params, gin.Param{Key: key, Value: value})
}

// SetQueryParams sets query parameters on the gin context.
func SetQueryParams(c *gin.Context, params map[string]string) {
	q := url.Values{}
	for k, v := range params {
		q.Set(k, v)
	}
	c.Request.URL.RawQuery = q.Encode()
}

// ParseResponse parses the JSON response body into the target struct.
func ParseResponse(w *httptest.ResponseRecorder, target interface{}) error {
	return json.Unmarshal(w.Body.Bytes(), target)
}

// APIResponse mirrors utils.APIResponse for test assertions.
type APIResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *ErrorInfo      `json:"error,omitempty"`
	Message string          `json:"message,omitempty"`
}

// ErrorInfo mirrors utils.ErrorInfo for test assertions.
type ErrorInfo struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// NewMockLogger returns a logger that discards everything, so handler tests
// exercise the real slog path without noise.
func NewMockLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// DecodeData unmarshals the data field of a success envelope.
func DecodeData(w *httptest.ResponseRecorder, target interface{}) error {
	var resp APIResponse
	if err := ParseResponse(w, &resp); err != nil {
		return err
	}
	return json.Unmarshal(resp.Data, target)
}
