package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	return body
}

func TestCreatedUsesHTTP201(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Created(c, gin.H{"id": 1})

	if w.Code != http.StatusCreated {
		t.Fatalf("status want 201 got %d", w.Code)
	}
	body := decode(t, w)
	if body["status_code"].(float64) != CodeOK {
		t.Fatalf("status_code want 0 got %v", body["status_code"])
	}
}

func TestErrorAttachesRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("request_id", "req-1")

	NotFound(c, "post not found")

	if w.Code != http.StatusOK {
		t.Fatalf("business errors keep HTTP 200, got %d", w.Code)
	}
	body := decode(t, w)
	if body["status_code"].(float64) != CodeNotFound {
		t.Fatalf("status_code want 404 got %v", body["status_code"])
	}
	data, ok := body["data"].(map[string]interface{})
	if !ok || data["request_id"] != "req-1" {
		t.Fatalf("request id should be attached, got %v", body["data"])
	}
}

func TestAttachRequestIDWrapsArbitraryData(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Set("request_id", "req-2")

	got, ok := attachRequestID(c, []int{1}).(gin.H)
	if !ok || got["request_id"] != "req-2" {
		t.Fatalf("non-map data should be wrapped, got %v", got)
	}
	if attachRequestID(nil, "x") != "x" {
		t.Fatalf("nil context should return data untouched")
	}
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	appErr := WrapError(CodeInternal, "failed", cause)
	if !errors.Is(appErr, cause) {
		t.Fatalf("app error should unwrap to cause")
	}
	if appErr.Error() != "failed: boom" {
		t.Fatalf("unexpected message: %s", appErr.Error())
	}
	if WrapError(CodeBadRequest, "bad", nil).Error() != "bad" {
		t.Fatalf("message without cause should be plain")
	}
}

func TestAsAppError(t *testing.T) {
	appErr := WrapError(CodeNotFound, "missing", errors.New("gone"))
	wrapped := fmt.Errorf("lookup: %w", appErr)

	got, ok := AsAppError(wrapped)
	if !ok || got != appErr {
		t.Fatalf("app error should be found in chain")
	}
	if _, ok := AsAppError(errors.New("plain")); ok {
		t.Fatalf("plain error is not an app error")
	}
	if _, ok := AsAppError(nil); ok {
		t.Fatalf("nil is not an app error")
	}
}

func TestAppErrorLogFields(t *testing.T) {
	if got := WrapError(CodeBadRequest, "bad", nil).LogFields(); len(got) != 4 {
		t.Fatalf("fields without cause want 4 got %v", got)
	}
	got := WrapError(CodeInternal, "failed", errors.New("boom")).LogFields()
	if len(got) != 6 || got[4] != "error" {
		t.Fatalf("fields with cause should end with error, got %v", got)
	}
}
