package routes

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func TestCloseAll(t *testing.T) {
	var closed []string
	closeAll([]io.Closer{
		closerFunc(func() error {
			closed = append(closed, "redis")
			return errors.New("conn reset")
		}),
		closerFunc(func() error {
			closed = append(closed, "kafka")
			return nil
		}),
	})

	if len(closed) != 2 || closed[0] != "redis" || closed[1] != "kafka" {
		t.Fatalf("expected every closer called in order, got %v", closed)
	}
}

func TestSetMiddlewares_RecoversPanics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	setMiddlewares()
	router.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}
