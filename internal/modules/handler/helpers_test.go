package handler

import (
	"bytes"
	"net/http/httptest"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/serviceflow/serviceflow-api/internal/middleware"
	"github.com/serviceflow/serviceflow-api/internal/modules/model"
)

var (
	alice = &model.User{ID: 1, Name: "Alice", Email: "alice@example.com"}
	root  = &model.User{ID: 3, Name: "Root", Email: "root@example.com", IsSuperuser: true}
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// asUser simulates JWTAuth.
func asUser(u *model.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		if u != nil {
			c.Set(middleware.UserKey, u)
		}
		c.Next()
	}
}

// withProject simulates APIKeyAuth.
func withProject(p *model.Project) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ProjectKey, p)
		c.Next()
	}
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf *bytes.Buffer
	if body != nil {
		b, _ := sonic.Marshal(body)
		buf = bytes.NewBuffer(b)
	} else {
		buf = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doRaw(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

