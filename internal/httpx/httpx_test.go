package httpx

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func init() {
	gin.SetMode(gin.TestMode)
	RegisterValidators()
}

func TestRequestID_GeneratesAndEchoes(t *testing.T) {
	t.Parallel()

	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, TraceID(c)) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	rid := w.Header().Get(HeaderRequestID)
	if rid == "" || w.Body.String() != rid {
		t.Fatalf("rid header=%q body=%q", rid, w.Body.String())
	}

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "fixed-id")
	r.ServeHTTP(w, req)
	if got := w.Header().Get(HeaderRequestID); got != "fixed-id" {
		t.Fatalf("rid=%q, want fixed-id", got)
	}
}

func TestCORS_AllowAll(t *testing.T) {
	t.Parallel()

	r := gin.New()
	r.Use(CORS([]string{"*"}))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://medishop.example")
	r.ServeHTTP(w, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("allow-origin=%q", got)
	}
}

type sample struct {
	ID     string  `json:"id" binding:"required,objectid"`
	Email  string  `json:"email" binding:"required,email"`
	Amount float64 `json:"amount" binding:"gt=0"`
}

func bind(t *testing.T, body string) string {
	t.Helper()
	var got string
	r := gin.New()
	r.POST("/", func(c *gin.Context) {
		var s sample
		if err := c.ShouldBindJSON(&s); err != nil {
			got = BindError(err)
		}
	})
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body)))
	return got
}

func TestBindError_Messages(t *testing.T) {
	t.Parallel()

	if msg := bind(t, `{"id":"zzz","email":"a@x.com","amount":1}`); msg != "id must be a valid id" {
		t.Fatalf("msg=%q", msg)
	}
	if msg := bind(t, `{"id":"`+primitive.NewObjectID().Hex()+`","amount":1}`); msg != "email value missing" {
		t.Fatalf("msg=%q", msg)
	}
	if msg := bind(t, `{"id":`); msg == "" {
		t.Fatalf("expected a message for broken JSON")
	}
	if msg := bind(t, `{"id":"`+primitive.NewObjectID().Hex()+`","email":"a@x.com","amount":"ten"}`); !strings.Contains(msg, "amount") {
		t.Fatalf("msg=%q", msg)
	}
	if msg := bind(t, `{"id":"`+primitive.NewObjectID().Hex()+`","email":"a@x.com","amount":3}`); msg != "" {
		t.Fatalf("valid body rejected: %q", msg)
	}
}

func TestRegister_ObjectIDTag(t *testing.T) {
	t.Parallel()

	v := validator.New()
	if err := register(v); err != nil {
		t.Fatalf("register: %v", err)
	}
	type ref struct {
		ID string `json:"id" validate:"objectid"`
	}
	if err := v.Struct(ref{ID: primitive.NewObjectID().Hex()}); err != nil {
		t.Fatalf("valid id rejected: %v", err)
	}
	err := v.Struct(ref{ID: "zzz"})
	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) || vErrs[0].Tag() != "objectid" || vErrs[0].Field() != "id" {
		t.Fatalf("err=%v, want objectid failure on id", err)
	}
}
