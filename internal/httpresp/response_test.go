package httpresp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestListEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	List(c, []string{"08:00", "08:30"})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var out struct {
		Data  []string `json:"data"`
		Total int      `json:"total"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if out.Total != 2 || len(out.Data) != 2 {
		t.Fatalf("unexpected envelope: %+v", out)
	}
}

func TestListEnvelopeEmpty(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	List(c, []int{})

	var out struct {
		Data  []int `json:"data"`
		Total int   `json:"total"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if out.Total != 0 || out.Data == nil {
		t.Fatalf("empty list must serialize as [] with total 0: %+v", out)
	}
}
