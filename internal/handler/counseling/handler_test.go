package counseling

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	model "github.com/yujin6121/maeum/backend/internal/model/counseling"
	counselingservice "github.com/yujin6121/maeum/backend/internal/service/counseling"
)

type stubCounselor struct {
	chatResult model.ChatResult
	response   model.Response
	err        error
}

func (s *stubCounselor) SendChat(_ context.Context, _ string, _ []model.ChatTurn, _ string) model.ChatResult {
	return s.chatResult
}

func (s *stubCounselor) SendCounseling(_ context.Context, req model.Request) (model.Response, error) {
	if strings.TrimSpace(req.Concern) == "" {
		return model.Response{}, counselingservice.ErrConcernRequired
	}
	return s.response, s.err
}

func setupRouter(counselor Counselor) *chi.Mux {
	r := chi.NewRouter()
	New(counselor, nil).RegisterRoutes(r)
	return r
}

func postJSON(t *testing.T, r http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestChatReturnsResult(t *testing.T) {
	r := setupRouter(&stubCounselor{chatResult: model.ChatResult{Response: "천천히 말씀해주세요."}})

	resp := postJSON(t, r, "/chat", map[string]any{"message": "요즘 고민이 많아요"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var body chatResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Response != "천천히 말씀해주세요." || body.SuicideRisk || body.CrisisDetected {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestChatFlagsCrisisFromMessage(t *testing.T) {
	r := setupRouter(&stubCounselor{chatResult: model.ChatResult{Response: "응답"}})

	resp := postJSON(t, r, "/chat", map[string]any{"message": "이제 자살 생각밖에 안 나요"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var body chatResponse
	json.Unmarshal(resp.Body.Bytes(), &body)
	if !body.CrisisDetected || !body.SuicideRisk {
		t.Fatalf("expected crisis flags, got %+v", body)
	}
}

func TestChatRequiresMessage(t *testing.T) {
	r := setupRouter(&stubCounselor{})

	resp := postJSON(t, r, "/chat", map[string]any{"message": "  "})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestChatRejectsInvalidBody(t *testing.T) {
	r := setupRouter(&stubCounselor{})

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader("{broken"))
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestCounselingSuccess(t *testing.T) {
	want := model.Response{
		Response:        "함께 이야기해봐요.",
		EmotionAnalysis: map[string]float64{"sadness": 1},
		CrisisLevel:     "low",
		Recommendations: []string{"충분한 수면을 취하세요"},
	}
	r := setupRouter(&stubCounselor{response: want})

	resp := postJSON(t, r, "/counseling/chat", model.Request{
		Concern: "잠이 안 와요", Emotions: []string{"anxious"}, Intensity: 3,
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var got model.Response
	if err := json.Unmarshal(resp.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.Response != want.Response || got.CrisisLevel != want.CrisisLevel {
		t.Fatalf("unexpected response: %+v", got)
	}
}

func TestCounselingValidationFailure(t *testing.T) {
	r := setupRouter(&stubCounselor{})

	resp := postJSON(t, r, "/counseling/chat", model.Request{Emotions: []string{"sad"}, Intensity: 3})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}
