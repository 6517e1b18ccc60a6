package counseling

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/yujin6121/maeum/backend/internal/analysis/crisis"
	model "github.com/yujin6121/maeum/backend/internal/model/counseling"
	counselingservice "github.com/yujin6121/maeum/backend/internal/service/counseling"
	"github.com/yujin6121/maeum/backend/pkg/utils"
)

// Counselor 는 핸들러가 의존하는 상담 클라이언트 동작.
type Counselor interface {
	SendChat(ctx context.Context, message string, history []model.ChatTurn, emotion string) model.ChatResult
	SendCounseling(ctx context.Context, req model.Request) (model.Response, error)
}

// DraftRecorder 는 마지막 AI 응답을 초안에 남기는 동작.
type DraftRecorder interface {
	SetLastResponse(resp model.Response) error
}

// Handler 상담 API 의 HTTP 처리기
type Handler struct {
	counselor Counselor
	draft     DraftRecorder
}

// New 상담 핸들러 생성. draft 는 nil 일 수 있다.
func New(counselor Counselor, draft DraftRecorder) *Handler {
	return &Handler{counselor: counselor, draft: draft}
}

// RegisterRoutes 상담 관련 라우트 등록
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat", h.handleChat)
	r.Post("/counseling/chat", h.handleCounseling)
}

type chatPayload struct {
	Message             string           `json:"message"`
	ConversationHistory []model.ChatTurn `json:"conversation_history"`
	Emotion             string           `json:"emotion"`
}

type chatResponse struct {
	Response       string `json:"response"`
	SuicideRisk    bool   `json:"suicide_risk"`
	CrisisDetected bool   `json:"crisis_detected"`
}

// handleChat 실시간 채팅. 백엔드 장애 시에도 항상 안내 문구를 돌려준다.
func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var payload chatPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(payload.Message) == "" {
		utils.RespondError(w, http.StatusBadRequest, "message is required")
		return
	}

	result := h.counselor.SendChat(r.Context(), payload.Message, payload.ConversationHistory, payload.Emotion)

	// 클라이언트 측 위기 감지가 배너 노출을 보조한다.
	assessment := crisis.Assess(payload.Message)
	utils.RespondJSON(w, http.StatusOK, chatResponse{
		Response:       result.Response,
		SuicideRisk:    result.SuicideRisk || assessment.SuicideRisk,
		CrisisDetected: assessment.Detected || result.SuicideRisk,
	})
}

// handleCounseling 구조화된 상담 요청.
func (h *Handler) handleCounseling(w http.ResponseWriter, r *http.Request) {
	var payload model.Request
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	response, err := h.counselor.SendCounseling(r.Context(), payload)
	if err != nil {
		if isValidationError(err) {
			utils.RespondError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("[counseling] structured request failed: %v", err)
		utils.RespondError(w, http.StatusBadGateway, "counseling backend unavailable")
		return
	}

	if h.draft != nil {
		if err := h.draft.SetLastResponse(response); err != nil {
			log.Printf("[counseling] failed to record last response: %v", err)
		}
	}

	utils.RespondJSON(w, http.StatusOK, response)
}

func isValidationError(err error) bool {
	return errors.Is(err, counselingservice.ErrConcernRequired) ||
		errors.Is(err, counselingservice.ErrEmotionsRequired) ||
		errors.Is(err, counselingservice.ErrInvalidIntensity)
}
