package session

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	model "github.com/yujin6121/maeum/backend/internal/model/counseling"
	"github.com/yujin6121/maeum/backend/internal/model/emotion"
	sessionservice "github.com/yujin6121/maeum/backend/internal/service/session"
	"github.com/yujin6121/maeum/backend/pkg/utils"
)

// Handler 상담 기록과 작성 중인 초안의 HTTP 처리기
type Handler struct {
	sessions *sessionservice.Store
	draft    *sessionservice.DraftStore
	emotions emotion.Store
}

// New 세션 핸들러 생성
func New(sessions *sessionservice.Store, draft *sessionservice.DraftStore, emotions emotion.Store) *Handler {
	return &Handler{sessions: sessions, draft: draft, emotions: emotions}
}

// RegisterRoutes 세션/초안 라우트 등록
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/sessions", h.handleListSessions)
	r.Post("/sessions", h.handleAppendSession)
	r.Delete("/sessions", h.handleClearSessions)
	r.Delete("/sessions/{id}", h.handleRemoveSession)

	r.Get("/draft", h.handleGetDraft)
	r.Put("/draft/emotions", h.handlePutEmotions)
	r.Put("/draft/intensity", h.handlePutIntensity)
	r.Put("/draft/concern", h.handlePutConcern)
	r.Delete("/draft", h.handleClearDraft)
}

// handleListSessions 저장된 상담 기록, 최신순
func (h *Handler) handleListSessions(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.sessions.List())
}

// handleAppendSession 완료된 상담 한 건을 기록에 추가
func (h *Handler) handleAppendSession(w http.ResponseWriter, r *http.Request) {
	var exchange model.Exchange
	if err := json.NewDecoder(r.Body).Decode(&exchange); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if exchange.Concern == "" && exchange.Response.Response == "" {
		utils.RespondError(w, http.StatusBadRequest, "exchange is empty")
		return
	}

	saved, err := h.sessions.Append(exchange)
	if err != nil {
		log.Printf("[session] append failed: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to save session")
		return
	}

	// 기록으로 확정되면 진행 중이던 초안은 비운다.
	if err := h.draft.Clear(); err != nil {
		log.Printf("[session] draft clear failed: %v", err)
	}

	utils.RespondJSON(w, http.StatusCreated, saved)
}

// handleRemoveSession 단건 삭제. 없는 id 는 무시된다.
func (h *Handler) handleRemoveSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.sessions.Remove(id); err != nil {
		log.Printf("[session] remove failed: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to remove session")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "removed"})
}

// handleClearSessions 전체 기록 삭제
func (h *Handler) handleClearSessions(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Clear(); err != nil {
		log.Printf("[session] clear failed: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to clear sessions")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}

type draftView struct {
	Emotions     []string        `json:"emotions"`
	Intensity    int             `json:"intensity"`
	Concern      string          `json:"concern"`
	LastResponse *model.Response `json:"lastResponse,omitempty"`
}

// handleGetDraft 진행 중인 라운드의 현재 상태
func (h *Handler) handleGetDraft(w http.ResponseWriter, r *http.Request) {
	view := draftView{
		Emotions:  h.draft.Emotions(),
		Intensity: h.draft.Intensity(),
		Concern:   h.draft.Concern(),
	}
	if resp, ok := h.draft.LastResponse(); ok {
		view.LastResponse = &resp
	}
	utils.RespondJSON(w, http.StatusOK, view)
}

// handlePutEmotions 감정 선택 저장
func (h *Handler) handlePutEmotions(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Emotions []string `json:"emotions"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(payload.Emotions) == 0 {
		utils.RespondError(w, http.StatusBadRequest, "emotions are required")
		return
	}
	for _, value := range payload.Emotions {
		if _, ok := h.emotions.FindByValue(value); !ok {
			utils.RespondError(w, http.StatusBadRequest, "unknown emotion: "+value)
			return
		}
	}
	if err := h.draft.SetEmotions(payload.Emotions); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to save emotions")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "saved"})
}

// handlePutIntensity 감정 강도 저장 (1-5)
func (h *Handler) handlePutIntensity(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Intensity int `json:"intensity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if payload.Intensity < 1 || payload.Intensity > 5 {
		utils.RespondError(w, http.StatusBadRequest, "intensity must be between 1 and 5")
		return
	}
	if err := h.draft.SetIntensity(payload.Intensity); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to save intensity")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "saved"})
}

// handlePutConcern 고민 텍스트 저장
func (h *Handler) handlePutConcern(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Concern string `json:"concern"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.draft.SetConcern(payload.Concern); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to save concern")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "saved"})
}

// handleClearDraft 초안 전체 삭제
func (h *Handler) handleClearDraft(w http.ResponseWriter, r *http.Request) {
	if err := h.draft.Clear(); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to clear draft")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}
