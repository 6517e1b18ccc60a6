package catalog

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yujin6121/maeum/backend/internal/model/emotion"
	"github.com/yujin6121/maeum/backend/internal/model/resource"
	"github.com/yujin6121/maeum/backend/pkg/utils"
)

// Fetcher 는 원격 카탈로그 조회 동작. 비활성화 상태이거나 조회에 실패하면
// 시드 데이터로 대체한다.
type Fetcher interface {
	FetchEmotions(ctx context.Context) ([]emotion.Tag, error)
	FetchCrisisResources(ctx context.Context) ([]resource.CrisisResource, error)
	UseBackend() bool
}

// Handler 감정/위기 리소스 카탈로그 HTTP 처리기
type Handler struct {
	fetcher   Fetcher
	emotions  emotion.Store
	resources []resource.CrisisResource
}

// New 카탈로그 핸들러 생성
func New(fetcher Fetcher, emotions emotion.Store, resources []resource.CrisisResource) *Handler {
	return &Handler{
		fetcher:   fetcher,
		emotions:  emotions,
		resources: append([]resource.CrisisResource(nil), resources...),
	}
}

// RegisterRoutes 카탈로그 라우트 등록
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/emotions", h.handleListEmotions)
	r.Get("/crisis-resources", h.handleListCrisisResources)
}

// handleListEmotions 선택 가능한 감정 목록
func (h *Handler) handleListEmotions(w http.ResponseWriter, r *http.Request) {
	if h.fetcher != nil && h.fetcher.UseBackend() {
		if tags, err := h.fetcher.FetchEmotions(r.Context()); err == nil {
			utils.RespondJSON(w, http.StatusOK, tags)
			return
		} else {
			log.Printf("[catalog] remote emotion fetch failed, using seed: %v", err)
		}
	}
	utils.RespondJSON(w, http.StatusOK, h.emotions.List())
}

// handleListCrisisResources 위기 상담 기관 목록
func (h *Handler) handleListCrisisResources(w http.ResponseWriter, r *http.Request) {
	if h.fetcher != nil && h.fetcher.UseBackend() {
		if resources, err := h.fetcher.FetchCrisisResources(r.Context()); err == nil {
			utils.RespondJSON(w, http.StatusOK, resources)
			return
		} else {
			log.Printf("[catalog] remote resource fetch failed, using seed: %v", err)
		}
	}
	utils.RespondJSON(w, http.StatusOK, h.resources)
}
