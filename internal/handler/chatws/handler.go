package chatws

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	model "github.com/yujin6121/maeum/backend/internal/model/counseling"
)

// Chatter 는 릴레이가 의존하는 대화 동작. 어떤 실패에도 항상 사용할 수
// 있는 응답을 돌려준다.
type Chatter interface {
	SendChat(ctx context.Context, message string, history []model.ChatTurn, emotion string) model.ChatResult
}

// Handler 실시간 채팅 WebSocket 릴레이
type Handler struct {
	chatter  Chatter
	upgrader websocket.Upgrader
}

// New WebSocket 핸들러 생성
func New(chatter Chatter) *Handler {
	return &Handler{
		chatter: chatter,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// RegisterRoutes WebSocket 라우트 등록
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/chat/ws", h.handleWebSocket)
}

type inboundMessage struct {
	Message string `json:"message"`
	Emotion string `json:"emotion,omitempty"`
}

type outboundMessage struct {
	Response    string `json:"response"`
	SuicideRisk bool   `json:"suicide_risk"`
	Timestamp   int64  `json:"timestamp"`
}

// handleWebSocket 연결 단위로 대화 기록을 메모리에만 유지하며, 수신한
// 각 메시지를 사용자 턴으로 붙여 상담 클라이언트에 전달한다. 턴은 연결이
// 닫히면 사라진다.
func (h *Handler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[chatws] upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	var transcript []model.ChatTurn

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[chatws] read failed: %v", err)
			}
			return
		}

		if strings.TrimSpace(inbound.Message) == "" {
			continue
		}

		// 직전까지의 기록으로 요청하고, 응답까지 받은 뒤에야 두 턴을 붙인다.
		result := h.chatter.SendChat(r.Context(), inbound.Message, transcript, inbound.Emotion)

		transcript = append(transcript,
			model.ChatTurn{Role: model.RoleUser, Content: inbound.Message},
			model.ChatTurn{Role: model.RoleAssistant, Content: result.Response},
		)

		outbound := outboundMessage{
			Response:    result.Response,
			SuicideRisk: result.SuicideRisk,
			Timestamp:   time.Now().UnixMilli(),
		}
		if err := conn.WriteJSON(outbound); err != nil {
			log.Printf("[chatws] write failed: %v", err)
			return
		}
	}
}
