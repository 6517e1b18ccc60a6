package counseling

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/yujin6121/maeum/backend/internal/model/counseling"
	"github.com/yujin6121/maeum/backend/internal/model/emotion"
	"github.com/yujin6121/maeum/backend/internal/model/resource"
	"github.com/yujin6121/maeum/backend/internal/service/fallback"
)

var (
	ErrConcernRequired  = errors.New("concern is required")
	ErrEmotionsRequired = errors.New("at least one emotion is required")
	ErrInvalidIntensity = errors.New("intensity must be between 1 and 5")
)

// Config 상담 백엔드 클라이언트 설정.
type Config struct {
	// BaseURL 원격 상담 서비스 주소.
	BaseURL string
	// UseBackend 가 false 면 모든 호출이 폴백 생성기로 우회하며 네트워크
	// 접근을 시도하지 않는다.
	UseBackend bool
	// Timeout 은 전송 계층의 대기 상한. 초과 시 504 실패로 취급한다.
	Timeout time.Duration
}

// Client talks to the remote counseling service. The conversational path
// never surfaces an error to its caller: every failure degrades to a
// locally-built message that still carries the crisis hotlines. Callers
// are responsible for serializing requests; the client assumes at most one
// outstanding call per conversation context.
type Client struct {
	baseURL    string
	useBackend bool
	httpClient *http.Client
	fallback   *fallback.Generator
}

// NewClient builds a Client from config, routing through gen whenever the
// remote backend is disabled.
func NewClient(cfg Config, gen *fallback.Generator) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		useBackend: cfg.UseBackend,
		httpClient: &http.Client{Timeout: timeout},
		fallback:   gen,
	}
}

// chatRequest 실시간 채팅 요청 본문.
type chatRequest struct {
	Message             string                `json:"message"`
	ConversationHistory []counseling.ChatTurn `json:"conversation_history"`
	Emotion             string                `json:"emotion,omitempty"`
}

// SendChat posts the conversational request and always returns a usable
// ChatResult. Transport and HTTP failures are classified into the closed
// variant set instead of propagating.
func (c *Client) SendChat(ctx context.Context, message string, history []counseling.ChatTurn, emotionLabel string) counseling.ChatResult {
	if !c.useBackend {
		log.Printf("[chat] backend disabled, using fallback reply")
		return c.fallback.Reply(ctx, message, emotionLabel)
	}

	if history == nil {
		history = []counseling.ChatTurn{}
	}
	body := chatRequest{Message: message, ConversationHistory: history, Emotion: emotionLabel}

	resp, err := c.post(ctx, "/api/chat", body)
	if err != nil {
		kind := failureTransport
		if isTimeout(err) {
			kind = failureTimeout
		}
		log.Printf("[chat] request failed: %v", err)
		return counseling.ChatResult{Response: kind.message("")}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail := extractDetail(resp.Body)
		kind := classifyStatus(resp.StatusCode)
		log.Printf("[chat] backend returned %d: %s", resp.StatusCode, detail)
		return counseling.ChatResult{Response: kind.message(detail)}
	}

	var result counseling.ChatResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		log.Printf("[chat] failed to decode response: %v", err)
		return counseling.ChatResult{Response: failureServer.message("")}
	}
	return result
}

// SendCounseling posts the structured request and returns the rich
// response verbatim. Unlike the conversational path, errors propagate so
// the caller can surface them.
func (c *Client) SendCounseling(ctx context.Context, req counseling.Request) (counseling.Response, error) {
	if err := validateRequest(req); err != nil {
		return counseling.Response{}, err
	}

	if !c.useBackend {
		reply := c.fallback.Reply(ctx, req.Concern, "")
		// 폴백은 응답 본문과 위기 플래그만 채운다.
		return counseling.Response{
			Response:       reply.Response,
			CrisisDetected: reply.SuicideRisk,
		}, nil
	}

	resp, err := c.post(ctx, "/api/counseling/chat", req)
	if err != nil {
		return counseling.Response{}, fmt.Errorf("counseling request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return counseling.Response{}, fmt.Errorf("counseling backend returned %d: %s", resp.StatusCode, extractDetail(resp.Body))
	}

	var result counseling.Response
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return counseling.Response{}, fmt.Errorf("decode counseling response: %w", err)
	}
	return result, nil
}

// FetchEmotions retrieves the emotion catalog from the remote service.
func (c *Client) FetchEmotions(ctx context.Context) ([]emotion.Tag, error) {
	var tags []emotion.Tag
	if err := c.get(ctx, "/api/emotions", &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

// FetchCrisisResources retrieves the crisis hotline list from the remote
// service.
func (c *Client) FetchCrisisResources(ctx context.Context) ([]resource.CrisisResource, error) {
	var resources []resource.CrisisResource
	if err := c.get(ctx, "/api/crisis-resources", &resources); err != nil {
		return nil, err
	}
	return resources, nil
}

// UseBackend reports whether the client talks to the live backend at all.
func (c *Client) UseBackend() bool {
	return c.useBackend
}

func (c *Client) post(ctx context.Context, path string, body any) (*http.Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.httpClient.Do(req)
}

func (c *Client) get(ctx context.Context, path string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch %s: backend returned %d", path, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(v)
}

func validateRequest(req counseling.Request) error {
	if strings.TrimSpace(req.Concern) == "" {
		return ErrConcernRequired
	}
	if len(req.Emotions) == 0 {
		return ErrEmotionsRequired
	}
	if req.Intensity < 1 || req.Intensity > 5 {
		return ErrInvalidIntensity
	}
	return nil
}

// extractDetail pulls the "detail" field from an error body if present.
func extractDetail(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil {
		return ""
	}
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return ""
	}
	return payload.Detail
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
