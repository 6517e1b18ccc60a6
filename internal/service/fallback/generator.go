package fallback

import (
	"context"
	"math/rand"
	"time"

	"github.com/yujin6121/maeum/backend/internal/analysis/crisis"
	"github.com/yujin6121/maeum/backend/internal/model/counseling"
)

// crisisReply 는 위험 키워드 감지 시 항상 반환되는 안전 안내 문구.
const crisisReply = "지금 많이 힘드신 것 같아요. 혼자서 감당하기 어려운 마음이 드실 수 있어요. " +
	"전문가의 도움을 받아보시는 것은 어떨까요? 청소년 전화 1388이나 정신건강위기 상담전화 1577-0199에서 " +
	"24시간 상담을 받을 수 있어요."

const angerReply = "화가 나는 마음, 충분히 이해해요. 그 분노의 뒤에는 어떤 상처나 실망이 있을 것 같아요. 천천히 말씀해주세요."

const sadnessReply = "마음이 많이 아프시겠어요. 슬픈 감정도 소중한 감정이에요. 지금 가장 힘든 부분이 무엇인지 이야기해주실 수 있나요?"

// genericReplies 는 감정/위기 분기에 해당하지 않을 때 무작위로 고르는 기본 응답.
var genericReplies = []string{
	"안녕하세요. 오늘 어떤 일로 힘들어하고 계신지 들려주세요. 함께 이야기해보아요.",
	"그런 감정을 느끼는 것은 자연스러운 일이에요. 자세히 말씀해주시겠어요?",
	"정말 힘드셨겠어요. 그런 상황에서 이렇게 용기 내어 이야기해주셔서 고마워요.",
	"지금 말씀해주신 것들을 정리해보면서, 어떤 부분이 가장 마음에 걸리시는지 함께 생각해볼까요?",
	"스스로를 너무 비난하지 마세요. 완벽한 사람은 없으니까요. 작은 걸음부터 시작해보면 어떨까요?",
}

var angerLabels = []string{"화남", "분노"}
var sadnessLabels = []string{"슬픔", "우울"}

// Generator synthesizes counseling replies when the remote backend is
// disabled or unreachable. The random pick and the artificial delay are
// injectable so tests can pin both.
type Generator struct {
	intn  func(n int) int
	delay time.Duration
}

// Option customizes a Generator.
type Option func(*Generator)

// WithIntn replaces the random source used for generic template selection.
func WithIntn(intn func(n int) int) Option {
	return func(g *Generator) { g.intn = intn }
}

// WithDelay overrides the simulated network latency.
func WithDelay(d time.Duration) Option {
	return func(g *Generator) { g.delay = d }
}

// NewGenerator returns a Generator with a seeded random source and the
// default one-second delay that keeps the caller's loading state visible.
func NewGenerator(opts ...Option) *Generator {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	g := &Generator{
		intn:  rng.Intn,
		delay: time.Second,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Reply picks a canned response for the message. Crisis keywords take
// precedence over the emotion branches; the emotion label falls through to
// a uniformly random generic template when it matches neither synonym set.
func (g *Generator) Reply(ctx context.Context, message, emotion string) counseling.ChatResult {
	g.sleep(ctx)

	if crisis.Detect(message) {
		return counseling.ChatResult{Response: crisisReply, SuicideRisk: true}
	}

	if matchLabel(emotion, angerLabels) {
		return counseling.ChatResult{Response: angerReply}
	}
	if matchLabel(emotion, sadnessLabels) {
		return counseling.ChatResult{Response: sadnessReply}
	}

	return counseling.ChatResult{Response: genericReplies[g.intn(len(genericReplies))]}
}

func (g *Generator) sleep(ctx context.Context) {
	if g.delay <= 0 {
		return
	}
	timer := time.NewTimer(g.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

func matchLabel(emotion string, labels []string) bool {
	for _, label := range labels {
		if emotion == label {
			return true
		}
	}
	return false
}
