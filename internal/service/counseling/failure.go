package counseling

import "fmt"

// hotlineFooter 는 모든 실패 안내문에 포함되는 상담 기관 연락처.
const hotlineFooter = "\n\n- 청소년 전화 1388 (24시간 상담)\n- 정신건강위기 상담전화 1577-0199"

// failureKind enumerates the conversational-path failure variants. The set
// is closed: every degraded reply the client can produce comes from here,
// and each one carries the hotline footer.
type failureKind int

const (
	failureTransport failureKind = iota
	failureAuth
	failureRateLimited
	failureTimeout
	failureServer
)

// message renders the user-facing degraded reply for the variant. detail
// is only used by failureServer.
func (k failureKind) message(detail string) string {
	switch k {
	case failureTransport:
		return "⚠️ 서버 연결에 문제가 있어요.\n\nCORS 정책 또는 네트워크 문제로 백엔드 서버에 연결할 수 없습니다.\n\n잠시 후 다시 시도해주시거나, 급한 상황이시라면 아래 전화번호로 직접 상담받으실 수 있어요:" + hotlineFooter
	case failureAuth:
		return "⚠️ API 키 설정에 문제가 있어요.\n\n현재 AI 상담사와 연결할 수 없지만, 언제든지 아래 전문 상담 기관으로 연락주세요:" + hotlineFooter
	case failureRateLimited:
		return "⚠️ 현재 많은 분들이 상담을 요청하고 있어요.\n\n잠시 후 다시 시도해주시거나, 급한 상황이시라면 아래 전화번호로 직접 상담받으실 수 있어요:" + hotlineFooter
	case failureTimeout:
		return "⚠️ AI 응답 시간이 초과되었어요.\n\n잠시 후 다시 시도해주시거나, 급한 상황이시라면 아래 전화번호로 직접 상담받으실 수 있어요:" + hotlineFooter
	default:
		if detail == "" {
			detail = "알 수 없는 오류"
		}
		return fmt.Sprintf("⚠️ 서버 오류가 발생했어요: %s\n\n급한 상황이시라면 아래 전화번호로 직접 상담받으실 수 있어요:%s", detail, hotlineFooter)
	}
}

// classifyStatus maps an HTTP error status onto a failure variant.
func classifyStatus(status int) failureKind {
	switch status {
	case 401:
		return failureAuth
	case 429:
		return failureRateLimited
	case 504:
		return failureTimeout
	default:
		return failureServer
	}
}
