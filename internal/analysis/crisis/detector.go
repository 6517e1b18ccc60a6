package crisis

import "strings"

// Level 분류된 위기 단계.
type Level string

const (
	LevelLow      Level = "low"
	LevelMedium   Level = "medium"
	LevelHigh     Level = "high"
	LevelCritical Level = "critical"
)

// riskKeywords 는 즉시 위험 배너를 띄우는 클라이언트 측 키워드 목록.
// 대소문자 구분 없는 정규화나 부정 표현 처리는 하지 않는다 (알려진 한계).
var riskKeywords = []string{
	"죽고", "자살", "죽음", "끝내고", "사라지고", "없어지고",
}

// crisisKeywords 는 위기 단계 산정에 쓰이는 일반 위기 키워드.
var crisisKeywords = []string{
	"자살", "죽고싶다", "자해", "죽음", "끝내고싶다",
	"살기싫다", "괴롭다", "혼자", "절망", "포기",
	"상처", "아프다", "견딜수없다", "힘들다",
}

// suicideKeywords 는 자살 고위험으로 분류되는 키워드.
var suicideKeywords = []string{
	"자살", "죽고싶다", "자해", "죽음", "끝내고싶다",
	"살기싫다", "목매달", "뛰어내리", "자살하고싶", "죽어버리고싶",
}

// Detect reports whether the text contains any risk keyword. Exact
// substring containment, case-sensitive; pure function, never fails.
func Detect(text string) bool {
	for _, keyword := range riskKeywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

// Assessment 은 위기 단계 산정 결과.
type Assessment struct {
	Detected    bool
	Level       Level
	SuicideRisk bool
}

// Assess classifies the crisis level of the text. Any suicide keyword is
// critical regardless of the general keyword count; three or more general
// keywords is high, one or more is medium, otherwise low.
func Assess(text string) Assessment {
	for _, keyword := range suicideKeywords {
		if strings.Contains(text, keyword) {
			return Assessment{Detected: true, Level: LevelCritical, SuicideRisk: true}
		}
	}

	count := 0
	for _, keyword := range crisisKeywords {
		if strings.Contains(text, keyword) {
			count++
		}
	}

	switch {
	case count >= 3:
		return Assessment{Detected: true, Level: LevelHigh}
	case count >= 1:
		return Assessment{Detected: true, Level: LevelMedium}
	default:
		return Assessment{Level: LevelLow}
	}
}
