package counseling

// Response is the rich reply shape returned by the structured counseling
// endpoint. EmotionAnalysis scores lie in [0,1] when present; the fallback
// path fills only Response and CrisisDetected.
type Response struct {
	Response        string             `json:"response"`
	EmotionAnalysis map[string]float64 `json:"emotion_analysis"`
	CrisisDetected  bool               `json:"crisis_detected"`
	CrisisLevel     string             `json:"crisis_level"`
	Recommendations []string           `json:"recommendations"`
}

// Request is the structured counseling request body.
type Request struct {
	Concern   string   `json:"concern"`
	Emotions  []string `json:"emotions"`
	Intensity int      `json:"intensity"`
}

// ChatResult is the minimal reply shape of the conversational path. The
// client always produces one, even when the backend is unreachable.
type ChatResult struct {
	Response    string `json:"response"`
	SuicideRisk bool   `json:"suicide_risk"`
}
