package counseling

// Turn roles in a conversation transcript.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatTurn is one utterance in the in-memory transcript. Turns live only
// for the duration of a chat connection and are never persisted directly.
type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
