package counseling

import "time"

// Exchange persists one completed counseling round: the user's input plus
// the AI response. Never mutated after creation; owned by the session store.
type Exchange struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Emotions  []string  `json:"emotions"`
	Intensity int       `json:"intensity"`
	Concern   string    `json:"concern"`
	Response  Response  `json:"response"`
}
