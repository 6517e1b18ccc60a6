package emotion

// Tag captures one selectable emotion exposed to the frontend.
// The emoji and display name are cosmetic; Value is the stable identifier.
type Tag struct {
	Value string `json:"value"`
	Name  string `json:"name"`
	Emoji string `json:"emoji"`
}

// Seed provides the default emotion catalog shown on the check-in screen.
func Seed() []Tag {
	return []Tag{
		{Value: "sad", Name: "슬픔", Emoji: "😢"},
		{Value: "angry", Name: "화남", Emoji: "😡"},
		{Value: "anxious", Name: "불안", Emoji: "😰"},
		{Value: "happy", Name: "기쁨", Emoji: "😊"},
		{Value: "fearful", Name: "두려움", Emoji: "😨"},
		{Value: "stressed", Name: "스트레스", Emoji: "😩"},
		{Value: "tired", Name: "피곤함", Emoji: "😴"},
		{Value: "confused", Name: "혼란", Emoji: "😕"},
		{Value: "warm", Name: "따뜻함", Emoji: "🤗"},
		{Value: "depressed", Name: "우울함", Emoji: "😔"},
	}
}
