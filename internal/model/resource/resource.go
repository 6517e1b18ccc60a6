package resource

// CrisisResource describes one emergency contact surfaced when crisis
// language is detected. Read-only reference data.
type CrisisResource struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Description string `json:"description"`
}

// Seed provides the default crisis hotline list.
func Seed() []CrisisResource {
	return []CrisisResource{
		{Name: "생명의전화", Phone: "1393", Description: "24시간 자살예방 상담"},
		{Name: "정신건강위기상담전화", Phone: "1577-0199", Description: "24시간 정신건강 위기상담"},
		{Name: "청소년전화", Phone: "1388", Description: "청소년 상담 전화"},
		{Name: "한국자살예방협회", Phone: "02-413-0892", Description: "자살예방 상담 및 교육"},
	}
}
