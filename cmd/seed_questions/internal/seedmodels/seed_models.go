package seedmodels

// SeedAnswerOption defines one answer option of a seeded question. Options
// are stored in file order.
type SeedAnswerOption struct {
	TextKo      string `json:"text_ko"`
	TextEn      string `json:"text_en"`
	RationaleKo string `json:"rationale_ko"`
	RationaleEn string `json:"rationale_en"`
	IsCorrect   bool   `json:"is_correct"`
}

// SeedQuestion defines the structure for a question in the JSON seed file.
type SeedQuestion struct {
	ID            string             `json:"id"`
	TextKo        string             `json:"text_ko"`
	TextEn        string             `json:"text_en"`
	HintKo        string             `json:"hint_ko"`
	HintEn        string             `json:"hint_en"`
	AnswerOptions []SeedAnswerOption `json:"answer_options"`
}

// SeedTopic defines the structure for a topic in the JSON seed file.
type SeedTopic struct {
	ID        string         `json:"id"`
	NameKo    string         `json:"name_ko"`
	NameEn    string         `json:"name_en"`
	Questions []SeedQuestion `json:"questions"`
}
