package lessons

// WrongQuestion is one missed exam question carried into the lesson prompt
// so the lesson can address it directly.
type WrongQuestion struct {
	QuestionText  string
	Choices       map[string]string
	CorrectAnswer string
	UserAnswer    *string
	IsIDK         bool
	Explanation   string
}
