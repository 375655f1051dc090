package model

type Hardness string

const (
	HardnessEasy   Hardness = "easy"
	HardnessMedium Hardness = "medium"
	HardnessHard   Hardness = "hard"
)

// AnswerOptions 选项键的固定枚举，判题按键比较而不是按选项文本
var AnswerOptions = []string{"A", "B", "C", "D"}

func IsValidAnswerOption(s string) bool {
	for _, o := range AnswerOptions {
		if s == o {
			return true
		}
	}
	return false
}

func IsValidHardness(h Hardness) bool {
	switch h {
	case HardnessEasy, HardnessMedium, HardnessHard:
		return true
	}
	return false
}

// Question 题目。CorrectAnswer 只对管理员暴露，非管理员响应中置空后 omitempty 隐藏。
// swagger:model Question
type Question struct {
	BaseModel
	QuestionText  string    `gorm:"type:text;not null" json:"question_text"`
	OptionA       string    `gorm:"size:255;not null" json:"option_a"`
	OptionB       string    `gorm:"size:255;not null" json:"option_b"`
	OptionC       string    `gorm:"size:255;not null" json:"option_c"`
	OptionD       string    `gorm:"size:255;not null" json:"option_d"`
	CorrectAnswer string    `gorm:"size:1;not null" json:"correct_answer,omitempty"`
	Hardness      *Hardness `gorm:"size:10" json:"hardness,omitempty"`
	CategoryID    *uint     `gorm:"index" json:"category_id,omitempty"`
	Category      *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

func (Question) TableName() string {
	return "questions"
}
