package model

import "time"

// UserAnswer 用户答题记录。(user_id, question_id) 唯一，重复作答覆盖旧记录。
// 不使用软删除：重置统计和题目级联删除必须物理删除，否则唯一索引会命中已删除的幽灵行。
// swagger:model UserAnswer
type UserAnswer struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID         uint      `gorm:"not null;uniqueIndex:idx_user_question" json:"user_id"`
	QuestionID     uint      `gorm:"not null;uniqueIndex:idx_user_question" json:"question_id"`
	SelectedAnswer string    `gorm:"size:1;not null" json:"selected_answer"`
	IsCorrect      bool      `gorm:"not null" json:"is_correct"`
	CreatedAt      time.Time `json:"answered_at"`
	UpdatedAt      time.Time `json:"-"`
}

func (UserAnswer) TableName() string {
	return "user_answers"
}
