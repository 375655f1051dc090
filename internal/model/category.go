package model

import "time"

// Category 题目分类。不使用软删除：删除分类后同名分类可以重建。
// swagger:model Category
type Category struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"size:100;unique;not null" json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Category) TableName() string {
	return "categories"
}
