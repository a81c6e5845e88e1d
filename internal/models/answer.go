package models

import "time"

type Answer struct {
	ID         uint      `gorm:"primaryKey" json:"-"`
	UUID       string    `gorm:"type:varchar(200);uniqueIndex;not null" json:"uuid"`
	Content    string    `gorm:"type:varchar(255);not null" json:"content"`
	Date       time.Time `gorm:"not null" json:"date"`
	UserID     uint      `gorm:"not null;index" json:"-"`
	QuestionID uint      `gorm:"not null;index" json:"-"`

	User     User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Question Question `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Answer) TableName() string {
	return "answer"
}
