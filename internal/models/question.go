package models

import "time"

type Question struct {
	ID      uint      `gorm:"primaryKey" json:"-"`
	UUID    string    `gorm:"type:varchar(200);uniqueIndex;not null" json:"uuid"`
	Content string    `gorm:"type:text;not null" json:"content"`
	Date    time.Time `gorm:"not null" json:"date"`
	UserID  uint      `gorm:"not null;index" json:"-"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Question) TableName() string {
	return "question"
}
