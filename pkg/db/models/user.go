package models

type User struct {
	ID    uint   `gorm:"column:id;primaryKey;autoIncrement"`
	Name  string `gorm:"column:name;size:255;not null"`
	Email string `gorm:"column:email;size:255;not null"`
}

func (User) TableName() string { return "users" }
