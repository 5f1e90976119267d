package models

type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string `gorm:"unique;not null"          json:"username"`
	PasswordHash string `gorm:"not null"                 json:"-"`
}

type Score struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Username string `gorm:"index;not null"           json:"username"`
	Score    int    `gorm:"not null"                 json:"score"`
}

type Word struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Word       string `gorm:"not null"                 json:"word"`
	Difficulty string `gorm:"not null"                 json:"difficulty"`
}
