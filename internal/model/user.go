package model

import "time"

// User 注册账号；用户名与邮箱精确唯一，大小写不敏感查找在 repository 层做
type User struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Username  string    `json:"username" gorm:"type:varchar(64);uniqueIndex;not null"`
	Email     string    `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"type:varchar(100);not null"` // bcrypt 哈希，绝不落明文
	IsAdmin   bool      `json:"is_admin" gorm:"default:false"`
	CreatedAt time.Time `json:"joined_at"`
	UpdatedAt time.Time `json:"-"`
}

func (User) TableName() string { return "users" }
