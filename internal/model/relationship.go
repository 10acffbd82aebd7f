package model

import "time"

// Relationship 关注关系（from 关注 to）
type Relationship struct {
	ID         string `gorm:"primaryKey;type:varchar(36)"`
	FromUserID string `gorm:"type:varchar(36);index:idx_rel_from;index:idx_rel_pair,unique;not null"`
	ToUserID   string `gorm:"type:varchar(36);index:idx_rel_to;not null;index:idx_rel_pair,unique"`
	// 复合唯一键，避免重复关注
	// idx_rel_pair = (from_user_id, to_user_id)
	CreatedAt time.Time
}

func (Relationship) TableName() string { return "relationships" }
