package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/d60-Lab/social-stream/internal/model"
)

type RelationshipRepository interface {
	Create(ctx context.Context, fromUserID, toUserID string) error
	Delete(ctx context.Context, fromUserID, toUserID string) error
	Exists(ctx context.Context, fromUserID, toUserID string) (bool, error)
	// ListFollowing user 关注的人；ListFollowers 关注 user 的人
	ListFollowing(ctx context.Context, userID string) ([]*model.User, error)
	ListFollowers(ctx context.Context, userID string) ([]*model.User, error)
}

type relationshipRepository struct {
	db *gorm.DB
}

func NewRelationshipRepository(db *gorm.DB) RelationshipRepository {
	return &relationshipRepository{db: db}
}

func (r *relationshipRepository) Create(ctx context.Context, fromUserID, toUserID string) error {
	rel := &model.Relationship{ID: uuid.New().String(), FromUserID: fromUserID, ToUserID: toUserID}
	// 幂等：重复关注不报错；并发竞争下复合唯一键保证至多一条边
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(rel).Error
}

func (r *relationshipRepository) Delete(ctx context.Context, fromUserID, toUserID string) error {
	// 幂等：边不存在时删除 0 行，同样视为成功
	return r.db.WithContext(ctx).
		Where("from_user_id = ? AND to_user_id = ?", fromUserID, toUserID).
		Delete(&model.Relationship{}).Error
}

func (r *relationshipRepository) Exists(ctx context.Context, fromUserID, toUserID string) (bool, error) {
	var cnt int64
	if err := r.db.WithContext(ctx).
		Model(&model.Relationship{}).
		Where("from_user_id = ? AND to_user_id = ?", fromUserID, toUserID).
		Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *relationshipRepository) ListFollowing(ctx context.Context, userID string) ([]*model.User, error) {
	var res []*model.User
	err := r.db.WithContext(ctx).
		Model(&model.User{}).
		Select("users.*").
		Joins("JOIN relationships ON relationships.to_user_id = users.id").
		Where("relationships.from_user_id = ?", userID).
		Order("relationships.created_at DESC").
		Find(&res).Error
	return res, err
}

func (r *relationshipRepository) ListFollowers(ctx context.Context, userID string) ([]*model.User, error) {
	var res []*model.User
	err := r.db.WithContext(ctx).
		Model(&model.User{}).
		Select("users.*").
		Joins("JOIN relationships ON relationships.from_user_id = users.id").
		Where("relationships.to_user_id = ?", userID).
		Order("relationships.created_at DESC").
		Find(&res).Error
	return res, err
}
