package repository

import (
	"context"
	"job_portal_backend/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type TestRepository struct {
	DB *gorm.DB
}

func NewTestRepository(db *gorm.DB) *TestRepository {
	return &TestRepository{DB: db}
}

func (r *TestRepository) List(ctx context.Context) ([]model.Test, error) {
	var tests []model.Test
	err := r.DB.WithContext(ctx).Order("id asc").Find(&tests).Error
	return tests, err
}

func (r *TestRepository) FindByID(ctx context.Context, id uint) (*model.Test, error) {
	var test model.Test
	err := r.DB.WithContext(ctx).First(&test, id).Error
	return &test, err
}

func (r *TestRepository) Create(ctx context.Context, test *model.Test) error {
	return r.DB.WithContext(ctx).Create(test).Error
}

// SaveLeaderboard 条件更新：仅当 version 未变化时写入并递增 version。
// 返回 false 表示期间已有其他提交写入，调用方需重新读取。
func (r *TestRepository) SaveLeaderboard(ctx context.Context, id uint, version int, board []model.LeaderboardEntry) (bool, error) {
	res := r.DB.WithContext(ctx).
		Model(&model.Test{}).
		Where("id = ? AND version = ?", id, version).
		Updates(map[string]interface{}{
			"leaderboard": datatypes.JSONSlice[model.LeaderboardEntry](board),
			"version":     gorm.Expr("version + 1"),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
