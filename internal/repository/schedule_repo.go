package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/leonardojap/cursosbackend/internal/model"
)

// ScheduleRepository 课程时间表数据访问接口
// 时间表自身没有 user_id，所有权通过所属课程的 user_id 传递
type ScheduleRepository interface {
	Create(ctx context.Context, schedule *model.Schedule) error
	// GetOwned 按 id 查询时间表，并校验其所属课程归属于 ownerID
	GetOwned(ctx context.Context, ownerID, id string) (*model.Schedule, error)
	Update(ctx context.Context, schedule *model.Schedule) error
	Delete(ctx context.Context, id string) error
}

type scheduleRepo struct {
	db *gorm.DB
}

// NewScheduleRepo 创建 ScheduleRepository 实例
func NewScheduleRepo(db *gorm.DB) ScheduleRepository {
	return &scheduleRepo{db: db}
}

func (r *scheduleRepo) Create(ctx context.Context, schedule *model.Schedule) error {
	return r.db.WithContext(ctx).Create(schedule).Error
}

func (r *scheduleRepo) GetOwned(ctx context.Context, ownerID, id string) (*model.Schedule, error) {
	var schedule model.Schedule
	err := r.db.WithContext(ctx).
		Joins("JOIN courses ON courses.id = schedules.course_id").
		Where("schedules.id = ?", id).
		Where("courses.user_id = ?", ownerID).
		First(&schedule).Error
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (r *scheduleRepo) Update(ctx context.Context, schedule *model.Schedule) error {
	return r.db.WithContext(ctx).Save(schedule).Error
}

func (r *scheduleRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.Schedule{}).Error
}
