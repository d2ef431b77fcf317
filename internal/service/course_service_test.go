package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/leonardojap/cursosbackend/internal/dto"
	"github.com/leonardojap/cursosbackend/internal/model"
)

func setupTestCourseService() (CourseService, *mocks) {
	repo, m := newMockRepository()
	svc := NewCourseService(repo, zap.NewNop())
	return svc, m
}

// ── 创建测试 ──

func TestCourseCreate_Success(t *testing.T) {
	svc, _ := setupTestCourseService()

	result, err := svc.Create(context.Background(), "teacher-1", &dto.CourseRequest{
		Name:      "Matematicas",
		StartDate: "2026-03-01",
		EndDate:   "2026-06-30",
		Type:      model.CourseTypeOffline,
	})

	if err != nil {
		t.Fatalf("Create 应成功，但返回错误: %v", err)
	}
	if result.UserID != "teacher-1" {
		t.Errorf("课程应归属 teacher-1，实际=%s", result.UserID)
	}
	if result.StartDate != "2026-03-01" {
		t.Errorf("期望 StartDate=2026-03-01，实际=%s", result.StartDate)
	}
	if result.Type != model.CourseTypeOffline {
		t.Errorf("期望 Type=OFFLINE，实际=%s", result.Type)
	}
}

// ── 查询测试 ──

func TestCourseGetByID_WithSchedules(t *testing.T) {
	svc, m := setupTestCourseService()
	seedCourse(m, "course-1", "teacher-1")
	m.schedule.schedules["schedule-1"] = &model.Schedule{
		ID: "schedule-1", Day: "MARTES", StartHour: 14, EndHour: 16, CourseID: "course-1",
	}

	result, err := svc.GetByID(context.Background(), "teacher-1", "course-1")
	if err != nil {
		t.Fatalf("GetByID 应成功: %v", err)
	}
	if len(result.Schedules) != 1 {
		t.Fatalf("期望 1 条时间表，实际=%d", len(result.Schedules))
	}
	if result.Schedules[0].Day != "MARTES" {
		t.Errorf("期望 Day=MARTES，实际=%s", result.Schedules[0].Day)
	}
}

func TestCourseGetByID_CrossOwnerNotFound(t *testing.T) {
	svc, m := setupTestCourseService()
	seedCourse(m, "course-1", "teacher-1")

	_, err := svc.GetByID(context.Background(), "teacher-2", "course-1")
	if !errors.Is(err, ErrCourseNotFound) {
		t.Errorf("期望 ErrCourseNotFound，实际: %v", err)
	}
}

// ── 列表测试 ──

func TestCourseList_OwnerScoped(t *testing.T) {
	svc, m := setupTestCourseService()
	seedCourse(m, "course-1", "teacher-1")
	seedCourse(m, "course-2", "teacher-1")
	seedCourse(m, "course-3", "teacher-2")

	_, total, err := svc.List(context.Background(), "teacher-1", &dto.ListRequest{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if total != 2 {
		t.Errorf("期望 total=2，实际=%d", total)
	}
}

// ── 更新测试 ──

func TestCourseUpdate_Success(t *testing.T) {
	svc, m := setupTestCourseService()
	seedCourse(m, "course-1", "teacher-1")

	result, err := svc.Update(context.Background(), "teacher-1", "course-1", &dto.CourseRequest{
		Name:      "Fisica",
		StartDate: "2026-04-01",
		EndDate:   "2026-07-31",
		Type:      model.CourseTypeOnline,
	})
	if err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}
	if result.Name != "Fisica" || result.Type != model.CourseTypeOnline {
		t.Errorf("更新未生效: %+v", result)
	}
	if m.course.courses["course-1"].Name != "Fisica" {
		t.Error("更新应写回仓储")
	}
}

func TestCourseUpdate_CrossOwnerNotFound(t *testing.T) {
	svc, m := setupTestCourseService()
	seedCourse(m, "course-1", "teacher-1")

	_, err := svc.Update(context.Background(), "teacher-2", "course-1", &dto.CourseRequest{
		Name:      "Fisica",
		StartDate: "2026-04-01",
		EndDate:   "2026-07-31",
		Type:      model.CourseTypeOnline,
	})
	if !errors.Is(err, ErrCourseNotFound) {
		t.Errorf("期望 ErrCourseNotFound，实际: %v", err)
	}
}

// ── 删除测试 ──

func TestCourseDelete_BlockedWhenHasStudents(t *testing.T) {
	svc, m := setupTestCourseService()
	seedCourse(m, "course-1", "teacher-1")
	m.enrollment.pairs[pairKey("student-1", "course-1")] = &model.Enrollment{
		StudentID: "student-1", CourseID: "course-1",
	}

	_, err := svc.Delete(context.Background(), "teacher-1", "course-1")
	if !errors.Is(err, ErrCourseHasStudents) {
		t.Errorf("期望 ErrCourseHasStudents，实际: %v", err)
	}
	if _, ok := m.course.courses["course-1"]; !ok {
		t.Error("删除被拒绝时课程不应被移除")
	}
}

func TestCourseDelete_CascadesSchedules(t *testing.T) {
	svc, m := setupTestCourseService()
	seedCourse(m, "course-1", "teacher-1")
	m.schedule.schedules["schedule-1"] = &model.Schedule{
		ID: "schedule-1", Day: "LUNES", StartHour: 8, EndHour: 10, CourseID: "course-1",
	}
	m.schedule.schedules["schedule-2"] = &model.Schedule{
		ID: "schedule-2", Day: "MIERCOLES", StartHour: 8, EndHour: 10, CourseID: "course-1",
	}

	result, err := svc.Delete(context.Background(), "teacher-1", "course-1")
	if err != nil {
		t.Fatalf("无学生选课的课程应可删除: %v", err)
	}
	if result.ID != "course-1" {
		t.Errorf("应返回被删除课程的数据，实际=%s", result.ID)
	}
	if _, ok := m.course.courses["course-1"]; ok {
		t.Error("课程应已被删除")
	}
	if len(m.schedule.schedules) != 0 {
		t.Errorf("课程的时间表应级联删除，剩余=%d", len(m.schedule.schedules))
	}
}

func TestCourseDelete_CrossOwnerNotFound(t *testing.T) {
	svc, m := setupTestCourseService()
	seedCourse(m, "course-1", "teacher-1")

	_, err := svc.Delete(context.Background(), "teacher-2", "course-1")
	if !errors.Is(err, ErrCourseNotFound) {
		t.Errorf("期望 ErrCourseNotFound，实际: %v", err)
	}
}
