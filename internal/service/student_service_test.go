package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/leonardojap/cursosbackend/internal/dto"
	"github.com/leonardojap/cursosbackend/internal/model"
)

func setupTestStudentService() (StudentService, *mocks) {
	repo, m := newMockRepository()
	svc := NewStudentService(repo, zap.NewNop())
	return svc, m
}

func intPtr(n int) *int { return &n }

// ── 创建测试 ──

func TestStudentCreate_Success(t *testing.T) {
	svc, _ := setupTestStudentService()

	result, err := svc.Create(context.Background(), "teacher-1", &dto.StudentRequest{
		Name:           "Juan",
		Lastname:       "Perez",
		Email:          "juan@test.com",
		Age:            intPtr(20),
		Identification: "1234567890",
	})

	if err != nil {
		t.Fatalf("Create 应成功，但返回错误: %v", err)
	}
	if result.ID == "" {
		t.Error("ID 不应为空")
	}
	if result.UserID != "teacher-1" {
		t.Errorf("学生应归属 teacher-1，实际=%s", result.UserID)
	}
	if result.Age != 20 {
		t.Errorf("期望 Age=20，实际=%d", result.Age)
	}
}

func TestStudentCreate_DuplicateEmail(t *testing.T) {
	svc, m := setupTestStudentService()
	existing := seedStudent(m, "student-1", "teacher-1")

	_, err := svc.Create(context.Background(), "teacher-1", &dto.StudentRequest{
		Name:           "Otro",
		Lastname:       "Juan",
		Email:          existing.Email,
		Age:            intPtr(22),
		Identification: "otra-id",
	})

	if !errors.Is(err, ErrStudentExists) {
		t.Errorf("期望 ErrStudentExists，实际: %v", err)
	}
}

func TestStudentCreate_DuplicateIdentification(t *testing.T) {
	svc, m := setupTestStudentService()
	existing := seedStudent(m, "student-1", "teacher-1")

	_, err := svc.Create(context.Background(), "teacher-1", &dto.StudentRequest{
		Name:           "Otro",
		Lastname:       "Juan",
		Email:          "otro@test.com",
		Age:            intPtr(22),
		Identification: existing.Identification,
	})

	if !errors.Is(err, ErrStudentExists) {
		t.Errorf("期望 ErrStudentExists，实际: %v", err)
	}
}

func TestStudentCreate_DuplicateAllowedAcrossOwners(t *testing.T) {
	svc, m := setupTestStudentService()
	existing := seedStudent(m, "student-1", "teacher-1")

	// 同样的 email/identification 在另一位教师名下允许创建
	result, err := svc.Create(context.Background(), "teacher-2", &dto.StudentRequest{
		Name:           "Juan",
		Lastname:       "Perez",
		Email:          existing.Email,
		Age:            intPtr(20),
		Identification: existing.Identification,
	})

	if err != nil {
		t.Fatalf("跨教师重复数据应允许创建: %v", err)
	}
	if result.UserID != "teacher-2" {
		t.Errorf("学生应归属 teacher-2，实际=%s", result.UserID)
	}
}

// ── 查询测试 ──

func TestStudentGetByID_CrossOwnerNotFound(t *testing.T) {
	svc, m := setupTestStudentService()
	seedStudent(m, "student-1", "teacher-1")

	// 他人名下的学生对请求者不可见，与不存在无差别
	_, err := svc.GetByID(context.Background(), "teacher-2", "student-1")
	if !errors.Is(err, ErrStudentNotFound) {
		t.Errorf("期望 ErrStudentNotFound，实际: %v", err)
	}
}

func TestStudentGetByID_WithCourses(t *testing.T) {
	svc, m := setupTestStudentService()
	seedStudent(m, "student-1", "teacher-1")
	m.student.coursesOf["student-1"] = []model.Course{
		{
			ID:     "course-1",
			Name:   "Matematicas",
			Type:   model.CourseTypeOnline,
			UserID: "teacher-1",
			Schedules: []model.Schedule{
				{ID: "schedule-1", Day: "LUNES", StartHour: 8, EndHour: 10, CourseID: "course-1"},
			},
		},
	}

	result, err := svc.GetByID(context.Background(), "teacher-1", "student-1")
	if err != nil {
		t.Fatalf("GetByID 应成功: %v", err)
	}
	if len(result.Courses) != 1 {
		t.Fatalf("期望 1 门课程，实际=%d", len(result.Courses))
	}
	if len(result.Courses[0].Schedules) != 1 {
		t.Errorf("课程应嵌套时间表，实际=%d", len(result.Courses[0].Schedules))
	}
	if result.Courses[0].Schedules[0].Day != "LUNES" {
		t.Errorf("期望 Day=LUNES，实际=%s", result.Courses[0].Schedules[0].Day)
	}
}

// ── 列表测试 ──

func TestStudentList_PaginationAndSearch(t *testing.T) {
	svc, m := setupTestStudentService()
	seedStudent(m, "student-1", "teacher-1")
	seedStudent(m, "student-2", "teacher-1")
	seedStudent(m, "student-3", "teacher-2") // 他人学生不应出现

	list, total, err := svc.List(context.Background(), "teacher-1", &dto.ListRequest{Page: 1, Limit: 1})
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if total != 2 {
		t.Errorf("期望 total=2，实际=%d", total)
	}
	if len(list) != 1 {
		t.Errorf("期望每页 1 条，实际=%d", len(list))
	}

	// 按 email 搜索
	list, total, err = svc.List(context.Background(), "teacher-1", &dto.ListRequest{
		Page: 1, Limit: 10, Search: "student-2@test",
	})
	if err != nil {
		t.Fatalf("List(search) 应成功: %v", err)
	}
	if total != 1 || len(list) != 1 {
		t.Fatalf("期望命中 1 条，实际 total=%d len=%d", total, len(list))
	}
	if list[0].ID != "student-2" {
		t.Errorf("期望命中 student-2，实际=%s", list[0].ID)
	}
}

// ── 更新测试 ──

func TestStudentUpdate_Success(t *testing.T) {
	svc, _ := setupTestStudentService()

	created, err := svc.Create(context.Background(), "teacher-1", &dto.StudentRequest{
		Name:           "Juan",
		Lastname:       "Perez",
		Email:          "juan@test.com",
		Age:            intPtr(20),
		Identification: "1234567890",
	})
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}

	updated, err := svc.Update(context.Background(), "teacher-1", created.ID, &dto.StudentRequest{
		Name:           "Juan Carlos",
		Lastname:       "Perez",
		Email:          "juan.carlos@test.com",
		Age:            intPtr(21),
		Identification: "1234567890",
	})
	if err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}
	if updated.Name != "Juan Carlos" || updated.Age != 21 {
		t.Errorf("更新未生效: %+v", updated)
	}
}

func TestStudentUpdate_CrossOwnerNotFound(t *testing.T) {
	svc, m := setupTestStudentService()
	seedStudent(m, "student-1", "teacher-1")

	_, err := svc.Update(context.Background(), "teacher-2", "student-1", &dto.StudentRequest{
		Name:           "Hacker",
		Lastname:       "Attempt",
		Email:          "hacker@test.com",
		Age:            intPtr(30),
		Identification: "999",
	})
	if !errors.Is(err, ErrStudentNotFound) {
		t.Errorf("期望 ErrStudentNotFound，实际: %v", err)
	}
}

// ── 删除测试 ──

func TestStudentDelete_BlockedWhenEnrolled(t *testing.T) {
	svc, m := setupTestStudentService()
	seedStudent(m, "student-1", "teacher-1")
	seedCourse(m, "course-1", "teacher-1")
	m.enrollment.pairs[pairKey("student-1", "course-1")] = &model.Enrollment{
		StudentID: "student-1", CourseID: "course-1",
	}

	_, err := svc.Delete(context.Background(), "teacher-1", "student-1")
	if !errors.Is(err, ErrStudentEnrolled) {
		t.Errorf("期望 ErrStudentEnrolled，实际: %v", err)
	}
	// 学生应仍存在
	if _, ok := m.student.students["student-1"]; !ok {
		t.Error("删除被拒绝时学生不应被移除")
	}
}

func TestStudentDelete_AllowedAfterUnenroll(t *testing.T) {
	svc, m := setupTestStudentService()
	seedStudent(m, "student-1", "teacher-1")

	result, err := svc.Delete(context.Background(), "teacher-1", "student-1")
	if err != nil {
		t.Fatalf("无选课记录的学生应可删除: %v", err)
	}
	if result.ID != "student-1" {
		t.Errorf("应返回被删除学生的数据，实际=%s", result.ID)
	}
	if _, ok := m.student.students["student-1"]; ok {
		t.Error("学生应已被删除")
	}
}

func TestStudentDelete_CrossOwnerNotFound(t *testing.T) {
	svc, m := setupTestStudentService()
	seedStudent(m, "student-1", "teacher-1")

	_, err := svc.Delete(context.Background(), "teacher-2", "student-1")
	if !errors.Is(err, ErrStudentNotFound) {
		t.Errorf("期望 ErrStudentNotFound，实际: %v", err)
	}
}
