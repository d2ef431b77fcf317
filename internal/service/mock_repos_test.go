package service

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/leonardojap/cursosbackend/internal/model"
	"github.com/leonardojap/cursosbackend/internal/repository"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User // key: id
	seq   int
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.ID == "" {
		m.seq++
		user.ID = fmt.Sprintf("user-%d", m.seq)
	}
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// ── Mock TokenRepository ──

type mockTokenRepo struct {
	tokens map[string]*model.AccessToken // key: token_hash
}

func newMockTokenRepo() *mockTokenRepo {
	return &mockTokenRepo{tokens: make(map[string]*model.AccessToken)}
}

func (m *mockTokenRepo) Create(_ context.Context, token *model.AccessToken) error {
	if token.ID == "" {
		token.ID = "tok-" + token.TokenHash[:8]
	}
	m.tokens[token.TokenHash] = token
	return nil
}

func (m *mockTokenRepo) GetByHash(_ context.Context, hash string) (*model.AccessToken, error) {
	if t, ok := m.tokens[hash]; ok {
		return t, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTokenRepo) DeleteByHash(_ context.Context, hash string) error {
	delete(m.tokens, hash)
	return nil
}

func (m *mockTokenRepo) DeleteExpired(_ context.Context) (int64, error) {
	var n int64
	now := time.Now()
	for hash, t := range m.tokens {
		if t.ExpiresAt.Before(now) {
			delete(m.tokens, hash)
			n++
		}
	}
	return n, nil
}

// ── Mock StudentRepository ──

type mockStudentRepo struct {
	students    map[string]*model.Student
	seq         int
	enrollments *mockEnrollmentRepo
	// GetWithCourses 返回的嵌套课程（按学生 id 预置）
	coursesOf map[string][]model.Course
}

func newMockStudentRepo(enrollments *mockEnrollmentRepo) *mockStudentRepo {
	return &mockStudentRepo{
		students:    make(map[string]*model.Student),
		enrollments: enrollments,
		coursesOf:   make(map[string][]model.Course),
	}
}

func (m *mockStudentRepo) List(_ context.Context, ownerID, search string, offset, limit int) ([]model.Student, int64, error) {
	var all []model.Student
	for _, s := range m.students {
		if s.UserID != ownerID {
			continue
		}
		if search != "" && !studentMatches(s, search) {
			continue
		}
		all = append(all, *s)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	total := int64(len(all))
	if offset > len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func studentMatches(s *model.Student, search string) bool {
	kw := strings.ToLower(search)
	for _, v := range []string{s.Name, s.Lastname, s.Email, strconv.Itoa(s.Age), s.Identification} {
		if strings.Contains(strings.ToLower(v), kw) {
			return true
		}
	}
	return false
}

func (m *mockStudentRepo) Create(_ context.Context, student *model.Student) error {
	if student.ID == "" {
		m.seq++
		student.ID = fmt.Sprintf("student-%d", m.seq)
	}
	m.students[student.ID] = student
	return nil
}

func (m *mockStudentRepo) GetByID(_ context.Context, ownerID, id string) (*model.Student, error) {
	if s, ok := m.students[id]; ok && s.UserID == ownerID {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudentRepo) GetWithCourses(ctx context.Context, ownerID, id string) (*model.Student, error) {
	s, err := m.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	copied := *s
	copied.Courses = m.coursesOf[id]
	return &copied, nil
}

func (m *mockStudentRepo) FindDuplicate(_ context.Context, ownerID, email, identification string) (*model.Student, error) {
	for _, s := range m.students {
		if s.UserID != ownerID {
			continue
		}
		if s.Email == email || s.Identification == identification {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudentRepo) Update(_ context.Context, student *model.Student) error {
	m.students[student.ID] = student
	return nil
}

func (m *mockStudentRepo) Delete(_ context.Context, ownerID, id string) error {
	if s, ok := m.students[id]; ok && s.UserID == ownerID {
		delete(m.students, id)
	}
	return nil
}

func (m *mockStudentRepo) CountByOwner(_ context.Context, ownerID string) (int64, error) {
	var total int64
	for _, s := range m.students {
		if s.UserID == ownerID {
			total++
		}
	}
	return total, nil
}

func (m *mockStudentRepo) TopByCourseCount(ctx context.Context, ownerID string, limit int) ([]repository.StudentWithCourseCount, error) {
	var rows []repository.StudentWithCourseCount
	for _, s := range m.students {
		if s.UserID != ownerID {
			continue
		}
		count, _ := m.enrollments.CountByStudent(ctx, s.ID)
		rows = append(rows, repository.StudentWithCourseCount{Student: *s, CoursesCount: count})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].CoursesCount > rows[j].CoursesCount })
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

// ── Mock CourseRepository ──

type mockCourseRepo struct {
	courses     map[string]*model.Course
	seq         int
	enrollments *mockEnrollmentRepo
	schedules   *mockScheduleRepo
}

func newMockCourseRepo(enrollments *mockEnrollmentRepo) *mockCourseRepo {
	return &mockCourseRepo{
		courses:     make(map[string]*model.Course),
		enrollments: enrollments,
	}
}

func (m *mockCourseRepo) List(_ context.Context, ownerID, search string, offset, limit int) ([]model.Course, int64, error) {
	var all []model.Course
	for _, c := range m.courses {
		if c.UserID != ownerID {
			continue
		}
		if search != "" && !courseMatches(c, search) {
			continue
		}
		all = append(all, *c)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	total := int64(len(all))
	if offset > len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func courseMatches(c *model.Course, search string) bool {
	kw := strings.ToLower(search)
	for _, v := range []string{c.Name, c.StartDate.Format("2006-01-02"), c.EndDate.Format("2006-01-02"), c.Type} {
		if strings.Contains(strings.ToLower(v), kw) {
			return true
		}
	}
	return false
}

func (m *mockCourseRepo) Create(_ context.Context, course *model.Course) error {
	if course.ID == "" {
		m.seq++
		course.ID = fmt.Sprintf("course-%d", m.seq)
	}
	m.courses[course.ID] = course
	return nil
}

func (m *mockCourseRepo) GetByID(_ context.Context, ownerID, id string) (*model.Course, error) {
	if c, ok := m.courses[id]; ok && c.UserID == ownerID {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCourseRepo) GetWithSchedules(ctx context.Context, ownerID, id string) (*model.Course, error) {
	c, err := m.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	copied := *c
	if m.schedules != nil {
		for _, sc := range m.schedules.schedules {
			if sc.CourseID == id {
				copied.Schedules = append(copied.Schedules, *sc)
			}
		}
		sort.Slice(copied.Schedules, func(i, j int) bool {
			return copied.Schedules[i].ID < copied.Schedules[j].ID
		})
	}
	return &copied, nil
}

func (m *mockCourseRepo) Update(_ context.Context, course *model.Course) error {
	m.courses[course.ID] = course
	return nil
}

func (m *mockCourseRepo) DeleteWithSchedules(_ context.Context, ownerID, id string) error {
	if m.schedules != nil {
		for sid, sc := range m.schedules.schedules {
			if sc.CourseID == id {
				delete(m.schedules.schedules, sid)
			}
		}
	}
	if c, ok := m.courses[id]; ok && c.UserID == ownerID {
		delete(m.courses, id)
	}
	return nil
}

func (m *mockCourseRepo) CountByOwner(_ context.Context, ownerID string) (int64, error) {
	var total int64
	for _, c := range m.courses {
		if c.UserID == ownerID {
			total++
		}
	}
	return total, nil
}

func (m *mockCourseRepo) TopByEnrollmentCount(ctx context.Context, ownerID string, createdAfter time.Time, limit int) ([]repository.CourseWithStudentCount, error) {
	var rows []repository.CourseWithStudentCount
	for _, c := range m.courses {
		if c.UserID != ownerID || c.CreatedAt.Before(createdAfter) {
			continue
		}
		count, _ := m.enrollments.CountByCourse(ctx, c.ID)
		rows = append(rows, repository.CourseWithStudentCount{Course: *c, StudentsCount: count})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].StudentsCount > rows[j].StudentsCount })
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

// ── Mock ScheduleRepository ──

type mockScheduleRepo struct {
	schedules map[string]*model.Schedule
	seq       int
	courses   *mockCourseRepo // GetOwned 经由所属课程校验归属
}

func newMockScheduleRepo(courses *mockCourseRepo) *mockScheduleRepo {
	m := &mockScheduleRepo{
		schedules: make(map[string]*model.Schedule),
		courses:   courses,
	}
	courses.schedules = m
	return m
}

func (m *mockScheduleRepo) Create(_ context.Context, schedule *model.Schedule) error {
	if schedule.ID == "" {
		m.seq++
		schedule.ID = fmt.Sprintf("schedule-%d", m.seq)
	}
	m.schedules[schedule.ID] = schedule
	return nil
}

func (m *mockScheduleRepo) GetOwned(_ context.Context, ownerID, id string) (*model.Schedule, error) {
	sc, ok := m.schedules[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	c, ok := m.courses.courses[sc.CourseID]
	if !ok || c.UserID != ownerID {
		return nil, gorm.ErrRecordNotFound
	}
	return sc, nil
}

func (m *mockScheduleRepo) Update(_ context.Context, schedule *model.Schedule) error {
	m.schedules[schedule.ID] = schedule
	return nil
}

func (m *mockScheduleRepo) Delete(_ context.Context, id string) error {
	delete(m.schedules, id)
	return nil
}

// ── Mock EnrollmentRepository ──

type mockEnrollmentRepo struct {
	pairs map[string]*model.Enrollment // key: student_id|course_id
}

func newMockEnrollmentRepo() *mockEnrollmentRepo {
	return &mockEnrollmentRepo{pairs: make(map[string]*model.Enrollment)}
}

func pairKey(studentID, courseID string) string {
	return studentID + "|" + courseID
}

func (m *mockEnrollmentRepo) Create(_ context.Context, enrollment *model.Enrollment) error {
	m.pairs[pairKey(enrollment.StudentID, enrollment.CourseID)] = enrollment
	return nil
}

func (m *mockEnrollmentRepo) Get(_ context.Context, studentID, courseID string) (*model.Enrollment, error) {
	if e, ok := m.pairs[pairKey(studentID, courseID)]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEnrollmentRepo) Delete(_ context.Context, studentID, courseID string) error {
	delete(m.pairs, pairKey(studentID, courseID))
	return nil
}

func (m *mockEnrollmentRepo) CountByStudent(_ context.Context, studentID string) (int64, error) {
	var total int64
	for _, e := range m.pairs {
		if e.StudentID == studentID {
			total++
		}
	}
	return total, nil
}

func (m *mockEnrollmentRepo) CountByCourse(_ context.Context, courseID string) (int64, error) {
	var total int64
	for _, e := range m.pairs {
		if e.CourseID == courseID {
			total++
		}
	}
	return total, nil
}

// ── 测试辅助 ──

// mocks 聚合全部 mock 仓储，便于测试直接操纵底层数据
type mocks struct {
	user       *mockUserRepo
	token      *mockTokenRepo
	student    *mockStudentRepo
	course     *mockCourseRepo
	schedule   *mockScheduleRepo
	enrollment *mockEnrollmentRepo
}

func newMockRepository() (*repository.Repository, *mocks) {
	enrollment := newMockEnrollmentRepo()
	course := newMockCourseRepo(enrollment)
	schedule := newMockScheduleRepo(course)

	m := &mocks{
		user:       newMockUserRepo(),
		token:      newMockTokenRepo(),
		student:    newMockStudentRepo(enrollment),
		course:     course,
		schedule:   schedule,
		enrollment: enrollment,
	}

	repo := &repository.Repository{
		User:       m.user,
		Token:      m.token,
		Student:    m.student,
		Course:     m.course,
		Schedule:   m.schedule,
		Enrollment: m.enrollment,
	}
	return repo, m
}

// seedStudent 直接向 mock 仓储写入一名学生
func seedStudent(m *mocks, id, ownerID string) *model.Student {
	s := &model.Student{
		ID:             id,
		Name:           "Juan",
		Lastname:       "Perez",
		Email:          id + "@test.com",
		Age:            20,
		Identification: "ID-" + id,
		UserID:         ownerID,
	}
	m.student.students[id] = s
	return s
}

// seedCourse 直接向 mock 仓储写入一门课程
func seedCourse(m *mocks, id, ownerID string) *model.Course {
	c := &model.Course{
		ID:        id,
		Name:      "Curso " + id,
		StartDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC),
		Type:      model.CourseTypeOffline,
		UserID:    ownerID,
	}
	c.CreatedAt = time.Now()
	m.course.courses[id] = c
	return c
}
