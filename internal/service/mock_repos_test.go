package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/bangkihwa/seukot-management-web/internal/model"
)

// ── Mock AdminRepository ──

type mockAdminRepo struct {
	admins map[string]*model.Admin // key: id 또는 "email:"+email
}

func newMockAdminRepo() *mockAdminRepo {
	return &mockAdminRepo{admins: make(map[string]*model.Admin)}
}

func (m *mockAdminRepo) put(admin *model.Admin) {
	m.admins[admin.AdminID] = admin
	m.admins["email:"+admin.Email] = admin
}

func (m *mockAdminRepo) GetByID(_ context.Context, id string) (*model.Admin, error) {
	if a, ok := m.admins[id]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAdminRepo) GetByEmail(_ context.Context, email string) (*model.Admin, error) {
	if a, ok := m.admins["email:"+email]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

// ── Mock StudentRepository ──

type mockStudentRepo struct {
	students    map[string]*model.Student // key: id
	updateCalls int
}

func newMockStudentRepo() *mockStudentRepo {
	return &mockStudentRepo{students: make(map[string]*model.Student)}
}

func (m *mockStudentRepo) Create(_ context.Context, student *model.Student) error {
	if student.StudentID == "" {
		student.StudentID = "student-" + student.StudentLoginID
	}
	student.CreatedAt = time.Now()
	student.UpdatedAt = time.Now()
	m.students[student.StudentID] = student
	return nil
}

func (m *mockStudentRepo) GetByID(_ context.Context, id string) (*model.Student, error) {
	if s, ok := m.students[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudentRepo) GetByLoginID(_ context.Context, loginID string) (*model.Student, error) {
	loginID = strings.ToLower(loginID)
	for _, s := range m.students {
		if strings.ToLower(s.StudentLoginID) == loginID {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudentRepo) Update(_ context.Context, student *model.Student) error {
	m.updateCalls++
	m.students[student.StudentID] = student
	return nil
}

func (m *mockStudentRepo) List(_ context.Context, offset, limit int, keyword, grade string) ([]model.Student, int64, error) {
	var all []model.Student
	for _, s := range m.students {
		if keyword != "" && !strings.Contains(s.Name, keyword) && !strings.Contains(s.StudentLoginID, keyword) {
			continue
		}
		if grade != "" && s.Grade != grade {
			continue
		}
		all = append(all, *s)
	}
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

// ── Mock SubjectRecordRepository ──

type mockSubjectRecordRepo struct {
	records     map[string]*model.SubjectRecord
	order       []string // 입력 순서 보존용
	seq         int
	updateCalls int
	deleteCalls int
}

func newMockSubjectRecordRepo() *mockSubjectRecordRepo {
	return &mockSubjectRecordRepo{records: make(map[string]*model.SubjectRecord)}
}

func (m *mockSubjectRecordRepo) Create(_ context.Context, record *model.SubjectRecord) error {
	if record.RecordID == "" {
		m.seq++
		record.RecordID = fmt.Sprintf("record-%d", m.seq)
	}
	record.CreatedAt = time.Now()
	record.UpdatedAt = time.Now()
	m.records[record.RecordID] = record
	m.order = append(m.order, record.RecordID)
	return nil
}

func (m *mockSubjectRecordRepo) GetByID(_ context.Context, id string) (*model.SubjectRecord, error) {
	if r, ok := m.records[id]; ok {
		copied := *r
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSubjectRecordRepo) ListByStudent(_ context.Context, studentID string, semester *model.Semester) ([]model.SubjectRecord, error) {
	var result []model.SubjectRecord
	// 실제 구현과 같이 학기 → 과목명 순으로 정렬해 돌려준다
	for _, sem := range model.Semesters {
		if semester != nil && sem != *semester {
			continue
		}
		var group []model.SubjectRecord
		for _, id := range m.order {
			r, ok := m.records[id]
			if !ok || r.StudentID != studentID || r.Semester != sem {
				continue
			}
			group = append(group, *r)
		}
		for i := 0; i < len(group); i++ {
			for j := i + 1; j < len(group); j++ {
				if group[j].SubjectName < group[i].SubjectName {
					group[i], group[j] = group[j], group[i]
				}
			}
		}
		result = append(result, group...)
	}
	return result, nil
}

func (m *mockSubjectRecordRepo) ExistsBySubject(_ context.Context, studentID string, semester model.Semester, subjectName, excludeID string) (bool, error) {
	for _, r := range m.records {
		if r.RecordID == excludeID {
			continue
		}
		if r.StudentID == studentID && r.Semester == semester && r.SubjectName == subjectName {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockSubjectRecordRepo) Update(_ context.Context, record *model.SubjectRecord) error {
	m.updateCalls++
	if _, ok := m.records[record.RecordID]; !ok {
		return gorm.ErrRecordNotFound
	}
	record.UpdatedAt = time.Now()
	copied := *record
	m.records[record.RecordID] = &copied
	return nil
}

func (m *mockSubjectRecordRepo) Delete(_ context.Context, id string) error {
	m.deleteCalls++
	delete(m.records, id)
	return nil
}

// ── Mock SessionStore ──

type mockSessionStore struct {
	sessions map[string]string // token → studentID
	saveErr  error
}

func newMockSessionStore() *mockSessionStore {
	return &mockSessionStore{sessions: make(map[string]string)}
}

func (m *mockSessionStore) SaveStudentSession(_ context.Context, token, studentID string, _ time.Duration) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.sessions[token] = studentID
	return nil
}

func (m *mockSessionStore) GetStudentSession(_ context.Context, token string) (string, error) {
	return m.sessions[token], nil
}

func (m *mockSessionStore) DeleteStudentSession(_ context.Context, token string) error {
	delete(m.sessions, token)
	return nil
}
