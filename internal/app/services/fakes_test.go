package services

import (
	"context"
	"sort"

	"github.com/baris/acadrecords/internal/app/models"
	"github.com/baris/acadrecords/internal/app/repositories"
)

// In-memory gateway implementations backing the service tests.

type fakeUserRepo struct {
	users  map[int64]*models.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*models.User)}
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user *models.User) (int64, error) {
	for _, u := range f.users {
		if u.Username == user.Username {
			return 0, repositories.ErrUsernameTaken
		}
	}
	f.nextID++
	user.ID = f.nextID
	f.users[user.ID] = user
	return user.ID, nil
}

func (f *fakeUserRepo) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) GetUserByID(_ context.Context, id int64) (*models.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) UsernameExists(_ context.Context, username string) (bool, error) {
	for _, u := range f.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) UpdatePassword(_ context.Context, id int64, passwordHash string) error {
	u, ok := f.users[id]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.Password = passwordHash
	return nil
}

func (f *fakeUserRepo) DeleteUser(_ context.Context, id int64) error {
	if _, ok := f.users[id]; !ok {
		return repositories.ErrUserNotFound
	}
	delete(f.users, id)
	return nil
}

type fakeStudentRepo struct {
	students  map[int64]*models.Student
	usernames map[string]int64
}

func newFakeStudentRepo() *fakeStudentRepo {
	return &fakeStudentRepo{
		students:  make(map[int64]*models.Student),
		usernames: make(map[string]int64),
	}
}

func (f *fakeStudentRepo) add(student *models.Student, username string) {
	f.students[student.ID] = student
	if username != "" {
		f.usernames[username] = student.ID
	}
}

func (f *fakeStudentRepo) Create(_ context.Context, student *models.Student) error {
	f.students[student.ID] = student
	return nil
}

func (f *fakeStudentRepo) GetByID(_ context.Context, id int64) (*models.Student, error) {
	if s, ok := f.students[id]; ok {
		return s, nil
	}
	return nil, repositories.ErrStudentNotFound
}

func (f *fakeStudentRepo) GetByUsername(_ context.Context, username string) (*models.Student, error) {
	if id, ok := f.usernames[username]; ok {
		return f.students[id], nil
	}
	return nil, repositories.ErrStudentNotFound
}

func (f *fakeStudentRepo) GetByGroup(_ context.Context, groupID int64) ([]*models.Student, error) {
	var out []*models.Student
	for _, s := range f.students {
		if s.GroupID != nil && *s.GroupID == groupID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeStudentRepo) GetAll(_ context.Context) ([]*models.Student, error) {
	out := make([]*models.Student, 0, len(f.students))
	for _, s := range f.students {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeStudentRepo) Update(_ context.Context, student *models.Student) error {
	if _, ok := f.students[student.ID]; !ok {
		return repositories.ErrStudentNotFound
	}
	f.students[student.ID] = student
	return nil
}

func (f *fakeStudentRepo) SetGroup(_ context.Context, studentID int64, groupID *int64) error {
	s, ok := f.students[studentID]
	if !ok {
		return repositories.ErrStudentNotFound
	}
	s.GroupID = groupID
	return nil
}

func (f *fakeStudentRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.students[id]; !ok {
		return repositories.ErrStudentNotFound
	}
	delete(f.students, id)
	return nil
}

func (f *fakeStudentRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	_, ok := f.students[id]
	return ok, nil
}

func (f *fakeStudentRepo) EmailTakenByOther(_ context.Context, email string, id int64) (bool, error) {
	for _, s := range f.students {
		if s.Email == email && s.ID != id {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStudentRepo) CountByGroup(_ context.Context, groupID int64) (int64, error) {
	var count int64
	for _, s := range f.students {
		if s.GroupID != nil && *s.GroupID == groupID {
			count++
		}
	}
	return count, nil
}

func (f *fakeStudentRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.students)), nil
}

type fakeTeacherRepo struct {
	teachers  map[int64]*models.Teacher
	usernames map[string]int64
}

func newFakeTeacherRepo() *fakeTeacherRepo {
	return &fakeTeacherRepo{
		teachers:  make(map[int64]*models.Teacher),
		usernames: make(map[string]int64),
	}
}

func (f *fakeTeacherRepo) add(teacher *models.Teacher, username string) {
	f.teachers[teacher.ID] = teacher
	if username != "" {
		f.usernames[username] = teacher.ID
	}
}

func (f *fakeTeacherRepo) Create(_ context.Context, teacher *models.Teacher) error {
	f.teachers[teacher.ID] = teacher
	return nil
}

func (f *fakeTeacherRepo) GetByID(_ context.Context, id int64) (*models.Teacher, error) {
	if t, ok := f.teachers[id]; ok {
		return t, nil
	}
	return nil, repositories.ErrTeacherNotFound
}

func (f *fakeTeacherRepo) GetByUsername(_ context.Context, username string) (*models.Teacher, error) {
	if id, ok := f.usernames[username]; ok {
		return f.teachers[id], nil
	}
	return nil, repositories.ErrTeacherNotFound
}

func (f *fakeTeacherRepo) GetAll(_ context.Context) ([]*models.Teacher, error) {
	out := make([]*models.Teacher, 0, len(f.teachers))
	for _, t := range f.teachers {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeTeacherRepo) Update(_ context.Context, teacher *models.Teacher) error {
	if _, ok := f.teachers[teacher.ID]; !ok {
		return repositories.ErrTeacherNotFound
	}
	f.teachers[teacher.ID] = teacher
	return nil
}

func (f *fakeTeacherRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.teachers[id]; !ok {
		return repositories.ErrTeacherNotFound
	}
	delete(f.teachers, id)
	return nil
}

func (f *fakeTeacherRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	_, ok := f.teachers[id]
	return ok, nil
}

func (f *fakeTeacherRepo) EmailTakenByOther(_ context.Context, email string, id int64) (bool, error) {
	for _, t := range f.teachers {
		if t.Email == email && t.ID != id {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeTeacherRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.teachers)), nil
}

type fakeAdminRepo struct {
	admins map[string]*models.Administrator
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{admins: make(map[string]*models.Administrator)}
}

func (f *fakeAdminRepo) Create(_ context.Context, admin *models.Administrator) error {
	return nil
}

func (f *fakeAdminRepo) GetByUsername(_ context.Context, username string) (*models.Administrator, error) {
	if a, ok := f.admins[username]; ok {
		return a, nil
	}
	return nil, repositories.ErrAdministratorNotFound
}

type fakeGroupRepo struct {
	groups map[int64]*models.StudyGroup
	nextID int64
}

func newFakeGroupRepo() *fakeGroupRepo {
	return &fakeGroupRepo{groups: make(map[int64]*models.StudyGroup)}
}

func (f *fakeGroupRepo) add(group *models.StudyGroup) {
	if group.ID > f.nextID {
		f.nextID = group.ID
	}
	f.groups[group.ID] = group
}

func (f *fakeGroupRepo) Create(_ context.Context, group *models.StudyGroup) (int64, error) {
	f.nextID++
	group.ID = f.nextID
	f.groups[group.ID] = group
	return group.ID, nil
}

func (f *fakeGroupRepo) GetByID(_ context.Context, id int64) (*models.StudyGroup, error) {
	if g, ok := f.groups[id]; ok {
		return g, nil
	}
	return nil, repositories.ErrGroupNotFound
}

func (f *fakeGroupRepo) GetByName(_ context.Context, name string) (*models.StudyGroup, error) {
	for _, g := range f.groups {
		if g.Name == name {
			return g, nil
		}
	}
	return nil, repositories.ErrGroupNotFound
}

func (f *fakeGroupRepo) GetAll(_ context.Context) ([]*models.StudyGroup, error) {
	out := make([]*models.StudyGroup, 0, len(f.groups))
	for _, g := range f.groups {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeGroupRepo) Update(_ context.Context, group *models.StudyGroup) error {
	if _, ok := f.groups[group.ID]; !ok {
		return repositories.ErrGroupNotFound
	}
	f.groups[group.ID] = group
	return nil
}

func (f *fakeGroupRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.groups[id]; !ok {
		return repositories.ErrGroupNotFound
	}
	delete(f.groups, id)
	return nil
}

func (f *fakeGroupRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	_, ok := f.groups[id]
	return ok, nil
}

func (f *fakeGroupRepo) ExistsByName(_ context.Context, name string) (bool, error) {
	for _, g := range f.groups {
		if g.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeGroupRepo) NameTakenByOther(_ context.Context, name string, id int64) (bool, error) {
	for _, g := range f.groups {
		if g.Name == name && g.ID != id {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeGroupRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.groups)), nil
}

type fakeSubjectRepo struct {
	subjects map[int64]*models.Subject
	nextID   int64
}

func newFakeSubjectRepo() *fakeSubjectRepo {
	return &fakeSubjectRepo{subjects: make(map[int64]*models.Subject)}
}

func (f *fakeSubjectRepo) add(subject *models.Subject) {
	if subject.ID > f.nextID {
		f.nextID = subject.ID
	}
	f.subjects[subject.ID] = subject
}

func (f *fakeSubjectRepo) Create(_ context.Context, subject *models.Subject) (int64, error) {
	f.nextID++
	subject.ID = f.nextID
	f.subjects[subject.ID] = subject
	return subject.ID, nil
}

func (f *fakeSubjectRepo) GetByID(_ context.Context, id int64) (*models.Subject, error) {
	if s, ok := f.subjects[id]; ok {
		return s, nil
	}
	return nil, repositories.ErrSubjectNotFound
}

func (f *fakeSubjectRepo) GetAll(_ context.Context) ([]*models.Subject, error) {
	out := make([]*models.Subject, 0, len(f.subjects))
	for _, s := range f.subjects {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeSubjectRepo) Update(_ context.Context, subject *models.Subject) error {
	if _, ok := f.subjects[subject.ID]; !ok {
		return repositories.ErrSubjectNotFound
	}
	f.subjects[subject.ID] = subject
	return nil
}

func (f *fakeSubjectRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.subjects[id]; !ok {
		return repositories.ErrSubjectNotFound
	}
	delete(f.subjects, id)
	return nil
}

func (f *fakeSubjectRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	_, ok := f.subjects[id]
	return ok, nil
}

func (f *fakeSubjectRepo) CodeTakenByOther(_ context.Context, code string, id int64) (bool, error) {
	for _, s := range f.subjects {
		if s.Code == code && s.ID != id {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeSubjectRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.subjects)), nil
}

type fakeAssignmentRepo struct {
	assignments map[int64]*models.SubjectAssignment
	nextID      int64
}

func newFakeAssignmentRepo() *fakeAssignmentRepo {
	return &fakeAssignmentRepo{assignments: make(map[int64]*models.SubjectAssignment)}
}

func (f *fakeAssignmentRepo) add(assignment *models.SubjectAssignment) {
	if assignment.ID > f.nextID {
		f.nextID = assignment.ID
	}
	f.assignments[assignment.ID] = assignment
}

func (f *fakeAssignmentRepo) Create(_ context.Context, assignment *models.SubjectAssignment) (int64, error) {
	for _, a := range f.assignments {
		if a.SubjectID == assignment.SubjectID && a.TeacherID == assignment.TeacherID &&
			a.GroupID == assignment.GroupID && a.AcademicYear == assignment.AcademicYear &&
			a.Semester == assignment.Semester {
			return 0, repositories.ErrAssignmentExists
		}
	}
	f.nextID++
	assignment.ID = f.nextID
	f.assignments[assignment.ID] = assignment
	return assignment.ID, nil
}

func (f *fakeAssignmentRepo) GetByID(_ context.Context, id int64) (*models.SubjectAssignment, error) {
	if a, ok := f.assignments[id]; ok {
		return a, nil
	}
	return nil, repositories.ErrAssignmentNotFound
}

func (f *fakeAssignmentRepo) list(filter func(*models.SubjectAssignment) bool) []*models.SubjectAssignment {
	var out []*models.SubjectAssignment
	for _, a := range f.assignments {
		if filter(a) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (f *fakeAssignmentRepo) GetAll(_ context.Context) ([]*models.SubjectAssignment, error) {
	return f.list(func(*models.SubjectAssignment) bool { return true }), nil
}

func (f *fakeAssignmentRepo) GetByTeacher(_ context.Context, teacherID int64) ([]*models.SubjectAssignment, error) {
	return f.list(func(a *models.SubjectAssignment) bool { return a.TeacherID == teacherID }), nil
}

func (f *fakeAssignmentRepo) GetBySubject(_ context.Context, subjectID int64) ([]*models.SubjectAssignment, error) {
	return f.list(func(a *models.SubjectAssignment) bool { return a.SubjectID == subjectID }), nil
}

func (f *fakeAssignmentRepo) GetByGroup(_ context.Context, groupID int64) ([]*models.SubjectAssignment, error) {
	return f.list(func(a *models.SubjectAssignment) bool { return a.GroupID == groupID }), nil
}

func (f *fakeAssignmentRepo) GetByAcademicYear(_ context.Context, academicYear string) ([]*models.SubjectAssignment, error) {
	return f.list(func(a *models.SubjectAssignment) bool { return a.AcademicYear == academicYear }), nil
}

func (f *fakeAssignmentRepo) Update(_ context.Context, assignment *models.SubjectAssignment) error {
	if _, ok := f.assignments[assignment.ID]; !ok {
		return repositories.ErrAssignmentNotFound
	}
	f.assignments[assignment.ID] = assignment
	return nil
}

func (f *fakeAssignmentRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.assignments[id]; !ok {
		return repositories.ErrAssignmentNotFound
	}
	delete(f.assignments, id)
	return nil
}

func (f *fakeAssignmentRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	_, ok := f.assignments[id]
	return ok, nil
}

func (f *fakeAssignmentRepo) ExistsByFields(_ context.Context, subjectID, teacherID, groupID int64, academicYear, semester string) (bool, error) {
	for _, a := range f.assignments {
		if a.SubjectID == subjectID && a.TeacherID == teacherID && a.GroupID == groupID &&
			a.AcademicYear == academicYear && a.Semester == semester {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAssignmentRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.assignments)), nil
}

type fakeGradeRepo struct {
	grades      map[int64]*models.Grade
	assignments *fakeAssignmentRepo
	students    *fakeStudentRepo
	nextID      int64
}

func newFakeGradeRepo(assignments *fakeAssignmentRepo, students *fakeStudentRepo) *fakeGradeRepo {
	return &fakeGradeRepo{
		grades:      make(map[int64]*models.Grade),
		assignments: assignments,
		students:    students,
	}
}

func (f *fakeGradeRepo) Create(_ context.Context, grade *models.Grade) (int64, error) {
	for _, g := range f.grades {
		if g.StudentID == grade.StudentID && g.AssignmentID == grade.AssignmentID {
			return 0, repositories.ErrGradeExists
		}
	}
	f.nextID++
	grade.ID = f.nextID
	f.grades[grade.ID] = grade
	return grade.ID, nil
}

func (f *fakeGradeRepo) GetByID(_ context.Context, id int64) (*models.Grade, error) {
	if g, ok := f.grades[id]; ok {
		return g, nil
	}
	return nil, repositories.ErrGradeNotFound
}

func (f *fakeGradeRepo) Update(_ context.Context, grade *models.Grade) error {
	if _, ok := f.grades[grade.ID]; !ok {
		return repositories.ErrGradeNotFound
	}
	f.grades[grade.ID] = grade
	return nil
}

func (f *fakeGradeRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.grades[id]; !ok {
		return repositories.ErrGradeNotFound
	}
	delete(f.grades, id)
	return nil
}

func (f *fakeGradeRepo) ExistsByStudentAndAssignment(_ context.Context, studentID, assignmentID int64) (bool, error) {
	for _, g := range f.grades {
		if g.StudentID == studentID && g.AssignmentID == assignmentID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeGradeRepo) list(filter func(*models.Grade) bool) []*models.Grade {
	var out []*models.Grade
	for _, g := range f.grades {
		if filter(g) {
			out = append(out, g)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (f *fakeGradeRepo) assignmentOf(g *models.Grade) *models.SubjectAssignment {
	return f.assignments.assignments[g.AssignmentID]
}

func (f *fakeGradeRepo) GetByStudent(_ context.Context, studentID int64) ([]*models.Grade, error) {
	return f.list(func(g *models.Grade) bool { return g.StudentID == studentID }), nil
}

func (f *fakeGradeRepo) GetByAssignment(_ context.Context, assignmentID int64) ([]*models.Grade, error) {
	return f.list(func(g *models.Grade) bool { return g.AssignmentID == assignmentID }), nil
}

func (f *fakeGradeRepo) GetByTeacher(_ context.Context, teacherID int64) ([]*models.Grade, error) {
	return f.list(func(g *models.Grade) bool {
		a := f.assignmentOf(g)
		return a != nil && a.TeacherID == teacherID
	}), nil
}

func (f *fakeGradeRepo) GetByTeacherAndSubject(_ context.Context, teacherID, subjectID int64) ([]*models.Grade, error) {
	return f.list(func(g *models.Grade) bool {
		a := f.assignmentOf(g)
		return a != nil && a.TeacherID == teacherID && a.SubjectID == subjectID
	}), nil
}

func (f *fakeGradeRepo) GetAll(_ context.Context) ([]*models.Grade, error) {
	grades := f.list(func(*models.Grade) bool { return true })
	for _, g := range grades {
		g.Assignment = f.assignmentOf(g)
		if f.students != nil {
			g.Student = f.students.students[g.StudentID]
		}
	}
	return grades, nil
}

func (f *fakeGradeRepo) CountByTeacher(ctx context.Context, teacherID int64) (int64, error) {
	grades, _ := f.GetByTeacher(ctx, teacherID)
	return int64(len(grades)), nil
}

func (f *fakeGradeRepo) CountByStudent(ctx context.Context, studentID int64) (int64, error) {
	grades, _ := f.GetByStudent(ctx, studentID)
	return int64(len(grades)), nil
}

func (f *fakeGradeRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.grades)), nil
}
