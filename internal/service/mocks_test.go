package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/maxpulse/habit-coach/internal/domain"
	"gorm.io/datatypes"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	users map[uuid.UUID]*domain.User
	err   error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{users: make(map[uuid.UUID]*domain.User)}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.err != nil {
		return m.err
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now()
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	user, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (m *MockUserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.users[id]
	return ok, nil
}

// MockMetricRepository is a mock implementation of MetricRepository
type MockMetricRepository struct {
	records map[string]*domain.DailyMetricRecord
	err     error
}

func NewMockMetricRepository() *MockMetricRepository {
	return &MockMetricRepository{records: make(map[string]*domain.DailyMetricRecord)}
}

func metricKey(userID uuid.UUID, date time.Time) string {
	return userID.String() + ":" + date.Format("2006-01-02")
}

func (m *MockMetricRepository) Upsert(ctx context.Context, record *domain.DailyMetricRecord) error {
	if m.err != nil {
		return m.err
	}
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	m.records[metricKey(record.UserID, record.Date)] = record
	return nil
}

func (m *MockMetricRepository) ListByDateRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.DailyMetricRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.DailyMetricRecord
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if rec, ok := m.records[metricKey(userID, d)]; ok {
			result = append(result, *rec)
		}
	}
	return result, nil
}

func (m *MockMetricRepository) List(ctx context.Context, userID uuid.UUID, filter domain.MetricFilter) ([]domain.DailyMetricRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.DailyMetricRecord
	for _, rec := range m.records {
		if rec.UserID == userID {
			result = append(result, *rec)
		}
	}
	// Date descending
	for i := 0; i < len(result); i++ {
		for j := i + 1; j < len(result); j++ {
			if result[j].Date.After(result[i].Date) {
				result[i], result[j] = result[j], result[i]
			}
		}
	}
	return result, nil
}

// MockProgressRepository is a mock implementation of ProgressRepository
type MockProgressRepository struct {
	rows map[uuid.UUID]*domain.ProgramProgress
	err  error

	// updateErrAfter fails the Nth UpdateFields call (1-based); 0 means
	// never fail.
	updateErrAfter int
	updateCalls    int
}

func NewMockProgressRepository() *MockProgressRepository {
	return &MockProgressRepository{rows: make(map[uuid.UUID]*domain.ProgramProgress)}
}

func (m *MockProgressRepository) Create(ctx context.Context, progress *domain.ProgramProgress) error {
	if m.err != nil {
		return m.err
	}
	m.rows[progress.UserID] = progress
	return nil
}

func (m *MockProgressRepository) Get(ctx context.Context, userID uuid.UUID) (*domain.ProgramProgress, error) {
	if m.err != nil {
		return nil, m.err
	}
	row, ok := m.rows[userID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *row
	return &copied, nil
}

func (m *MockProgressRepository) UpdateFields(ctx context.Context, userID uuid.UUID, fields map[string]any) error {
	m.updateCalls++
	if m.updateErrAfter > 0 && m.updateCalls == m.updateErrAfter {
		return fmt.Errorf("update failed")
	}
	if m.err != nil {
		return m.err
	}
	row, ok := m.rows[userID]
	if !ok {
		return domain.ErrNotFound
	}
	for key, value := range fields {
		switch key {
		case "current_week":
			row.CurrentWeek = value.(int)
		case "current_phase":
			row.CurrentPhase = value.(int)
		case "extensions_used":
			row.ExtensionsUsed = value.(int)
		case "decision_history":
			row.DecisionHistory = value.(datatypes.JSON)
		}
	}
	return nil
}

func (m *MockProgressRepository) ListAll(ctx context.Context) ([]domain.ProgramProgress, error) {
	if m.err != nil {
		return nil, m.err
	}
	var rows []domain.ProgramProgress
	for _, row := range m.rows {
		rows = append(rows, *row)
	}
	return rows, nil
}

// MockAssessmentRepository is a mock implementation of AssessmentRepository
type MockAssessmentRepository struct {
	records   map[string]*domain.WeeklyAssessmentRecord
	err       error
	upsertErr error
	upserts   int
}

func NewMockAssessmentRepository() *MockAssessmentRepository {
	return &MockAssessmentRepository{records: make(map[string]*domain.WeeklyAssessmentRecord)}
}

func assessmentKey(userID uuid.UUID, week int) string {
	return fmt.Sprintf("%s:%d", userID, week)
}

func (m *MockAssessmentRepository) Upsert(ctx context.Context, record *domain.WeeklyAssessmentRecord) error {
	m.upserts++
	if m.upsertErr != nil {
		return m.upsertErr
	}
	if m.err != nil {
		return m.err
	}
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	m.records[assessmentKey(record.UserID, record.WeekNumber)] = record
	return nil
}

func (m *MockAssessmentRepository) GetByWeek(ctx context.Context, userID uuid.UUID, week int) (*domain.WeeklyAssessmentRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	record, ok := m.records[assessmentKey(userID, week)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return record, nil
}

func (m *MockAssessmentRepository) LatestBefore(ctx context.Context, userID uuid.UUID, week int) (*domain.WeeklyAssessmentRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	var latest *domain.WeeklyAssessmentRecord
	for _, record := range m.records {
		if record.UserID != userID || record.WeekNumber >= week {
			continue
		}
		if latest == nil || record.WeekNumber > latest.WeekNumber {
			latest = record
		}
	}
	if latest == nil {
		return nil, domain.ErrNotFound
	}
	return latest, nil
}

func (m *MockAssessmentRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.WeeklyAssessmentRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	var records []domain.WeeklyAssessmentRecord
	for _, record := range m.records {
		if record.UserID == userID {
			records = append(records, *record)
		}
	}
	// Week ascending
	for i := 0; i < len(records); i++ {
		for j := i + 1; j < len(records); j++ {
			if records[j].WeekNumber < records[i].WeekNumber {
				records[i], records[j] = records[j], records[i]
			}
		}
	}
	return records, nil
}

// MockTargetsRepository is a mock implementation of TargetsRepository
type MockTargetsRepository struct {
	rows       map[string]*domain.WeeklyTargets
	err        error
	forWeekErr error
}

func NewMockTargetsRepository() *MockTargetsRepository {
	return &MockTargetsRepository{rows: make(map[string]*domain.WeeklyTargets)}
}

func targetsKey(userID uuid.UUID, week int) string {
	return fmt.Sprintf("%s:%d", userID, week)
}

func (m *MockTargetsRepository) Upsert(ctx context.Context, targets *domain.WeeklyTargets) error {
	if m.err != nil {
		return m.err
	}
	if targets.ID == uuid.Nil {
		targets.ID = uuid.New()
	}
	m.rows[targetsKey(targets.UserID, targets.WeekNumber)] = targets
	return nil
}

func (m *MockTargetsRepository) ForWeek(ctx context.Context, userID uuid.UUID, week int) (domain.TargetSet, error) {
	if m.forWeekErr != nil {
		return domain.TargetSet{}, m.forWeekErr
	}
	if m.err != nil {
		return domain.TargetSet{}, m.err
	}
	// Closest earlier week wins, defaults as the fallback.
	for w := week; w >= 1; w-- {
		if row, ok := m.rows[targetsKey(userID, w)]; ok {
			return row.Set(), nil
		}
	}
	return domain.DefaultTargets, nil
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func floatPtr(f float64) *float64 { return &f }
