package services_test

import (
	"context"
	"sync"
	"time"

	"github.com/bionicotaku/lingo-services-progress/internal/models/po"
	"github.com/bionicotaku/lingo-services-progress/internal/repositories"
	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/google/uuid"
)

type progressKey struct {
	learner uuid.UUID
	lesson  uuid.UUID
}

// memoryStore 以 map 模拟进度表，带版本校验。
type memoryStore struct {
	mu      sync.Mutex
	records map[progressKey]*po.LessonProgress
	creates int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{records: make(map[progressKey]*po.LessonProgress)}
}

func (m *memoryStore) Get(_ context.Context, _ txmanager.Session, learnerID, lessonID uuid.UUID) (*po.LessonProgress, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.records[progressKey{learnerID, lessonID}]
	if !ok {
		return nil, repositories.ErrLessonProgressNotFound
	}
	return rec.Clone(), nil
}

func (m *memoryStore) GetForUpdate(ctx context.Context, sess txmanager.Session, learnerID, lessonID uuid.UUID) (*po.LessonProgress, error) {
	return m.Get(ctx, sess, learnerID, lessonID)
}

func (m *memoryStore) CreateIfAbsent(_ context.Context, _ txmanager.Session, learnerID, lessonID, courseID uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := progressKey{learnerID, lessonID}
	if _, ok := m.records[key]; ok {
		return false, nil
	}
	rec := po.NewLessonProgress(learnerID, lessonID, courseID)
	rec.Version = 1
	rec.CreatedAt = time.Now().UTC()
	rec.UpdatedAt = rec.CreatedAt
	m.records[key] = rec
	m.creates++
	return true, nil
}

func (m *memoryStore) Persist(_ context.Context, _ txmanager.Session, record *po.LessonProgress, expectedVersion int64) (*po.LessonProgress, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := progressKey{record.LearnerID, record.LessonID}
	current, ok := m.records[key]
	if !ok || current.Version != expectedVersion {
		return nil, repositories.ErrLessonProgressVersionConflict
	}
	next := record.Clone()
	if current.CompletedAt != nil {
		t := *current.CompletedAt
		next.CompletedAt = &t
	}
	next.CourseID = current.CourseID
	next.CreatedAt = current.CreatedAt
	next.UpdatedAt = time.Now().UTC()
	next.Version = current.Version + 1
	m.records[key] = next
	return next.Clone(), nil
}

func (m *memoryStore) ListByCourse(_ context.Context, _ txmanager.Session, learnerID, courseID uuid.UUID) ([]*po.LessonProgress, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*po.LessonProgress
	for key, rec := range m.records {
		if key.learner == learnerID && rec.CourseID == courseID {
			out = append(out, rec.Clone())
		}
	}
	return out, nil
}
