package memory

import (
	"context"
	"sync"

	"github.com/trip-planner-service/internal/domain"
)

// Store - хранилище в памяти, реализующее TripRepository и
// UserRepository. Используется в тестах и в режиме без внешней
// инфраструктуры. Безопасно для конкурентного использования;
// значения копируются на входе и выходе.
type Store struct {
	mu    sync.RWMutex
	trips []domain.Trip
	user  *domain.User
}

// NewStore - создание нового Store
func NewStore() *Store {
	return &Store{}
}

// LoadTrips возвращает сохранённую коллекцию поездок.
// Отсутствующий слот - пустая коллекция без ошибки.
func (s *Store) LoadTrips(ctx context.Context) ([]domain.Trip, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.trips == nil {
		return []domain.Trip{}, nil
	}
	out := make([]domain.Trip, len(s.trips))
	for i, t := range s.trips {
		out[i] = t.Clone()
	}
	return out, nil
}

// SaveTrips заменяет сохранённую коллекцию целиком
func (s *Store) SaveTrips(ctx context.Context, trips []domain.Trip) error {
	cp := make([]domain.Trip, len(trips))
	for i, t := range trips {
		cp[i] = t.Clone()
	}
	s.mu.Lock()
	s.trips = cp
	s.mu.Unlock()
	return nil
}

// LoadUser возвращает сохранённую запись пользователя.
// Отсутствующий слот - пользователь по умолчанию без ошибки.
func (s *Store) LoadUser(ctx context.Context) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return domain.NewDefaultUser(), nil
	}
	u := *s.user
	return &u, nil
}

// SaveUser заменяет сохранённую запись пользователя целиком
func (s *Store) SaveUser(ctx context.Context, user *domain.User) error {
	u := *user
	s.mu.Lock()
	s.user = &u
	s.mu.Unlock()
	return nil
}
