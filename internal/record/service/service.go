package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/formdrop/formdrop/internal/record"
	"github.com/formdrop/formdrop/internal/record/repository"
)

var (
	ErrMissingField = errors.New("name and email are required")
	ErrInvalidAge   = errors.New("age must be a whole number")
)

// Service validates submissions and reads/writes records through a repository.
type Service struct {
	repo repository.Repository
	now  func() time.Time
}

func New(repo repository.Repository) *Service {
	return &Service{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

// WithClock overrides the timestamp source; used by tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Validate turns a raw submission into a record without a timestamp. Only
// presence is checked; values are stored as submitted.
func Validate(sub record.Submission) (*record.Record, error) {
	if sub.Name == "" || sub.Email == "" {
		return nil, ErrMissingField
	}
	r := &record.Record{Name: sub.Name, Email: sub.Email, City: sub.City}
	if a := strings.TrimSpace(sub.Age); a != "" {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidAge, a)
		}
		r.Age = &n
	}
	return r, nil
}

// Submit validates sub and writes one record stamped with the current time.
// Validation failures never reach the repository.
func (s *Service) Submit(ctx context.Context, sub record.Submission) (*record.Record, error) {
	r, err := Validate(sub)
	if err != nil {
		return nil, err
	}
	r.CreatedAt = s.now()
	if err := s.repo.Insert(ctx, r); err != nil {
		return nil, fmt.Errorf("insert record: %w", err)
	}
	return r, nil
}

// List returns every stored record.
func (s *Service) List(ctx context.Context) ([]record.Document, error) {
	list, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	return list, nil
}
