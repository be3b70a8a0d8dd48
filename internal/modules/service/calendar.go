package service

import (
	"context"

	"github.com/time-tracker/api/internal/modules/model"
	"github.com/time-tracker/api/internal/modules/repo"
)

type CalendarService interface {
	GetRange(ctx context.Context, from, to string) ([]model.CalendarEntry, error)
	GetDay(ctx context.Context, date string) ([]model.CalendarEntry, error)
}

type calendarService struct{ r repo.CalendarRepo }

func NewCalendarService(r repo.CalendarRepo) CalendarService {
	return &calendarService{r: r}
}

// GetRange lists logs dated within [from, to], both inclusive.
func (s *calendarService) GetRange(ctx context.Context, from, to string) ([]model.CalendarEntry, error) {
	return s.r.Range(ctx, from, to)
}

func (s *calendarService) GetDay(ctx context.Context, date string) ([]model.CalendarEntry, error) {
	return s.r.Day(ctx, date)
}
