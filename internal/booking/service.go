package booking

import (
	"context"
	"strings"
	"time"
)

type CreateRequest struct {
	CabinID    string
	TenantName string
	DateFrom   *time.Time
	DateTo     *time.Time
	Payment    float64
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, error)
	Delete(ctx context.Context, id string) error

	// IsDateBooked reports whether the cabin is occupied on the given day.
	IsDateBooked(ctx context.Context, date time.Time, cabinID string) (bool, []*Booking, error)
	// IsRangeAvailable reports whether [from, to] is free for the cabin,
	// ignoring the booking with excludeID if non-empty.
	IsRangeAvailable(ctx context.Context, from, to time.Time, cabinID string, excludeID string) (bool, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Create validates the request, runs the advisory overlap check, and persists
// the booking. The check and the insert are two separate steps: two concurrent
// submissions for the same cabin and range can both pass, there is no
// transactional guard.
func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	if strings.TrimSpace(req.TenantName) == "" {
		return nil, ErrTenantRequired
	}
	if req.Payment < 0 {
		return nil, ErrNegativePayment
	}

	if req.DateFrom != nil && req.DateTo != nil {
		existing, err := s.repo.List(ctx, Filter{CabinID: req.CabinID})
		if err != nil {
			return nil, err
		}
		if HasOverlap(*req.DateFrom, *req.DateTo, req.CabinID, existing, "") {
			return nil, ErrDateConflict
		}
	}

	b := &Booking{
		CabinID:    req.CabinID,
		TenantName: req.TenantName,
		DateFrom:   normalizeDay(req.DateFrom),
		DateTo:     normalizeDay(req.DateTo),
		Payment:    req.Payment,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Booking, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) IsDateBooked(ctx context.Context, date time.Time, cabinID string) (bool, []*Booking, error) {
	bookings, err := s.repo.List(ctx, Filter{CabinID: cabinID})
	if err != nil {
		return false, nil, err
	}
	return IsDateBooked(date, cabinID, bookings), OnDate(date, bookings, cabinID), nil
}

func (s *service) IsRangeAvailable(ctx context.Context, from, to time.Time, cabinID string, excludeID string) (bool, error) {
	bookings, err := s.repo.List(ctx, Filter{CabinID: cabinID})
	if err != nil {
		return false, err
	}
	return !HasOverlap(from, to, cabinID, bookings, excludeID), nil
}

func normalizeDay(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := Day(*t)
	return &d
}
