package appointment

import (
	"context"
	"time"

	"github.com/winespa/spa-scheduler/internal/domain/schedule"
	"github.com/winespa/spa-scheduler/internal/dto"
	"github.com/winespa/spa-scheduler/internal/timezone"
)

type ListByMonth struct {
	repo schedule.Repository
}

func NewListByMonth(repo schedule.Repository) *ListByMonth {
	return &ListByMonth{repo: repo}
}

func (uc *ListByMonth) Execute(
	ctx context.Context,
	staffID uint,
	clientID uint,
	year int,
	month time.Month,
) ([]dto.AppointmentListDTO, error) {

	loc := timezone.Location("")

	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0)

	appointments, err := uc.repo.ListAppointmentsForPeriod(ctx, staffID, clientID, start, end)
	if err != nil {
		return nil, err
	}

	return dto.AppointmentList(appointments), nil
}
