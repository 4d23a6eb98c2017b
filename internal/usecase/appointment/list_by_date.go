package appointment

import (
	"context"
	"time"

	"github.com/winespa/spa-scheduler/internal/domain/schedule"
	"github.com/winespa/spa-scheduler/internal/dto"
)

type ListByDate struct {
	repo schedule.Repository
}

func NewListByDate(repo schedule.Repository) *ListByDate {
	return &ListByDate{repo: repo}
}

func (uc *ListByDate) Execute(
	ctx context.Context,
	staffID uint,
	clientID uint,
	date time.Time,
) ([]dto.AppointmentListDTO, error) {

	appointments, err := uc.repo.ListAppointmentsForPeriod(
		ctx,
		staffID,
		clientID,
		date,
		date.AddDate(0, 0, 1),
	)
	if err != nil {
		return nil, err
	}

	return dto.AppointmentList(appointments), nil
}
