package dto

import "github.com/winespa/spa-scheduler/internal/models"

// AppointmentListDTO is the flattened row returned by list endpoints.
type AppointmentListDTO struct {
	ID            uint     `json:"id"`
	Date          string   `json:"date"`
	StartTime     string   `json:"start_time"`
	Status        string   `json:"status"`
	ClientID      uint     `json:"client_id"`
	ClientName    string   `json:"client_name"`
	StaffID       uint     `json:"staff_id"`
	StaffName     string   `json:"staff_name"`
	ServiceNames  []string `json:"service_names"`
	TotalPrice    float64  `json:"total_price"`
	TotalDuration int      `json:"total_duration"`
	CancelReason  string   `json:"cancel_reason,omitempty"`
}

func AppointmentList(appointments []models.Appointment) []AppointmentListDTO {
	out := make([]AppointmentListDTO, 0, len(appointments))
	for i := range appointments {
		out = append(out, appointmentRow(&appointments[i]))
	}
	return out
}

func appointmentRow(ap *models.Appointment) AppointmentListDTO {
	names := make([]string, 0, len(ap.Services))
	for _, svc := range ap.Services {
		names = append(names, svc.Service.Name)
	}
	if len(names) == 0 && ap.PrimaryService.Name != "" {
		names = append(names, ap.PrimaryService.Name)
	}
	return AppointmentListDTO{
		ID:            ap.ID,
		Date:          ap.Date.Format("2006-01-02"),
		StartTime:     ap.StartTime,
		Status:        ap.Status,
		ClientID:      ap.ClientID,
		ClientName:    ap.Client.Name,
		StaffID:       ap.StaffID,
		StaffName:     ap.Staff.Name,
		ServiceNames:  names,
		TotalPrice:    ap.TotalPrice,
		TotalDuration: ap.TotalDuration,
		CancelReason:  ap.CancelReason,
	}
}
