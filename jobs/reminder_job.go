package jobs

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/randexapp/randex/notifications"
	"github.com/randexapp/randex/repository"
)

// ReminderJob emails customers about their confirmed appointments for the
// following day. Scheduled once per evening from main.
type ReminderJob struct {
	Appointments repository.AppointmentRepository
}

func NewReminderJob(appointments repository.AppointmentRepository) *ReminderJob {
	return &ReminderJob{Appointments: appointments}
}

func (j *ReminderJob) Run() {
	log.Println("Running job: SendAppointmentReminders...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	details, err := j.Appointments.ListConfirmedByDate(ctx, tomorrow)
	if err != nil {
		log.Printf("Error checking for upcoming appointments: %v", err)
		return
	}
	if len(details) == 0 {
		return
	}

	for _, detail := range details {
		if detail.CustomerEmail == nil {
			continue
		}
		name := ""
		if detail.CustomerName != nil {
			name = *detail.CustomerName
		}

		subject := "Reminder: Your Appointment is Tomorrow!"
		body := fmt.Sprintf(
			"<h1>Appointment Reminder</h1><p>Hi %s,</p><p>This is a friendly reminder of your appointment at %s tomorrow (%s) at %s for %s.</p>",
			name, detail.BusinessName, detail.AppointmentDate, detail.AppointmentTime, detail.ServiceName,
		)
		go notifications.SendEmail(name, *detail.CustomerEmail, subject, body)
	}

	log.Printf("Sent %d appointment reminder(s).", len(details))
}
