package reminder

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/agenda-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-scheduler/internal/infra/repository/memory"
	"github.com/BruksfildServices01/agenda-scheduler/internal/models"
)

type sentMessage struct {
	phone   string
	message string
}

type fakeSender struct {
	mu   sync.Mutex
	err  error
	sent []sentMessage
}

func (f *fakeSender) Send(_ context.Context, phone, message string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMessage{phone: phone, message: message})
	return nil
}

var settings = Settings{Timezone: "America/Sao_Paulo", CountryCode: "55"}

// 14:00 in São Paulo on 2024-06-10.
func fixedClock() time.Time {
	return time.Date(2024, 6, 10, 17, 0, 0, 0, time.UTC)
}

func seed(t *testing.T, repo *memory.Repository, ap models.Appointment) *models.Appointment {
	t.Helper()
	if ap.ProfessionalID == nil {
		id := uint(1)
		ap.ProfessionalID = &id
	}
	if ap.EndTime == "" {
		ap.EndTime = "23:30"
	}
	if err := repo.CreateAppointment(context.Background(), &ap); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return &ap
}

func TestProcessPending_SendsTomorrowOnly(t *testing.T) {
	repo := memory.New()
	sender := &fakeSender{}

	due := seed(t, repo, models.Appointment{ClientName: "Ana", ClientPhone: "(11) 91234-5678", Date: "2024-06-11", StartTime: "09:00", ReminderEnabled: true})
	seed(t, repo, models.Appointment{ClientName: "Off", ClientPhone: "11912345670", Date: "2024-06-11", StartTime: "10:00"})
	seed(t, repo, models.Appointment{ClientName: "Later", ClientPhone: "11912345671", Date: "2024-06-12", StartTime: "09:00", ReminderEnabled: true})
	seed(t, repo, models.Appointment{ClientName: "Today", ClientPhone: "11912345672", Date: "2024-06-10", StartTime: "20:00", ReminderEnabled: true})

	uc := NewProcessPending(repo, sender, fixedClock, settings, zap.NewNop(), nil)
	res, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if res.Sent != 1 || res.Failed != 0 {
		t.Fatalf("unexpected result %+v", res)
	}
	if len(sender.sent) != 1 || sender.sent[0].phone != "5511912345678" {
		t.Fatalf("unexpected sends %+v", sender.sent)
	}
	want := "Olá, Ana! Lembrete do seu agendamento no dia 11/06/2024, às 09:00. Responda 1 para confirmar ou 2 para cancelar."
	if sender.sent[0].message != want {
		t.Fatalf("unexpected message %q", sender.sent[0].message)
	}

	stored, _ := repo.GetAppointment(context.Background(), due.ID)
	if stored.ReminderSentAt == nil || !stored.ReminderSentAt.Equal(fixedClock()) {
		t.Fatalf("expected sent timestamp stamped, got %v", stored.ReminderSentAt)
	}

	again, _ := uc.Execute(context.Background())
	if again.Sent != 0 || again.Failed != 0 || len(sender.sent) != 1 {
		t.Fatalf("expected no resend, got %+v with %d sends", again, len(sender.sent))
	}
}

func TestProcessPending_FailureLeavesReminderPending(t *testing.T) {
	repo := memory.New()
	sender := &fakeSender{err: errors.New("provider down")}

	ap := seed(t, repo, models.Appointment{ClientName: "Ana", ClientPhone: "11912345678", Date: "2024-06-11", StartTime: "09:00", ReminderEnabled: true})

	uc := NewProcessPending(repo, sender, fixedClock, settings, zap.NewNop(), nil)
	res, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("send failures must not surface as errors: %v", err)
	}
	if res.Sent != 0 || res.Failed != 1 {
		t.Fatalf("unexpected result %+v", res)
	}

	stored, _ := repo.GetAppointment(context.Background(), ap.ID)
	if stored.ReminderSentAt != nil {
		t.Fatalf("expected no timestamp after failure, got %v", stored.ReminderSentAt)
	}

	sender.err = nil
	retry, _ := uc.Execute(context.Background())
	if retry.Sent != 1 {
		t.Fatalf("expected retry to send, got %+v", retry)
	}
}

func TestProcessPending_BatchContinuesAfterBadPhone(t *testing.T) {
	repo := memory.New()
	sender := &fakeSender{}

	seed(t, repo, models.Appointment{ClientName: "NoPhone", ClientPhone: "", Date: "2024-06-11", StartTime: "08:00", ReminderEnabled: true})
	seed(t, repo, models.Appointment{ClientName: "Ok", ClientPhone: "11912345678", Date: "2024-06-11", StartTime: "09:00", ReminderEnabled: true})

	res, err := NewProcessPending(repo, sender, fixedClock, settings, zap.NewNop(), nil).Execute(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if res.Sent != 1 || res.Failed != 1 {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestSendReminder(t *testing.T) {
	repo := memory.New()
	sender := &fakeSender{}
	ap := seed(t, repo, models.Appointment{ClientName: "Ana", ClientPhone: "11912345678", Date: "2024-06-20", StartTime: "09:00"})

	uc := NewSendReminder(repo, sender, fixedClock, settings, zap.NewNop(), nil)
	res, err := uc.Execute(context.Background(), ap.ID)
	if err != nil || res.Sent != 1 {
		t.Fatalf("unexpected %+v %v", res, err)
	}

	stored, _ := repo.GetAppointment(context.Background(), ap.ID)
	if !stored.ReminderEnabled || stored.ReminderSentAt == nil {
		t.Fatalf("expected enabled and stamped, got %+v", stored)
	}

	sender.err = errors.New("timeout")
	res, err = uc.Execute(context.Background(), ap.ID)
	if err != nil || res.Failed != 1 {
		t.Fatalf("expected soft failure, got %+v %v", res, err)
	}
}

func TestToggleReminder_ClearsTimestamp(t *testing.T) {
	repo := memory.New()
	sent := fixedClock()
	ap := seed(t, repo, models.Appointment{ClientName: "Ana", Date: "2024-06-11", StartTime: "09:00", ReminderEnabled: true, ReminderSentAt: &sent})

	uc := NewToggleReminder(repo, nil)

	off, err := uc.Disable(context.Background(), ap.ID)
	if err != nil || off.ReminderEnabled || off.ReminderSentAt != nil {
		t.Fatalf("unexpected disable result %+v %v", off, err)
	}

	on, err := uc.Enable(context.Background(), ap.ID)
	if err != nil || !on.ReminderEnabled || on.ReminderSentAt != nil {
		t.Fatalf("unexpected enable result %+v %v", on, err)
	}
}

func TestProcessReply(t *testing.T) {
	repo := memory.New()
	past := seed(t, repo, models.Appointment{ClientName: "Ana", ClientPhone: "(11) 91234-5678", Date: "2024-06-09", StartTime: "09:00"})
	later := seed(t, repo, models.Appointment{ClientName: "Ana", ClientPhone: "11 91234 5678", Date: "2024-06-12", StartTime: "09:00"})
	first := seed(t, repo, models.Appointment{ClientName: "Ana", ClientPhone: "5511912345678", Date: "2024-06-11", StartTime: "15:00"})

	uc := NewProcessReply(repo, fixedClock, settings, zap.NewNop(), nil)
	ctx := context.Background()

	tests := []struct {
		name string
		from string
		body string
		want bool
	}{
		{"unknown reply", "5511912345678", "sim", false},
		{"empty sender", "", "1", false},
		{"no match", "5511900000000", "1", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := uc.Execute(ctx, tt.from, tt.body)
			if err != nil || got != tt.want {
				t.Fatalf("expected %v, got %v %v", tt.want, got, err)
			}
		})
	}

	ok, err := uc.Execute(ctx, "+55 11 91234-5678", " 1 ")
	if err != nil || !ok {
		t.Fatalf("expected match, got %v %v", ok, err)
	}

	check := func(id uint, want domain.Status) {
		t.Helper()
		ap, _ := repo.GetAppointment(ctx, id)
		if ap.Status != string(want) {
			t.Errorf("appointment %d: expected %s, got %s", id, want, ap.Status)
		}
	}
	check(first.ID, domain.StatusConfirmed)
	check(later.ID, domain.StatusScheduled)
	check(past.ID, domain.StatusScheduled)

	if ok, _ := uc.Execute(ctx, "11912345678", "2"); !ok {
		t.Fatal("expected cancel reply to match")
	}
	check(first.ID, domain.StatusCancelled)
}
