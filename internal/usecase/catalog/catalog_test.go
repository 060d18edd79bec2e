package catalog

import (
	"context"
	"testing"

	"github.com/BruksfildServices01/agenda-scheduler/internal/httperr"
	"github.com/BruksfildServices01/agenda-scheduler/internal/infra/repository/memory"
)

func TestCreateService_Validation(t *testing.T) {
	repo := memory.New()
	uc := NewCreateService(repo, nil)

	tests := []struct {
		name     string
		svcName  string
		duration int
		code     string
	}{
		{"ok", "Corte", 30, ""},
		{"blank name", "  ", 30, httperr.CodeInvalidFormat},
		{"zero duration", "Corte", 0, httperr.CodeInvalidFormat},
		{"negative duration", "Corte", -15, httperr.CodeInvalidFormat},
		{"longer than a day", "Spa", 24 * 60, httperr.CodeUnsupportedRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := uc.Execute(context.Background(), tt.svcName, tt.duration)
			if tt.code == "" {
				if err != nil || svc.ID == 0 {
					t.Fatalf("expected created service, got %+v %v", svc, err)
				}
				return
			}
			if !httperr.IsBusiness(err, tt.code) {
				t.Fatalf("expected %s, got %v", tt.code, err)
			}
		})
	}
}

func TestSaveProfessional_CreateEditList(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()

	corte, _ := NewCreateService(repo, nil).Execute(ctx, "Corte", 30)
	escova, _ := NewCreateService(repo, nil).Execute(ctx, "Escova", 45)

	save := NewSaveProfessional(repo, nil)
	created, err := save.Execute(ctx, SaveProfessionalInput{
		Name: " Ana ", ShiftStart: "08:00", ShiftEnd: "17:00",
		ServiceIDs: []uint{corte.ID, corte.ID, escova.ID, 0},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Name != "Ana" || len(created.Services) != 2 {
		t.Fatalf("unexpected professional %+v", created)
	}

	edited, err := save.Execute(ctx, SaveProfessionalInput{
		ID: created.ID, Name: "Ana", ShiftStart: "09:00", ShiftEnd: "18:00",
		ServiceIDs: []uint{escova.ID},
	})
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	if edited.ID != created.ID || edited.ShiftStart != "09:00" {
		t.Fatalf("unexpected edit %+v", edited)
	}

	list, err := NewListProfessionals(repo).Execute(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 || len(list[0].Services) != 1 || list[0].Services[0].Name != "Escova" {
		t.Fatalf("expected links replaced, got %+v", list)
	}

	if err := NewDeleteProfessional(repo, nil).Execute(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	list, _ = NewListProfessionals(repo).Execute(ctx)
	if len(list) != 0 {
		t.Fatalf("expected empty list, got %+v", list)
	}
}

func TestSaveProfessional_Errors(t *testing.T) {
	repo := memory.New()
	save := NewSaveProfessional(repo, nil)
	ctx := context.Background()

	tests := []struct {
		name string
		in   SaveProfessionalInput
		code string
	}{
		{"blank name", SaveProfessionalInput{Name: "", ShiftStart: "08:00", ShiftEnd: "17:00"}, httperr.CodeInvalidFormat},
		{"bad shift", SaveProfessionalInput{Name: "Ana", ShiftStart: "8h", ShiftEnd: "17:00"}, httperr.CodeInvalidFormat},
		{"inverted shift", SaveProfessionalInput{Name: "Ana", ShiftStart: "17:00", ShiftEnd: "08:00"}, httperr.CodeUnsupportedRange},
		{"unknown service", SaveProfessionalInput{Name: "Ana", ShiftStart: "08:00", ShiftEnd: "17:00", ServiceIDs: []uint{42}}, httperr.CodeNotFound},
		{"unknown professional", SaveProfessionalInput{ID: 42, Name: "Ana", ShiftStart: "08:00", ShiftEnd: "17:00"}, httperr.CodeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := save.Execute(ctx, tt.in); !httperr.IsBusiness(err, tt.code) {
				t.Fatalf("expected %s, got %v", tt.code, err)
			}
		})
	}
}
