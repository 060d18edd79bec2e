package appointment

import (
	"context"
	"reflect"
	"testing"
)

func TestGetAvailability_ShiftBoundary(t *testing.T) {
	f := newFixture()
	svc := f.service(t, "Corte", 30)
	p := f.professional(t, "Ana", "08:00", "10:00", svc.ID)

	uc := NewGetAvailability(f.repo, f.log)
	got, err := uc.Execute(context.Background(), svc.ID, "2024-06-10")
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	var keys []string
	for _, s := range got.Slots() {
		keys = append(keys, s.Start)
		if len(s.Professionals) != 1 || s.Professionals[0].ID != p.ID {
			t.Errorf("slot %s: unexpected professionals %+v", s.Start, s.Professionals)
		}
	}
	want := []string{"08:00", "08:30", "09:00", "09:30"}
	if !reflect.DeepEqual(keys, want) {
		t.Fatalf("expected %v, got %v", want, keys)
	}
}

func TestGetAvailability_ExcludesBookedSlot(t *testing.T) {
	f := newFixture()
	svc := f.service(t, "Corte", 30)
	ana := f.professional(t, "Ana", "08:00", "10:00", svc.ID)
	bia := f.professional(t, "Bia", "08:00", "10:00", svc.ID)
	f.appointment(t, ana.ID, "2024-06-10", "09:00", "09:30")

	got, err := NewGetAvailability(f.repo, f.log).Execute(context.Background(), svc.ID, "2024-06-10")
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	at := func(start string) []uint {
		var ids []uint
		for _, p := range got.Professionals(start) {
			ids = append(ids, p.ID)
		}
		return ids
	}

	if ids := at("09:00"); !reflect.DeepEqual(ids, []uint{bia.ID}) {
		t.Errorf("09:00: expected only Bia, got %v", ids)
	}
	if ids := at("08:30"); !reflect.DeepEqual(ids, []uint{ana.ID, bia.ID}) {
		t.Errorf("08:30: expected Ana then Bia, got %v", ids)
	}
	if ids := at("09:30"); !reflect.DeepEqual(ids, []uint{ana.ID, bia.ID}) {
		t.Errorf("09:30: expected Ana then Bia, got %v", ids)
	}
}

func TestGetAvailability_KeyOrderFollowsFirstInsertion(t *testing.T) {
	f := newFixture()
	svc := f.service(t, "Corte", 30)
	f.professional(t, "Late", "10:00", "11:00", svc.ID)
	f.professional(t, "Early", "09:00", "10:30", svc.ID)

	got, _ := NewGetAvailability(f.repo, f.log).Execute(context.Background(), svc.ID, "2024-06-10")

	var keys []string
	for _, s := range got.Slots() {
		keys = append(keys, s.Start)
	}
	want := []string{"10:00", "10:30", "09:00", "09:30"}
	if !reflect.DeepEqual(keys, want) {
		t.Fatalf("expected insertion order %v, got %v", want, keys)
	}
}

func TestGetAvailability_SoftEmpty(t *testing.T) {
	f := newFixture()
	svc := f.service(t, "Corte", 30)
	f.professional(t, "Ana", "08:00", "10:00", svc.ID)
	uc := NewGetAvailability(f.repo, f.log)

	tests := []struct {
		name      string
		serviceID uint
		date      string
	}{
		{"no service", 0, "2024-06-10"},
		{"no date", svc.ID, ""},
		{"bad date", svc.ID, "10/06/2024"},
		{"unknown service", 999, "2024-06-10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := uc.Execute(context.Background(), tt.serviceID, tt.date)
			if err != nil {
				t.Fatalf("expected soft empty result, got %v", err)
			}
			if got.Len() != 0 {
				t.Fatalf("expected no slots, got %d", got.Len())
			}
		})
	}
}

func TestGetAvailability_SkipsUnreadableShift(t *testing.T) {
	f := newFixture()
	svc := f.service(t, "Corte", 30)
	f.professional(t, "Broken", "9h", "10:00", svc.ID)
	ok := f.professional(t, "Ok", "09:00", "10:00", svc.ID)

	got, err := NewGetAvailability(f.repo, f.log).Execute(context.Background(), svc.ID, "2024-06-10")
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	for _, s := range got.Slots() {
		if len(s.Professionals) != 1 || s.Professionals[0].ID != ok.ID {
			t.Fatalf("unexpected professionals at %s: %+v", s.Start, s.Professionals)
		}
	}
	if got.Len() != 2 {
		t.Fatalf("expected 2 slots, got %d", got.Len())
	}
}

func TestGetAvailability_Idempotent(t *testing.T) {
	f := newFixture()
	svc := f.service(t, "Escova", 45)
	a := f.professional(t, "Ana", "08:00", "12:00", svc.ID)
	f.professional(t, "Bia", "09:00", "11:00", svc.ID)
	f.appointment(t, a.ID, "2024-06-10", "10:00", "10:45")

	uc := NewGetAvailability(f.repo, f.log)
	first, _ := uc.Execute(context.Background(), svc.ID, "2024-06-10")
	second, _ := uc.Execute(context.Background(), svc.ID, "2024-06-10")

	if !reflect.DeepEqual(first.Slots(), second.Slots()) {
		t.Fatalf("availability changed between identical calls:\n%+v\n%+v", first.Slots(), second.Slots())
	}
}

func TestGetAvailability_DuplicateLinkListedOnce(t *testing.T) {
	f := newFixture()
	svc := f.service(t, "Corte", 30)
	ana := f.professional(t, "Ana", "08:00", "09:00", svc.ID, svc.ID)

	got, err := NewGetAvailability(f.repo, f.log).Execute(context.Background(), svc.ID, "2024-06-10")
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	pros := got.Professionals("08:00")
	if len(pros) != 1 || pros[0].ID != ana.ID {
		t.Fatalf("expected Ana once at 08:00, got %+v", pros)
	}
}
