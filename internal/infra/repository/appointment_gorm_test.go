package repository

import (
	"testing"

	"github.com/BruksfildServices01/agenda-scheduler/internal/models"
)

func TestUniqueProfessionals_KeepsFirstLinkOrder(t *testing.T) {
	rows := []models.Professional{
		{ID: 3, Name: "Zed"},
		{ID: 1, Name: "Ana"},
		{ID: 3, Name: "Zed"},
		{ID: 1, Name: "Ana"},
	}

	got := uniqueProfessionals(rows)
	if len(got) != 2 || got[0].ID != 3 || got[1].ID != 1 {
		t.Fatalf("expected [Zed Ana], got %+v", got)
	}
}
