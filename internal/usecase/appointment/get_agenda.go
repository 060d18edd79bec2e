package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/agenda-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-scheduler/internal/dto"
	"github.com/BruksfildServices01/agenda-scheduler/internal/timezone"
)

const (
	AgendaColumns  = 5
	agendaFirstRow = 8 * 60
	agendaLastRow  = 18*60 + 30
)

type GetAgenda struct {
	repo  domain.Repository
	clock timezone.Clock
	tz    string
}

func NewGetAgenda(repo domain.Repository, clock timezone.Clock, tz string) *GetAgenda {
	return &GetAgenda{repo: repo, clock: clock, tz: tz}
}

// Execute builds the manual grid for date. A missing or malformed date shows
// today in the shop timezone.
func (uc *GetAgenda) Execute(ctx context.Context, date string) (*dto.AgendaDTO, error) {
	day, err := domain.ParseDate(date)
	if err != nil {
		day = timezone.DateOf(uc.clock(), uc.tz)
	}

	pros, err := uc.repo.ListProfessionalsByName(ctx, AgendaColumns)
	if err != nil {
		return nil, err
	}

	columns := make([]dto.AgendaColumnDTO, 0, AgendaColumns)
	cellIndex := make(map[uint]int, len(pros))
	for _, p := range pros {
		id := p.ID
		cellIndex[id] = len(columns)
		columns = append(columns, dto.AgendaColumnDTO{ProfessionalID: &id, Name: p.Name})
	}
	for len(columns) < AgendaColumns {
		columns = append(columns, dto.AgendaColumnDTO{Name: dto.EmptyColumnName})
	}

	rows := make([]dto.AgendaRowDTO, 0, (agendaLastRow-agendaFirstRow)/domain.DefaultStep+1)
	rowIndex := map[string]int{}
	for t := domain.TimeOfDay(agendaFirstRow); t <= agendaLastRow; t += domain.DefaultStep {
		rowIndex[t.String()] = len(rows)
		rows = append(rows, dto.AgendaRowDTO{
			Time:  t.String(),
			Cells: make([]dto.AgendaCellDTO, AgendaColumns),
		})
	}

	for _, p := range pros {
		apps, err := uc.repo.ListAppointmentsForDay(ctx, p.ID, day)
		if err != nil {
			return nil, err
		}
		col := cellIndex[p.ID]
		for _, ap := range apps {
			r, ok := rowIndex[ap.StartTime]
			if !ok {
				continue
			}
			id := ap.ID
			rows[r].Cells[col] = dto.AgendaCellDTO{
				AppointmentID: &id,
				ClientName:    ap.ClientName,
				ClientPhone:   ap.ClientPhone,
				Status:        ap.Status,
			}
		}
	}

	return &dto.AgendaDTO{Date: day, Columns: columns, Rows: rows}, nil
}
