package dto

// EmptyColumnName labels grid columns with no professional behind them.
const EmptyColumnName = "(sem profissional)"

type AgendaColumnDTO struct {
	ProfessionalID *uint  `json:"professional_id"`
	Name           string `json:"name"`
}

type AgendaCellDTO struct {
	AppointmentID *uint  `json:"appointment_id"`
	ClientName    string `json:"client_name"`
	ClientPhone   string `json:"client_phone"`
	Status        string `json:"status,omitempty"`
}

type AgendaRowDTO struct {
	Time  string          `json:"time"`
	Cells []AgendaCellDTO `json:"cells"`
}

type AgendaDTO struct {
	Date    string            `json:"date"`
	Columns []AgendaColumnDTO `json:"columns"`
	Rows    []AgendaRowDTO    `json:"rows"`
}
