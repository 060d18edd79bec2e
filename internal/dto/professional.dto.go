package dto

type ServiceRefDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type ProfessionalDTO struct {
	ID         uint            `json:"id"`
	Name       string          `json:"name"`
	ShiftStart string          `json:"shift_start"`
	ShiftEnd   string          `json:"shift_end"`
	Services   []ServiceRefDTO `json:"services"`
}
