package notification

import (
	"fmt"
	"time"
)

// ReminderMessage is the next-day reminder text. date is "YYYY-MM-DD" and is
// rendered as dd/mm/yyyy; an unparsable date is shown as given.
func ReminderMessage(clientName, date, start string) string {
	shown := date
	if d, err := time.Parse("2006-01-02", date); err == nil {
		shown = d.Format("02/01/2006")
	}

	return fmt.Sprintf(
		"Olá, %s! Lembrete do seu agendamento no dia %s, às %s. Responda 1 para confirmar ou 2 para cancelar.",
		clientName, shown, start,
	)
}
