package services

import (
	"fmt"

	"noteboard/internal/server/models"
)

// FormattedRecord is the public shape of a record: the raw attributes plus
// a derived display string. The internal store id is deliberately absent.
type FormattedRecord struct {
	Name      string `json:"name"`
	Message   string `json:"message"`
	Priority  int    `json:"priority"`
	Formatted string `json:"formatted"`
}

func formatRecord(r *models.Record) FormattedRecord {
	return FormattedRecord{
		Name:      r.Name,
		Message:   r.Message,
		Priority:  r.Priority,
		Formatted: fmt.Sprintf("{%d} - [%s] says: %s", r.Priority, r.Name, r.Message),
	}
}
