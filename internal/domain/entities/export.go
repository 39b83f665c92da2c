package entities

import "time"

// DataExport is the bulk snapshot moved by export/import/seed operations.
type DataExport struct {
	Services   []Service `json:"services"`
	Budgets    []Budget  `json:"budgets"`
	ExportedAt time.Time `json:"exported_at"`
}
