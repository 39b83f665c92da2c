package interfaces

import (
	"context"
	"propmarketing/internal/domain/entities"
)

// IDataAdminRepository groups the bulk maintenance operations of the store.
//
// ImportAll and Seed replace nothing implicitly; they upsert the records in
// the given export. ClearAll removes every service and budget.

type IDataAdminRepository interface {
	ExportAll(ctx context.Context) (entities.DataExport, error)
	ImportAll(ctx context.Context, data entities.DataExport) error
	Seed(ctx context.Context, data entities.DataExport) error
	ClearAll(ctx context.Context) error
}
