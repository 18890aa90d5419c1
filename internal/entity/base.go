package entity

import (
	"context"

	"github.com/questx-lab/person-api/pkg/xcontext"
)

// MigrateTable creates or alters the tables of all entities to their latest shape.
func MigrateTable(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(
		&Person{},
	)
}
