package domain

import (
	"time"

	"github.com/questx-lab/person-api/internal/model"
	"github.com/questx-lab/person-api/pkg/dateutil"
)

func derefInt(i *int) int {
	if i == nil {
		return 0
	}

	return *i
}

func dateOf(d *model.Date) time.Time {
	if d == nil {
		return time.Time{}
	}

	return dateutil.TruncateToDate(d.Time)
}
