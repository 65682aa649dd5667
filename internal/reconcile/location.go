package reconcile

import (
	"log/slog"
	"time"
)

// Location returns the monitor's operating time zone, falling back to
// UTC when the zone database is unavailable.
func Location() *time.Location {
	loc, err := time.LoadLocation(monitorZone)
	if err != nil {
		slog.Warn("reconcile: time zone unavailable, using UTC", "zone", monitorZone, "error", err)
		return time.UTC
	}
	return loc
}
