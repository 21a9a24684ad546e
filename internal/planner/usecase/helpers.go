package usecase

import (
	"fmt"

	"github.com/google/uuid"

	"weekly-planner/pkg/dates"
)

// newID builds an id from a monotonic counter plus a random uuid fragment.
// The counter alone makes collisions within one process impossible; the
// suffix covers ids generated across restarts into the same bucket.
func (uc *implUseCase) newID(prefix string) string {
	return fmt.Sprintf("%s-%d-%s", prefix, uc.seq.Add(1), uuid.NewString()[:8])
}

// resolveDateKey defaults an empty key to today's key.
func (uc *implUseCase) resolveDateKey(dateKey string) string {
	if dateKey == "" {
		return uc.todayKey()
	}
	return dateKey
}

func (uc *implUseCase) todayKey() string {
	return dates.ToDateKey(uc.clock.Now())
}
