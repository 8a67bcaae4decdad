package projection

import (
	"time"

	"github.com/aevon-lab/project-tally/internal/core/bucket"
)

// emptyDailyBuckets returns one zero point per calendar day of [start, end].
// Days are stepped with AddDate so DST transitions never skip or repeat a day.
func emptyDailyBuckets(start, end time.Time, loc *time.Location) []DayCount {
	var buckets []DayCount
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		buckets = append(buckets, DayCount{Day: bucket.DayKey(day, loc)})
	}
	return buckets
}
