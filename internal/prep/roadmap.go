package prep

import (
	"maps"
	"slices"
)

// DayPlan is the slice of a roadmap scheduled on one day.
type DayPlan struct {
	Day   int
	Items []RoadmapItem
}

// GroupByDay buckets items by Day in ascending day order. Items keep their
// relative order within a day, so each day appears exactly once however the
// input interleaves them.
func GroupByDay(items []RoadmapItem) []DayPlan {
	byDay := make(map[int][]RoadmapItem)
	for _, it := range items {
		byDay[it.Day] = append(byDay[it.Day], it)
	}

	plans := make([]DayPlan, 0, len(byDay))
	for _, day := range slices.Sorted(maps.Keys(byDay)) {
		plans = append(plans, DayPlan{Day: day, Items: byDay[day]})
	}
	return plans
}
