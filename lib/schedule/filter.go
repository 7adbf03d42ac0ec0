package schedule

// FilterStats counts what the filter dropped, for diagnostics only.
type FilterStats struct {
	DroppedInvalid   int
	DroppedDuplicate int
}

// Filter drops candidates with invalid names or no days, then
// deduplicates by identity keeping the first occurrence. Running it
// twice yields the same result as running it once.
func Filter(shows []Show) ([]Show, FilterStats) {
	var stats FilterStats
	seen := map[string]bool{}
	var out []Show

	for _, s := range shows {
		if !ValidName(s.Name) || len(NormalizeDays(s.Days)) == 0 || !s.Start.Valid() {
			stats.DroppedInvalid++
			continue
		}

		id := s.Identity()
		if seen[id] {
			stats.DroppedDuplicate++
			continue
		}
		seen[id] = true

		s.Days = NormalizeDays(s.Days)
		out = append(out, s)
	}
	return out, stats
}
