package domain

// DirectoryStats holds the pass/fail tallies for a single directory
type DirectoryStats struct {
	Passed int
	Failed int
}

// Record classifies one outcome into the directory tallies
func (ds *DirectoryStats) Record(o Outcome) {
	if o.Passed() {
		ds.Passed++
	} else {
		ds.Failed++
	}
}

// Cases returns the number of cases seen in this directory
func (ds DirectoryStats) Cases() int {
	return ds.Passed + ds.Failed
}

// PassRate returns the directory pass percentage
func (ds DirectoryStats) PassRate() float64 {
	if ds.Cases() == 0 {
		return 0
	}
	return float64(ds.Passed) / float64(ds.Cases()) * 100
}

// Mixed reports whether the directory saw at least one pass and one
// fail. Only mixed directories get a per-directory summary line.
func (ds DirectoryStats) Mixed() bool {
	return ds.Passed > 0 && ds.Failed > 0
}

// GlobalStats accumulates results across the whole run. Total is
// incremented once per evaluated case, before the case is classified,
// so Total == Passed+Failed holds after every completed evaluation.
type GlobalStats struct {
	Total       int
	Passed      int
	Failed      int
	FailedCases []string // Display paths, in discovery order
}

// NextOrdinal counts a new case and returns its 1-based ordinal
func (gs *GlobalStats) NextOrdinal() int {
	gs.Total++
	return gs.Total
}

// Record classifies a completed case result into the global tallies
func (gs *GlobalStats) Record(r CaseResult) {
	if r.Outcome.Passed() {
		gs.Passed++
		return
	}
	gs.Failed++
	gs.FailedCases = append(gs.FailedCases, r.DisplayPath)
}

// PassRate returns the global pass percentage
func (gs GlobalStats) PassRate() float64 {
	if gs.Total == 0 {
		return 0
	}
	return float64(gs.Passed) / float64(gs.Total) * 100
}
