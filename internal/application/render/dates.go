package render

import (
	"time"

	"github.com/MTahaFarrukh/PortBuilder/internal/domain/portfolio"
)

const (
	monthInput   = "2006-01"
	monthDisplay = "January 2006"
	ongoing      = "Present"
	rangeSep     = " – "
)

// formatMonth turns a month-granularity date string into "Month YYYY".
// Unparseable input passes through verbatim rather than erroring.
func formatMonth(s string) string {
	t, err := time.Parse(monthInput, s)
	if err != nil {
		return s
	}
	return t.Format(monthDisplay)
}

// experienceRange shows "Present" as the end while Current is set, no matter
// what EndDate holds, and falls back to "Present" when EndDate is empty.
func experienceRange(e portfolio.Experience) string {
	end := ongoing
	if !e.Current && e.EndDate != "" {
		end = formatMonth(e.EndDate)
	}
	return formatMonth(e.StartDate) + rangeSep + end
}

// educationRange has no ongoing flag; an empty EndDate gets the same
// "Present" fallback as experience.
func educationRange(e portfolio.Education) string {
	end := ongoing
	if e.EndDate != "" {
		end = formatMonth(e.EndDate)
	}
	return formatMonth(e.StartDate) + rangeSep + end
}
