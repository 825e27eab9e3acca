package report

import (
	"fmt"
	"strings"
	"time"
)

// Period is a trailing report window.
type Period string

const (
	PeriodWeek    Period = "week"
	PeriodMonth   Period = "month"
	PeriodQuarter Period = "quarter"
)

// DefaultPeriod is used when no period is requested.
const DefaultPeriod = PeriodMonth

var periodDays = map[Period]int{
	PeriodWeek:    7,
	PeriodMonth:   30,
	PeriodQuarter: 90,
}

// ParsePeriod accepts week, month or quarter, case-insensitively. An empty
// string selects DefaultPeriod.
func ParsePeriod(s string) (Period, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultPeriod, nil
	}
	p := Period(s)
	if _, ok := periodDays[p]; !ok {
		return "", fmt.Errorf("invalid period %q: must be one of week, month, quarter", s)
	}
	return p, nil
}

// Days returns the window length in days.
func (p Period) Days() int {
	if d, ok := periodDays[p]; ok {
		return d
	}
	return periodDays[DefaultPeriod]
}

// Window returns the inclusive [start, end] range ending at now.
func (p Period) Window(now time.Time) (start, end time.Time) {
	return now.AddDate(0, 0, -p.Days()), now
}

func inWindow(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}
