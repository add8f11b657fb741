package entity

import (
	"fmt"
	"time"
)

// DateLayout is the calendar date format used by Cost Explorer and in alerts.
const DateLayout = "2006-01-02"

// ReportPeriod is the full calendar month an invocation reports on.
// Start is always day 1 and End the last day of the same month.
type ReportPeriod struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// ComputeReportPeriod retorna o mês civil anterior ao instante informado.
// O cálculo usa apenas normalização de time.Date, então é total para qualquer
// instante (virada de ano e fevereiro bissexto incluídos).
func ComputeReportPeriod(now time.Time) ReportPeriod {
	firstOfCurrentMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	return ReportPeriod{
		Start: firstOfCurrentMonth.AddDate(0, -1, 0),
		End:   firstOfCurrentMonth.AddDate(0, 0, -1),
	}
}

// StartDate formats Start as YYYY-MM-DD.
func (p ReportPeriod) StartDate() string {
	return p.Start.Format(DateLayout)
}

// EndDate formats End as YYYY-MM-DD.
func (p ReportPeriod) EndDate() string {
	return p.End.Format(DateLayout)
}

// ExclusiveEnd is the day after End, for APIs whose interval end is exclusive.
func (p ReportPeriod) ExclusiveEnd() time.Time {
	return p.End.AddDate(0, 0, 1)
}

func (p ReportPeriod) String() string {
	return fmt.Sprintf("%s to %s", p.StartDate(), p.EndDate())
}
