package utils

import "time"

const DateLayout = "2006-01-02"

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(DateLayout, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// TruncateToDay descarta o horário e o fuso, mantendo apenas a data do calendário em UTC
func TruncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Yesterday retorna o dia anterior a now, sem horário
func Yesterday(now time.Time) time.Time {
	return TruncateToDay(now).AddDate(0, 0, -1)
}

// DaysBetween retorna quantos dias de calendário separam from de to
func DaysBetween(from, to time.Time) int {
	return int(TruncateToDay(to).Sub(TruncateToDay(from)).Hours() / 24)
}

// DatesDescending lista os dias de last até first, começando pelo mais recente
func DatesDescending(first, last time.Time) []time.Time {
	first, last = TruncateToDay(first), TruncateToDay(last)

	dates := make([]time.Time, 0)
	for current := last; !current.Before(first); current = current.AddDate(0, 0, -1) {
		dates = append(dates, current)
	}
	return dates
}
