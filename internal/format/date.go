package format

import "github.com/araddon/dateparse"

const (
	dateLayout  = "January 2, 2006 at 3:04 PM"
	invalidDate = "Invalid Date"
)

// Date приводит строку даты к длинному человекочитаемому виду.
// Нераспознанный ввод даёт текст-заглушку, а не ошибку.
func Date(input string) string {
	t, err := dateparse.ParseAny(input)
	if err != nil {
		return invalidDate
	}
	return t.Format(dateLayout)
}
