// Package monthrange вычисляет календарное окно месяца для отчётов.
package monthrange

import "time"

// Window возвращает полуинтервал [start, end) для пары (год, месяц):
// start — первый момент месяца в UTC, end — первый момент следующего месяца.
// Переполнение месяца нормализуется календарно: месяц 12 даёт end в январе
// следующего года, месяц 13 сам нормализуется в январь следующего года.
func Window(year, month int) (start, end time.Time) {
	start = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, 0)
	return start, end
}
