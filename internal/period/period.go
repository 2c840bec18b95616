package period

import "strconv"

var monthLabels = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// MonthLabel returns the short English name for month 1..12 ("Jan").
// Out-of-range months are rendered as their number.
func MonthLabel(month int) string {
	if month < 1 || month > 12 {
		return strconv.Itoa(month)
	}
	return monthLabels[month-1]
}
