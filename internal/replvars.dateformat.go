package internal

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Layouts accepted for stored post dates, tried in order.
var storedDateLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02",
}

// ZeroStoredDate is the host's placeholder for "no date".
const ZeroStoredDate = "0000-00-00 00:00:00"

// ParseStoredDate parses a post date column value. Empty and zero dates
// report false.
func ParseStoredDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" || s == ZeroStoredDate {
		return time.Time{}, false
	}
	for _, layout := range storedDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatPHPDate renders t using a PHP date() style pattern such as "F jS, Y".
// A backslash emits the following character literally; characters without a
// format meaning are copied through.
func FormatPHPDate(format string, t time.Time) string {
	var sb strings.Builder
	sb.Grow(len(format) * 2)

	runes := []rune(format)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		if c == CharBackslash {
			if i+1 < len(runes) {
				i++
				sb.WriteRune(runes[i])
			}
			continue
		}
		if !writeDateSpecifier(&sb, c, t) {
			sb.WriteRune(c)
		}
	}
	return sb.String()
}

func writeDateSpecifier(sb *strings.Builder, c rune, t time.Time) bool {
	switch c {
	// day
	case 'd':
		sb.WriteString(t.Format("02"))
	case 'D':
		sb.WriteString(t.Format("Mon"))
	case 'j':
		sb.WriteString(strconv.Itoa(t.Day()))
	case 'l':
		sb.WriteString(t.Weekday().String())
	case 'N':
		sb.WriteString(strconv.Itoa(isoWeekday(t)))
	case 'S':
		sb.WriteString(ordinalSuffix(t.Day()))
	case 'w':
		sb.WriteString(strconv.Itoa(int(t.Weekday())))
	case 'z':
		sb.WriteString(strconv.Itoa(t.YearDay() - 1))
	// week
	case 'W':
		_, week := t.ISOWeek()
		sb.WriteString(pad2(week))
	// month
	case 'F':
		sb.WriteString(t.Month().String())
	case 'm':
		sb.WriteString(t.Format("01"))
	case 'M':
		sb.WriteString(t.Format("Jan"))
	case 'n':
		sb.WriteString(strconv.Itoa(int(t.Month())))
	case 't':
		sb.WriteString(strconv.Itoa(daysInMonth(t)))
	// year
	case 'L':
		if isLeap(t.Year()) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	case 'o':
		year, _ := t.ISOWeek()
		sb.WriteString(strconv.Itoa(year))
	case 'Y':
		sb.WriteString(strconv.Itoa(t.Year()))
	case 'y':
		sb.WriteString(t.Format("06"))
	// time
	case 'a':
		sb.WriteString(t.Format("pm"))
	case 'A':
		sb.WriteString(t.Format("PM"))
	case 'g':
		sb.WriteString(t.Format("3"))
	case 'G':
		sb.WriteString(strconv.Itoa(t.Hour()))
	case 'h':
		sb.WriteString(t.Format("03"))
	case 'H':
		sb.WriteString(t.Format("15"))
	case 'i':
		sb.WriteString(t.Format("04"))
	case 's':
		sb.WriteString(t.Format("05"))
	case 'u':
		sb.WriteString(fmt.Sprintf("%06d", t.Nanosecond()/int(time.Microsecond)))
	case 'v':
		sb.WriteString(fmt.Sprintf("%03d", t.Nanosecond()/int(time.Millisecond)))
	// timezone
	case 'e':
		sb.WriteString(t.Location().String())
	case 'T':
		sb.WriteString(t.Format("MST"))
	case 'P':
		sb.WriteString(t.Format("-07:00"))
	case 'O':
		sb.WriteString(t.Format("-0700"))
	case 'Z':
		_, offset := t.Zone()
		sb.WriteString(strconv.Itoa(offset))
	// full date/time
	case 'c':
		sb.WriteString(t.Format("2006-01-02T15:04:05-07:00"))
	case 'r':
		sb.WriteString(t.Format("Mon, 02 Jan 2006 15:04:05 -0700"))
	case 'U':
		sb.WriteString(strconv.FormatInt(t.Unix(), 10))
	default:
		return false
	}
	return true
}

func ordinalSuffix(day int) string {
	if day%100 >= 11 && day%100 <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	}
	return "th"
}

func isoWeekday(t time.Time) int {
	if t.Weekday() == time.Sunday {
		return 7
	}
	return int(t.Weekday())
}

func daysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
