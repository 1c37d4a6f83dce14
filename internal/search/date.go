package search

import (
	"strings"
	"time"
)

// DateLayout 日期参数格式
const DateLayout = "2006-01-02"

// DateOutcome 日期参数解析结果
type DateOutcome int

const (
	// DateUnset 未提供
	DateUnset DateOutcome = iota
	// DateParsed 解析成功
	DateParsed
	// DateInvalid 解析失败，按未提供处理
	DateInvalid
)

func (o DateOutcome) String() string {
	switch o {
	case DateUnset:
		return "unset"
	case DateParsed:
		return "parsed"
	case DateInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// DateBound 单个日期边界的解析结果
type DateBound struct {
	Field   string
	Raw     string
	Outcome DateOutcome
	Day     time.Time // 当天零点，仅 DateParsed 时有效
	Err     error
}

// Applied 是否作为过滤条件生效
func (b DateBound) Applied() bool {
	return b.Outcome == DateParsed
}

// ParseDate 解析 YYYY-MM-DD 日期，时区为 loc
func ParseDate(field, raw string, loc *time.Location) DateBound {
	bound := DateBound{Field: field, Raw: raw}
	value := strings.TrimSpace(raw)
	if value == "" {
		bound.Outcome = DateUnset
		return bound
	}
	if loc == nil {
		loc = time.UTC
	}
	day, err := time.ParseInLocation(DateLayout, value, loc)
	if err != nil {
		bound.Outcome = DateInvalid
		bound.Err = err
		return bound
	}
	bound.Outcome = DateParsed
	bound.Day = day
	return bound
}
