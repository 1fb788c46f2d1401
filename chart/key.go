package chart

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Key is the X coordinate of a data point: either a plain number or a date.
// Dates order and compute as epoch milliseconds.
type Key struct {
	num  float64
	t    time.Time
	date bool
}

// NumberKey returns a numeric key.
func NumberKey(v float64) Key { return Key{num: v} }

// TimeKey returns a date key.
func TimeKey(t time.Time) Key {
	return Key{num: float64(t.UnixMilli()), t: t, date: true}
}

func (k Key) IsTime() bool     { return k.date }
func (k Key) Time() time.Time  { return k.t }
func (k Key) Float64() float64 { return k.num }
func (k Key) Equal(o Key) bool { return k.date == o.date && k.num == o.num }
func (k Key) Less(o Key) bool  { return k.num < o.num }

func (k Key) String() string {
	if k.date {
		return k.t.Format(time.RFC3339Nano)
	}
	return strconv.FormatFloat(k.num, 'f', -1, 64)
}

// dateLayouts are tried in order after a numeric parse fails.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"2006/01/02 15:04:05",
	time.RFC1123Z,
	time.RFC1123,
	time.RFC850,
	time.ANSIC,
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
}

// ParseKey coerces a raw key into a Key. Numbers are taken as is, strings are
// parsed as a number first and as a date second.
func ParseKey(raw any) (Key, error) {
	switch v := raw.(type) {
	case Key:
		return v, nil
	case time.Time:
		return TimeKey(v), nil
	case *time.Time:
		if v != nil {
			return TimeKey(*v), nil
		}
	case string:
		return parseKeyString(raw, v)
	case []byte:
		return parseKeyString(raw, string(v))
	default:
		if f, ok := toFloat(raw); ok && isFinite(f) {
			return NumberKey(f), nil
		}
	}
	return Key{}, &InvalidKeyError{Raw: raw}
}

func parseKeyString(raw any, s string) (Key, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Key{}, &InvalidKeyError{Raw: raw}
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && isFinite(f) {
		return NumberKey(f), nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return TimeKey(t), nil
		}
	}
	return Key{}, &InvalidKeyError{Raw: raw}
}

// parseValue coerces a raw value into a float. Numeric strings are accepted.
func parseValue(raw any) (float64, bool) {
	switch v := raw.(type) {
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	default:
		return toFloat(raw)
	}
}

type float64er interface {
	Float64() (float64, error)
}

func toFloat(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float64er:
		f, err := v.Float64()
		return f, err == nil
	}
	return 0, false
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
