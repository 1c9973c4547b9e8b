package util

import (
	"time"
)

func NewDate(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func FloatPointer(f float64) *float64 {
	return &f
}

func StringPointer(s string) *string {
	return &s
}
