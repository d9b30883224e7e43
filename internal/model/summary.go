package model

import "time"

// BatchSummary captures the outcome of formatting a directory of applications.
type BatchSummary struct {
	Dir       string
	Files     int
	Formatted int64
	Failed    int64
	ByCarrier map[Carrier]int64
	Duration  time.Duration
}
