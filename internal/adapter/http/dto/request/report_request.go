package request

// ReportQuery scopes a report request. A zero year means the full
// collection; sold_only only has effect together with a year.
type ReportQuery struct {
	Year     int  `form:"year"`
	SoldOnly bool `form:"sold_only"`
}

// SegmentRefreshQuery selects the target year for a segment refresh.
type SegmentRefreshQuery struct {
	Year int `form:"year" binding:"required"`
}
