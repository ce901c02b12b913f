package edudata

import (
	"context"
	"fmt"
)

// GetCCDDirectory fetches Common Core of Data school directory records
// for a year. Filters narrow by directory columns such as fips,
// charter or school_level.
func (c *Client) GetCCDDirectory(ctx context.Context, year int, filters Filters) (map[string]any, error) {
	return c.Get(ctx, TopicCCDDirectory, Request{Year: year, Filters: filters})
}

// GetCCDSummary fetches summary statistics over the CCD directory,
// e.g. GetCCDSummary(ctx, "enrollment", "stddev", "virtual", nil).
// The portal validates variable, stat and grouping names itself.
func (c *Client) GetCCDSummary(ctx context.Context, variable, stat, by string, filters Filters) (map[string]any, error) {
	ctx, span := tracer.Start(ctx, "GetCCDSummary")
	defer span.End()

	// no trailing slash before the query string on this endpoint, the
	// live service rejects one.
	url := fmt.Sprintf("schools/ccd/directory/summaries?var=%s&stat=%s&by=%s", variable, stat, by)
	if query := filters.Encode(); query != "" {
		url += "&" + query
	}
	return c.getJson(ctx, url)
}

// GetCCDEnrollment fetches CCD enrollment counts for a year and grade,
// optionally broken down by race and/or sex. Grade is passed through
// verbatim, the portal uses -1 for pre-K through 15 for ungraded and
// 99 for totals.
func (c *Client) GetCCDEnrollment(ctx context.Context, year, grade int, segments Segments, filters Filters) (map[string]any, error) {
	return c.Get(ctx, TopicCCDEnrollment, Request{
		Year:     year,
		Grade:    grade,
		Segments: segments,
		Filters:  filters,
	})
}
