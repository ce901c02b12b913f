package edudata

import "context"

// GetCRDCDirectory fetches Civil Rights Data Collection school
// directory records for a year.
func (c *Client) GetCRDCDirectory(ctx context.Context, year int, filters Filters) (map[string]any, error) {
	return c.Get(ctx, TopicCRDCDirectory, Request{Year: year, Filters: filters})
}

// GetCRDCEnrollment fetches CRDC enrollment counts. Legal segment
// combinations are none, sex, race+sex, disability+sex and lep+sex.
func (c *Client) GetCRDCEnrollment(ctx context.Context, year int, segments Segments, filters Filters) (map[string]any, error) {
	return c.Get(ctx, TopicCRDCEnrollment, Request{Year: year, Segments: segments, Filters: filters})
}

// GetCRDCDiscipline fetches instances of suspensions and corporal
// punishment, not broken down by demographics.
func (c *Client) GetCRDCDiscipline(ctx context.Context, year int, filters Filters) (map[string]any, error) {
	return c.Get(ctx, TopicCRDCDisciplineInstances, Request{Year: year, Filters: filters})
}

// GetCRDCDisciplineSegment fetches students disciplined, broken down
// by disability+sex, optionally crossed with race or lep (never both).
func (c *Client) GetCRDCDisciplineSegment(ctx context.Context, year int, segments Segments, filters Filters) (map[string]any, error) {
	return c.Get(ctx, TopicCRDCDiscipline, Request{Year: year, Segments: segments, Filters: filters})
}

// GetCRDCBullyingAllegations fetches counts of harassment or bullying
// allegations by basis (sex, race, disability...), unsegmented.
func (c *Client) GetCRDCBullyingAllegations(ctx context.Context, year int, filters Filters) (map[string]any, error) {
	return c.Get(ctx, TopicCRDCBullyingAllegations, Request{Year: year, Filters: filters})
}

// GetCRDCBullying fetches students reported as harassed or bullied,
// broken down by race+sex, disability+sex or lep+sex.
func (c *Client) GetCRDCBullying(ctx context.Context, year int, segments Segments, filters Filters) (map[string]any, error) {
	return c.Get(ctx, TopicCRDCBullying, Request{Year: year, Segments: segments, Filters: filters})
}

// GetCRDCAbsenteeism fetches chronic absenteeism counts, broken down
// by race+sex, disability+sex or lep+sex.
func (c *Client) GetCRDCAbsenteeism(ctx context.Context, year int, segments Segments, filters Filters) (map[string]any, error) {
	return c.Get(ctx, TopicCRDCAbsenteeism, Request{Year: year, Segments: segments, Filters: filters})
}

// GetCRDCRestraintInstances fetches instances of mechanical, physical
// and seclusion restraint, unsegmented.
func (c *Client) GetCRDCRestraintInstances(ctx context.Context, year int, filters Filters) (map[string]any, error) {
	return c.Get(ctx, TopicCRDCRestraintInstances, Request{Year: year, Filters: filters})
}

// GetCRDCRestraint fetches students subjected to restraint or
// seclusion. The only breakdown the portal serves is disability+sex.
func (c *Client) GetCRDCRestraint(ctx context.Context, year int, segments Segments, filters Filters) (map[string]any, error) {
	return c.Get(ctx, TopicCRDCRestraint, Request{Year: year, Segments: segments, Filters: filters})
}

// GetCRDCRetention fetches students retained in a grade, broken down
// by race+sex, disability+sex or lep+sex. There is no unsegmented
// variant of this endpoint.
func (c *Client) GetCRDCRetention(ctx context.Context, year, grade int, segments Segments, filters Filters) (map[string]any, error) {
	return c.Get(ctx, TopicCRDCRetention, Request{
		Year:     year,
		Grade:    grade,
		Segments: segments,
		Filters:  filters,
	})
}

// GetCRDCAPEnrollment fetches AP and IB enrollment counts, broken down
// by race+sex, disability+sex or lep+sex.
func (c *Client) GetCRDCAPEnrollment(ctx context.Context, year int, segments Segments, filters Filters) (map[string]any, error) {
	return c.Get(ctx, TopicCRDCAPEnrollment, Request{Year: year, Segments: segments, Filters: filters})
}
