package edudata

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"edudata-client/lib/restyutil"
	"edudata-client/lib/telemetry"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("edudata")

// DefaultBaseUrl is the production education data portal.
const DefaultBaseUrl = "https://educationdata.urban.org/api/v1/"

type Client struct {
	http *resty.Client
}

type ClientOptions struct {
	// BaseUrl overrides the production portal, mainly for tests.
	BaseUrl string
	// Output, when non-nil, receives a dump of every request/response
	// pair exchanged with the portal.
	Output restyutil.InstrumentOutput
}

func NewClient(opts ClientOptions) *Client {
	baseUrl := opts.BaseUrl
	if baseUrl == "" {
		baseUrl = DefaultBaseUrl
	}

	client := resty.New()
	client.SetBaseURL(baseUrl)
	client.SetHeader("user-agent", "edudata-client")
	client.SetTimeout(time.Second * 30)

	telemetry.InstrumentResty(client, "edudata/http")
	restyutil.InstrumentClient(client, opts.Output)

	return &Client{http: client}
}

// Request carries the per-call inputs shared by every topic. Grade is
// only read for topics whose path has a grade component.
type Request struct {
	Year     int
	Grade    int
	Segments Segments
	Filters  Filters
}

// Get fetches one page of records for a topic. Segment validation
// happens before any network activity, an illegal combination returns
// an InvalidSegmentCombinationError and nothing is sent.
func (c *Client) Get(ctx context.Context, topic Topic, req Request) (map[string]any, error) {
	ctx, span := tracer.Start(ctx, fmt.Sprintf("Get:%s", topic))
	defer span.End()

	info, ok := topics[topic]
	if !ok {
		return nil, fmt.Errorf("unknown topic %q", topic)
	}

	fragment, err := ResolveSegments(topic, req.Segments)
	if err != nil {
		span.SetStatus(codes.Error, "invalid segment combination")
		return nil, err
	}

	var path string
	if info.needsGrade {
		path = fmt.Sprintf(info.path, req.Year, req.Grade)
	} else {
		path = fmt.Sprintf(info.path, req.Year)
	}

	url := path + fragment
	if query := req.Filters.Encode(); query != "" {
		url += "?" + query
	}
	return c.getJson(ctx, url)
}

func (c *Client) getJson(ctx context.Context, url string) (map[string]any, error) {
	res, err := c.http.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return nil, err
	}
	if res.IsError() {
		return nil, fmt.Errorf("GET %s: %s", res.Request.URL, res.Status())
	}

	var body map[string]any
	err = json.Unmarshal(res.Body(), &body)
	if err != nil {
		return nil, fmt.Errorf("decode response of GET %s: %w", res.Request.URL, err)
	}
	return body, nil
}
