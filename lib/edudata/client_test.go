package edudata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	path  string
	query string
}

func newRecordingServer(t *testing.T, body string) (*httptest.Server, *[]recordedRequest) {
	var requests []recordedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests = append(requests, recordedRequest{
			path:  r.URL.Path,
			query: r.URL.RawQuery,
		})
		w.Header().Set("content-type", "application/json")
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &requests
}

func TestClientBuildsUrls(t *testing.T) {
	srv, requests := newRecordingServer(t, `{"count": 1, "results": []}`)
	client := NewClient(ClientOptions{BaseUrl: srv.URL})
	ctx := context.Background()

	testCases := []struct {
		call  func() (map[string]any, error)
		path  string
		query string
	}{
		{
			call: func() (map[string]any, error) {
				return client.GetCCDDirectory(ctx, 2013, Filters{"charter": Int(1), "fips": Int(11)})
			},
			path:  "/schools/ccd/directory/2013/",
			query: "charter=1&fips=11",
		},
		{
			call: func() (map[string]any, error) {
				return client.GetCCDEnrollment(ctx, 2014, 8, Segments{Race: true, Sex: true}, nil)
			},
			path: "/schools/ccd/enrollment/2014/grade-8/race/sex/",
		},
		{
			call: func() (map[string]any, error) {
				return client.GetCCDSummary(ctx, "enrollment", "sum", "school_type", Filters{"charter": Int(1)})
			},
			path:  "/schools/ccd/directory/summaries",
			query: "var=enrollment&stat=sum&by=school_type&charter=1",
		},
		{
			call: func() (map[string]any, error) {
				return client.GetCRDCEnrollment(ctx, 2013, Segments{LEP: true, Sex: true}, Filters{"lep": Int(1), "sex": Int(1)})
			},
			path:  "/schools/crdc/enrollment/2013/lep/sex/",
			query: "lep=1&sex=1",
		},
		{
			call: func() (map[string]any, error) {
				return client.GetCRDCDiscipline(ctx, 2017, Filters{"disability": Int(1), "fips": Int(1)})
			},
			path:  "/schools/crdc/discipline-instances/2017/",
			query: "disability=1&fips=1",
		},
		{
			call: func() (map[string]any, error) {
				return client.GetCRDCDisciplineSegment(ctx, 2013, Segments{Disability: true, Sex: true}, nil)
			},
			path: "/schools/crdc/discipline/2013/disability/sex/",
		},
		{
			call: func() (map[string]any, error) {
				return client.GetCRDCBullyingAllegations(ctx, 2015, Filters{"fips": Int(1)})
			},
			path:  "/schools/crdc/harassment-or-bullying/allegations/2015/",
			query: "fips=1",
		},
		{
			call: func() (map[string]any, error) {
				return client.GetCRDCBullying(ctx, 2013, Segments{Race: true, Sex: true}, nil)
			},
			path: "/schools/crdc/harassment-or-bullying/students/2013/race/sex/",
		},
		{
			call: func() (map[string]any, error) {
				return client.GetCRDCAbsenteeism(ctx, 2013, Segments{Disability: true, Sex: true}, nil)
			},
			path: "/schools/crdc/chronic-absenteeism/2013/disability/sex/",
		},
		{
			call: func() (map[string]any, error) {
				return client.GetCRDCRestraintInstances(ctx, 2015, nil)
			},
			path: "/schools/crdc/restraint-and-seclusion/instances/2015/",
		},
		{
			call: func() (map[string]any, error) {
				return client.GetCRDCRestraint(ctx, 2013, Segments{Disability: true, Sex: true}, nil)
			},
			path: "/schools/crdc/restraint-and-seclusion/students/2013/disability/sex/",
		},
		{
			call: func() (map[string]any, error) {
				return client.GetCRDCRetention(ctx, 2013, 3, Segments{Race: true, Sex: true}, nil)
			},
			path: "/schools/crdc/retention/2013/grade-3/race/sex/",
		},
		{
			call: func() (map[string]any, error) {
				return client.GetCRDCAPEnrollment(ctx, 2013, Segments{Race: true, Sex: true}, nil)
			},
			path: "/schools/crdc/ap-ib-enrollment/2013/race/sex/",
		},
	}

	for _, test := range testCases {
		*requests = nil

		body, err := test.call()
		require.NoError(t, err)
		require.Equal(t, float64(1), body["count"])

		require.Len(t, *requests, 1)
		got := (*requests)[0]
		require.Equal(t, test.path, got.path)
		require.Equal(t, test.query, got.query)
	}
}

func TestClientRejectsSegmentsBeforeRequest(t *testing.T) {
	srv, requests := newRecordingServer(t, `{}`)
	client := NewClient(ClientOptions{BaseUrl: srv.URL})

	_, err := client.GetCRDCRestraint(
		context.Background(), 2013,
		Segments{Race: true, Sex: true}, nil,
	)
	var invalid *InvalidSegmentCombinationError
	require.ErrorAs(t, err, &invalid)
	require.Empty(t, *requests, "no request may be sent for an illegal combination")
}

func TestClientSurfacesHttpErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such grade", http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)

	client := NewClient(ClientOptions{BaseUrl: srv.URL})
	_, err := client.GetCCDDirectory(context.Background(), 1800, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "404")
}

func TestClientSurfacesDecodeErrors(t *testing.T) {
	srv, _ := newRecordingServer(t, `<html>not json</html>`)
	client := NewClient(ClientOptions{BaseUrl: srv.URL})

	_, err := client.GetCCDDirectory(context.Background(), 2013, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "decode response")
}
