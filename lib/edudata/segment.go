package edudata

import (
	"fmt"
	"strings"
)

// Segments holds the demographic breakdown flags a caller may request.
// The portal only serves specific combinations per topic, see the rule
// tables in topic.go.
type Segments struct {
	Race       bool
	Sex        bool
	Disability bool
	LEP        bool
}

// String renders the set flags in the order they appear in portal
// paths (alphabetical), e.g. "disability+race+sex", or "none" when no
// flag is set.
func (s Segments) String() string {
	var names []string
	if s.Disability {
		names = append(names, "disability")
	}
	if s.LEP {
		names = append(names, "lep")
	}
	if s.Race {
		names = append(names, "race")
	}
	if s.Sex {
		names = append(names, "sex")
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "+")
}

type segmentRule struct {
	flags    Segments
	fragment string
}

// InvalidSegmentCombinationError is returned when the requested flag
// set does not exactly equal one of the topic's legal combinations. It
// is produced before any network activity.
type InvalidSegmentCombinationError struct {
	Topic     Topic
	Requested Segments
	Legal     []Segments
}

func (e *InvalidSegmentCombinationError) Error() string {
	legal := make([]string, len(e.Legal))
	for i, s := range e.Legal {
		legal[i] = s.String()
	}
	return fmt.Sprintf(
		"%s: segment combination %s is not supported, legal combinations are: %s",
		e.Topic, e.Requested, strings.Join(legal, ", "),
	)
}

// ResolveSegments maps a topic and flag set to the path fragment of the
// matching sub-resource. The match is exact set equality, supersets and
// subsets of a legal combination are rejected just like disjoint ones.
func ResolveSegments(topic Topic, flags Segments) (string, error) {
	info, ok := topics[topic]
	if !ok {
		return "", fmt.Errorf("unknown topic %q", topic)
	}
	for _, rule := range info.segments {
		if rule.flags == flags {
			return rule.fragment, nil
		}
	}
	legal, _ := LegalSegments(topic)
	return "", &InvalidSegmentCombinationError{
		Topic:     topic,
		Requested: flags,
		Legal:     legal,
	}
}
