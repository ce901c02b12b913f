package edudata

import "fmt"

// Topic identifies one endpoint family of the education data portal.
type Topic string

const (
	TopicCCDDirectory            Topic = "ccd-directory"
	TopicCCDEnrollment           Topic = "ccd-enrollment"
	TopicCRDCDirectory           Topic = "crdc-directory"
	TopicCRDCEnrollment          Topic = "crdc-enrollment"
	TopicCRDCDisciplineInstances Topic = "crdc-discipline-instances"
	TopicCRDCDiscipline          Topic = "crdc-discipline"
	TopicCRDCBullyingAllegations Topic = "crdc-bullying-allegations"
	TopicCRDCBullying            Topic = "crdc-bullying"
	TopicCRDCAbsenteeism         Topic = "crdc-absenteeism"
	TopicCRDCRestraintInstances  Topic = "crdc-restraint-instances"
	TopicCRDCRestraint           Topic = "crdc-restraint"
	TopicCRDCRetention           Topic = "crdc-retention"
	TopicCRDCAPEnrollment        Topic = "crdc-ap-enrollment"
)

type topicInfo struct {
	// sprintf template taking the year, or the year and grade when
	// needsGrade is set. trailing slashes are significant, they match
	// the live service per endpoint and are not unified.
	path       string
	needsGrade bool
	segments   []segmentRule
}

// unsegmentedOnly marks topics whose only resource variant is the bare
// endpoint, an empty flag set resolves to an empty fragment.
var unsegmentedOnly = []segmentRule{
	{flags: Segments{}, fragment: ""},
}

// demographicPairs is the most common CRDC shape, data broken down by
// exactly one demographic dimension crossed with sex. no unsegmented
// variant exists for these endpoints.
var demographicPairs = []segmentRule{
	{flags: Segments{Race: true, Sex: true}, fragment: "race/sex/"},
	{flags: Segments{Disability: true, Sex: true}, fragment: "disability/sex/"},
	{flags: Segments{LEP: true, Sex: true}, fragment: "lep/sex/"},
}

var topics = map[Topic]topicInfo{
	TopicCCDDirectory: {
		path:     "schools/ccd/directory/%d/",
		segments: unsegmentedOnly,
	},
	TopicCCDEnrollment: {
		path:       "schools/ccd/enrollment/%d/grade-%d/",
		needsGrade: true,
		segments: []segmentRule{
			{flags: Segments{}, fragment: ""},
			{flags: Segments{Race: true}, fragment: "race/"},
			{flags: Segments{Sex: true}, fragment: "sex/"},
			{flags: Segments{Race: true, Sex: true}, fragment: "race/sex/"},
		},
	},
	TopicCRDCDirectory: {
		path:     "schools/crdc/directory/%d/",
		segments: unsegmentedOnly,
	},
	TopicCRDCEnrollment: {
		path: "schools/crdc/enrollment/%d/",
		segments: []segmentRule{
			{flags: Segments{}, fragment: ""},
			{flags: Segments{Sex: true}, fragment: "sex/"},
			{flags: Segments{Race: true, Sex: true}, fragment: "race/sex/"},
			{flags: Segments{Disability: true, Sex: true}, fragment: "disability/sex/"},
			{flags: Segments{LEP: true, Sex: true}, fragment: "lep/sex/"},
		},
	},
	TopicCRDCDisciplineInstances: {
		path:     "schools/crdc/discipline-instances/%d/",
		segments: unsegmentedOnly,
	},
	TopicCRDCDiscipline: {
		path: "schools/crdc/discipline/%d/",
		segments: []segmentRule{
			{flags: Segments{Disability: true, Sex: true}, fragment: "disability/sex/"},
			{flags: Segments{Disability: true, Race: true, Sex: true}, fragment: "disability/race/sex/"},
			{flags: Segments{Disability: true, LEP: true, Sex: true}, fragment: "disability/lep/sex/"},
		},
	},
	TopicCRDCBullyingAllegations: {
		path:     "schools/crdc/harassment-or-bullying/allegations/%d/",
		segments: unsegmentedOnly,
	},
	TopicCRDCBullying: {
		path:     "schools/crdc/harassment-or-bullying/students/%d/",
		segments: demographicPairs,
	},
	TopicCRDCAbsenteeism: {
		path:     "schools/crdc/chronic-absenteeism/%d/",
		segments: demographicPairs,
	},
	TopicCRDCRestraintInstances: {
		path:     "schools/crdc/restraint-and-seclusion/instances/%d/",
		segments: unsegmentedOnly,
	},
	TopicCRDCRestraint: {
		path: "schools/crdc/restraint-and-seclusion/students/%d/",
		segments: []segmentRule{
			{flags: Segments{Disability: true, Sex: true}, fragment: "disability/sex/"},
		},
	},
	TopicCRDCRetention: {
		path:       "schools/crdc/retention/%d/grade-%d/",
		needsGrade: true,
		segments:   demographicPairs,
	},
	TopicCRDCAPEnrollment: {
		path:     "schools/crdc/ap-ib-enrollment/%d/",
		segments: demographicPairs,
	},
}

// Topics returns every known topic in a stable order.
func Topics() []Topic {
	return []Topic{
		TopicCCDDirectory,
		TopicCCDEnrollment,
		TopicCRDCDirectory,
		TopicCRDCEnrollment,
		TopicCRDCDisciplineInstances,
		TopicCRDCDiscipline,
		TopicCRDCBullyingAllegations,
		TopicCRDCBullying,
		TopicCRDCAbsenteeism,
		TopicCRDCRestraintInstances,
		TopicCRDCRestraint,
		TopicCRDCRetention,
		TopicCRDCAPEnrollment,
	}
}

// LegalSegments returns the segment combinations a topic accepts, in
// rule-table order.
func LegalSegments(topic Topic) ([]Segments, error) {
	info, ok := topics[topic]
	if !ok {
		return nil, fmt.Errorf("unknown topic %q", topic)
	}
	out := make([]Segments, len(info.segments))
	for i, rule := range info.segments {
		out[i] = rule.flags
	}
	return out, nil
}

// NeedsGrade reports whether a topic's path carries a grade component.
func NeedsGrade(topic Topic) bool {
	return topics[topic].needsGrade
}
