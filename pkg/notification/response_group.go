package notification

import "strings"

// ResponseGroup is a flag set selecting which details survive ReduceDetails.
type ResponseGroup uint

const (
	ResponseGroupNone            ResponseGroup = 0
	ResponseGroupWithTemplates   ResponseGroup = 1 << 0
	ResponseGroupWithParameters  ResponseGroup = 1 << 1
	ResponseGroupWithAttachments ResponseGroup = 1 << 2

	ResponseGroupFull = ResponseGroupWithTemplates | ResponseGroupWithParameters | ResponseGroupWithAttachments
)

var responseGroupNames = map[string]ResponseGroup{
	"none":            ResponseGroupNone,
	"withtemplates":   ResponseGroupWithTemplates,
	"withparameters":  ResponseGroupWithParameters,
	"withattachments": ResponseGroupWithAttachments,
	"full":            ResponseGroupFull,
}

// ParseResponseGroup parses comma separated flag names case-insensitively.
// Empty or unrecognized input yields ResponseGroupFull.
func ParseResponseGroup(s string) ResponseGroup {
	if strings.TrimSpace(s) == "" {
		return ResponseGroupFull
	}
	var g ResponseGroup
	for part := range strings.SplitSeq(s, ",") {
		flag, ok := responseGroupNames[strings.ToLower(strings.TrimSpace(part))]
		if !ok {
			return ResponseGroupFull
		}
		g |= flag
	}
	return g
}

// Has reports whether all bits of flag are set.
func (g ResponseGroup) Has(flag ResponseGroup) bool {
	return g&flag == flag
}

// String renders the flag set in the form accepted by ParseResponseGroup.
func (g ResponseGroup) String() string {
	switch g {
	case ResponseGroupNone:
		return "None"
	case ResponseGroupFull:
		return "Full"
	}
	var parts []string
	if g.Has(ResponseGroupWithTemplates) {
		parts = append(parts, "WithTemplates")
	}
	if g.Has(ResponseGroupWithParameters) {
		parts = append(parts, "WithParameters")
	}
	if g.Has(ResponseGroupWithAttachments) {
		parts = append(parts, "WithAttachments")
	}
	return strings.Join(parts, ",")
}
