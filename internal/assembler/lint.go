package assembler

import (
	"fmt"
	"strings"
)

// IssueKind classifies a template problem found by Lint.
type IssueKind string

const (
	IssueMissing    IssueKind = "missing"
	IssueDuplicate  IssueKind = "duplicate"
	IssueUnclosed   IssueKind = "unclosed"
	IssueStrayClose IssueKind = "stray_close"
)

// Issue is a marker problem. Issues never stop assembly; they are reported so
// template authors can notice markers that will not be substituted as meant.
type Issue struct {
	Marker string    `json:"marker"`
	Kind   IssueKind `json:"kind"`
}

func (i Issue) String() string {
	switch i.Kind {
	case IssueMissing:
		return fmt.Sprintf("<%s> not found; its field will be ignored", i.Marker)
	case IssueDuplicate:
		return fmt.Sprintf("<%s> appears more than once; every copy is replaced", i.Marker)
	case IssueUnclosed:
		return fmt.Sprintf("<%s> has no closing tag; it is left as text", i.Marker)
	case IssueStrayClose:
		return fmt.Sprintf("</%s> has no opening tag", i.Marker)
	default:
		return fmt.Sprintf("<%s>: %s", i.Marker, i.Kind)
	}
}

// Lint checks t against the standard marker set.
func (t *Template) Lint() []Issue {
	counts := map[string]int{}
	for _, m := range t.Markers() {
		counts[m]++
	}
	var issues []Issue
	for _, name := range markers {
		unclosed, stray := false, false
		for _, seg := range t.segments {
			if seg.Marker != "" {
				continue
			}
			unclosed = unclosed || strings.Contains(seg.Literal, openTag(name))
			stray = stray || strings.Contains(seg.Literal, closeTag(name))
		}
		switch {
		case counts[name] > 1:
			issues = append(issues, Issue{Marker: name, Kind: IssueDuplicate})
		case counts[name] == 0 && !unclosed:
			issues = append(issues, Issue{Marker: name, Kind: IssueMissing})
		}
		if unclosed {
			issues = append(issues, Issue{Marker: name, Kind: IssueUnclosed})
		}
		if stray {
			issues = append(issues, Issue{Marker: name, Kind: IssueStrayClose})
		}
	}
	return issues
}

// Lint parses src and reports marker problems.
func Lint(src string) []Issue {
	return Parse(src).Lint()
}
