package assembler

import (
	"fmt"

	"github.com/vvka-141/premisgen/internal/schema"
)

// Phase names a build step.
type Phase string

const (
	PhaseRoot               Phase = "root"
	PhaseIntellectualObject Phase = "intellectual-object"
	PhaseAgentsRights       Phase = "agents-rights"
	PhaseObjects            Phase = "objects"
	PhaseRelationships      Phase = "relationships"
	PhaseEvents             Phase = "events"
	PhaseSummary            Phase = "summary"
)

// PhaseResult reports what one phase did.
type PhaseResult struct {
	Phase Phase

	// Attached counts successful attachments made during the phase.
	Attached int

	// Warnings lists elements that could not be created, set or attached.
	Warnings []string
}

// Summary counts the sections present on the root.
type Summary struct {
	IntellectualEntities int
	Files                int
	Agents               int
	Rights               int
	Events               int

	// Relationships counts relationships under the intellectual entity.
	Relationships int
}

func (s Summary) String() string {
	return fmt.Sprintf("%d intellectual entity, %d file(s), %d agent(s), %d rights, %d event(s), %d relationship(s)",
		s.IntellectualEntities, s.Files, s.Agents, s.Rights, s.Events, s.Relationships)
}

// Summarize counts the sections of root.
func Summarize(root *schema.Premis) Summary {
	if root == nil {
		return Summary{}
	}
	s := Summary{
		IntellectualEntities: len(root.Objects("intellectualEntity")),
		Files:                len(root.Files()),
		Agents:               len(root.Agent),
		Rights:               len(root.Rights),
		Events:               len(root.Event),
	}
	if ie := root.IntellectualEntity(); ie != nil {
		s.Relationships = len(ie.Relationship)
	}
	return s
}

// Result is the outcome of a build.
type Result struct {
	Root    *schema.Premis
	Phases  []PhaseResult
	Summary Summary
}

// Warnings returns the warnings of every phase, prefixed with the phase name.
func (r *Result) Warnings() []string {
	var out []string
	for _, p := range r.Phases {
		for _, w := range p.Warnings {
			out = append(out, fmt.Sprintf("%s: %s", p.Phase, w))
		}
	}
	return out
}

// Phase returns the result of the named phase.
func (r *Result) Phase(name Phase) (PhaseResult, bool) {
	for _, p := range r.Phases {
		if p.Phase == name {
			return p, true
		}
	}
	return PhaseResult{}, false
}
