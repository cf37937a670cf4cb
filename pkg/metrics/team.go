package metrics

import (
	"github.com/secmon-lab/workboard/pkg/domain/model"
)

// AssignedNames returns the normalized names assigned to unfinished work (completion < 1),
// de-duplicated, in order of first appearance.
func AssignedNames(assignments []model.Assignment) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, a := range assignments {
		if a.Completion >= 1 {
			continue
		}
		for _, name := range model.SplitNames(a.AssignedTo) {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	return names
}

// ActiveTeamMembers returns the directory entries assigned to at least one unfinished unit of
// work. Activity is decided by completion, not by calendar period. Matching is exact on
// normalized names. Output follows directory order and lists each person once.
func ActiveTeamMembers(assignments []model.Assignment, directory []model.TeamMember) []model.TeamMember {
	assigned := make(map[string]struct{})
	for _, name := range AssignedNames(assignments) {
		assigned[name] = struct{}{}
	}

	emitted := make(map[string]struct{})
	var active []model.TeamMember
	for _, member := range directory {
		key := member.Key()
		if key == "" {
			continue
		}
		if _, ok := assigned[key]; !ok {
			continue
		}
		if _, ok := emitted[key]; ok {
			continue
		}
		emitted[key] = struct{}{}
		active = append(active, member)
	}
	return active
}

// WorkstreamAssignments converts workstream rows into assignments
func WorkstreamAssignments(rows []model.WorkstreamRow) []model.Assignment {
	assignments := make([]model.Assignment, 0, len(rows))
	for _, row := range rows {
		assignments = append(assignments, row.Assignment())
	}
	return assignments
}

// ActivityAssignments converts activity rows into assignments
func ActivityAssignments(rows []model.ActivityRow) []model.Assignment {
	assignments := make([]model.Assignment, 0, len(rows))
	for _, row := range rows {
		assignments = append(assignments, row.Assignment())
	}
	return assignments
}
