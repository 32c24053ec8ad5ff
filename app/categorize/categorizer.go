package categorize

import (
	"sort"
	"strings"

	"github.com/rkawale/mediawatch/app/database"
)

const (
	titlePoints = 3
	bodyPoints  = 1
	maxRelated  = 2
)

// Match is one department's keyword score against an article.
type Match struct {
	DepartmentID string
	Name         string
	Score        int
	Keywords     []string
}

// Assignment is the categorization outcome: a primary department (empty when
// nothing matched) and up to two related ones.
type Assignment struct {
	PrimaryDepartmentID string
	Related             []string
	Matches             []Match
}

// Categorizer assigns departments by keyword matching. Re-running with the
// same department keyword sets and text yields the same assignment.
type Categorizer struct {
	deptRepo database.DepartmentRepository
}

func NewCategorizer(deptRepo database.DepartmentRepository) *Categorizer {
	return &Categorizer{deptRepo: deptRepo}
}

// Run scores every department against the article text and returns the
// assignment. Title hits score 3 points, body-only hits 1.
func (c *Categorizer) Run(title, content string) (*Assignment, error) {
	departments, err := c.deptRepo.GetDepartments()
	if err != nil {
		return nil, err
	}
	return Assign(departments, title, content), nil
}

// Assign is the pure scoring core, separated so it can be exercised without a
// store.
func Assign(departments []database.Department, title, content string) *Assignment {
	lowerTitle := strings.ToLower(title)
	lowerBody := strings.ToLower(content)

	var matches []Match
	for _, dept := range departments {
		score := 0
		var matched []string
		for _, kw := range dept.Keywords {
			kw = strings.ToLower(kw)
			switch {
			case strings.Contains(lowerTitle, kw):
				score += titlePoints
				matched = append(matched, kw)
			case strings.Contains(lowerBody, kw):
				score += bodyPoints
				matched = append(matched, kw)
			}
		}
		if score > 0 {
			matches = append(matches, Match{
				DepartmentID: dept.ID,
				Name:         dept.Name,
				Score:        score,
				Keywords:     matched,
			})
		}
	}

	// Stable ordering: score descending, then department id for ties, so the
	// assignment is deterministic across runs.
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].DepartmentID < matches[j].DepartmentID
	})

	assignment := &Assignment{Matches: matches, Related: []string{}}
	if len(matches) > 0 {
		assignment.PrimaryDepartmentID = matches[0].DepartmentID
		for _, m := range matches[1:] {
			if len(assignment.Related) >= maxRelated {
				break
			}
			assignment.Related = append(assignment.Related, m.DepartmentID)
		}
	}
	return assignment
}
