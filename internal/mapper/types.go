package mapper

import "github.com/codescout/codescout/internal/analyzer"

// Requirement is the issue-tracker record the mapper consumes. Field names
// follow the requirement.json contract produced by the ticket-fetch stage.
type Requirement struct {
	TicketID           string        `json:"ticket_id"`
	Type               string        `json:"type"`
	Summary            string        `json:"summary"`
	Description        string        `json:"description"`
	AcceptanceCriteria string        `json:"acceptance_criteria"`
	StoryPoints        int           `json:"story_points"`
	Labels             []string      `json:"labels"`
	Components         []string      `json:"components"`
	Subtasks           []Subtask     `json:"subtasks"`
	LinkedIssues       []LinkedIssue `json:"linked_issues"`
	Comments           []Comment     `json:"comments"`
}

// Subtask carries only the summary of a sub-task
type Subtask struct {
	Summary string `json:"summary"`
}

// LinkedIssue carries only the summary of a linked issue
type LinkedIssue struct {
	Summary string `json:"summary"`
}

// Comment carries one comment body
type Comment struct {
	Body string `json:"body"`
}

// Match records one symbol's contribution to a file's score
type Match struct {
	Kind  analyzer.SymbolKind `json:"kind"`
	Name  string              `json:"name"`
	Score float64             `json:"score"`
	Line  int                 `json:"line,omitempty"`
}

// KeywordLocation is a bounded line window where keywords co-occur
type KeywordLocation struct {
	StartLine     int      `json:"start_line"`
	EndLine       int      `json:"end_line"`
	KeywordsFound []string `json:"keywords_found"`
	Snippet       string   `json:"snippet"`
}

// ScoredFile is one ranked file with its evidence
type ScoredFile struct {
	File             string            `json:"file"`
	Score            float64           `json:"score"`
	Matches          []Match           `json:"matches"`
	KeywordLocations []KeywordLocation `json:"keyword_locations"`
}

// ConfigChange hints that a configuration file may need touching
type ConfigChange struct {
	File   string `json:"file"`
	Reason string `json:"reason"`
}

// TestChange hints at test work for a detected framework
type TestChange struct {
	Framework string `json:"framework"`
	Note      string `json:"note"`
}

// ChangeProposal is the ranked, bounded output record handed to the
// downstream review and apply stages.
type ChangeProposal struct {
	TicketID          string         `json:"ticket_id"`
	TicketSummary     string         `json:"ticket_summary"`
	KeywordsUsed      []string       `json:"keywords_used"`
	FilesToModify     []ScoredFile   `json:"files_to_modify"`
	FilesToCreate     []ScoredFile   `json:"files_to_create"`
	FilesToDelete     []ScoredFile   `json:"files_to_delete"`
	ConfigChanges     []ConfigChange `json:"config_changes"`
	TestChanges       []TestChange   `json:"test_changes"`
	Notes             []string       `json:"notes"`
	TotalFilesMatched int            `json:"total_files_matched"`
}
