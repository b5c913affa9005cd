package analyzer

// SymbolKind classifies an extracted code construct
type SymbolKind string

const (
	KindClass       SymbolKind = "class"
	KindFunction    SymbolKind = "function"
	KindAPIEndpoint SymbolKind = "api_endpoint"
	KindDBEntity    SymbolKind = "db_entity"
	KindInterface   SymbolKind = "interface"
)

// Symbol is a named code construct found by lexical pattern matching.
// Kind is implied by the containing CodeIndex array and not serialized.
type Symbol struct {
	Kind SymbolKind `json:"-"`
	Name string     `json:"name"`
	File string     `json:"file"`
	Line int        `json:"line,omitempty"` // 1-based, 0 means unknown
}

// CodeIndex groups extracted symbols by kind. Within each slice the order is
// discovery order: file traversal order, then match order within a file.
type CodeIndex struct {
	Classes      []Symbol `json:"classes"`
	Functions    []Symbol `json:"functions"`
	APIEndpoints []Symbol `json:"api_endpoints"`
	DBEntities   []Symbol `json:"db_entities"`
	Interfaces   []Symbol `json:"interfaces"`
}

// NewCodeIndex returns an index with empty (non-nil) slices so an empty
// repository still serializes as empty arrays.
func NewCodeIndex() *CodeIndex {
	return &CodeIndex{
		Classes:      []Symbol{},
		Functions:    []Symbol{},
		APIEndpoints: []Symbol{},
		DBEntities:   []Symbol{},
		Interfaces:   []Symbol{},
	}
}

// Add appends a symbol to the slice matching its kind
func (ci *CodeIndex) Add(sym Symbol) {
	switch sym.Kind {
	case KindClass:
		ci.Classes = append(ci.Classes, sym)
	case KindFunction:
		ci.Functions = append(ci.Functions, sym)
	case KindAPIEndpoint:
		ci.APIEndpoints = append(ci.APIEndpoints, sym)
	case KindDBEntity:
		ci.DBEntities = append(ci.DBEntities, sym)
	case KindInterface:
		ci.Interfaces = append(ci.Interfaces, sym)
	}
}

// All returns the grouped symbols in a fixed kind order
func (ci *CodeIndex) All() []struct {
	Kind    SymbolKind
	Symbols []Symbol
} {
	return []struct {
		Kind    SymbolKind
		Symbols []Symbol
	}{
		{KindClass, ci.Classes},
		{KindFunction, ci.Functions},
		{KindAPIEndpoint, ci.APIEndpoints},
		{KindDBEntity, ci.DBEntities},
		{KindInterface, ci.Interfaces},
	}
}

// FileEntry holds information about a single file found by the scanner
type FileEntry struct {
	Path    string // absolute path
	RelPath string // forward-slash relative path from the repo root
	Ext     string // lowercase extension including the dot
}

// LanguageStat is one row of the language histogram
type LanguageStat struct {
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// Configurations holds extracted configuration file excerpts
type Configurations struct {
	ConfigFiles  map[string]string `json:"config_files"`
	EnvVariables []string          `json:"env_variables"`
}

// TestInfo holds detected test framework signals
type TestInfo struct {
	Frameworks    map[string]string `json:"frameworks"`
	TestFileCount int               `json:"test_file_count"`
}

// Stats holds per-kind symbol counts for the report summary
type Stats struct {
	TotalClasses      int `json:"total_classes"`
	TotalFunctions    int `json:"total_functions"`
	TotalAPIEndpoints int `json:"total_api_endpoints"`
	TotalDBEntities   int `json:"total_db_entities"`
	TotalInterfaces   int `json:"total_interfaces"`
	TestFiles         int `json:"test_files"`
}

// AnalysisReport is the self-contained artifact handed to the mapper
type AnalysisReport struct {
	RepoPath      string                  `json:"repo_path"`
	TotalFiles    int                     `json:"total_files"`
	Languages     map[string]LanguageStat `json:"languages"`
	Frameworks    []string                `json:"frameworks"`
	BuildTools    []string                `json:"build_tools"`
	Architecture  []string                `json:"architecture"`
	CodeIndex     *CodeIndex              `json:"code_index"`
	Configuration Configurations          `json:"configurations"`
	Tests         TestInfo                `json:"tests"`
	DirectoryTree *TreeNode               `json:"directory_tree"`
	Stats         Stats                   `json:"stats"`
}
