package complexity

// FunctionMetrics holds the per-function measurements an extractor
// reports for one function of a file.
type FunctionMetrics struct {
	CyclomaticComplexity int    `json:"cyclomatic_complexity"`
	NLOC                 int    `json:"nloc"`
	TokenCount           int    `json:"token_count"`
	Name                 string `json:"name"`
	LongName             string `json:"long_name"`
	StartLine            int    `json:"start_line"`
	EndLine              int    `json:"end_line"`
	FanIn                int    `json:"fan_in"`
	FanOut               int    `json:"fan_out"`
}

// FileStats is an extractor's output for one file: its functions plus
// whole-file totals.
type FileStats struct {
	Functions  []FunctionMetrics `json:"functions"`
	FileTokens int               `json:"file_tokens"`
	FileNLOC   int               `json:"file_nloc"`
}

// Row is one output row, keyed by revision, path and function index.
type Row struct {
	Revision string `json:"revision"`
	Path     string `json:"path"`
	Function int    `json:"function"`
	FunctionMetrics
	FileTokens int `json:"file_tokens"`
	FileNLOC   int `json:"file_nloc"`
}

// Analysis is the flattened per-function metrics table.
type Analysis struct {
	Rows []Row `json:"rows"`
}
