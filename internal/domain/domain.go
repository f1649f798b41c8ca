package domain

const (
	EngineExtractive = "extractive"
	EngineOpenAI     = "openai"
)

type Result struct {
	Summary       string
	KeyInsights   []string
	TopKeywords   []string
	SentenceCount int
	WordCount     int
}

// Report is the document written to the JSON output for one input file.
type Report struct {
	Source        string   `json:"source"`
	WordCount     int      `json:"word_count"`
	SentenceCount int      `json:"sentence_count"`
	Summary       string   `json:"summary"`
	KeyInsights   []string `json:"key_insights"`
	TopKeywords   []string `json:"top_keywords"`
	Links         []string `json:"links"`
	Engine        string   `json:"engine"`
}

type Document struct {
	Path string
	Text string
}
