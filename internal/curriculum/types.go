package curriculum

// Spec defines the curriculum tables loaded from JSON or YAML.
type Spec struct {
	Version       int               `json:"version" yaml:"version"`
	DefaultLesson string            `json:"default_lesson" yaml:"default_lesson"`
	Modules       []Module          `json:"modules" yaml:"modules"`
	Lessons       map[string]Lesson `json:"lessons" yaml:"lessons"`
	Triggers      []Trigger         `json:"triggers" yaml:"triggers"`
}

// Module is a named curriculum unit with an ordered topic list.
type Module struct {
	ID     string   `json:"id" yaml:"id"`
	Title  string   `json:"title" yaml:"title"`
	Topics []string `json:"topics" yaml:"topics"`
}

// Lesson is the static prose shown for a module.
type Lesson struct {
	Title              string `json:"title" yaml:"title"`
	Analogy            string `json:"analogy" yaml:"analogy"`
	Explanation        string `json:"explanation" yaml:"explanation"`
	ExampleQuery       string `json:"exampleQuery" yaml:"example_query"`
	ExampleExplanation string `json:"exampleExplanation" yaml:"example_explanation"`
	ChallengePrompt    string `json:"challengePrompt" yaml:"challenge_prompt"`
}

// Trigger selects Lesson when a module title contains Contains.
type Trigger struct {
	Contains string `json:"contains" yaml:"contains"`
	Lesson   string `json:"lesson" yaml:"lesson"`
}
