package domain

// ExploreStep is one page of the exploration wizard.
type ExploreStep struct {
	Number      int    `json:"number"`
	Key         string `json:"key"`
	Title       string `json:"title"`
	VoicePrompt string `json:"voicePrompt"`
}

var ExploreSteps = []ExploreStep{
	{Number: 1, Key: "details", Title: "Your Details", VoicePrompt: "Tell us a little about yourself. Choose your grade and the things you enjoy."},
	{Number: 2, Key: "areas", Title: "Career Areas", VoicePrompt: "Pick one or more career areas you would like to explore."},
	{Number: 3, Key: "questions", Title: "Questions", VoicePrompt: "Answer a few quick questions about each area you picked."},
	{Number: 4, Key: "results", Title: "Your Results", VoicePrompt: "Here are the courses and exams that match your choices."},
}

const (
	MaxQuestionsPerArea = 2
	MaxExploreQuestions = 5
)

// AreaQuestion is a questionnaire item tagged with the area it came from.
type AreaQuestion struct {
	AreaID string `json:"areaId"`
	Question
}
