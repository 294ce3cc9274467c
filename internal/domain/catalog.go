package domain

// CareerArea is a topical grouping used to select questions, courses and exams.
type CareerArea struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	VoiceIntro  string `json:"voiceIntro" yaml:"voiceIntro"`
	Icon        string `json:"icon" yaml:"icon"`
}

// Question is an area questionnaire item answered by picking one option.
type Question struct {
	ID        string   `json:"id" yaml:"id"`
	Question  string   `json:"question" yaml:"question"`
	VoiceText string   `json:"voiceText" yaml:"voiceText"`
	Options   []string `json:"options" yaml:"options"`
}

type Course struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Comparison  string   `json:"comparison" yaml:"comparison"`
	Duration    string   `json:"duration" yaml:"duration"`
	Fees        string   `json:"fees" yaml:"fees"`
	Careers     []string `json:"careers" yaml:"careers"`
}

type Exam struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Importance  string `json:"importance" yaml:"importance"`
	Dates       string `json:"dates" yaml:"dates"`
	Fees        string `json:"fees" yaml:"fees"`
}

// ResourceExam is an entrance exam listed on the resources page.
type ResourceExam struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Timing      string   `json:"timing" yaml:"timing"`
	ForStreams  []string `json:"forStreams" yaml:"forStreams"`
	Website     string   `json:"website" yaml:"website"`
}

type Scholarship struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Amount      string `json:"amount" yaml:"amount"`
	Eligibility string `json:"eligibility" yaml:"eligibility"`
}

type College struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Type        string `json:"type" yaml:"type"`
	Locations   string `json:"locations" yaml:"locations"`
}

type Resources struct {
	Exams        []ResourceExam `json:"exams" yaml:"exams"`
	Scholarships []Scholarship  `json:"scholarships" yaml:"scholarships"`
	Colleges     []College      `json:"colleges" yaml:"colleges"`
}

// StreamCourse is the short course listing shown under a stream.
type StreamCourse struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Eligibility string `json:"eligibility" yaml:"eligibility"`
	AvgFees     string `json:"avgFees" yaml:"avgFees"`
}

// Stream is a broad academic track such as Science or Commerce.
type Stream struct {
	ID          string         `json:"id" yaml:"id"`
	Name        string         `json:"name" yaml:"name"`
	Description string         `json:"description" yaml:"description"`
	Icon        string         `json:"icon" yaml:"icon"`
	Courses     []StreamCourse `json:"courses" yaml:"courses"`
}

// Catalog is the complete read-only content store. Questions, courses and
// exams are keyed by career area id.
type Catalog struct {
	Areas         []CareerArea          `json:"areas" yaml:"areas"`
	Questions     map[string][]Question `json:"questions" yaml:"questions"`
	Courses       map[string][]Course   `json:"courses" yaml:"courses"`
	Exams         map[string][]Exam     `json:"exams" yaml:"exams"`
	Resources     Resources             `json:"resources" yaml:"resources"`
	QuizQuestions []QuizQuestion        `json:"quiz" yaml:"quiz"`
	Streams       []Stream              `json:"streams" yaml:"streams"`
}
