// Package content holds the authored practicum content and instantiates
// a randomized per-session copy of it. Content ships embedded in the
// binary and is schema-validated at load time; an invalid pack aborts
// startup rather than letting an ungradable exercise run.
package content

// Pack is the parsed authored content for one practicum level.
type Pack struct {
	Version   string        `json:"version"`
	Quiz      QuizSpec      `json:"quiz"`
	PhoneCall PhoneCallSpec `json:"phoneCall"`
	Binder    BinderSpec    `json:"binder"`
	Audit     AuditSpec     `json:"audit"`
}

// ChoiceSpec is one authored single-choice question. Distractors and the
// correct answer together form the candidate set; presentation order is
// randomized per session.
type ChoiceSpec struct {
	ID          string   `json:"id"`
	Prompt      string   `json:"prompt"`
	Correct     string   `json:"correct"`
	Distractors []string `json:"distractors"`
}

// QuizSpec is the intake quiz: scored choice questions followed by the
// check-in ordering task.
type QuizSpec struct {
	Questions []ChoiceSpec `json:"questions"`
	Ordering  OrderingSpec `json:"ordering"`
}

// OrderingSpec is an authored step-sequencing task; Steps is the correct
// order.
type OrderingSpec struct {
	ID     string   `json:"id"`
	Prompt string   `json:"prompt"`
	Steps  []string `json:"steps"`
}

// PhoneCallSpec is the sequential phone-call dialog.
type PhoneCallSpec struct {
	ID    string       `json:"id"`
	Steps []ChoiceSpec `json:"steps"`
}

// BinderSpec is the unordered coding binder.
type BinderSpec struct {
	ID    string       `json:"id"`
	Cases []ChoiceSpec `json:"cases"`
}

// AuditSpec is the chart audit: the defective-chart universe plus the
// reviewable document set and its shared distractor pool.
type AuditSpec struct {
	ID             string         `json:"id"`
	RequiredPages  int            `json:"requiredPages"`
	Charts         ChartsSpec     `json:"charts"`
	Documents      []DocumentSpec `json:"documents"`
	DistractorPool []string       `json:"distractorPool"`
}

// ChartsSpec is the multi-select universe; exactly two charts must be
// flagged defective for the exercise to be satisfiable.
type ChartsSpec struct {
	ID       string      `json:"id"`
	Prompt   string      `json:"prompt"`
	Universe []ChartSpec `json:"universe"`
}

// ChartSpec is one chart in the audit universe.
type ChartSpec struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Defective bool   `json:"defective"`
}

// DocumentSpec is one reviewable document.
type DocumentSpec struct {
	ID    string     `json:"id"`
	Title string     `json:"title"`
	Pages []PageSpec `json:"pages"`
}

// PageSpec is one page; an empty issue means the page is clean.
type PageSpec struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Issue string `json:"issue,omitempty"`
}
