package actionitem

// Schema keys. The prompt, the salvage pattern and the enforcer all read these.
const (
	KeyTask    = "task"
	KeyOwner   = "owner"
	KeyDueDate = "due_date"
)

// SchemaKeys lists the record keys in the order they are rendered.
var SchemaKeys = []string{KeyTask, KeyOwner, KeyDueDate}

// ActionItem is a single extracted task. Owner and DueDate use "" for absence.
type ActionItem struct {
	Task    string `json:"task"`
	Owner   string `json:"owner"`
	DueDate string `json:"due_date"`
}

// Kind tags the shape held by a Candidate.
type Kind int

const (
	KindNone Kind = iota
	KindObject
	KindArray
	KindScalar
	KindSalvage
)

func (k Kind) String() string {
	switch k {
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	case KindScalar:
		return "scalar"
	case KindSalvage:
		return "salvage"
	default:
		return "none"
	}
}

// Candidate is the recovered, not yet validated, model output.
// Exactly one payload field is meaningful, selected by Kind.
type Candidate struct {
	Kind     Kind
	Object   map[string]any
	Array    []any
	Scalar   any
	Salvaged []map[string]string
}

// Stage identifies the recovery strategy that produced a Candidate.
type Stage int

const (
	StageNone Stage = iota
	StageParse
	StageTrailingComma
	StageSalvage
	StageRepair
)

func (s Stage) String() string {
	switch s {
	case StageParse:
		return "parse"
	case StageTrailingComma:
		return "trailing_comma"
	case StageSalvage:
		return "salvage"
	case StageRepair:
		return "repair"
	default:
		return ""
	}
}

// Result pairs a Candidate with the stage that produced it.
type Result struct {
	Candidate Candidate
	Stage     Stage
}

// Example is a worked (dialogue, expected output) pair embedded in the prompt.
type Example struct {
	Chat  string
	Items []ActionItem
}
