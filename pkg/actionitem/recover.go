package actionitem

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"regexp"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

const fence = "```"

// ws matches any Unicode whitespace, including NBSP and the other space
// separators model output sometimes contains.
const ws = `[\s\x{0b}\p{Z}\x{85}\x{1c}-\x{1f}]`

var (
	trailingCommaRe = regexp.MustCompile(`,` + ws + `*([\]}])`)

	quoteReplacer = strings.NewReplacer(
		"“", `"`,
		"”", `"`,
		"‘", "'",
		"’", "'",
	)
)

// strategy is one link of the recovery chain. It receives the normalized
// working text and reports whether it produced a usable value.
type strategy struct {
	stage Stage
	run   func(text string) (Candidate, bool)
}

// Recoverer turns raw model output into a Candidate. The zero value is not
// usable; build one with NewRecoverer. A Recoverer is immutable and safe for
// concurrent use.
type Recoverer struct {
	strategies []strategy
}

// Option customizes a Recoverer.
type Option func(*Recoverer)

// WithRepair adds a final jsonrepair stage that runs only after salvage found
// nothing. It accepts looser input such as single-quoted or unquoted keys.
func WithRepair() Option {
	return func(r *Recoverer) {
		r.strategies = append(r.strategies, strategy{stage: StageRepair, run: repairJSON})
	}
}

// NewRecoverer returns the standard chain: strict parse, trailing-comma
// cleanup, triplet salvage, followed by any optional stages.
func NewRecoverer(opts ...Option) *Recoverer {
	r := &Recoverer{
		strategies: []strategy{
			{stage: StageParse, run: parseJSON},
			{stage: StageTrailingComma, run: parseWithoutTrailingCommas},
			{stage: StageSalvage, run: salvageTriplets},
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var defaultRecoverer = NewRecoverer()

// Recover runs the default chain on raw. ok is false when nothing usable
// could be recovered.
func Recover(raw string) (Candidate, bool) {
	res, ok := defaultRecoverer.Recover(raw)
	return res.Candidate, ok
}

// Recover normalizes raw and evaluates the strategies in order, returning the
// first success.
func (r *Recoverer) Recover(raw string) (Result, bool) {
	text := Normalize(raw)
	for _, s := range r.strategies {
		if c, ok := s.run(text); ok {
			return Result{Candidate: c, Stage: s.stage}, true
		}
	}
	return Result{}, false
}

// Normalize applies fence stripping, segment extraction and quote
// normalization, in that order.
func Normalize(raw string) string {
	return NormalizeQuotes(ExtractSegment(StripFences(raw)))
}

// StripFences removes a surrounding markdown code fence and its optional
// language tag.
func StripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, fence) {
		s = s[len(fence):]
		if i := strings.IndexByte(s, '\n'); i >= 0 {
			s = s[i+1:]
		}
		s = strings.TrimSuffix(s, fence)
	}
	return strings.TrimSpace(s)
}

// ExtractSegment narrows s to its outermost array, or failing that its
// outermost object. s is returned unchanged when neither pair exists.
func ExtractSegment(s string) string {
	s = strings.TrimSpace(s)
	if seg, ok := between(s, "[", "]"); ok {
		return seg
	}
	if seg, ok := between(s, "{", "}"); ok {
		return seg
	}
	return s
}

func between(s, open, close string) (string, bool) {
	lb := strings.Index(s, open)
	rb := strings.LastIndex(s, close)
	if lb == -1 || rb == -1 || rb <= lb {
		return "", false
	}
	return strings.TrimSpace(s[lb : rb+1]), true
}

// NormalizeQuotes replaces typographic quotes with their ASCII forms.
func NormalizeQuotes(s string) string {
	return quoteReplacer.Replace(s)
}

// RemoveTrailingCommas drops every comma that directly precedes a closing
// bracket or brace, together with any whitespace between them.
func RemoveTrailingCommas(s string) string {
	return trailingCommaRe.ReplaceAllString(s, "$1")
}

func parseWithoutTrailingCommas(text string) (Candidate, bool) {
	return parseJSON(RemoveTrailingCommas(text))
}

// parseJSON strictly decodes a single JSON value spanning all of text.
func parseJSON(text string) (Candidate, bool) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return Candidate{}, false
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return Candidate{}, false
	}
	return newCandidate(v), true
}

func repairJSON(text string) (Candidate, bool) {
	if strings.TrimSpace(text) == "" {
		return Candidate{}, false
	}
	repaired, err := jsonrepair.JSONRepair(text)
	if err != nil {
		return Candidate{}, false
	}
	return parseJSON(repaired)
}

func newCandidate(v any) Candidate {
	switch t := v.(type) {
	case map[string]any:
		return Candidate{Kind: KindObject, Object: t}
	case []any:
		return Candidate{Kind: KindArray, Array: t}
	default:
		return Candidate{Kind: KindScalar, Scalar: t}
	}
}

// compactJSON renders v as compact JSON without HTML escaping.
func compactJSON(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
