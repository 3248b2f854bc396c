package wizard

import (
	"fmt"
	"strings"

	"github.com/ssoksound/surveywizard/internal/model"
)

// RawInput is the untyped answer material submitted for the current
// question. Which fields matter depends on the question kind.
type RawInput struct {
	Text          string            `json:"text,omitempty"`
	NotApplicable bool              `json:"not_applicable,omitempty"`
	Selected      []string          `json:"selected,omitempty"`
	OtherDetails  map[string]string `json:"other_details,omitempty"`
	Ranking       []string          `json:"ranking,omitempty"`
}

// Message IDs for validation failures, resolved against the i18n bundle
// at the transport edge.
const (
	MsgAnswerRequired      = "AnswerRequired"
	MsgSelectOption        = "SelectOption"
	MsgSelectAtLeastOne    = "SelectAtLeastOne"
	MsgOtherDetailRequired = "OtherDetailRequired"
	MsgMaxSelections       = "MaxSelections"
	MsgRankingIncomplete   = "RankingIncomplete"
	MsgThreeCommaTokens    = "ThreeCommaTokens"
	MsgContainsComma       = "ContainsComma"
	MsgMinTwoWords         = "MinTwoWords"
	MsgMinTwoLines         = "MinTwoLines"
)

// otherLabels are the option labels that open a free-text detail field.
var otherLabels = []string{"기타", "있음 (구체적으로)"}

// IsOtherOption reports whether a choice option requires an accompanying
// free-text detail.
func IsOtherOption(label string) bool {
	for _, l := range otherLabels {
		if label == l {
			return true
		}
	}
	return false
}

// compositeOther renders an other-option selection as "label: detail",
// with any parenthesized hint stripped from the label.
func compositeOther(label, detail string) string {
	base := strings.TrimSpace(strings.SplitN(label, "(", 2)[0])
	return base + ": " + detail
}

// Collect validates raw input against the question and produces the
// committed answer. It has no side effects: on error the returned answer
// is the zero value and nothing was stored.
func Collect(q model.Question, in RawInput) (model.Answer, error) {
	switch q.Kind {
	case model.KindShortText, model.KindLongText:
		return collectText(q, in)
	case model.KindSingleChoice:
		return collectSingle(q, in)
	case model.KindMultiChoice:
		return collectMulti(q, in)
	case model.KindRankedChoice:
		return collectRanked(q, in)
	default:
		return model.Answer{}, fmt.Errorf("unknown question kind %q", q.Kind)
	}
}

func collectText(q model.Question, in RawInput) (model.Answer, error) {
	if q.AllowsNotApplicable && in.NotApplicable {
		return model.Answer{Kind: q.Kind, Text: model.NotApplicable}, nil
	}
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return model.Answer{}, validationErr(MsgAnswerRequired)
	}
	if err := checkRule(q.Rule, text); err != nil {
		return model.Answer{}, err
	}
	return model.Answer{Kind: q.Kind, Text: text}, nil
}

func collectSingle(q model.Question, in RawInput) (model.Answer, error) {
	if len(in.Selected) != 1 {
		return model.Answer{}, validationErr(MsgSelectOption)
	}
	label := in.Selected[0]
	if !hasOption(q, label) {
		return model.Answer{}, validationErr(MsgSelectOption)
	}
	text := label
	if IsOtherOption(label) {
		detail := strings.TrimSpace(in.OtherDetails[label])
		if detail == "" {
			return model.Answer{}, validationErr(MsgOtherDetailRequired)
		}
		text = compositeOther(label, detail)
	}
	return model.Answer{Kind: q.Kind, Text: text}, nil
}

func collectMulti(q model.Question, in RawInput) (model.Answer, error) {
	if len(in.Selected) == 0 {
		return model.Answer{}, validationErr(MsgSelectAtLeastOne)
	}
	if q.MaxSelections > 0 && len(in.Selected) > q.MaxSelections {
		return model.Answer{}, &ValidationError{
			MsgID: MsgMaxSelections,
			Data:  map[string]any{"Max": q.MaxSelections},
		}
	}
	list := make([]string, 0, len(in.Selected))
	seen := make(map[string]bool, len(in.Selected))
	for _, label := range in.Selected {
		if !hasOption(q, label) || seen[label] {
			return model.Answer{}, validationErr(MsgSelectOption)
		}
		seen[label] = true
		if IsOtherOption(label) {
			detail := strings.TrimSpace(in.OtherDetails[label])
			if detail == "" {
				return model.Answer{}, validationErr(MsgOtherDetailRequired)
			}
			list = append(list, compositeOther(label, detail))
			continue
		}
		list = append(list, label)
	}
	return model.Answer{Kind: q.Kind, List: list}, nil
}

func collectRanked(q model.Question, in RawInput) (model.Answer, error) {
	if len(in.Ranking) != model.RankedCount {
		return model.Answer{}, validationErr(MsgRankingIncomplete)
	}
	seen := make(map[string]bool, len(in.Ranking))
	for _, label := range in.Ranking {
		if !hasOption(q, label) || seen[label] {
			return model.Answer{}, validationErr(MsgRankingIncomplete)
		}
		seen[label] = true
	}
	return model.Answer{Kind: q.Kind, List: append([]string(nil), in.Ranking...)}, nil
}

func hasOption(q model.Question, label string) bool {
	for _, opt := range q.Options {
		if opt == label {
			return true
		}
	}
	return false
}

func checkRule(rule model.Rule, text string) error {
	switch rule {
	case model.RuleNone:
		return nil
	case model.RuleThreeCommaTokens:
		if countCommaTokens(text) != 3 {
			return validationErr(MsgThreeCommaTokens)
		}
	case model.RuleContainsComma:
		if !strings.Contains(text, ",") {
			return validationErr(MsgContainsComma)
		}
	case model.RuleMinTwoWords:
		if len(strings.Fields(text)) < 2 {
			return validationErr(MsgMinTwoWords)
		}
	case model.RuleMinTwoLines:
		if countLines(text) < 2 {
			return validationErr(MsgMinTwoLines)
		}
	}
	return nil
}

func countCommaTokens(text string) int {
	n := 0
	for _, tok := range strings.Split(text, ",") {
		if strings.TrimSpace(tok) != "" {
			n++
		}
	}
	return n
}

func countLines(text string) int {
	n := 0
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			n++
		}
	}
	return n
}
