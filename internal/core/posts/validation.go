package posts

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// fieldRule describes the constraints on a single text field
type fieldRule struct {
	name      string
	maxLength int
}

// trimCutset is the ASCII whitespace stripped from both ends of a value
// Other Unicode spaces such as U+00A0 are kept and count as content
const trimCutset = " \t\n\r\x00\x0b"

// postRules is the rule set shared by create and update
var postRules = []fieldRule{
	{name: "title", maxLength: TitleMaxLength},
	{name: "content", maxLength: ContentMaxLength},
}

// ValidatePostInput checks a decoded JSON object against the post rule set.
// Every field is checked so the caller gets all failures in one response.
//
// A field fails when it is missing, null, empty after trimming whitespace,
// not a JSON string (numbers and booleans are rejected even though they could
// be rendered as text), or longer than its limit in characters.
func ValidatePostInput(payload map[string]any) (PostInput, error) {
	verr := &ValidationError{}
	values := make(map[string]string, len(postRules))

	for _, rule := range postRules {
		value, msg := checkTextField(payload, rule)
		if msg != "" {
			verr.Add(rule.name, msg)
			continue
		}
		values[rule.name] = value
	}

	if verr.HasErrors() {
		return PostInput{}, verr
	}

	return PostInput{
		Title:   values["title"],
		Content: values["content"],
	}, nil
}

// checkTextField returns the trimmed value, or a message describing the first failed constraint
func checkTextField(payload map[string]any, rule fieldRule) (string, string) {
	raw, ok := payload[rule.name]
	if !ok || raw == nil {
		return "", requiredMessage(rule.name)
	}

	str, ok := raw.(string)
	if !ok {
		return "", fmt.Sprintf("The %s must be a string.", rule.name)
	}

	str = strings.Trim(str, trimCutset)
	if str == "" {
		return "", requiredMessage(rule.name)
	}

	if utf8.RuneCountInString(str) > rule.maxLength {
		return "", fmt.Sprintf("The %s must not be greater than %d characters.", rule.name, rule.maxLength)
	}

	return str, ""
}

func requiredMessage(field string) string {
	return fmt.Sprintf("The %s field is required.", field)
}
