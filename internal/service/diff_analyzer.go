package service

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"deck-diff/internal/domain"
)

const diffPromptTemplate = `Compare these two versions of a pitch deck and identify the key differences in both content and meaning:

Old Version:
%s

New Version:
%s

Please provide a detailed analysis of:
1. Major content changes
2. Meaningful differences in messaging
3. Key additions or removals
4. Changes in tone or emphasis

Format the response as a JSON with the following structure:
{
    "content_changes": ["list of specific content changes"],
    "meaning_changes": ["list of changes in meaning or messaging"],
    "additions": ["list of new content"],
    "removals": ["list of removed content"],
    "tone_changes": ["list of changes in tone or emphasis"]
}

IMPORTANT: Your response must be valid JSON. Do not include any text before or after the JSON object.`

// jsonObjectPattern greedily matches from the first { to the last },
// recovering a JSON object embedded in surrounding prose.
var jsonObjectPattern = regexp.MustCompile(`(\{[\s\S]*\})`)

// DiffAnalyzer implements domain.DifferenceAnalyzer. It delegates the
// comparison entirely to the completion client and recovers JSON from the
// reply in two stages; anything beyond that degrades to the fixed fallback
// report rather than failing the request.
type DiffAnalyzer struct {
	client domain.CompletionClient
	logger domain.Logger
}

// NewDiffAnalyzer creates a new difference analyzer
func NewDiffAnalyzer(client domain.CompletionClient, logger domain.Logger) *DiffAnalyzer {
	return &DiffAnalyzer{
		client: client,
		logger: logger,
	}
}

// Analyze compares oldText against newText. The returned message is always
// a valid JSON document; parsed replies are passed through without field
// validation.
func (a *DiffAnalyzer) Analyze(ctx context.Context, oldText, newText string) (json.RawMessage, error) {
	prompt := fmt.Sprintf(diffPromptTemplate, oldText, newText)

	reply, err := a.client.Complete(ctx, prompt)
	if err != nil {
		a.logger.Error("Completion call failed, using fallback report", err)
		return marshalReport(domain.FallbackReport()), nil
	}
	a.logger.Debug("Raw AI response", "reply", reply)

	// First attempt: the entire reply as JSON.
	trimmed := strings.TrimSpace(reply)
	if json.Valid([]byte(trimmed)) {
		return json.RawMessage(trimmed), nil
	}

	// Second attempt: extract a JSON object from surrounding prose.
	a.logger.Warn("Failed to parse response as JSON, attempting to extract JSON")
	if match := jsonObjectPattern.FindString(reply); match != "" && json.Valid([]byte(match)) {
		return json.RawMessage(match), nil
	}

	a.logger.Error("Could not extract JSON from response", nil)
	return marshalReport(domain.FallbackReport()), nil
}

// marshalReport serializes a report; the struct cannot fail to marshal.
func marshalReport(report *domain.DifferenceReport) json.RawMessage {
	data, err := json.Marshal(report)
	if err != nil {
		return json.RawMessage(`{"content_changes":["Error parsing AI response"],"meaning_changes":[],"additions":[],"removals":[],"tone_changes":[]}`)
	}
	return data
}
