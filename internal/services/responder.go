package services

import (
	"context"
	"fmt"
	"strings"

	"corpassist-backend/internal/models"
)

const (
	greetingReply = "Hello 👋 How can I help you today?"
	hrReply       = "You can contact HR at hr@company.com"
	itReply       = "For IT support, please submit a ticket."
	fallbackReply = "I don't have an answer for '%s' yet, but I'm learning."
)

type keywordRule struct {
	keywords []string
	reply    string
}

// Evaluated in order; the first rule with any keyword contained in the
// lower-cased prompt wins. Matching is by substring, so "hr" also hits
// "three" and "it" hits "with".
var keywordRules = []keywordRule{
	{keywords: []string{"hello", "hi"}, reply: greetingReply},
	{keywords: []string{"hr"}, reply: hrReply},
	{keywords: []string{"it"}, reply: itReply},
}

// KeywordResponder answers prompts with canned replies. History is accepted
// but never consulted.
type KeywordResponder struct{}

func NewKeywordResponder() *KeywordResponder {
	return &KeywordResponder{}
}

func (r *KeywordResponder) Respond(ctx context.Context, req models.ChatRequest) (string, error) {
	return Reply(req.Prompt), nil
}

// Reply returns the canned answer for prompt.
func Reply(prompt string) string {
	normalized := strings.ToLower(prompt)

	for _, rule := range keywordRules {
		for _, kw := range rule.keywords {
			if strings.Contains(normalized, kw) {
				return rule.reply
			}
		}
	}

	return fmt.Sprintf(fallbackReply, prompt)
}
