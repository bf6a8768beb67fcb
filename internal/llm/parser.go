package llm

import (
	"encoding/json"
	"log"
	"regexp"
	"strings"

	"github.com/rinisriranganathan/RestBot/internal/order"
)

// Markers the model appends to its conversational text. Exactly one marker is
// honored per reply; checkout wins over order, order over remove, remove over
// suggestions.
const (
	SuggestionMarker     = "%%%SUGGESTIONS%%%"
	OrderIntentMarker    = "%%%ORDER_INTENT%%%"
	RemoveIntentMarker   = "%%%REMOVE_INTENT%%%"
	CheckoutIntentMarker = "%%%CHECKOUT_INTENT%%%"
)

// Suggestion is one model-recommended menu entry.
type Suggestion struct {
	ID     string `json:"id"`
	Reason string `json:"reason"`
}

// Reply is the structured form of a raw model response: the conversational
// text with at most one recognized intent.
type Reply struct {
	Text        string
	Suggestions []Suggestion
	Order       []order.Instruction
	Remove      []order.Instruction
	Checkout    bool
}

var fenceRe = regexp.MustCompile("(?s)^```(?:json)?\\s*\\n?(.*?)\\n?\\s*```$")

// cleanJSON strips a markdown code fence the model sometimes wraps its JSON
// in despite instructions.
func cleanJSON(s string) string {
	s = strings.TrimSpace(s)
	if m := fenceRe.FindStringSubmatch(s); m != nil {
		return strings.TrimSpace(m[1])
	}
	return s
}

// ParseReply splits a raw model response into conversational text and intent
// payload. Malformed intent JSON never fails the reply; the text is served
// with a short annotation and the problem is logged.
func ParseReply(raw string) Reply {
	reply := Reply{Text: strings.TrimSpace(raw)}

	if n := countMarkers(raw); n > 1 {
		log.Printf("Model reply carries %d intent markers, honoring the highest-priority one: %q", n, truncate(raw, 120))
	}

	if idx := strings.Index(raw, CheckoutIntentMarker); idx != -1 {
		reply.Text = strings.TrimSpace(raw[:idx])
		reply.Checkout = true
		return reply
	}

	if idx := strings.Index(raw, OrderIntentMarker); idx != -1 {
		reply.Text = strings.TrimSpace(raw[:idx])
		payload := strings.TrimSpace(raw[idx+len(OrderIntentMarker):])
		instrs, ok := parseInstructions(payload)
		if !ok {
			log.Printf("Failed to parse order intent JSON: %q", truncate(payload, 120))
			reply.Text += " (Order processing error: " + truncate(payload, 30) + "...)"
			return reply
		}
		reply.Order = instrs
		return reply
	}

	if idx := strings.Index(raw, RemoveIntentMarker); idx != -1 {
		reply.Text = strings.TrimSpace(raw[:idx])
		payload := strings.TrimSpace(raw[idx+len(RemoveIntentMarker):])
		instrs, ok := parseInstructions(payload)
		if !ok {
			log.Printf("Failed to parse remove intent JSON: %q", truncate(payload, 120))
			reply.Text += " (Remove processing error: " + truncate(payload, 30) + "...)"
			return reply
		}
		reply.Remove = instrs
		return reply
	}

	if idx := strings.Index(raw, SuggestionMarker); idx != -1 {
		reply.Text = strings.TrimSpace(raw[:idx])
		payload := cleanJSON(raw[idx+len(SuggestionMarker):])
		if payload == "" {
			return reply
		}

		var suggestions []Suggestion
		if err := json.Unmarshal([]byte(payload), &suggestions); err != nil {
			log.Printf("Failed to parse suggestions JSON: %v", err)
			reply.Text += " (Suggestion format issue.)"
			return reply
		}
		for _, s := range suggestions {
			if s.ID == "" {
				log.Printf("Suggestion without id in: %q", truncate(payload, 120))
				reply.Text += " (Suggestion format issue.)"
				return reply
			}
		}
		reply.Suggestions = suggestions
		return reply
	}

	return reply
}

// parseInstructions decodes an intent JSON array, clamping quantities the
// model leaves out or gets wrong to sane positive integers.
func parseInstructions(payload string) ([]order.Instruction, bool) {
	payload = cleanJSON(payload)
	if payload == "" {
		return nil, true
	}

	var instrs []order.Instruction
	if err := json.Unmarshal([]byte(payload), &instrs); err != nil {
		return nil, false
	}

	for i := range instrs {
		if instrs[i].ItemName == "" {
			return nil, false
		}
		if instrs[i].Quantity < 1 {
			instrs[i].Quantity = 1
		}
	}
	return instrs, true
}

// countMarkers reports how many of the intent markers appear in a raw reply.
// The protocol allows at most one.
func countMarkers(raw string) int {
	n := 0
	for _, m := range []string{CheckoutIntentMarker, OrderIntentMarker, RemoveIntentMarker, SuggestionMarker} {
		if strings.Contains(raw, m) {
			n++
		}
	}
	return n
}

// truncate shortens s to at most n runes, never splitting a UTF-8 sequence.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
