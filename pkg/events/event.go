package events

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

const (
	ActivityQueue = "rhea.activity"

	TypeAnalysisCompleted = "analysis.completed"
	TypeLookGenerated     = "look.generated"
	TypeWardrobeItemAdded = "wardrobe.item_added"
)

type Event struct {
	Type       string         `json:"type"`
	UserID     string         `json:"user_id"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    map[string]any `json:"payload,omitempty"`
}

func NewEvent(eventType, userID string, payload map[string]any) Event {
	return Event{
		Type:       eventType,
		UserID:     userID,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
}

// Line renders the event as one activity-log line with payload keys sorted.
func (e Event) Line() string {
	keys := make([]string, 0, len(e.Payload))
	for k := range e.Payload {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s | user_id=%s", e.OccurredAt.Format(time.RFC3339), e.Type, e.UserID)
	for _, k := range keys {
		fmt.Fprintf(&b, " | %s=%v", k, e.Payload[k])
	}
	b.WriteString("\n")
	return b.String()
}
