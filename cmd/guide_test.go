package cmd

import (
	"strings"
	"testing"
)

func TestGuideUsageListsTopics(t *testing.T) {
	usage := (&guideCmd{}).Usage()
	for _, topic := range []string{"guide", "statistics"} {
		if !strings.Contains(usage, topic) {
			t.Errorf("Usage() does not list topic %q:\n%s", topic, usage)
		}
	}
}

func TestTopicContent(t *testing.T) {
	content, err := topicContent("guide")
	if err != nil {
		t.Fatalf("topicContent(guide) = %v, want nil", err)
	}
	if !strings.Contains(content, "User Guide") {
		t.Errorf("topicContent(guide) does not contain the guide heading")
	}
	if _, err := topicContent("nonexistent"); err == nil {
		t.Error("topicContent(nonexistent) = nil error, want error")
	}
}
