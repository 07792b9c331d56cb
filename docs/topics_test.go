package docs

import (
	"strings"
	"testing"
)

func TestGetTopic(t *testing.T) {
	content, err := GetTopic("guide")
	if err != nil {
		t.Fatalf("GetTopic(guide) = %v, want nil", err)
	}
	if !strings.Contains(content, "User Guide") {
		t.Errorf("GetTopic(guide) does not contain the guide heading")
	}
}

func TestGetTopicUnknown(t *testing.T) {
	if _, err := GetTopic("nonexistent"); err == nil {
		t.Error("GetTopic(nonexistent) = nil error, want error")
	}
}

func TestGetTopics(t *testing.T) {
	content, err := GetTopics("guide", "statistics")
	if err != nil {
		t.Fatalf("GetTopics() = %v, want nil", err)
	}
	if !strings.Contains(content, "User Guide") || !strings.Contains(content, "Volatility") {
		t.Errorf("GetTopics() is missing one of the requested topics")
	}
}

func TestGetAllTopics(t *testing.T) {
	topics, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() = %v, want nil", err)
	}
	want := map[string]bool{"guide": false, "statistics": false}
	for _, topic := range topics {
		if _, ok := want[topic]; ok {
			want[topic] = true
		}
	}
	for topic, found := range want {
		if !found {
			t.Errorf("GetAllTopics() is missing %q", topic)
		}
	}
}
