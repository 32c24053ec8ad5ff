package analysis

import (
	"reflect"
	"testing"
)

func TestExtractTopics(t *testing.T) {
	topics := ExtractTopics("New metro line approved", "The railway ministry cleared the project near the airport.")

	found := map[string]bool{}
	for _, topic := range topics {
		found[topic] = true
	}
	if !found["Transport"] {
		t.Errorf("Expected Transport topic, got %v", topics)
	}

	if topics := ExtractTopics("Quarterly tea auction prices stable", "Nothing notable occurred."); len(topics) != 0 {
		t.Errorf("Expected no topics for unrelated text, got %v", topics)
	}
}

func TestExtractTopicsCap(t *testing.T) {
	text := "election budget hospital school startup farmer pollution metro police cricket"
	topics := ExtractTopics(text, text)
	if len(topics) > 6 {
		t.Errorf("Expected at most 6 topics, got %d: %v", len(topics), topics)
	}
}

func TestExtractKeywords(t *testing.T) {
	keywords := ExtractKeywords("The new irrigation canal will help farmers across the district")

	for _, kw := range keywords {
		if len([]rune(kw)) <= 3 {
			t.Errorf("Keyword %q is too short", kw)
		}
	}
	if len(keywords) > 10 {
		t.Errorf("Expected at most 10 keywords, got %d", len(keywords))
	}

	// Deterministic: same input, same output
	again := ExtractKeywords("The new irrigation canal will help farmers across the district")
	if !reflect.DeepEqual(keywords, again) {
		t.Errorf("Keyword extraction is not deterministic: %v vs %v", keywords, again)
	}
}

func TestExtractEntities(t *testing.T) {
	text := "Rahul Sharma of the Ministry of Finance visited Mumbai and rural Maharashtra last week"
	entities := ExtractEntities(text)

	byType := map[string][]string{}
	for _, e := range entities {
		byType[e.Type] = append(byType[e.Type], e.Text)
	}

	if len(byType[EntityLocation]) < 2 {
		t.Errorf("Expected at least 2 locations, got %v", byType[EntityLocation])
	}
	if len(byType[EntityOrganization]) != 1 {
		t.Errorf("Expected 1 organization, got %v", byType[EntityOrganization])
	}
	if len(byType[EntityPerson]) < 1 {
		t.Errorf("Expected at least 1 person, got %v", byType[EntityPerson])
	}

	if len(entities) > 10 {
		t.Errorf("Expected at most 10 entities, got %d", len(entities))
	}
}

func TestExtractorRunIdempotent(t *testing.T) {
	extractor := NewExtractor()
	title := "Protest over water shortage in Chennai"
	content := "Residents blamed the municipal corporation for the crisis and the long delay in repairs."

	first := extractor.Run(title, content)
	second := extractor.Run(title, content)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Extractor is not idempotent: %+v vs %+v", first, second)
	}

	if first.Label != LabelNegative {
		t.Errorf("Expected negative label, got %s", first.Label)
	}
	if first.Language != "en" {
		t.Errorf("Expected language en, got %s", first.Language)
	}
}
