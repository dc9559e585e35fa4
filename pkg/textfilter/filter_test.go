package textfilter

import (
	"strings"
	"testing"

	"github.com/arcanedm/arcanedm/pkg/story"
)

func TestFilterText(t *testing.T) {
	pf := NewProfanityFilter()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"clean text untouched", "The party enters the tavern.", "The party enters the tavern."},
		{"lowercase replacement", "what the hell is that", "what the heck is that"},
		{"title case preserved", "Damn, that troll is huge!", "Dang, that troll is huge!"},
		{"uppercase preserved", "DAMN the torpedoes", "DANG the torpedoes"},
		{"word boundary respected", "The classic hellhound lunges.", "The classic hellhound lunges."},
		{"multiple words", "damn this hell", "dang this heck"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := pf.FilterText(tc.input); got != tc.want {
				t.Errorf("FilterText(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestContainsProfanity(t *testing.T) {
	pf := NewProfanityFilter()

	if pf.ContainsProfanity("A quiet walk through the Silverwood.") {
		t.Error("clean text flagged")
	}
	if !pf.ContainsProfanity("Well, damn.") {
		t.Error("profanity not detected")
	}
}

func TestFilteredTextStaysFiltered(t *testing.T) {
	pf := NewProfanityFilter()
	out := pf.FilterText("damn and hell and crap")
	if pf.ContainsProfanity(out) {
		t.Errorf("filtered output still contains profanity: %q", out)
	}
	if !strings.Contains(out, "dang") {
		t.Errorf("expected replacement in %q", out)
	}
}

func TestShouldFilterContent(t *testing.T) {
	if ShouldFilterContent(story.CampaignNormal) {
		t.Error("normal campaigns should not be filtered")
	}
	if !ShouldFilterContent(story.CampaignFamily) {
		t.Error("family campaigns should be filtered")
	}
}
