package seed

import (
	"strings"
	"testing"
)

func TestParseIdeaValid(t *testing.T) {
	raw := `{"title":"Green Steps","summary":"A youth exchange on sustainable travel.","targetGroup":"16-20 year olds","activities":"Workshops, bike tours","approvalLikelihood":72}`

	idea, err := parseIdea(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if idea.Title != "Green Steps" {
		t.Errorf("title = %q", idea.Title)
	}
	if idea.ApprovalLikelihood != 72 {
		t.Errorf("likelihood = %d", idea.ApprovalLikelihood)
	}
}

func TestParseIdeaStripsMarkdownFence(t *testing.T) {
	raw := "```json\n{\"title\":\"T\",\"summary\":\"S\",\"approvalLikelihood\":50}\n```"

	idea, err := parseIdea(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if idea.Title != "T" {
		t.Errorf("title = %q", idea.Title)
	}
}

func TestParseIdeaRejectsInvalid(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"malformed json", `not json at all`},
		{"missing title", `{"summary":"S","approvalLikelihood":50}`},
		{"blank title", `{"title":"  ","summary":"S","approvalLikelihood":50}`},
		{"missing summary", `{"title":"T","approvalLikelihood":50}`},
		{"likelihood too high", `{"title":"T","summary":"S","approvalLikelihood":140}`},
		{"likelihood negative", `{"title":"T","summary":"S","approvalLikelihood":-5}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := parseIdea(tc.raw); err == nil {
				t.Errorf("expected error for %s", tc.name)
			}
		})
	}
}

func TestBrainstormFallbackWhenDisabled(t *testing.T) {
	s := &AIService{enabled: false}

	idea, err := s.Brainstorm(BrainstormRequest{Theme: "digital skills", ParticipantCount: 20})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if idea.Title == "" || idea.Summary == "" {
		t.Error("fallback idea should be populated")
	}
	if !strings.Contains(idea.Summary, "digital skills") {
		t.Errorf("fallback should echo the theme, got %q", idea.Summary)
	}
	if idea.ApprovalLikelihood < 0 || idea.ApprovalLikelihood > 100 {
		t.Errorf("fallback likelihood out of range: %d", idea.ApprovalLikelihood)
	}
}
