package seed

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// BrainstormRequest describes the kind of project the user wants ideas for.
type BrainstormRequest struct {
	Theme            string `json:"theme"`
	TargetGroup      string `json:"targetGroup"`
	ParticipantCount int    `json:"participantCount"`
	HostCountryCode  string `json:"hostCountryCode"`
}

// Idea is what the model returns for one brainstormed project.
type Idea struct {
	Title              string `json:"title"`
	Summary            string `json:"summary"`
	TargetGroup        string `json:"targetGroup"`
	Activities         string `json:"activities"`
	ApprovalLikelihood int    `json:"approvalLikelihood"`
}

// AIService generates project ideas through the OpenAI chat completions
// API. Without an API key it runs disabled and serves canned ideas, so the
// rest of the app works offline.
type AIService struct {
	apiKey     string
	apiURL     string
	enabled    bool
	httpClient *http.Client
}

type openAIRequest struct {
	Model          string          `json:"model"`
	Messages       []message       `json:"messages"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type openAIResponse struct {
	Choices []struct {
		Message message `json:"message"`
	} `json:"choices"`
}

func NewAIService() *AIService {
	apiKey := os.Getenv("OPENAI_API_KEY")

	return &AIService{
		apiKey:  apiKey,
		apiURL:  "https://api.openai.com/v1/chat/completions",
		enabled: apiKey != "",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Brainstorm returns one project idea for the request. The model's JSON is
// decoded into a typed Idea and validated before it is returned; malformed
// or out-of-range output is an error rather than stored as-is.
func (s *AIService) Brainstorm(req BrainstormRequest) (*Idea, error) {
	if !s.enabled {
		return s.fallbackIdea(req), nil
	}

	prompt := fmt.Sprintf(`Propose one Erasmus+ youth mobility project idea.

CONSTRAINTS:
- Theme: %s
- Target group: %s
- Around %d participants
- Host country: %s

Answer with a single JSON object with exactly these fields:
"title" (string, a short project name),
"summary" (string, 2-3 sentences),
"targetGroup" (string),
"activities" (string, a short list of planned activities),
"approvalLikelihood" (integer 0-100, your estimate of funding odds).`,
		req.Theme, req.TargetGroup, req.ParticipantCount, req.HostCountryCode)

	raw, err := s.callLLM(prompt)
	if err != nil {
		return nil, err
	}

	idea, err := parseIdea(raw)
	if err != nil {
		return nil, err
	}
	return idea, nil
}

func (s *AIService) callLLM(prompt string) (string, error) {
	reqBody := openAIRequest{
		Model: "gpt-4o-mini",
		Messages: []message{
			{
				Role:    "system",
				Content: "You are an experienced Erasmus+ grant consultant. You know the programme guide, what national agencies fund, and what makes applications succeed. You answer with JSON only.",
			},
			{
				Role:    "user",
				Content: prompt,
			},
		},
		MaxTokens:      400,
		ResponseFormat: &responseFormat{Type: "json_object"},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest("POST", s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", s.apiKey))

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	var aiResp openAIResponse
	if err := json.NewDecoder(resp.Body).Decode(&aiResp); err != nil {
		return "", err
	}
	if len(aiResp.Choices) == 0 {
		return "", fmt.Errorf("no response from AI")
	}
	return aiResp.Choices[0].Message.Content, nil
}

// parseIdea decodes and validates the model's JSON.
func parseIdea(raw string) (*Idea, error) {
	// Some models wrap JSON in a markdown fence despite instructions.
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")

	var idea Idea
	if err := json.Unmarshal([]byte(raw), &idea); err != nil {
		return nil, fmt.Errorf("malformed idea JSON: %w", err)
	}
	if strings.TrimSpace(idea.Title) == "" {
		return nil, fmt.Errorf("idea is missing a title")
	}
	if strings.TrimSpace(idea.Summary) == "" {
		return nil, fmt.Errorf("idea is missing a summary")
	}
	if idea.ApprovalLikelihood < 0 || idea.ApprovalLikelihood > 100 {
		return nil, fmt.Errorf("approval likelihood %d out of range", idea.ApprovalLikelihood)
	}
	return &idea, nil
}

func (s *AIService) fallbackIdea(req BrainstormRequest) *Idea {
	theme := req.Theme
	if theme == "" {
		theme = "intercultural learning"
	}
	targetGroup := req.TargetGroup
	if targetGroup == "" {
		targetGroup = "young people aged 16-25"
	}
	return &Idea{
		Title:              fmt.Sprintf("Youth Exchange: %s", theme),
		Summary:            fmt.Sprintf("A youth exchange built around %s, bringing together %s from partner organisations for workshops, peer learning and a joint public event.", theme, targetGroup),
		TargetGroup:        targetGroup,
		Activities:         "Icebreakers and team building; themed workshops; local study visits; a final showcase open to the community.",
		ApprovalLikelihood: 60,
	}
}
