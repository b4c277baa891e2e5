package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jordan/job-tracker/internal/types"
)

// sizeBuckets are the accepted company_size values. Anything the model
// returns outside this set is discarded rather than stored.
var sizeBuckets = map[string]bool{
	"1-10":       true,
	"11-50":      true,
	"51-200":     true,
	"201-500":    true,
	"501-1000":   true,
	"1001-5000":  true,
	"5001-10000": true,
	"10001+":     true,
}

// maxEnrichInputChars caps how much posting text is sent to the model.
const maxEnrichInputChars = 12000

// enrichResult mirrors the JSON shape requested by PostingEnrichmentSchema.
type enrichResult struct {
	Industry    string   `json:"industry,omitempty"`
	CompanySize string   `json:"company_size,omitempty"`
	Skills      []string `json:"skills,omitempty"`
}

// Enricher fills classification fields that the selector pipeline left
// empty, using an LLM pass over the posting text. It never overwrites a
// field that already has a value.
type Enricher struct {
	client Client
}

// NewEnricher creates an Enricher backed by the given client.
func NewEnricher(client Client) *Enricher {
	return &Enricher{client: client}
}

// NewEnricherFromKey creates an Enricher with a default Gemini client.
// Returns nil when apiKey is empty, so callers can treat enrichment as
// disabled without an extra flag.
func NewEnricherFromKey(ctx context.Context, apiKey string) (*Enricher, error) {
	if apiKey == "" {
		return nil, nil
	}
	client, err := NewClient(ctx, DefaultConfig(), apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	return &Enricher{client: client}, nil
}

// Close releases the underlying client.
func (e *Enricher) Close() error {
	if e == nil || e.client == nil {
		return nil
	}
	return e.client.Close()
}

// Enrich fills Industry, CompanySize, and Skills on the posting when they
// are empty. A nil Enricher is a no-op.
func (e *Enricher) Enrich(ctx context.Context, posting *types.JobPosting) error {
	if e == nil || posting == nil {
		return nil
	}
	if posting.Industry != "" && posting.CompanySize != "" && len(posting.Skills) > 0 {
		return nil
	}

	text := buildEnrichInput(posting)
	if text == "" {
		return nil
	}

	prompt := BuildExtractionPrompt(PostingEnrichmentSchema(), text)
	jsonResp, err := e.client.GenerateJSON(ctx, prompt, TierLite)
	if err != nil {
		return fmt.Errorf("enrichment request failed: %w", err)
	}

	var result enrichResult
	if err := json.Unmarshal([]byte(CleanJSONBlock(jsonResp)), &result); err != nil {
		return fmt.Errorf("failed to parse enrichment response: %w", err)
	}

	applyEnrichment(posting, result)
	return nil
}

func applyEnrichment(posting *types.JobPosting, result enrichResult) {
	if posting.Industry == "" {
		posting.Industry = strings.TrimSpace(result.Industry)
	}
	if posting.CompanySize == "" {
		size := strings.TrimSpace(result.CompanySize)
		if sizeBuckets[size] {
			posting.CompanySize = size
		}
	}
	if len(posting.Skills) == 0 {
		for _, skill := range result.Skills {
			skill = strings.ToLower(strings.TrimSpace(skill))
			if skill != "" {
				posting.Skills = append(posting.Skills, skill)
			}
		}
	}
}

func buildEnrichInput(posting *types.JobPosting) string {
	var sb strings.Builder
	if posting.Title != "" {
		sb.WriteString("Title: " + posting.Title + "\n")
	}
	if posting.CompanyName != "" {
		sb.WriteString("Company: " + posting.CompanyName + "\n")
	}
	if posting.Description != "" {
		sb.WriteString("\n" + posting.Description)
	}
	text := sb.String()
	if len(text) > maxEnrichInputChars {
		text = text[:maxEnrichInputChars]
	}
	return strings.TrimSpace(text)
}
