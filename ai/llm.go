package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"mktflow/model"
)

// Flows bundles the LLM-backed assistant calls behind a Completer so tests
// can stub the model.
type Flows struct {
	completer Completer
}

// NewFlows wires the LLM flows to a completer.
func NewFlows(c Completer) *Flows {
	return &Flows{completer: c}
}

// Classification is the result of matching content against user constraints.
type Classification struct {
	Classification     string `json:"classification"`
	MatchesConstraints bool   `json:"matchesConstraints"`
}

const classifySystem = "You are an AI assistant that classifies content and determines if it matches user-specified constraints. " +
	"Respond with a single JSON object: {\"classification\": string, \"matchesConstraints\": boolean}. No prose, no markdown."

// ClassifyContent classifies a piece of content and reports whether it
// satisfies the given constraints.
func (f *Flows) ClassifyContent(ctx context.Context, content, constraints string) (Classification, error) {
	user := fmt.Sprintf("Content: %s\nConstraints: %s", content, constraints)
	raw, err := f.completer.Complete(ctx, classifySystem, user)
	if err != nil {
		return Classification{}, fmt.Errorf("classify content: %w", err)
	}

	var out Classification
	if err := json.Unmarshal([]byte(stripFences(raw)), &out); err != nil {
		return Classification{}, fmt.Errorf("classify content: parse model response: %w", err)
	}
	return out, nil
}

// processedRow is the wire shape the model is asked to produce per item.
type processedRow struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	Category    string `json:"category"`
	Description string `json:"description,omitempty"`
}

func processSystem() string {
	names := make([]string, len(model.ContentCategories))
	for i, c := range model.ContentCategories {
		names[i] = string(c)
	}
	return fmt.Sprintf(`You are an intelligent data processing assistant. Analyze the provided raw JSON data, which comes from a spreadsheet, and transform it into structured content items.

Instructions:
1. The input JSON is an array of objects; each object is a row. Keys are column letters or header names.
2. Intelligently determine which column corresponds to 'title', 'date', 'category' and 'description' (e.g. 'Título del Post' maps to 'title', 'Fecha de Publicación' to 'date').
3. Convert any recognized date format into strict YYYY-MM-DD. The current year is %d. Omit an item if its date is impossible to parse.
4. The 'category' field must be one of: %s. Map close variants (e.g. 'educacional') to the correct value; default to '%s' if unrecognizable.
5. Omit rows that are clearly headers or contain no valid data.

Respond with only a JSON array of objects {"title", "date", "category", "description"}. No prose, no markdown.`,
		time.Now().Year(), strings.Join(names, ", "), model.CategoryEducational)
}

// ProcessContent maps raw spreadsheet data (a JSON array of row objects) to
// content items via the model, then validates the result locally: dates must
// be YYYY-MM-DD, categories are coerced into the closed set, and every item
// gets a fresh ID and Todo status.
func (f *Flows) ProcessContent(ctx context.Context, rawData string) ([]model.ContentItem, error) {
	raw, err := f.completer.Complete(ctx, processSystem(), rawData)
	if err != nil {
		return nil, fmt.Errorf("process content: %w", err)
	}

	var rows []processedRow
	if err := json.Unmarshal([]byte(stripFences(raw)), &rows); err != nil {
		return nil, fmt.Errorf("process content: parse model response: %w", err)
	}

	items := make([]model.ContentItem, 0, len(rows))
	for _, row := range rows {
		title := strings.TrimSpace(row.Title)
		if title == "" {
			continue
		}
		date, err := time.Parse("2006-01-02", strings.TrimSpace(row.Date))
		if err != nil {
			continue
		}
		category := model.ContentCategory(strings.TrimSpace(row.Category))
		if !model.ValidCategory(category) {
			category = model.CategoryEducational
		}
		items = append(items, model.ContentItem{
			ID:          model.NewID(),
			Title:       title,
			Date:        model.Date(date.Year(), date.Month(), date.Day()),
			Category:    category,
			Description: strings.TrimSpace(row.Description),
			Status:      model.StatusTodo,
		})
	}
	return items, nil
}

// stripFences removes a markdown code fence if the model wrapped its JSON in
// one.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
