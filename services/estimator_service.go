package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/ASpurbo/meal-lens-ai-85-sub000/nutrition"
)

// MealEstimate is the opaque AI collaborator's best-effort macro estimate
// for one described meal.
type MealEstimate struct {
	Foods      []string             `json:"foods"`
	Calories   float64              `json:"calories"`
	Protein    float64              `json:"protein"`
	Carbs      float64              `json:"carbs"`
	Fat        float64              `json:"fat"`
	Confidence nutrition.Confidence `json:"confidence"`
	Notes      string               `json:"notes"`
}

// EstimatorService calls a hosted LLM to turn a free-text meal
// description into a MealEstimate. Failures surface as-is, with no
// retries and no fallback estimate.
type EstimatorService struct {
	client *http.Client
	token  string
	model  string
}

func NewEstimatorService() *EstimatorService {
	return &EstimatorService{
		client: &http.Client{Timeout: 15 * time.Second},
		token:  os.Getenv("HUGGINGFACE_TOKEN"),
		model:  "meta-llama/Llama-3.1-8B-Instruct",
	}
}

func (e *EstimatorService) buildPrompt(description string) string {
	var sb strings.Builder
	sb.WriteString("You are a nutrition estimation assistant. Estimate the macros of the meal described below.\n\n")
	sb.WriteString("MEAL: " + description + "\n\n")
	sb.WriteString(`Respond with a single JSON object, no prose, in exactly this shape:
{"foods":["..."],"calories":0,"protein":0,"carbs":0,"fat":0,"confidence":"low|medium|high","notes":"..."}
calories in kcal, protein/carbs/fat in grams. Use "high" confidence only for clearly quantified meals.`)
	return sb.String()
}

// Estimate sends the description to the inference API and parses the
// JSON object out of the generated text.
func (e *EstimatorService) Estimate(description string) (*MealEstimate, error) {
	if e.token == "" {
		return nil, fmt.Errorf("HUGGINGFACE_TOKEN not set")
	}
	if strings.TrimSpace(description) == "" {
		return nil, fmt.Errorf("empty meal description")
	}

	body := map[string]any{
		"inputs": e.buildPrompt(description),
		"parameters": map[string]any{
			"max_new_tokens": 256,
			"temperature":    0.2,
		},
	}
	b, _ := json.Marshal(body)

	req, _ := http.NewRequest(
		"POST",
		fmt.Sprintf("https://api-inference.huggingface.co/models/%s", e.model),
		bytes.NewReader(b),
	)
	req.Header.Set("Authorization", "Bearer "+e.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-wait-for-model", "true")

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("estimator request error: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read estimator response error: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(respBytes, &apiErr) == nil && apiErr.Error != "" {
			return nil, fmt.Errorf("estimator api error (%d): %s", resp.StatusCode, apiErr.Error)
		}
		return nil, fmt.Errorf("estimator api error (%d): %s", resp.StatusCode, string(respBytes))
	}

	var out []struct {
		GeneratedText string `json:"generated_text"`
	}
	if err := json.Unmarshal(respBytes, &out); err != nil {
		return nil, fmt.Errorf("decode estimator response error: %w", err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("empty estimator response")
	}

	return parseEstimate(out[0].GeneratedText)
}

// parseEstimate pulls the JSON object out of the model's text, which is
// often wrapped in markdown fences or commentary.
func parseEstimate(text string) (*MealEstimate, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON object in estimator output")
	}

	var est MealEstimate
	if err := json.Unmarshal([]byte(text[start:end+1]), &est); err != nil {
		return nil, fmt.Errorf("parse estimator JSON: %w", err)
	}
	if err := ValidateEstimate(&est); err != nil {
		return nil, err
	}
	return &est, nil
}

// ValidateEstimate is the basic shape/non-negativity check applied before
// an estimate is trusted as a meal record. It normalizes an unknown
// confidence tag to "low" rather than rejecting, but never invents
// macros.
func ValidateEstimate(est *MealEstimate) error {
	if len(est.Foods) == 0 {
		return fmt.Errorf("estimate names no foods")
	}
	if est.Calories < 0 || est.Protein < 0 || est.Carbs < 0 || est.Fat < 0 {
		return fmt.Errorf("estimate contains negative macros")
	}
	if !est.Confidence.Valid() {
		est.Confidence = nutrition.ConfidenceLow
	}
	return nil
}
