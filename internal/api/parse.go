package api

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	apierrors "github.com/diogo/symptrack/internal/errors"
	"github.com/diogo/symptrack/internal/models"
)

// predictRequest is the wire body of a prediction request.
// The whole raw user text travels as one string.
type predictRequest struct {
	Symptoms string `json:"symptoms"`
}

func encodePredictRequest(text string) ([]byte, error) {
	data, err := json.Marshal(predictRequest{Symptoms: text})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal predict request: %w", err)
	}
	return data, nil
}

// parseSymptomsResponse accepts {"symptoms": [...]} and, for the legacy
// route, a bare array
func parseSymptomsResponse(body []byte) ([]string, error) {
	if !gjson.ValidBytes(body) {
		return nil, apierrors.NewParseError("symptom catalog is not valid JSON", PathSymptomList)
	}

	parsed := gjson.ParseBytes(body)
	list := parsed
	if parsed.IsObject() {
		list = parsed.Get(PathSymptomList)
	}
	if !list.IsArray() {
		return nil, apierrors.NewParseError("symptom catalog has no symptoms array", PathSymptomList)
	}

	tokens := make([]string, 0, len(list.Array()))
	list.ForEach(func(_, v gjson.Result) bool {
		if s := v.String(); s != "" {
			tokens = append(tokens, s)
		}
		return true
	})
	return tokens, nil
}

// parsePredictResponse decodes a prediction reply. All prediction fields
// are optional; a non-empty "error" field wins over everything else.
func parsePredictResponse(body []byte) (*models.PredictResult, error) {
	if !gjson.ValidBytes(body) {
		return nil, apierrors.NewParseError("prediction is not valid JSON", "")
	}

	parsed := gjson.ParseBytes(body)
	if !parsed.IsObject() {
		return nil, apierrors.NewParseError("prediction is not a JSON object", "")
	}

	if e := parsed.Get(PathError); e.Exists() && e.String() != "" {
		return &models.PredictResult{Error: e.String()}, nil
	}

	p := &models.Prediction{
		Disease:    parsed.Get(PathDisease).String(),
		Confidence: parsed.Get(PathConfidence).Float(),
	}

	if used := parsed.Get(PathSymptomsUsed); used.IsArray() {
		p.HasSymptoms = true
		used.ForEach(func(_, v gjson.Result) bool {
			p.SymptomsUsed = append(p.SymptomsUsed, models.Symptom(v.String()))
			return true
		})
	}

	return &models.PredictResult{Prediction: p}, nil
}

// errorMessageFromBody extracts a readable message from a non-2xx reply
func errorMessageFromBody(body []byte) string {
	if gjson.ValidBytes(body) {
		if e := gjson.GetBytes(body, PathError); e.Exists() && e.String() != "" {
			return e.String()
		}
	}
	msg := strings.TrimSpace(string(body))
	if msg == "" {
		return "empty response body"
	}
	if len(msg) > maxErrorBody {
		msg = msg[:maxErrorBody] + "..."
	}
	return msg
}
