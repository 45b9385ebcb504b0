// Package analysis runs the dental scan pipeline: decode the uploaded
// image, classify it, rank the findings against the condition catalog and
// assemble the full patient report (narrative, weekly plan, symptom advice,
// video suggestion).
package analysis

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"math"
	"sort"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/esmanureral/dental-ai-backend/internal/advice"
	"github.com/esmanureral/dental-ai-backend/internal/catalog"
	"github.com/esmanureral/dental-ai-backend/internal/classifier"
	"github.com/esmanureral/dental-ai-backend/internal/history"
	"github.com/esmanureral/dental-ai-backend/internal/narrative"
	"github.com/esmanureral/dental-ai-backend/internal/platform/logger"
)

const modelUnavailableMsg = "Görüntü sınıflandırma modeli yüklenemedi."

// minProbability drops findings the model barely believes in; anything
// under 1% is noise for this classifier.
const minProbability = 0.01

type Request struct {
	ImageB64 string
	UserID   string
	Symptom  string
}

type Predictions struct {
	TR map[string]float64 `json:"tr"`
	EN map[string]float64 `json:"en"`
}

// Report is the /analyze response body. Error is set only when Success is
// false; the remaining fields only when it is true.
type Report struct {
	Success         bool               `json:"success"`
	TopPredictions  []string           `json:"top_predictions,omitempty"`
	AllPredictions  *Predictions       `json:"all_predictions,omitempty"`
	DentalComment   string             `json:"dental_comment,omitempty"`
	WeeklyPlan      []catalog.PlanItem `json:"weekly_plan,omitempty"`
	VideoSuggestion string             `json:"video_suggestion,omitempty"`
	SymptomAdvice   string             `json:"symptom_advice,omitempty"`
	Error           string             `json:"error,omitempty"`

	// TopIssue is the TR label of the best finding, empty when the scan
	// looks healthy. Internal, not part of the response body.
	TopIssue string `json:"-"`
}

type Service struct {
	classifier classifier.Classifier // nil when the model failed to load
	narrative  *narrative.Generator
	history    *history.Store
	log        *logger.Logger
}

func NewService(cls classifier.Classifier, gen *narrative.Generator, hist *history.Store, log *logger.Logger) *Service {
	return &Service{classifier: cls, narrative: gen, history: hist, log: log}
}

// Analyze never returns an error; any failure is folded into the report so
// callers always have a serializable answer.
func (s *Service) Analyze(ctx context.Context, req Request) Report {
	if s.classifier == nil {
		return Report{Success: false, Error: modelUnavailableMsg}
	}

	img, err := decodeImage(req.ImageB64)
	if err != nil {
		return failure(err)
	}

	probs, err := s.classifier.Classify(ctx, img)
	if err != nil {
		if errors.Is(err, classifier.ErrUnavailable) {
			return Report{Success: false, Error: modelUnavailableMsg}
		}
		return failure(err)
	}

	ranked := rank(probs)

	topLabels := make([]string, 0, 3)
	for i, f := range ranked {
		if i == 3 {
			break
		}
		topLabels = append(topLabels, fmt.Sprintf("%s: %.1f%%", f.entry.LabelTR, f.prob*100))
	}

	topIssue := ""
	if len(ranked) > 0 {
		topIssue = ranked[0].entry.LabelTR
	}

	findingsText := strings.Join(topLabels, ", ")
	res := s.narrative.Generate(ctx, findingsText, topIssue, req.UserID)

	if s.history != nil && req.UserID != "" {
		issue := topIssue
		if issue == "" {
			issue = "healthy"
		}
		s.history.Append(req.UserID, history.Entry{
			Findings: "Scan: " + findingsText,
			Plan:     fmt.Sprintf("Plan for %s.", issue),
		})
	}

	report := Report{
		Success:         true,
		TopPredictions:  topLabels,
		AllPredictions:  percentages(ranked),
		DentalComment:   res.Comment,
		WeeklyPlan:      res.Plan,
		VideoSuggestion: catalog.VideoFor(topIssue),
		TopIssue:        topIssue,
	}
	if req.Symptom != "" {
		report.SymptomAdvice = advice.ForSymptom(req.Symptom, topIssue)
	}
	return report
}

func failure(err error) Report {
	return Report{Success: false, Error: fmt.Sprintf("Analiz hatası: %v", err)}
}

// decodeImage accepts raw base64 or a data URI; everything through the
// first comma is treated as the data-URI header.
func decodeImage(b64 string) (image.Image, error) {
	if idx := strings.IndexByte(b64, ','); idx != -1 {
		b64 = b64[idx+1:]
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(b64))
	if err != nil {
		return nil, fmt.Errorf("görüntü çözülemedi: %w", err)
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("görüntü formatı tanınamadı: %w", err)
	}
	return img, nil
}

type finding struct {
	entry catalog.Entry
	prob  float64
}

// rank keeps findings at or above the probability floor, ordered by
// descending probability. Probability ties keep catalog order.
func rank(probs []float32) []finding {
	out := make([]finding, 0, len(probs))
	for i, p := range probs {
		if float64(p) < minProbability {
			continue
		}
		e, ok := catalog.ByID(i)
		if !ok {
			continue
		}
		out = append(out, finding{entry: e, prob: float64(p)})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].prob > out[j].prob })
	return out
}

func percentages(ranked []finding) *Predictions {
	p := &Predictions{
		TR: make(map[string]float64, len(ranked)),
		EN: make(map[string]float64, len(ranked)),
	}
	for _, f := range ranked {
		pct := math.Round(f.prob*10000) / 100
		p.TR[f.entry.LabelTR] = pct
		p.EN[f.entry.LabelEN] = pct
	}
	return p
}
