package classifier

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bytedance/sonic"

	"github.com/its-jojoo/camxuc/internal/core"
)

const DefaultHuggingFaceURL = "https://router.huggingface.co/hf-inference/models"

// HuggingFace calls a text-classification model on the Hugging Face
// inference API.
type HuggingFace struct {
	BaseURL string
	Model   string
	Token   string
	Timeout time.Duration
	HTTP    *http.Client
}

type hfLabel struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

func (c *HuggingFace) Classify(ctx context.Context, text string) (core.Prediction, error) {
	model := c.Model
	if model == "" {
		model = DefaultModel
	}
	base := c.BaseURL
	if base == "" {
		base = DefaultHuggingFaceURL
	}
	httpClient := c.HTTP
	if httpClient == nil {
		httpClient = &http.Client{Timeout: c.Timeout}
	}

	body, err := sonic.Marshal(map[string]string{"inputs": text})
	if err != nil {
		return core.Prediction{}, err
	}

	endpoint := strings.TrimRight(base, "/") + "/" + model
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return core.Prediction{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return core.Prediction{}, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return core.Prediction{}, err
	}
	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error string `json:"error"`
		}
		if sonic.Unmarshal(raw, &apiErr) == nil && apiErr.Error != "" {
			return core.Prediction{}, fmt.Errorf("huggingface status %d: %s", resp.StatusCode, apiErr.Error)
		}
		return core.Prediction{}, fmt.Errorf("huggingface status %d: %s", resp.StatusCode, truncate(string(raw), 512))
	}

	labels, err := decodeLabels(raw)
	if err != nil {
		return core.Prediction{}, err
	}
	p := best(labels)
	if p.Score < 0 || p.Score > 1 {
		return core.Prediction{}, fmt.Errorf("huggingface: score %v out of range", p.Score)
	}
	return p, nil
}

// decodeLabels accepts both [[{label,score}]] and [{label,score}].
func decodeLabels(raw []byte) ([]hfLabel, error) {
	var nested [][]hfLabel
	if err := sonic.Unmarshal(raw, &nested); err == nil {
		var flat []hfLabel
		for _, group := range nested {
			flat = append(flat, group...)
		}
		if len(flat) > 0 {
			return flat, nil
		}
	}

	var flat []hfLabel
	if err := sonic.Unmarshal(raw, &flat); err != nil {
		return nil, fmt.Errorf("decode huggingface response: %w", err)
	}
	if len(flat) == 0 {
		return nil, errors.New("huggingface response has no labels")
	}
	return flat, nil
}

func best(labels []hfLabel) core.Prediction {
	top := labels[0]
	for _, l := range labels[1:] {
		if l.Score > top.Score {
			top = l
		}
	}
	return core.Prediction{Label: top.Label, Score: top.Score}
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "…"
}
