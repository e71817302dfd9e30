package classifier

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHuggingFaceClassify(t *testing.T) {
	var gotPath, gotAuth, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[[{"label":"NEU","score":0.05},{"label":"POS","score":0.93},{"label":"NEG","score":0.02}]]`))
	}))
	defer srv.Close()

	c := &HuggingFace{BaseURL: srv.URL + "/models/", Token: "hf_test"}
	p, err := c.Classify(context.Background(), "tôi rất vui")
	require.NoError(t, err)

	assert.Equal(t, "/models/"+DefaultModel, gotPath)
	assert.Equal(t, "Bearer hf_test", gotAuth)
	assert.JSONEq(t, `{"inputs":"tôi rất vui"}`, gotBody)
	assert.Equal(t, "POS", p.Label)
	assert.InDelta(t, 0.93, p.Score, 1e-9)
}

func TestHuggingFaceClassifyFlatResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"label":"NEG","score":0.7},{"label":"NEU","score":0.3}]`))
	}))
	defer srv.Close()

	c := &HuggingFace{BaseURL: srv.URL, Model: "some/model"}
	p, err := c.Classify(context.Background(), "tệ quá")
	require.NoError(t, err)
	assert.Equal(t, "NEG", p.Label)
}

func TestHuggingFaceClassifyErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		errMsg string
	}{
		{"model loading", http.StatusServiceUnavailable, `{"error":"Model is currently loading"}`, "Model is currently loading"},
		{"plain error body", http.StatusBadGateway, `bad gateway`, "status 502"},
		{"malformed json", http.StatusOK, `{"label":`, "decode huggingface response"},
		{"no labels", http.StatusOK, `[]`, "no labels"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := (&HuggingFace{BaseURL: srv.URL}).Classify(context.Background(), "x")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestHuggingFaceClassifyRejectsScoreOutOfRange(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[[{"label":"POS","score":1.7}]]`))
	}))
	defer srv.Close()

	c := &HuggingFace{BaseURL: srv.URL}
	_, err := c.Classify(context.Background(), "tôi rất vui")
	assert.ErrorContains(t, err, "out of range")
}

func TestTruncateKeepsRunesWhole(t *testing.T) {
	s := "lỗi máy chủ"
	for n := 0; n < len(s); n++ {
		got := truncate(s, n)
		assert.Truef(t, utf8.ValidString(got), "n=%d gave %q", n, got)
	}
	assert.Equal(t, "l…", truncate(s, 2))
	assert.Equal(t, s, truncate(s, len(s)))
}
