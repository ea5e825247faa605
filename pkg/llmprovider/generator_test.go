package llmprovider

import (
	"context"
	"errors"
	"strings"
	"testing"

	"campus-advisor/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingGenerator struct {
	text string
	err  error
	reqs []*Request
}

func (r *recordingGenerator) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	r.reqs = append(r.reqs, req)
	if r.err != nil {
		return nil, r.err
	}
	return &Response{Text: r.text}, nil
}

func TestGenerator_GeneratePrefixesSystemPrompt(t *testing.T) {
	rec := &recordingGenerator{text: "  Plan your week.  "}
	g := NewGenerator(rec, log.NewNop())

	out, err := g.Generate(context.Background(), "How do I study?", Options{
		Temperature:  0.7,
		MaxTokens:    512,
		SystemPrompt: "You are an advisor.",
	})
	require.NoError(t, err)
	assert.Equal(t, "Plan your week.", out)

	require.Len(t, rec.reqs, 1)
	req := rec.reqs[0]
	require.Len(t, req.Messages, 1)
	assert.Equal(t, RoleUser, req.Messages[0].Role)
	assert.Equal(t, "You are an advisor.\n\nHow do I study?", req.Messages[0].Text)
	assert.Nil(t, req.SystemInstruction)
	assert.Equal(t, 0.7, req.Temperature)
	assert.Equal(t, 512, req.MaxTokens)
}

func TestGenerator_GenerateErrors(t *testing.T) {
	g := NewGenerator(&recordingGenerator{err: errors.New("connection refused")}, log.NewNop())
	_, err := g.Generate(context.Background(), "hi", Options{})
	assert.Error(t, err)

	g = NewGenerator(&recordingGenerator{text: ""}, log.NewNop())
	_, err = g.Generate(context.Background(), "hi", Options{})
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestGenerator_Classify(t *testing.T) {
	categories := []string{"academic", "wellness", "campus_life", "general"}

	tests := []struct {
		name   string
		answer string
		err    error
		want   string
	}{
		{name: "exact label", answer: "wellness", want: "wellness"},
		{name: "label with noise", answer: "Category: Campus_Life.", want: "campus_life"},
		{name: "first match in list order wins", answer: "academic or wellness", want: "academic"},
		{name: "unknown label", answer: "sports", want: "general"},
		{name: "generation error", err: errors.New("timeout"), want: "general"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recordingGenerator{text: tt.answer, err: tt.err}
			g := NewGenerator(rec, log.NewNop())

			got := g.Classify(context.Background(), "where is the gym", categories, "")
			assert.Equal(t, tt.want, got)

			require.Len(t, rec.reqs, 1)
			req := rec.reqs[0]
			assert.Equal(t, classifyTemperature, req.Temperature)
			assert.Equal(t, classifyMaxTokens, req.MaxTokens)
			prompt := req.Messages[0].Text
			assert.True(t, strings.HasPrefix(prompt, defaultClassifierInstruction+"\n\n"))
			assert.Contains(t, prompt, "academic, wellness, campus_life, general")
			assert.Contains(t, prompt, `Text: "where is the gym"`)
		})
	}
}

func TestGenerator_ClassifyNoCategories(t *testing.T) {
	rec := &recordingGenerator{text: "x"}
	g := NewGenerator(rec, log.NewNop())
	assert.Equal(t, "", g.Classify(context.Background(), "hi", nil, ""))
	assert.Empty(t, rec.reqs)
}
