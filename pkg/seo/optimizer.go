package seo

import (
	"context"
	"encoding/json"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
)

type Input struct {
	Title       string
	Content     string
	ContentType string
	Region      string
}

type Result struct {
	Slug                string   `json:"slug"`
	Keywords            []string `json:"keywords"`
	LongTailKeywords    []string `json:"long_tail_keywords"`
	MetaTitle           string   `json:"meta_title"`
	MetaDescription     string   `json:"meta_description"`
	ReadabilityScore    int      `json:"readability_score"`
	MissingSections     []string `json:"missing_sections"`
	ContentImprovements []string `json:"content_improvements"`
	Source              string   `json:"source"`
}

// Optimizer produces SEO suggestions for a piece of content. The local
// heuristic and the remote model are interchangeable strategies behind
// this interface, selected by availability.
type Optimizer interface {
	Optimize(ctx context.Context, in Input) (Result, error)
}

type HeuristicOptimizer struct{}

func NewHeuristicOptimizer() *HeuristicOptimizer {
	return &HeuristicOptimizer{}
}

func (h *HeuristicOptimizer) Optimize(_ context.Context, in Input) (Result, error) {
	keywords := ExtractKeywords(in.Content)

	topKeyword := ""
	if len(keywords) > 0 {
		topKeyword = keywords[0]
	}

	return Result{
		Slug:                GenerateSlug(in.Title),
		Keywords:            keywords,
		LongTailKeywords:    LongTailVariants(keywords, in.Region),
		MetaTitle:           MetaTitle(in.Title, topKeyword),
		MetaDescription:     MetaDescription(in.Content),
		ReadabilityScore:    ReadabilityScore(in.Content),
		MissingSections:     MissingSections(in.Content, in.ContentType),
		ContentImprovements: ContentImprovements(in.Content, in.ContentType),
		Source:              "heuristic",
	}, nil
}

const optimizePrompt = `You are an SEO assistant for a trekking tour operator.
Given a title and content, respond with ONLY a JSON object with keys:
slug, keywords (max 10), long_tail_keywords (max 15), meta_title (max 60 chars),
meta_description (max 160 chars), readability_score (0-100),
missing_sections, content_improvements.`

// OpenAIOptimizer asks a chat model for suggestions and falls back to the
// local heuristic on any failure, including unparseable output.
type OpenAIOptimizer struct {
	client   *openai.Client
	fallback Optimizer
}

func NewOpenAIOptimizer(apiKey string, fallback Optimizer) *OpenAIOptimizer {
	return &OpenAIOptimizer{
		client:   openai.NewClient(apiKey),
		fallback: fallback,
	}
}

func (o *OpenAIOptimizer) Optimize(ctx context.Context, in Input) (Result, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: openai.GPT4oMini,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: optimizePrompt},
			{Role: openai.ChatMessageRoleUser, Content: "Title: " + in.Title + "\nRegion: " + in.Region + "\nContent:\n" + in.Content},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		logrus.WithError(err).Warn("seo: remote optimize failed, using heuristic")
		return o.fallback.Optimize(ctx, in)
	}

	var result Result
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &result); err != nil {
		logrus.WithError(err).Warn("seo: unparseable remote response, using heuristic")
		return o.fallback.Optimize(ctx, in)
	}

	if result.Slug == "" {
		result.Slug = GenerateSlug(in.Title)
	}
	result.Source = "openai"
	return result, nil
}
