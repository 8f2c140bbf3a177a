// Package coach produces the short encouragement line shown after a mission
// report is sent.
package coach

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"strings"
	"text/template"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/lessonbook/internal/llm"
	"github.com/abhisek/lessonbook/internal/report"
)

// ShowFor is how long a line stays on screen.
const ShowFor = 2 * time.Second

// Praise is the line for a successful mission.
const Praise = "GREAT JOB!"

// Encouragements are the fixed lines used without a provider.
var Encouragements = []string{"NICE TRY!", "KEEP GOING!", "DON'T GIVE UP!", "YOU CAN DO IT!"}

// maxLineLen keeps generated lines banner sized.
const maxLineLen = 32

// Config tunes generated lines.
type Config struct {
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
}

func DefaultConfig() Config {
	return Config{MaxTokens: 64, Temperature: 0.9, Timeout: 5 * time.Second}
}

// Coach picks a line for a pair of report answers. A nil provider always
// uses the fixed lines.
type Coach struct {
	provider llm.Provider
	cfg      Config
	logger   *zap.Logger
	intn     func(n int) int
}

func New(provider llm.Provider, cfg Config, logger *zap.Logger) *Coach {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Coach{provider: provider, cfg: cfg, logger: logger, intn: rand.IntN}
}

// Line returns the encouragement for the answers. Provider failures fall
// back to the fixed lines and are only logged.
func (c *Coach) Line(ctx context.Context, result, grit report.Option) string {
	if c.provider != nil {
		line, err := c.generate(ctx, result, grit)
		if err == nil {
			return line
		}
		c.logger.Warn("coach line fallback", zap.Error(err))
	}
	return c.Fallback(result)
}

// Fallback is the line used without a provider.
func (c *Coach) Fallback(result report.Option) string {
	if result == report.Success {
		return Praise
	}
	return Encouragements[c.intn(len(Encouragements))]
}

type lineOutput struct {
	Line string `json:"line"`
}

func (c *Coach) generate(ctx context.Context, result, grit report.Option) (string, error) {
	ctx = llm.WithPurpose(ctx, "coach")
	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	msg, err := buildMessage(result, grit)
	if err != nil {
		return "", fmt.Errorf("build coach prompt: %w", err)
	}
	resp, err := c.provider.Generate(ctx, llm.Request{
		System:      systemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: msg}},
		Schema:      LineSchema,
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: c.cfg.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("generate coach line: %w", err)
	}

	var out lineOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return "", fmt.Errorf("parse coach line: %w", err)
	}
	line := strings.ToUpper(strings.TrimSpace(out.Line))
	if line == "" {
		return "", fmt.Errorf("empty coach line")
	}
	return line, nil
}

// LineSchema is the structured output of a coach request.
var LineSchema = &llm.Schema{
	Name:        "coach-line",
	Description: "One short encouragement line for a young robot builder",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"line": map[string]any{
				"type":        "string",
				"minLength":   1,
				"maxLength":   maxLineLen,
				"description": "Two to four upbeat words ending with an exclamation mark",
			},
		},
		"required":             []any{"line"},
		"additionalProperties": false,
	},
}

const systemPrompt = `You cheer on children who just tried a robot building mission.
Reply with one short line of two to four words in capital letters ending with "!".
Never mention the child's answers directly. Never be sarcastic.`

var userTemplate = template.Must(template.New("coach").Parse(`How did it go: {{.Result}}
Did they keep trying: {{.Grit}}`))

func buildMessage(result, grit report.Option) (string, error) {
	var buf bytes.Buffer
	err := userTemplate.Execute(&buf, struct {
		Result string
		Grit   string
	}{label(report.Result, result), label(report.Grit, grit)})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

func label(q report.Question, opt report.Option) string {
	for _, p := range report.Prompts {
		if p.Question != q {
			continue
		}
		for _, ch := range p.Choices {
			if ch.Value == opt {
				return ch.Label
			}
		}
	}
	return string(opt)
}
