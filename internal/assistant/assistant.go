// Package assistant orchestrates the generate, execute, and chat flows.
// It retrieves documentation for grounding, calls the generator, and
// gates every safe-mode execution behind the code validator before any
// transport sees the script.
package assistant

import (
	"context"
	"fmt"
	"strings"

	"codeberg.org/revbot/server/internal/bridge"
	"codeberg.org/revbot/server/internal/llm"
	"codeberg.org/revbot/server/internal/logger"
	"codeberg.org/revbot/server/internal/retriever"
)

const docsTopK = 5

func New(ret Retriever, generator llm.TextGenerator, validator Validator, executor Executor) *Assistant {
	return &Assistant{
		retriever: ret,
		generator: generator,
		validator: validator,
		executor:  executor,
	}
}

// Generate produces Revit API code for a natural-language request.
// Retrieval failures degrade to generation without documentation
// context rather than failing the request.
func (a *Assistant) Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error) {
	var docs []retriever.SearchResult

	if a.retriever != nil {
		results, err := a.retriever.Search(ctx, req.Prompt, docsTopK)
		if err != nil {
			logger.Warn("documentation retrieval failed, generating without context", "error", err)
		} else {
			docs = results
		}
	}

	messages := make([]llm.Message, 0, len(req.ConversationHistory)+1)
	for _, turn := range req.ConversationHistory {
		messages = append(messages, llm.Message{Role: turn.Role, Content: turn.Content})
	}
	messages = append(messages, llm.Message{
		Role:    "user",
		Content: enhancePrompt(req.Prompt, req.Context),
	})

	var temperature *float32
	if req.Temperature != nil {
		t := float32(*req.Temperature)
		temperature = &t
	}

	response, err := a.generator.GenerateText(ctx, llm.TextGenerationRequest{
		SystemPrompt: buildSystemPrompt(docs),
		Messages:     messages,
		Temperature:  temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate code: %w", err)
	}

	code := extractCode(response.Text)

	usedContext := make([]string, 0, len(docs))
	for _, doc := range docs {
		usedContext = append(usedContext, doc.Source())
	}

	return &GenerateResult{
		Code:          code,
		Explanation:   extractExplanation(response.Text),
		UsedContext:   usedContext,
		Warnings:      checkWarnings(code, req.Context),
		Model:         a.generator.Model(),
		DocsRetrieved: len(docs),
	}, nil
}

// Execute runs code on the Revit host. With safe mode on, the code is
// screened first and a rejection never reaches any transport. A fresh
// verdict is produced on every call.
func (a *Assistant) Execute(ctx context.Context, req ExecuteRequest) *ExecuteResult {
	if strings.TrimSpace(req.Code) == "" {
		return &ExecuteResult{
			Status: bridge.StatusFailure,
			Errors: "nothing to execute: code is empty",
		}
	}

	if req.SafeMode && a.validator != nil {
		verdict := a.validator.Validate(req.Code)
		if !verdict.IsSafe {
			logger.Info("execution rejected by safety screen", "rule", verdict.MatchedRule)

			return &ExecuteResult{
				Status:      bridge.StatusRejected,
				Errors:      verdict.Reason,
				MatchedRule: verdict.MatchedRule,
			}
		}
	}

	result := a.executor.Execute(ctx, req.Code, req.Timeout)

	return &ExecuteResult{
		Status:     result.Status,
		Output:     result.Output,
		Errors:     result.Errors,
		Duration:   result.Duration.Seconds(),
		RevitState: result.RevitState,
	}
}

// Chat generates code and, when asked, immediately executes it. The
// execution leg always runs in safe mode and is skipped entirely when
// generation produced no code.
func (a *Assistant) Chat(ctx context.Context, req ChatRequest) (*ChatResult, error) {
	generated, err := a.Generate(ctx, GenerateRequest{
		Prompt:              req.Prompt,
		Context:             req.Context,
		ConversationHistory: req.ConversationHistory,
	})
	if err != nil {
		return nil, err
	}

	result := &ChatResult{GenerateResult: *generated}

	if req.ExecuteCode && strings.TrimSpace(generated.Code) != "" {
		result.Execution = a.Execute(ctx, ExecuteRequest{
			Code:     generated.Code,
			SafeMode: true,
		})
	}

	return result, nil
}
