package ai

import (
	"context"
	"fmt"
)

// Example task helpers. These are starter material: swap the prompts
// for whatever your application actually does.

// Summarize asks the model for a concise summary of text.
func (c *Client) Summarize(ctx context.Context, text string) (Result, error) {
	system := "You are an expert at summarizing text. Provide a concise summary of the main points."
	prompt := fmt.Sprintf("Please summarize the following text:\n\n%s", text)
	return c.Generate(ctx, system, prompt)
}

// Translate asks the model to translate text into targetLanguage.
func (c *Client) Translate(ctx context.Context, text, targetLanguage string) (Result, error) {
	system := fmt.Sprintf("You are an expert translator. Translate the given text to %s.", targetLanguage)
	prompt := fmt.Sprintf("Please translate the following text:\n\n%s", text)
	return c.Generate(ctx, system, prompt)
}

// AnalyzeCode asks the model to review a piece of code.
func (c *Client) AnalyzeCode(ctx context.Context, code string) (Result, error) {
	system := "You are a code review expert. Analyze the code and provide insights, suggestions, and potential improvements."
	prompt := fmt.Sprintf("Please analyze the following code:\n\n```\n%s\n```", code)
	return c.Generate(ctx, system, prompt)
}
