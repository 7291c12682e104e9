// Package openai implements the ai.Embedder interface on top of any
// OpenAI-compatible embedding endpoint (Ollama, LocalAI, vLLM, OpenAI).
package openai
