// Package generation provides the text-generation core: the provider
// interface that abstracts hosted completion services, a failure classifier,
// a sequential candidate dispatcher, and the response normalizer that
// recovers well-formed suggestions from possibly malformed model output.
// It abstracts the details of the LLM API integration (OpenAI or Gemini),
// allowing the application to generate travel content without coupling to a
// specific external service.
package generation
