package usecase

// TemplateGenerator wraps the third-party generative model used for the AI
// template feature: a prompt in, document content (markdown) out.
type TemplateGenerator interface {
	Generate(prompt string) (string, error)
}
