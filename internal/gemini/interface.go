package gemini

//go:generate mockgen -source=interface.go -destination=../../mocks/text_generator.go -package=mocks

// TextGenerator is the prompt-in, text-out capability the notes generator
// depends on. *Client implements it against the Gemini API.
type TextGenerator interface {
	Generate(prompt string) (string, error)
}
