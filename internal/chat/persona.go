// Package chat talks to the OpenAI chat completion API on behalf of the
// two coaching personas.
package chat

import "fmt"

// Persona selects the assistant's role and prompt template.
type Persona string

const (
	PersonaTrainer      Persona = "trainer"
	PersonaNutritionist Persona = "nutritionist"
)

func ParsePersona(s string) (Persona, error) {
	switch Persona(s) {
	case PersonaTrainer, PersonaNutritionist:
		return Persona(s), nil
	}
	return "", fmt.Errorf("unknown persona %q", s)
}
