package chat

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mkarvo/fitsoul/internal/profile"
)

const (
	trainerSystemPrompt = "You are an expert fitness trainer providing advice on workouts, exercises, " +
		"form, and fitness routines. Be supportive and encouraging while providing accurate, personalized " +
		"fitness guidance. Focus on safety and proper technique."
	nutritionistSystemPrompt = "You are an expert nutritionist providing advice on meal planning, " +
		"nutrition, healthy eating, and dietary choices. Provide evidence-based nutritional guidance while " +
		"being supportive and helpful. Tailor your advice to the person's goals."
	genericSystemPrompt = "You are a helpful assistant providing fitness and nutrition advice."
)

// systemPrompt returns the persona's role instruction.
func systemPrompt(persona Persona) string {
	switch persona {
	case PersonaTrainer:
		return trainerSystemPrompt
	case PersonaNutritionist:
		return nutritionistSystemPrompt
	default:
		return genericSystemPrompt
	}
}

const notProvided = "Not provided"

func orNotProvided(s string) string {
	if s == "" {
		return notProvided
	}
	return s
}

func intOrNotProvided(n int) string {
	if n == 0 {
		return notProvided
	}
	return strconv.Itoa(n)
}

func floatOrNotProvided(f float64) string {
	if f == 0 {
		return notProvided
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// profileBlock renders the user's stats for the prompt. The trainer also
// sees the experience level, the nutritionist does not.
func profileBlock(p *profile.Profile, withExperience bool) string {
	if p == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString("\nUser profile:\n")
	fmt.Fprintf(&b, "- Name: %s\n", orNotProvided(p.Name))
	fmt.Fprintf(&b, "- Age: %s\n", intOrNotProvided(p.Age))
	fmt.Fprintf(&b, "- Sex: %s\n", orNotProvided(string(p.Sex)))
	fmt.Fprintf(&b, "- Weight: %s kg\n", floatOrNotProvided(p.WeightKg))
	fmt.Fprintf(&b, "- Height: %s cm\n", floatOrNotProvided(p.HeightCm))
	fmt.Fprintf(&b, "- Goal: %s\n", orNotProvided(string(p.Goal)))
	if withExperience {
		fmt.Fprintf(&b, "- Experience Level: %s\n", orNotProvided(string(p.ExperienceLevel)))
	}
	return b.String()
}

// userPrompt embeds the persona introduction, the profile block and the
// user's raw message into the templated instruction.
func userPrompt(persona Persona, message string, p *profile.Profile) string {
	var intro, outro string
	switch persona {
	case PersonaNutritionist:
		intro = "You are an AI nutritionist in the Fitness Soul app. \nProvide personalized nutrition advice."
		outro = "Respond with helpful, friendly nutrition advice. Format your response using markdown " +
			"for better readability. Include specific meal recommendations, portion sizes, and " +
			"macronutrient information where appropriate."
	default:
		intro = "You are an AI fitness trainer in the Fitness Soul app. \nProvide personalized workout advice."
		outro = "Respond with helpful, friendly advice. Format your response using markdown for better " +
			"readability. Include specific exercises, sets, repetitions where appropriate."
	}
	return fmt.Sprintf("%s%s\n\nUser message: %s\n\n%s",
		intro, profileBlock(p, persona != PersonaNutritionist), message, outro)
}
