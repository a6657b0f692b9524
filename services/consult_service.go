package services

import (
	"context"
	"fmt"
	"log"

	"google.golang.org/genai"
)

// ConsultFallback is what the visitor sees whenever the scent specialist is
// unreachable, errors, or answers with nothing. Consultation failure is never
// surfaced as an error and never touches commerce state.
const ConsultFallback = "Our scent specialists are currently unavailable, but our collection awaits your discovery."

const consultModel = "gemini-2.5-flash"

// ConsultService wraps the generative-text collaborator behind a single
// text-in, text-out call.
type ConsultService struct {
	client *genai.Client
}

var consultService *ConsultService

// InitConsultService builds the Gemini client. A missing API key leaves the
// service in permanent-fallback mode rather than failing boot.
func InitConsultService(apiKey string) {
	if apiKey == "" {
		log.Println("⚠️  GEMINI_API_KEY not set, scent consultation will use the fallback message")
		consultService = &ConsultService{}
		return
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		log.Printf("⚠️  failed to initialize Gemini client, using fallback: %v", err)
		consultService = &ConsultService{}
		return
	}
	consultService = &ConsultService{client: client}
	log.Println("✅ Scent consultation service initialized")
}

func GetConsultService() *ConsultService {
	if consultService == nil {
		consultService = &ConsultService{}
	}
	return consultService
}

// Recommend asks the sommelier for a scent profile. It always returns
// something presentable; errors degrade to the fallback sentence.
func (s *ConsultService) Recommend(ctx context.Context, userInput string) string {
	if s.client == nil {
		return ConsultFallback
	}

	prompt := fmt.Sprintf(`You are a world-class sommelier of fragrances for the luxury brand MONTCL△IRÉ.
The user wants advice: %q.
Recommend a type of scent profile (e.g., Woody, Floral, Oriental) and describe it with luxury prose.
Keep it elegant and concise.`, userInput)

	resp, err := s.client.Models.GenerateContent(ctx, consultModel, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0.8),
	})
	if err != nil {
		log.Printf("[consult] generation failed: %v", err)
		return ConsultFallback
	}

	text := resp.Text()
	if text == "" {
		return ConsultFallback
	}
	return text
}
