package narration

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"funilaria_autocolor/internal/domain/entities"
	"funilaria_autocolor/internal/usecase/interfaces"
)

var ErrMissingGeminiAPIKey = errors.New("missing GEMINI_API_KEY")

const (
	defaultModel   = "gemini-2.5-flash"
	defaultAPIBase = "https://generativelanguage.googleapis.com"
	callTimeout    = 30 * time.Second

	fallbackAnalysisEmpty = "Não foi possível analisar a imagem."
	fallbackAnalysisError = "Erro ao conectar com a IA."

	mockDamageDescription = "Dano superficial na pintura, sem deformação aparente do painel."
)

// GeminiNarrationGateway wraps the Gemini generateContent REST endpoint.
//
// Failures never escape to callers: both operations fold errors into fixed
// fallback text, which the lifecycle service stores or forwards verbatim.
// There is no retry, cache or rate limiting here.

type GeminiNarrationGateway struct {
	httpClient *http.Client
	apiKey     string
	model      string
	apiBase    string
	mockMode   bool
}

var _ interfaces.INarrationGateway = (*GeminiNarrationGateway)(nil)

// NewGeminiNarrationGateway builds the gateway from environment variables:
//   - GEMINI_API_KEY (required unless mock mode)
//   - GEMINI_MODEL (default: gemini-2.5-flash)
//   - GEMINI_API_BASE (optional; tests point it at a local server)
//   - NARRATION_MOCK (1/true/yes/on/mock enables deterministic canned output)
func NewGeminiNarrationGateway() (*GeminiNarrationGateway, error) {
	if isNarrationMockEnabled() {
		log.Printf("[narration][gateway] mock mode enabled")
		return &GeminiNarrationGateway{mockMode: true}, nil
	}

	apiKey := strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
	if apiKey == "" {
		log.Printf("[narration][gateway] missing GEMINI_API_KEY")
		return nil, ErrMissingGeminiAPIKey
	}

	return &GeminiNarrationGateway{
		httpClient: &http.Client{Timeout: callTimeout},
		apiKey:     apiKey,
		model:      getenvDefault("GEMINI_MODEL", defaultModel),
		apiBase:    getenvDefault("GEMINI_API_BASE", defaultAPIBase),
	}, nil
}

func (g *GeminiNarrationGateway) DescribeDamage(ctx context.Context, imageRef string) string {
	if g.mockMode {
		return mockDamageDescription
	}

	// Strip the data URI header if present (data:image/jpeg;base64,...).
	data := imageRef
	if idx := strings.Index(imageRef, ","); idx >= 0 {
		data = imageRef[idx+1:]
	}

	req := generateContentRequest{
		Contents: []content{{
			Parts: []part{
				{InlineData: &inlineData{MimeType: "image/jpeg", Data: data}},
				{Text: "Você é um especialista em funilaria e pintura automotiva. Analise esta imagem. Descreva brevemente o dano visível (se houver) ou o estado da peça. Seja técnico mas conciso (máx 2 frases)."},
			},
		}},
	}

	text, err := g.generate(ctx, req)
	if err != nil {
		log.Printf("[narration][gateway] image analysis failed err=%v", err)
		return fallbackAnalysisError
	}
	if text == "" {
		return fallbackAnalysisEmpty
	}
	return text
}

func (g *GeminiNarrationGateway) ComposeStatusMessage(ctx context.Context, job entities.Job, latestPhoto *entities.Photo) string {
	if g.mockMode {
		return statusChangeFallback(job)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Aja como um assistente profissional de uma oficina de funilaria chamada %q.\n", "AutoColor")
	fmt.Fprintf(&b, "Escreva uma mensagem curta e educada para WhatsApp para o cliente %s.\n", job.Client.Name)
	fmt.Fprintf(&b, "O carro é um %s (%s).\n", job.Vehicle.Model, job.Vehicle.Color)
	fmt.Fprintf(&b, "O status atual do serviço é: %s.\n", job.Status)
	if latestPhoto != nil {
		fmt.Fprintf(&b, "Acabamos de adicionar uma nova foto da etapa: %s.\n", latestPhoto.Stage)
	}
	b.WriteString("Convide o cliente para ver o progresso no link (use apenas [LINK] como placeholder).\n")
	b.WriteString("Não use hashtags. Use emojis moderados.\n")

	req := generateContentRequest{
		Contents: []content{{Parts: []part{{Text: b.String()}}}},
	}

	text, err := g.generate(ctx, req)
	if err != nil {
		log.Printf("[narration][gateway] status message failed job_id=%s err=%v", job.ID, err)
		return statusChangeFallback(job)
	}
	if text == "" {
		return fmt.Sprintf("Olá %s, atualização sobre seu %s. Status: %s. Veja a foto nova no sistema!",
			job.Client.Name, job.Vehicle.Model, job.Status)
	}
	return text
}

func statusChangeFallback(job entities.Job) string {
	return fmt.Sprintf("Olá %s, o status do seu %s mudou para %s.", job.Client.Name, job.Vehicle.Model, job.Status)
}

type generateContentRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (g *GeminiNarrationGateway) generate(ctx context.Context, payload generateContentRequest) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", strings.TrimRight(g.apiBase, "/"), g.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var parsed generateContentResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", err
	}

	var text strings.Builder
	for _, c := range parsed.Candidates {
		for _, p := range c.Content.Parts {
			text.WriteString(p.Text)
		}
		break
	}
	return strings.TrimSpace(text.String()), nil
}

func isNarrationMockEnabled() bool {
	for _, key := range []string{"NARRATION_MOCK", "GEMINI_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
