package vision

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/stockeye/estoque-api/internal/application/ports"
)

var _ ports.ItemDetector = (*HTTPDetector)(nil)

// HTTPDetector delega a classificação de imagem a um serviço de inferência
// externo. O serviço recebe a imagem crua e responde o rótulo do item com a
// confiança do modelo.
type HTTPDetector struct {
	url       string
	threshold float64
	client    *http.Client
}

// NewHTTPDetector constrói o backend HTTP. Detecções abaixo do threshold são
// descartadas (retornam nil sem erro).
func NewHTTPDetector(url string, threshold float64) *HTTPDetector {
	return &HTTPDetector{
		url:       url,
		threshold: threshold,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type inferenceResponse struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// Detect envia a imagem ao serviço de inferência e interpreta a resposta.
// Nenhum objeto reconhecido ou confiança abaixo do corte não é erro: o
// chamador recebe nil e decide o que fazer.
func (d *HTTPDetector) Detect(ctx context.Context, image []byte) (*ports.Detection, error) {
	if len(image) == 0 {
		return nil, fmt.Errorf("imagem vazia")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.url, bytes.NewReader(image))
	if err != nil {
		return nil, fmt.Errorf("erro criando request de inferência: %w", err)
	}
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro chamando serviço de inferência: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro lendo resposta de inferência: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("serviço de inferência retornou status %d: %s", resp.StatusCode, string(body))
	}

	var out inferenceResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("resposta de inferência inválida: %w", err)
	}

	if out.Label == "" || out.Confidence < d.threshold {
		return nil, nil
	}
	return &ports.Detection{Label: out.Label, Confidence: out.Confidence}, nil
}
