package vision

import (
	"context"

	"github.com/stockeye/estoque-api/internal/application/ports"
)

var _ ports.ItemDetector = (*StaticDetector)(nil)

// StaticDetector responde sempre o mesmo rótulo com confiança total. Serve
// para desenvolvimento local e demonstrações sem o serviço de inferência.
type StaticDetector struct {
	label string
}

func NewStaticDetector(label string) *StaticDetector {
	return &StaticDetector{label: label}
}

func (d *StaticDetector) Detect(_ context.Context, image []byte) (*ports.Detection, error) {
	if len(image) == 0 || d.label == "" {
		return nil, nil
	}
	return &ports.Detection{Label: d.label, Confidence: 1.0}, nil
}
