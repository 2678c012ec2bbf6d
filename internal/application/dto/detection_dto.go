package dto

// DetectionResponse resultado da classificação de imagem.
// Detected=false significa "nenhuma detecção": confiança abaixo do limiar.
// Item vem preenchido quando o rótulo casa com um item do catálogo.
type DetectionResponse struct {
	Detected   bool          `json:"detected"`
	Label      string        `json:"label,omitempty"`
	Confidence float64       `json:"confidence,omitempty"`
	Item       *ItemResponse `json:"item,omitempty"`
}
