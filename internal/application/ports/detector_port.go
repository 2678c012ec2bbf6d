package ports

import "context"

// Detection rótulo e confiança devolvidos pelo classificador.
type Detection struct {
	Label      string
	Confidence float64 // [0, 1]
}

// ItemDetector define o porto de saída para o classificador de imagens.
// Qualquer adaptador (serviço de inferência HTTP, rótulo fixo, mock) deve
// implementar esta interface. A aplicação só conhece este contrato; o backend
// concreto é escolhido na configuração de startup, totalmente desacoplado do
// ledger de movimentações.
type ItemDetector interface {
	// Detect classifica a imagem e devolve o rótulo mais provável.
	// Devolve nil (sem erro) quando a melhor confiança fica abaixo do limiar
	// configurado — "nenhuma detecção" não é uma falha.
	// O contexto deve carregar timeout para evitar bloqueio em chamadas externas.
	Detect(ctx context.Context, image []byte) (*Detection, error)
}
