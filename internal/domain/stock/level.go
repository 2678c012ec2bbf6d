package stock

import "github.com/stockeye/estoque-api/internal/domain/entity"

// Níveis de estoque derivados dos limiares do item (serviço de domínio).
const (
	LevelOK       = "ok"
	LevelLow      = "baixo"   // quantidade <= estoque mínimo
	LevelCritical = "critico" // quantidade <= estoque crítico
)

// Classify devolve o nível de estoque de um item. Como crítico <= mínimo,
// o nível crítico tem precedência sobre baixo.
func Classify(item *entity.Item) string {
	switch {
	case item.Quantity <= item.CriticalThreshold:
		return LevelCritical
	case item.Quantity <= item.MinThreshold:
		return LevelLow
	default:
		return LevelOK
	}
}

// IsCritical informa se a quantidade está no limiar crítico ou abaixo dele.
func IsCritical(quantity, criticalThreshold int) bool {
	return quantity <= criticalThreshold
}

// NextQuantity calcula a quantidade resultante de uma movimentação.
// A magnitude é sempre positiva; a direção vem de kind. Devolve ok=false
// quando a saída deixaria o estoque negativo (a operação deve ser rejeitada,
// nunca truncada em zero).
func NextQuantity(current, quantity int, kind string) (next int, ok bool) {
	if kind == entity.MovementKindEntrada {
		return current + quantity, true
	}
	next = current - quantity
	return next, next >= 0
}
