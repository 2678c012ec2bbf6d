// Package textutil normaliza nomes de itens para busca e para casar rótulos do
// classificador com o catálogo ("Máscara N95" == "mascara n95").
package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTransformer decompõe em NFD, remove as marcas diacríticas e recompõe em NFC.
var foldTransformer = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// Fold devolve s em caixa baixa, sem acentos e com espaços das pontas removidos.
// Em caso de erro de transformação (sequência UTF-8 inválida), devolve a
// entrada apenas com lower/trim aplicados.
func Fold(s string) string {
	out, _, err := transform.String(foldTransformer, s)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(s))
	}
	return strings.ToLower(strings.TrimSpace(out))
}

// EqualFold compara dois nomes ignorando caixa e acentos.
func EqualFold(a, b string) bool {
	return Fold(a) == Fold(b)
}
