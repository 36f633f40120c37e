// Package labels extrai atributos chave/valor codificados em rótulos do Google Ads.
//
// Um rótulo carrega um atributo no formato "{chave=valor}". A API entrega os
// rótulos de uma entidade como um array JSON de strings
// (`["{canal=search}","{marca=x}"]`) ou, no formato legado, como uma lista
// entre aspas; os dois formatos são aceitos porque a extração só procura pelos
// pares entre chaves.
package labels

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var labelPattern = regexp.MustCompile(`\{([^={}]+)=([^={}]+)\}`)

// Parse retorna os atributos encontrados em raw. Chaves são normalizadas para
// "Title Case" (toda letra precedida por algo que não é letra fica maiúscula,
// então "ad_type" vira "Ad_Type") e valores têm espaços removidos nas pontas. Entrada vazia ou
// malformada resulta em um mapa vazio.
func Parse(raw string) map[string]string {
	attributes := make(map[string]string)

	for _, match := range labelPattern.FindAllStringSubmatch(raw, -1) {
		key := normalizeKey(match[1])
		if key == "" {
			continue
		}
		attributes[key] = strings.TrimSpace(match[2])
	}

	return attributes
}

// ParseAll aplica Parse a cada rótulo e junta o resultado; rótulos posteriores
// sobrescrevem os anteriores.
func ParseAll(labels []string) map[string]string {
	attributes := make(map[string]string)
	for _, label := range labels {
		for k, v := range Parse(label) {
			attributes[k] = v
		}
	}
	return attributes
}

func normalizeKey(key string) string {
	// cases.Caser não é seguro para uso concorrente
	lower := cases.Lower(language.Und).String(strings.TrimSpace(key))

	var b strings.Builder
	b.Grow(len(lower))

	prevLetter := false
	for _, r := range lower {
		isLetter := unicode.IsLetter(r)
		if isLetter && !prevLetter {
			r = unicode.ToTitle(r)
		}
		b.WriteRune(r)
		prevLetter = isLetter
	}

	return b.String()
}
