package domain

// LabelAttributes são os atributos extraídos dos rótulos de uma entidade
type LabelAttributes map[string]string

// MergeAttributes junta as camadas em ordem; em caso de chave repetida a camada
// posterior prevalece.
func MergeAttributes(layers ...LabelAttributes) LabelAttributes {
	merged := make(LabelAttributes)
	for _, layer := range layers {
		for k, v := range layer {
			merged[k] = v
		}
	}
	return merged
}
