package utils

import (
	"fmt"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 6
)

// GenerateID gera um identificador curto alfanumérico
func GenerateID() (string, error) {
	return gonanoid.Generate(idAlphabet, idLength)
}

// UniqueName devolve "<prefix>_<id>". Se o gerador falhar, usa o horário em nanossegundos.
func UniqueName(prefix string) string {
	id, err := GenerateID()
	if err != nil {
		id = fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return fmt.Sprintf("%s_%s", prefix, id)
}
