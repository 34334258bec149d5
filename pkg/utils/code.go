package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateCode genera un código corto legible para tratamientos y recibos
func GenerateCode(length int) (string, error) {
	return gonanoid.Generate(characters, length)
}
