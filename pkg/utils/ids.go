package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

const (
	runIDLength    = 20
	changeIDLength = 12
)

func GenerateRunID() (string, error) {
	return gonanoid.Generate(characters, runIDLength)
}

func GenerateChangeID() (string, error) {
	return gonanoid.Generate(characters, changeIDLength)
}
