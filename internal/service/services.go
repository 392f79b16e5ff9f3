package service

import (
	"go.uber.org/zap"

	"github.com/rowan/character-forge/internal/generation"
	"github.com/rowan/character-forge/internal/repository"
)

type Services struct {
	Character *CharacterService
}

func NewServices(repos *repository.Repositories, generator *generation.Generator, logger *zap.Logger) *Services {
	return &Services{
		Character: NewCharacterService(repos.Character, generator, logger),
	}
}
