package services

import (
	"fmt"

	"fitplan-api/internal/repositories"

	"github.com/openai/openai-go/option"
	"github.com/sirupsen/logrus"
)

// ServiceContainer holds all service instances
type ServiceContainer struct {
	Generator          ContentGenerator
	UserProfileService UserProfileService
}

// ServiceConfig holds configuration for services
type ServiceConfig struct {
	Generator        *GeneratorConfig
	GeneratorOptions []option.RequestOption
	Observer         GenerationObserver
}

// NewServiceContainer creates a new service container with all services
func NewServiceContainer(repos repositories.RepositoryManager, config *ServiceConfig, logger *logrus.Logger) (*ServiceContainer, error) {
	if repos == nil {
		return nil, fmt.Errorf("repository manager cannot be nil")
	}

	if config == nil {
		config = &ServiceConfig{}
	}

	generator := NewOpenAIGenerator(config.Generator, config.Observer, logger, config.GeneratorOptions...)

	return &ServiceContainer{
		Generator:          generator,
		UserProfileService: NewUserProfileService(repos.Users(), generator, logger),
	}, nil
}
