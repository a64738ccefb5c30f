package memory

import (
	"github.com/complypilot/complypilot/pkg/domain/interfaces"
)

// Repository is an alias for Memory to match the pattern
type Repository = Memory

type Memory struct {
	users         *userRepository
	healthChecks  *healthCheckRepository
	documents     *documentRepository
	riskRegisters *riskRegisterRepository
	subscriptions *subscriptionRepository
	tokens        *tokenStore
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		users:         newUserRepository(),
		healthChecks:  newHealthCheckRepository(),
		documents:     newDocumentRepository(),
		riskRegisters: newRiskRegisterRepository(),
		subscriptions: newSubscriptionRepository(),
		tokens:        newTokenStore(),
	}
}

func (m *Memory) User() interfaces.UserRepository {
	return m.users
}

func (m *Memory) HealthCheck() interfaces.HealthCheckRepository {
	return m.healthChecks
}

func (m *Memory) Document() interfaces.DocumentRepository {
	return m.documents
}

func (m *Memory) RiskRegister() interfaces.RiskRegisterRepository {
	return m.riskRegisters
}

func (m *Memory) Subscription() interfaces.SubscriptionRepository {
	return m.subscriptions
}

func (m *Memory) Close() error {
	return nil
}
