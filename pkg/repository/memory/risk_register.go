package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"

	"github.com/complypilot/complypilot/pkg/domain/interfaces"
	"github.com/complypilot/complypilot/pkg/domain/model"
	"github.com/complypilot/complypilot/pkg/domain/types"
)

type riskRegisterRepository struct {
	mu        sync.RWMutex
	registers map[types.UserID]*model.RiskRegister
}

var _ interfaces.RiskRegisterRepository = &riskRegisterRepository{}

func newRiskRegisterRepository() *riskRegisterRepository {
	return &riskRegisterRepository{
		registers: make(map[types.UserID]*model.RiskRegister),
	}
}

func copyRiskRegister(reg *model.RiskRegister) *model.RiskRegister {
	copied := *reg

	if reg.Risks != nil {
		copied.Risks = make([]model.Risk, len(reg.Risks))
		copy(copied.Risks, reg.Risks)
		for i := range copied.Risks {
			if copied.Risks[i].DueDate != nil {
				due := *copied.Risks[i].DueDate
				copied.Risks[i].DueDate = &due
			}
		}
	}

	return &copied
}

// Put stores the register, replacing any register the user already has.
func (r *riskRegisterRepository) Put(ctx context.Context, register *model.RiskRegister) error {
	if err := register.ID.Validate(); err != nil {
		return goerr.Wrap(err, "invalid register ID")
	}
	if err := register.UserID.Validate(); err != nil {
		return goerr.Wrap(err, "register has no owner")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.registers[register.UserID] = copyRiskRegister(register)
	return nil
}

func (r *riskRegisterRepository) GetByUser(ctx context.Context, userID types.UserID) (*model.RiskRegister, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	register, exists := r.registers[userID]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "risk register not found", goerr.V("user_id", userID))
	}

	return copyRiskRegister(register), nil
}
