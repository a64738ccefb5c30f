package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/complypilot/complypilot/pkg/catalog"
	"github.com/complypilot/complypilot/pkg/domain/interfaces"
	"github.com/complypilot/complypilot/pkg/domain/model"
	"github.com/complypilot/complypilot/pkg/domain/types"
	"github.com/complypilot/complypilot/pkg/utils/errutil"
)

type RiskRegisterUseCase struct {
	repo    interfaces.Repository
	catalog *catalog.Catalog
}

func NewRiskRegisterUseCase(repo interfaces.Repository, cat *catalog.Catalog) *RiskRegisterUseCase {
	return &RiskRegisterUseCase{
		repo:    repo,
		catalog: cat,
	}
}

// Generate instantiates the template set for the business type and replaces
// the user's register with it. Statuses and notes tracked on a previous
// register are discarded. An unknown business type fails validation and
// leaves any existing register untouched.
func (uc *RiskRegisterUseCase) Generate(ctx context.Context, userID types.UserID, businessType, industry string) (*model.RiskRegister, error) {
	bt, err := types.ParseBusinessType(businessType)
	if err != nil {
		return nil, goerr.Wrap(err, "unknown business type", goerr.V("business_type", businessType))
	}

	templates := uc.catalog.TemplatesFor(bt)
	if len(templates) == 0 {
		return nil, goerr.New("no risk templates for business type",
			goerr.T(types.ErrTagValidation),
			goerr.V("business_type", bt))
	}

	register := model.NewRiskRegister(userID, bt, industry, templates)
	if err := uc.repo.RiskRegister().Put(ctx, register); err != nil {
		return nil, goerr.Wrap(err, "failed to store risk register", goerr.V("user_id", userID))
	}

	// Remember the business type on the profile for the next visit. The
	// register is already saved, so a profile failure only gets logged.
	if err := uc.updateProfile(ctx, userID, bt, industry); err != nil {
		_ = errutil.Handle(ctx, err, "failed to update profile after register generation")
	}

	return register, nil
}

func (uc *RiskRegisterUseCase) updateProfile(ctx context.Context, userID types.UserID, bt types.BusinessType, industry string) error {
	user, err := uc.repo.User().Get(ctx, userID)
	if err != nil {
		return goerr.Wrap(err, "failed to get user", goerr.V("user_id", userID))
	}

	user.BusinessType = bt
	user.Industry = industry
	user.UpdatedAt = time.Now().UTC()
	if err := uc.repo.User().Put(ctx, user); err != nil {
		return goerr.Wrap(err, "failed to update user", goerr.V("user_id", userID))
	}
	return nil
}

// Get returns the user's register, or nil when none has been generated yet
func (uc *RiskRegisterUseCase) Get(ctx context.Context, userID types.UserID) (*model.RiskRegister, error) {
	register, err := uc.repo.RiskRegister().GetByUser(ctx, userID)
	if err != nil {
		if goerr.HasTag(err, types.ErrTagNotFound) {
			return nil, nil
		}
		return nil, goerr.Wrap(err, "failed to get risk register", goerr.V("user_id", userID))
	}
	return register, nil
}

// UpdateRiskStatus changes the remediation status and notes of one risk.
// Empty notes leave the stored notes alone. Nothing else on the risk ever
// changes after generation.
func (uc *RiskRegisterUseCase) UpdateRiskStatus(ctx context.Context, userID types.UserID, riskID types.RiskID, status, notes string) (*model.Risk, error) {
	register, err := uc.repo.RiskRegister().GetByUser(ctx, userID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get risk register", goerr.V("user_id", userID))
	}

	idx := register.FindRisk(riskID)
	if idx < 0 {
		return nil, goerr.New("risk not found",
			goerr.T(types.ErrTagNotFound),
			goerr.V("risk_id", riskID))
	}

	parsed, err := types.ParseRiskStatus(status)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid risk status", goerr.V("risk_id", riskID), goerr.V("status", status))
	}

	register.Risks[idx].Status = parsed
	if notes != "" {
		register.Risks[idx].Notes = notes
	}
	register.UpdatedAt = time.Now().UTC()

	if err := uc.repo.RiskRegister().Put(ctx, register); err != nil {
		return nil, goerr.Wrap(err, "failed to store risk register", goerr.V("user_id", userID))
	}

	risk := register.Risks[idx]
	return &risk, nil
}
