package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/complypilot/complypilot/pkg/domain/interfaces"
	"github.com/complypilot/complypilot/pkg/domain/model"
	"github.com/complypilot/complypilot/pkg/domain/types"
)

const riskRegistersCollection = "risk_registers"

// riskRegisterRepository keys registers by user ID: each user has at most
// one register and Put replaces it wholesale.
type riskRegisterRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

var _ interfaces.RiskRegisterRepository = &riskRegisterRepository{}

func newRiskRegisterRepository(client *firestore.Client) *riskRegisterRepository {
	return &riskRegisterRepository{
		client: client,
	}
}

// riskRegisterDoc is the Firestore persistence model
type riskRegisterDoc struct {
	ID           string    `firestore:"id"`
	UserID       string    `firestore:"user_id"`
	BusinessType string    `firestore:"business_type"`
	Industry     string    `firestore:"industry"`
	Risks        []riskDoc `firestore:"risks"`
	TotalRisks   int       `firestore:"total_risks"`
	CreatedAt    time.Time `firestore:"created_at"`
	UpdatedAt    time.Time `firestore:"updated_at"`
}

type riskDoc struct {
	ID          string     `firestore:"id"`
	Title       string     `firestore:"title"`
	Description string     `firestore:"description"`
	Likelihood  string     `firestore:"likelihood"`
	Impact      string     `firestore:"impact"`
	Category    string     `firestore:"category"`
	Mitigation  string     `firestore:"mitigation"`
	Status      string     `firestore:"status"`
	Owner       string     `firestore:"owner"`
	DueDate     *time.Time `firestore:"due_date,omitempty"`
	Notes       string     `firestore:"notes"`
}

func (r *riskRegisterRepository) collection() *firestore.CollectionRef {
	if r.collectionPrefix != "" {
		return r.client.Collection(r.collectionPrefix + "_" + riskRegistersCollection)
	}
	return r.client.Collection(riskRegistersCollection)
}

func (r *riskRegisterRepository) toDoc(reg *model.RiskRegister) *riskRegisterDoc {
	doc := &riskRegisterDoc{
		ID:           string(reg.ID),
		UserID:       string(reg.UserID),
		BusinessType: string(reg.BusinessType),
		Industry:     reg.Industry,
		TotalRisks:   reg.TotalRisks,
		CreatedAt:    reg.CreatedAt,
		UpdatedAt:    reg.UpdatedAt,
	}

	doc.Risks = make([]riskDoc, 0, len(reg.Risks))
	for _, risk := range reg.Risks {
		doc.Risks = append(doc.Risks, riskDoc{
			ID:          string(risk.ID),
			Title:       risk.Title,
			Description: risk.Description,
			Likelihood:  string(risk.Likelihood),
			Impact:      string(risk.Impact),
			Category:    risk.Category,
			Mitigation:  risk.Mitigation,
			Status:      string(risk.Status),
			Owner:       risk.Owner,
			DueDate:     risk.DueDate,
			Notes:       risk.Notes,
		})
	}

	return doc
}

func (r *riskRegisterRepository) fromDoc(d *riskRegisterDoc) *model.RiskRegister {
	reg := &model.RiskRegister{
		ID:           types.RegisterID(d.ID),
		UserID:       types.UserID(d.UserID),
		BusinessType: types.BusinessType(d.BusinessType),
		Industry:     d.Industry,
		TotalRisks:   d.TotalRisks,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}

	reg.Risks = make([]model.Risk, 0, len(d.Risks))
	for _, risk := range d.Risks {
		reg.Risks = append(reg.Risks, model.Risk{
			ID:          types.RiskID(risk.ID),
			Title:       risk.Title,
			Description: risk.Description,
			Likelihood:  types.Likelihood(risk.Likelihood),
			Impact:      types.Impact(risk.Impact),
			Category:    risk.Category,
			Mitigation:  risk.Mitigation,
			Status:      types.RiskStatus(risk.Status),
			Owner:       risk.Owner,
			DueDate:     risk.DueDate,
			Notes:       risk.Notes,
		})
	}

	return reg
}

func (r *riskRegisterRepository) Put(ctx context.Context, register *model.RiskRegister) error {
	if err := register.ID.Validate(); err != nil {
		return goerr.Wrap(err, "invalid register ID")
	}
	if err := register.UserID.Validate(); err != nil {
		return goerr.Wrap(err, "register has no owner")
	}

	docRef := r.collection().Doc(string(register.UserID))
	if _, err := docRef.Set(ctx, r.toDoc(register)); err != nil {
		return goerr.Wrap(err, "failed to put risk register", goerr.V("user_id", register.UserID))
	}

	return nil
}

func (r *riskRegisterRepository) GetByUser(ctx context.Context, userID types.UserID) (*model.RiskRegister, error) {
	doc, err := r.collection().Doc(string(userID)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "risk register not found", goerr.V("user_id", userID))
		}
		return nil, goerr.Wrap(err, "failed to get risk register", goerr.V("user_id", userID))
	}

	var d riskRegisterDoc
	if err := doc.DataTo(&d); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal risk register", goerr.V("user_id", userID))
	}

	return r.fromDoc(&d), nil
}
