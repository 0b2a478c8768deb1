package usecase

import (
	"context"
	"strings"

	"contractor_pipeline/internal/domain/apperr"
	"contractor_pipeline/internal/domain/entities"
	"contractor_pipeline/internal/domain/ledger"
	"contractor_pipeline/internal/domain/statemachine"
	"contractor_pipeline/internal/domain/taxes"
	"contractor_pipeline/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// LeadInput carries the editable fields of a lead. On update a nil TaxLines
// keeps the current tax lines; an empty non-nil slice clears them.
type LeadInput struct {
	Name           string
	Email          string
	Phone          string
	Address        string
	Source         string
	Notes          string
	CompanyID      string
	EstimatedValue *decimal.Decimal
	TaxLines       []taxes.Input
}

type ILeadUseCase interface {
	CreateLead(ctx context.Context, tenant entities.Tenant, in LeadInput) (entities.Lead, error)
	GetLead(ctx context.Context, tenant entities.Tenant, id string) (entities.Lead, error)
	UpdateLead(ctx context.Context, tenant entities.Tenant, id string, in LeadInput) (entities.Lead, error)
	SetLeadStatus(ctx context.Context, tenant entities.Tenant, id string, target string) (entities.Lead, []entities.StateTransitionEvent, error)
	DeleteLead(ctx context.Context, tenant entities.Tenant, id string) error
}

type LeadUseCase struct {
	pipeline
}

var _ ILeadUseCase = (*LeadUseCase)(nil)

func NewLeadUseCase(uow interfaces.IUnitOfWork, sink interfaces.IEventSink, opts ...Option) *LeadUseCase {
	return &LeadUseCase{pipeline: newPipeline(uow, sink, opts...)}
}

func (u *LeadUseCase) CreateLead(ctx context.Context, tenant entities.Tenant, in LeadInput) (entities.Lead, error) {
	now := u.now()
	lead := &entities.Lead{
		ID:           u.newID(),
		Status:       entities.LeadStatusNew,
		CreatedAtUtc: now,
		UpdatedAtUtc: now,
	}
	if err := applyLeadInput(lead, in); err != nil {
		return entities.Lead{}, err
	}
	lines, err := taxes.Build(taxes.ForLead(lead.ID), in.TaxLines, u.newID, now)
	if err != nil {
		return entities.Lead{}, err
	}
	lead.TaxLines = lines

	_, err = u.run(ctx, tenant, "create-lead", func(ctx context.Context, tx interfaces.ITx, _ *changes) error {
		if lead.CompanyID != "" {
			if _, err := loadCompany(ctx, tx, lead.CompanyID); err != nil {
				return err
			}
		}
		return tx.Leads().Save(ctx, lead)
	})
	if err != nil {
		return entities.Lead{}, err
	}
	return *lead, nil
}

func (u *LeadUseCase) GetLead(ctx context.Context, tenant entities.Tenant, id string) (entities.Lead, error) {
	id, err := requireID(entities.EntityTypeLead, id)
	if err != nil {
		return entities.Lead{}, err
	}
	var out *entities.Lead
	_, err = u.run(ctx, tenant, "get-lead", func(ctx context.Context, tx interfaces.ITx, _ *changes) error {
		out, err = loadLead(ctx, tx, id)
		return err
	})
	if err != nil {
		return entities.Lead{}, err
	}
	return *out, nil
}

func (u *LeadUseCase) UpdateLead(ctx context.Context, tenant entities.Tenant, id string, in LeadInput) (entities.Lead, error) {
	id, err := requireID(entities.EntityTypeLead, id)
	if err != nil {
		return entities.Lead{}, err
	}
	now := u.now()
	var out *entities.Lead
	_, err = u.run(ctx, tenant, "update-lead", func(ctx context.Context, tx interfaces.ITx, _ *changes) error {
		lead, err := loadLead(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := applyLeadInput(lead, in); err != nil {
			return err
		}
		if lead.CompanyID != "" {
			if _, err := loadCompany(ctx, tx, lead.CompanyID); err != nil {
				return err
			}
		}
		if in.TaxLines != nil {
			lines, err := taxes.Build(taxes.ForLead(lead.ID), in.TaxLines, u.newID, now)
			if err != nil {
				return err
			}
			lead.TaxLines = lines
		}
		lead.UpdatedAtUtc = now
		out = lead
		return tx.Leads().Save(ctx, lead)
	})
	if err != nil {
		return entities.Lead{}, err
	}
	return *out, nil
}

// SetLeadStatus drives the lead machine to target (new, lost or converted).
func (u *LeadUseCase) SetLeadStatus(ctx context.Context, tenant entities.Tenant, id string, target string) (entities.Lead, []entities.StateTransitionEvent, error) {
	id, err := requireID(entities.EntityTypeLead, id)
	if err != nil {
		return entities.Lead{}, nil, err
	}
	now := u.now()
	var out *entities.Lead
	events, err := u.run(ctx, tenant, "set-lead-status", func(ctx context.Context, tx interfaces.ITx, ch *changes) error {
		lead, err := loadLead(ctx, tx, id)
		if err != nil {
			return err
		}
		change, err := statemachine.Apply(statemachine.LeadSubject{Lead: lead}, target, now)
		if err != nil {
			return err
		}
		ch.add(change)
		out = lead
		return tx.Leads().Save(ctx, lead)
	})
	if err != nil {
		return entities.Lead{}, nil, err
	}
	return *out, events, nil
}

// DeleteLead soft-deletes the lead; it reads as not found afterwards.
func (u *LeadUseCase) DeleteLead(ctx context.Context, tenant entities.Tenant, id string) error {
	id, err := requireID(entities.EntityTypeLead, id)
	if err != nil {
		return err
	}
	now := u.now()
	_, err = u.run(ctx, tenant, "delete-lead", func(ctx context.Context, tx interfaces.ITx, _ *changes) error {
		lead, err := loadLead(ctx, tx, id)
		if err != nil {
			return err
		}
		lead.IsDeleted = true
		lead.DeletedAtUtc = stampUTC(now)
		lead.UpdatedAtUtc = now
		return tx.Leads().Save(ctx, lead)
	})
	return err
}

func applyLeadInput(lead *entities.Lead, in LeadInput) error {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return apperr.Validation("name_required", "lead name is required")
	}
	if in.EstimatedValue != nil && in.EstimatedValue.IsNegative() {
		return apperr.Validation("estimated_value_non_negative", "estimated value must not be negative")
	}
	lead.Name = name
	lead.Email = strings.TrimSpace(in.Email)
	lead.Phone = strings.TrimSpace(in.Phone)
	lead.Address = strings.TrimSpace(in.Address)
	lead.Source = strings.TrimSpace(in.Source)
	lead.Notes = strings.TrimSpace(in.Notes)
	lead.CompanyID = strings.TrimSpace(in.CompanyID)
	lead.EstimatedValue = nil
	if in.EstimatedValue != nil {
		v := ledger.RoundMoney(*in.EstimatedValue)
		lead.EstimatedValue = &v
	}
	return nil
}

// loadLead returns a live lead; soft-deleted leads are not found.
func loadLead(ctx context.Context, tx interfaces.ITx, id string) (*entities.Lead, error) {
	lead, err := tx.Leads().Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if lead.IsDeleted {
		return nil, apperr.NotFound(string(entities.EntityTypeLead), id)
	}
	return lead, nil
}
