package usecase

import (
	"context"
	"strings"

	"contractor_pipeline/internal/domain/apperr"
	"contractor_pipeline/internal/domain/entities"
	"contractor_pipeline/internal/domain/taxes"
	"contractor_pipeline/internal/usecase/interfaces"
)

// CompanyInput carries the editable fields of a company. TaxLines follows the
// same nil/empty convention as LeadInput.
type CompanyInput struct {
	Name       string
	Email      string
	Phone      string
	Address    string
	City       string
	State      string
	PostalCode string
	TaxID      string
	TaxLines   []taxes.Input
}

type ICompanyUseCase interface {
	CreateCompany(ctx context.Context, tenant entities.Tenant, in CompanyInput) (entities.Company, error)
	GetCompany(ctx context.Context, tenant entities.Tenant, id string) (entities.Company, error)
	UpdateCompany(ctx context.Context, tenant entities.Tenant, id string, in CompanyInput) (entities.Company, error)
	DeleteCompany(ctx context.Context, tenant entities.Tenant, id string) error
}

type CompanyUseCase struct {
	pipeline
}

var _ ICompanyUseCase = (*CompanyUseCase)(nil)

func NewCompanyUseCase(uow interfaces.IUnitOfWork, opts ...Option) *CompanyUseCase {
	return &CompanyUseCase{pipeline: newPipeline(uow, nil, opts...)}
}

func (u *CompanyUseCase) CreateCompany(ctx context.Context, tenant entities.Tenant, in CompanyInput) (entities.Company, error) {
	now := u.now()
	c := &entities.Company{ID: u.newID(), CreatedAtUtc: now, UpdatedAtUtc: now}
	if err := applyCompanyInput(c, in); err != nil {
		return entities.Company{}, err
	}
	lines, err := taxes.Build(taxes.ForCompany(c.ID), in.TaxLines, u.newID, now)
	if err != nil {
		return entities.Company{}, err
	}
	c.TaxLines = lines

	_, err = u.run(ctx, tenant, "create-company", func(ctx context.Context, tx interfaces.ITx, _ *changes) error {
		return tx.Companies().Save(ctx, c)
	})
	if err != nil {
		return entities.Company{}, err
	}
	return *c, nil
}

func (u *CompanyUseCase) GetCompany(ctx context.Context, tenant entities.Tenant, id string) (entities.Company, error) {
	id, err := requireID(entities.EntityTypeCompany, id)
	if err != nil {
		return entities.Company{}, err
	}
	var out *entities.Company
	_, err = u.run(ctx, tenant, "get-company", func(ctx context.Context, tx interfaces.ITx, _ *changes) error {
		out, err = loadCompany(ctx, tx, id)
		return err
	})
	if err != nil {
		return entities.Company{}, err
	}
	return *out, nil
}

func (u *CompanyUseCase) UpdateCompany(ctx context.Context, tenant entities.Tenant, id string, in CompanyInput) (entities.Company, error) {
	id, err := requireID(entities.EntityTypeCompany, id)
	if err != nil {
		return entities.Company{}, err
	}
	now := u.now()
	var out *entities.Company
	_, err = u.run(ctx, tenant, "update-company", func(ctx context.Context, tx interfaces.ITx, _ *changes) error {
		c, err := loadCompany(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := applyCompanyInput(c, in); err != nil {
			return err
		}
		if in.TaxLines != nil {
			lines, err := taxes.Build(taxes.ForCompany(c.ID), in.TaxLines, u.newID, now)
			if err != nil {
				return err
			}
			c.TaxLines = lines
		}
		c.UpdatedAtUtc = now
		out = c
		return tx.Companies().Save(ctx, c)
	})
	if err != nil {
		return entities.Company{}, err
	}
	return *out, nil
}

func (u *CompanyUseCase) DeleteCompany(ctx context.Context, tenant entities.Tenant, id string) error {
	id, err := requireID(entities.EntityTypeCompany, id)
	if err != nil {
		return err
	}
	now := u.now()
	_, err = u.run(ctx, tenant, "delete-company", func(ctx context.Context, tx interfaces.ITx, _ *changes) error {
		c, err := loadCompany(ctx, tx, id)
		if err != nil {
			return err
		}
		c.IsDeleted = true
		c.DeletedAtUtc = stampUTC(now)
		c.UpdatedAtUtc = now
		return tx.Companies().Save(ctx, c)
	})
	return err
}

func applyCompanyInput(c *entities.Company, in CompanyInput) error {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return apperr.Validation("name_required", "company name is required")
	}
	c.Name = name
	c.Email = strings.TrimSpace(in.Email)
	c.Phone = strings.TrimSpace(in.Phone)
	c.Address = strings.TrimSpace(in.Address)
	c.City = strings.TrimSpace(in.City)
	c.State = strings.TrimSpace(in.State)
	c.PostalCode = strings.TrimSpace(in.PostalCode)
	c.TaxID = strings.TrimSpace(in.TaxID)
	return nil
}

func loadCompany(ctx context.Context, tx interfaces.ITx, id string) (*entities.Company, error) {
	c, err := tx.Companies().Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.IsDeleted {
		return nil, apperr.NotFound(string(entities.EntityTypeCompany), id)
	}
	return c, nil
}
