package repository

import (
	"errors"
	"fmt"

	"contractor_pipeline/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Items keep money and timestamps as strings, as the attribute types of the
// existing tables do; nested collections are JSON strings.

type leadItem struct {
	OrganizationID string `dynamodbav:"organization_id"`
	ID             string `dynamodbav:"id"`
	Name           string `dynamodbav:"name"`
	Email          string `dynamodbav:"email,omitempty"`
	Phone          string `dynamodbav:"phone,omitempty"`
	Address        string `dynamodbav:"address,omitempty"`
	Source         string `dynamodbav:"source,omitempty"`
	Notes          string `dynamodbav:"notes,omitempty"`
	CompanyID      string `dynamodbav:"company_id,omitempty"`
	EstimatedValue string `dynamodbav:"estimated_value,omitempty"`
	TaxLines       string `dynamodbav:"tax_lines,omitempty"`
	Status         string `dynamodbav:"status"`
	LostAt         string `dynamodbav:"lost_at,omitempty"`
	IsDeleted      bool   `dynamodbav:"is_deleted"`
	DeletedAt      string `dynamodbav:"deleted_at,omitempty"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
	Version        int64  `dynamodbav:"version"`
}

func toLeadItem(l *entities.Lead) (leadItem, error) {
	taxLines, err := encodeJSON(l.TaxLines)
	if err != nil {
		return leadItem{}, err
	}
	it := leadItem{
		OrganizationID: l.OrganizationID,
		ID:             l.ID,
		Name:           l.Name,
		Email:          l.Email,
		Phone:          l.Phone,
		Address:        l.Address,
		Source:         l.Source,
		Notes:          l.Notes,
		CompanyID:      l.CompanyID,
		TaxLines:       taxLines,
		Status:         string(l.Status),
		LostAt:         formatTimePtr(l.LostAtUtc),
		IsDeleted:      l.IsDeleted,
		DeletedAt:      formatTimePtr(l.DeletedAtUtc),
		CreatedAt:      formatTime(l.CreatedAtUtc),
		UpdatedAt:      formatTime(l.UpdatedAtUtc),
		Version:        l.Version,
	}
	if l.EstimatedValue != nil {
		it.EstimatedValue = l.EstimatedValue.String()
	}
	return it, nil
}

func fromLeadItem(it leadItem) (*entities.Lead, error) {
	l := &entities.Lead{
		ID:             it.ID,
		OrganizationID: it.OrganizationID,
		Name:           it.Name,
		Email:          it.Email,
		Phone:          it.Phone,
		Address:        it.Address,
		Source:         it.Source,
		Notes:          it.Notes,
		CompanyID:      it.CompanyID,
		Status:         entities.LeadStatus(it.Status),
		IsDeleted:      it.IsDeleted,
		Version:        it.Version,
	}
	var errs []error
	if it.EstimatedValue != "" {
		v, err := parseDecimal(it.EstimatedValue)
		errs = append(errs, err)
		l.EstimatedValue = &v
	}
	var err error
	errs = append(errs, decodeJSON(it.TaxLines, &l.TaxLines))
	l.LostAtUtc, err = parseTimePtr(it.LostAt)
	errs = append(errs, err)
	l.DeletedAtUtc, err = parseTimePtr(it.DeletedAt)
	errs = append(errs, err)
	l.CreatedAtUtc, err = parseTime(it.CreatedAt)
	errs = append(errs, err)
	l.UpdatedAtUtc, err = parseTime(it.UpdatedAt)
	errs = append(errs, err)
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("decode lead %s: %w", it.ID, err)
	}
	return l, nil
}

type companyItem struct {
	OrganizationID string `dynamodbav:"organization_id"`
	ID             string `dynamodbav:"id"`
	Name           string `dynamodbav:"name"`
	Email          string `dynamodbav:"email,omitempty"`
	Phone          string `dynamodbav:"phone,omitempty"`
	Address        string `dynamodbav:"address,omitempty"`
	City           string `dynamodbav:"city,omitempty"`
	State          string `dynamodbav:"state,omitempty"`
	PostalCode     string `dynamodbav:"postal_code,omitempty"`
	TaxID          string `dynamodbav:"tax_id,omitempty"`
	TaxLines       string `dynamodbav:"tax_lines,omitempty"`
	IsDeleted      bool   `dynamodbav:"is_deleted"`
	DeletedAt      string `dynamodbav:"deleted_at,omitempty"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
	Version        int64  `dynamodbav:"version"`
}

func toCompanyItem(c *entities.Company) (companyItem, error) {
	taxLines, err := encodeJSON(c.TaxLines)
	if err != nil {
		return companyItem{}, err
	}
	return companyItem{
		OrganizationID: c.OrganizationID,
		ID:             c.ID,
		Name:           c.Name,
		Email:          c.Email,
		Phone:          c.Phone,
		Address:        c.Address,
		City:           c.City,
		State:          c.State,
		PostalCode:     c.PostalCode,
		TaxID:          c.TaxID,
		TaxLines:       taxLines,
		IsDeleted:      c.IsDeleted,
		DeletedAt:      formatTimePtr(c.DeletedAtUtc),
		CreatedAt:      formatTime(c.CreatedAtUtc),
		UpdatedAt:      formatTime(c.UpdatedAtUtc),
		Version:        c.Version,
	}, nil
}

func fromCompanyItem(it companyItem) (*entities.Company, error) {
	c := &entities.Company{
		ID:             it.ID,
		OrganizationID: it.OrganizationID,
		Name:           it.Name,
		Email:          it.Email,
		Phone:          it.Phone,
		Address:        it.Address,
		City:           it.City,
		State:          it.State,
		PostalCode:     it.PostalCode,
		TaxID:          it.TaxID,
		IsDeleted:      it.IsDeleted,
		Version:        it.Version,
	}
	var err error
	errs := []error{decodeJSON(it.TaxLines, &c.TaxLines)}
	c.DeletedAtUtc, err = parseTimePtr(it.DeletedAt)
	errs = append(errs, err)
	c.CreatedAtUtc, err = parseTime(it.CreatedAt)
	errs = append(errs, err)
	c.UpdatedAtUtc, err = parseTime(it.UpdatedAt)
	errs = append(errs, err)
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("decode company %s: %w", it.ID, err)
	}
	return c, nil
}

type estimateItem struct {
	OrganizationID string `dynamodbav:"organization_id"`
	ID             string `dynamodbav:"id"`
	LeadID         string `dynamodbav:"lead_id"`
	JobID          string `dynamodbav:"job_id,omitempty"`
	Description    string `dynamodbav:"description,omitempty"`
	LineItems      string `dynamodbav:"line_items"`
	Subtotal       string `dynamodbav:"subtotal"`
	TaxTotal       string `dynamodbav:"tax_total"`
	Amount         string `dynamodbav:"amount"`
	Status         string `dynamodbav:"status"`
	SentAt         string `dynamodbav:"sent_at,omitempty"`
	AcceptedAt     string `dynamodbav:"accepted_at,omitempty"`
	RejectedAt     string `dynamodbav:"rejected_at,omitempty"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
	Version        int64  `dynamodbav:"version"`
}

func toEstimateItem(e *entities.Estimate) (estimateItem, error) {
	lines, err := encodeJSON(e.LineItems)
	if err != nil {
		return estimateItem{}, err
	}
	return estimateItem{
		OrganizationID: e.OrganizationID,
		ID:             e.ID,
		LeadID:         e.LeadID,
		JobID:          e.JobID,
		Description:    e.Description,
		LineItems:      lines,
		Subtotal:       e.Subtotal.StringFixed(2),
		TaxTotal:       e.TaxTotal.StringFixed(2),
		Amount:         e.Amount.StringFixed(2),
		Status:         string(e.Status),
		SentAt:         formatTimePtr(e.SentAtUtc),
		AcceptedAt:     formatTimePtr(e.AcceptedAtUtc),
		RejectedAt:     formatTimePtr(e.RejectedAtUtc),
		CreatedAt:      formatTime(e.CreatedAtUtc),
		UpdatedAt:      formatTime(e.UpdatedAtUtc),
		Version:        e.Version,
	}, nil
}

func fromEstimateItem(it estimateItem) (*entities.Estimate, error) {
	e := &entities.Estimate{
		ID:             it.ID,
		OrganizationID: it.OrganizationID,
		LeadID:         it.LeadID,
		JobID:          it.JobID,
		Description:    it.Description,
		Status:         entities.EstimateStatus(it.Status),
		Version:        it.Version,
	}
	var err error
	errs := []error{decodeJSON(it.LineItems, &e.LineItems)}
	e.Subtotal, e.TaxTotal, e.Amount, err = parseTotals(it.Subtotal, it.TaxTotal, it.Amount)
	errs = append(errs, err)
	e.SentAtUtc, err = parseTimePtr(it.SentAt)
	errs = append(errs, err)
	e.AcceptedAtUtc, err = parseTimePtr(it.AcceptedAt)
	errs = append(errs, err)
	e.RejectedAtUtc, err = parseTimePtr(it.RejectedAt)
	errs = append(errs, err)
	e.CreatedAtUtc, err = parseTime(it.CreatedAt)
	errs = append(errs, err)
	e.UpdatedAtUtc, err = parseTime(it.UpdatedAt)
	errs = append(errs, err)
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("decode estimate %s: %w", it.ID, err)
	}
	return e, nil
}

type jobItem struct {
	OrganizationID string `dynamodbav:"organization_id"`
	ID             string `dynamodbav:"id"`
	LeadID         string `dynamodbav:"lead_id"`
	EstimateID     string `dynamodbav:"estimate_id,omitempty"`
	Title          string `dynamodbav:"title,omitempty"`
	StartAt        string `dynamodbav:"start_at"`
	EstimatedEndAt string `dynamodbav:"estimated_end_at"`
	Milestones     string `dynamodbav:"milestones"`
	Expenses       string `dynamodbav:"expenses"`
	Status         string `dynamodbav:"status"`
	StartedAt      string `dynamodbav:"started_at,omitempty"`
	CompletedAt    string `dynamodbav:"completed_at,omitempty"`
	CancelledAt    string `dynamodbav:"cancelled_at,omitempty"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
	Version        int64  `dynamodbav:"version"`
}

func toJobItem(j *entities.Job) (jobItem, error) {
	milestones, err := encodeJSON(j.Milestones)
	if err != nil {
		return jobItem{}, err
	}
	expenses, err := encodeJSON(j.Expenses)
	if err != nil {
		return jobItem{}, err
	}
	return jobItem{
		OrganizationID: j.OrganizationID,
		ID:             j.ID,
		LeadID:         j.LeadID,
		EstimateID:     j.EstimateID,
		Title:          j.Title,
		StartAt:        formatTime(j.StartAtUtc),
		EstimatedEndAt: formatTime(j.EstimatedEndAtUtc),
		Milestones:     milestones,
		Expenses:       expenses,
		Status:         string(j.Status),
		StartedAt:      formatTimePtr(j.StartedAtUtc),
		CompletedAt:    formatTimePtr(j.CompletedAtUtc),
		CancelledAt:    formatTimePtr(j.CancelledAtUtc),
		CreatedAt:      formatTime(j.CreatedAtUtc),
		UpdatedAt:      formatTime(j.UpdatedAtUtc),
		Version:        j.Version,
	}, nil
}

func fromJobItem(it jobItem) (*entities.Job, error) {
	j := &entities.Job{
		ID:             it.ID,
		OrganizationID: it.OrganizationID,
		LeadID:         it.LeadID,
		EstimateID:     it.EstimateID,
		Title:          it.Title,
		Status:         entities.JobStatus(it.Status),
		Version:        it.Version,
	}
	var err error
	errs := []error{decodeJSON(it.Milestones, &j.Milestones), decodeJSON(it.Expenses, &j.Expenses)}
	j.StartAtUtc, err = parseTime(it.StartAt)
	errs = append(errs, err)
	j.EstimatedEndAtUtc, err = parseTime(it.EstimatedEndAt)
	errs = append(errs, err)
	j.StartedAtUtc, err = parseTimePtr(it.StartedAt)
	errs = append(errs, err)
	j.CompletedAtUtc, err = parseTimePtr(it.CompletedAt)
	errs = append(errs, err)
	j.CancelledAtUtc, err = parseTimePtr(it.CancelledAt)
	errs = append(errs, err)
	j.CreatedAtUtc, err = parseTime(it.CreatedAt)
	errs = append(errs, err)
	j.UpdatedAtUtc, err = parseTime(it.UpdatedAt)
	errs = append(errs, err)
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("decode job %s: %w", it.ID, err)
	}
	return j, nil
}

type invoiceItem struct {
	OrganizationID string `dynamodbav:"organization_id"`
	ID             string `dynamodbav:"id"`
	JobID          string `dynamodbav:"job_id"`
	Notes          string `dynamodbav:"notes,omitempty"`
	LineItems      string `dynamodbav:"line_items"`
	Subtotal       string `dynamodbav:"subtotal"`
	TaxTotal       string `dynamodbav:"tax_total"`
	Amount         string `dynamodbav:"amount"`
	Status         string `dynamodbav:"status"`
	IssuedAt       string `dynamodbav:"issued_at,omitempty"`
	DueAt          string `dynamodbav:"due_at,omitempty"`
	PaidAt         string `dynamodbav:"paid_at,omitempty"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
	Version        int64  `dynamodbav:"version"`
}

func toInvoiceItem(i *entities.Invoice) (invoiceItem, error) {
	lines, err := encodeJSON(i.LineItems)
	if err != nil {
		return invoiceItem{}, err
	}
	return invoiceItem{
		OrganizationID: i.OrganizationID,
		ID:             i.ID,
		JobID:          i.JobID,
		Notes:          i.Notes,
		LineItems:      lines,
		Subtotal:       i.Subtotal.StringFixed(2),
		TaxTotal:       i.TaxTotal.StringFixed(2),
		Amount:         i.Amount.StringFixed(2),
		Status:         string(i.Status),
		IssuedAt:       formatTimePtr(i.IssuedAtUtc),
		DueAt:          formatTimePtr(i.DueAtUtc),
		PaidAt:         formatTimePtr(i.PaidAtUtc),
		CreatedAt:      formatTime(i.CreatedAtUtc),
		UpdatedAt:      formatTime(i.UpdatedAtUtc),
		Version:        i.Version,
	}, nil
}

func fromInvoiceItem(it invoiceItem) (*entities.Invoice, error) {
	inv := &entities.Invoice{
		ID:             it.ID,
		OrganizationID: it.OrganizationID,
		JobID:          it.JobID,
		Notes:          it.Notes,
		Status:         entities.InvoiceStatus(it.Status),
		Version:        it.Version,
	}
	var err error
	errs := []error{decodeJSON(it.LineItems, &inv.LineItems)}
	inv.Subtotal, inv.TaxTotal, inv.Amount, err = parseTotals(it.Subtotal, it.TaxTotal, it.Amount)
	errs = append(errs, err)
	inv.IssuedAtUtc, err = parseTimePtr(it.IssuedAt)
	errs = append(errs, err)
	inv.DueAtUtc, err = parseTimePtr(it.DueAt)
	errs = append(errs, err)
	inv.PaidAtUtc, err = parseTimePtr(it.PaidAt)
	errs = append(errs, err)
	inv.CreatedAtUtc, err = parseTime(it.CreatedAt)
	errs = append(errs, err)
	inv.UpdatedAtUtc, err = parseTime(it.UpdatedAt)
	errs = append(errs, err)
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("decode invoice %s: %w", it.ID, err)
	}
	return inv, nil
}

type invoicePaymentItem struct {
	OrganizationID    string                 `dynamodbav:"organization_id"`
	ID                string                 `dynamodbav:"id"`
	InvoiceID         string                 `dynamodbav:"invoice_id"`
	Amount            string                 `dynamodbav:"amount"`
	Date              string                 `dynamodbav:"date"`
	Status            string                 `dynamodbav:"status"`
	ProviderPaymentID string                 `dynamodbav:"provider_payment_id,omitempty"`
	MPPayload         map[string]interface{} `dynamodbav:"mp_payload,omitempty"`
	MPPayloadRaw      string                 `dynamodbav:"mp_payload_raw,omitempty"`
}

func toInvoicePaymentItem(p *entities.InvoicePayment) invoicePaymentItem {
	return invoicePaymentItem{
		OrganizationID:    p.OrganizationID,
		ID:                p.ID,
		InvoiceID:         p.InvoiceID,
		Amount:            p.Amount.StringFixed(2),
		Date:              formatTime(p.Date),
		Status:            string(p.Status),
		ProviderPaymentID: p.ProviderPaymentID,
		MPPayload:         p.ProviderPayload,
		MPPayloadRaw:      string(p.ProviderPayloadRaw),
	}
}

func fromInvoicePaymentItem(it invoicePaymentItem) (entities.InvoicePayment, error) {
	amount, err := parseDecimal(it.Amount)
	if err != nil {
		return entities.InvoicePayment{}, fmt.Errorf("decode invoice payment %s: %w", it.ID, err)
	}
	date, err := parseTime(it.Date)
	if err != nil {
		return entities.InvoicePayment{}, fmt.Errorf("decode invoice payment %s: %w", it.ID, err)
	}
	p := entities.InvoicePayment{
		ID:                it.ID,
		OrganizationID:    it.OrganizationID,
		InvoiceID:         it.InvoiceID,
		Amount:            amount,
		Date:              date,
		Status:            entities.PaymentStatus(it.Status),
		ProviderPaymentID: it.ProviderPaymentID,
		ProviderPayload:   it.MPPayload,
	}
	if it.MPPayloadRaw != "" {
		p.ProviderPayloadRaw = []byte(it.MPPayloadRaw)
	}
	return p, nil
}

func parseTotals(subtotal, taxTotal, amount string) (s, t, a decimal.Decimal, err error) {
	if s, err = parseDecimal(subtotal); err != nil {
		return
	}
	if t, err = parseDecimal(taxTotal); err != nil {
		return
	}
	a, err = parseDecimal(amount)
	return
}
