package services

import (
	"context"

	"github.com/shopspring/decimal"
)

// PaymentRow is one contract payment line as stored in the register.
type PaymentRow struct {
	Contract     string
	Counterparty string
	Planned      decimal.Decimal
	Actual       decimal.Decimal
}

// RegisterGroup holds one counterparty's rows with subtotals.
type RegisterGroup struct {
	Counterparty string
	Rows         []PaymentRow
	PlannedTotal decimal.Decimal
	ActualTotal  decimal.Decimal
}

// Register is the payment-control report: rows grouped by counterparty
// with per-group and grand totals.
type Register struct {
	Groups       []RegisterGroup
	PlannedTotal decimal.Decimal
	ActualTotal  decimal.Decimal
}

type PaymentRepository interface {
	Rows(ctx context.Context) ([]PaymentRow, error)
}

type RegisterService struct {
	repo PaymentRepository
}

func NewRegisterService(repo PaymentRepository) *RegisterService {
	return &RegisterService{repo: repo}
}

func (s *RegisterService) Register(ctx context.Context) (*Register, error) {
	rows, err := s.repo.Rows(ctx)
	if err != nil {
		return nil, err
	}
	return BuildRegister(rows), nil
}

// BuildRegister groups rows by counterparty in first-seen order and
// accumulates subtotals and grand totals.
func BuildRegister(rows []PaymentRow) *Register {
	reg := &Register{
		PlannedTotal: decimal.Zero,
		ActualTotal:  decimal.Zero,
	}
	index := make(map[string]int)
	for _, row := range rows {
		i, ok := index[row.Counterparty]
		if !ok {
			i = len(reg.Groups)
			index[row.Counterparty] = i
			reg.Groups = append(reg.Groups, RegisterGroup{
				Counterparty: row.Counterparty,
				PlannedTotal: decimal.Zero,
				ActualTotal:  decimal.Zero,
			})
		}
		group := &reg.Groups[i]
		group.Rows = append(group.Rows, row)
		group.PlannedTotal = group.PlannedTotal.Add(row.Planned)
		group.ActualTotal = group.ActualTotal.Add(row.Actual)
		reg.PlannedTotal = reg.PlannedTotal.Add(row.Planned)
		reg.ActualTotal = reg.ActualTotal.Add(row.Actual)
	}
	return reg
}
