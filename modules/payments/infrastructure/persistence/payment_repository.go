package persistence

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/deskflow/deskflow/modules/payments/services"
)

const selectPaymentsQuery = `
	SELECT contract_number, counterparty, planned_amount::text, actual_amount::text
	FROM contract_payments
	ORDER BY counterparty, contract_number`

// PgPaymentRepository reads contract payment lines for the register report.
// Amounts travel as text so numeric precision survives the scan.
type PgPaymentRepository struct {
	pool *pgxpool.Pool
}

func NewPgPaymentRepository(pool *pgxpool.Pool) *PgPaymentRepository {
	return &PgPaymentRepository{pool: pool}
}

func (r *PgPaymentRepository) Rows(ctx context.Context) ([]services.PaymentRow, error) {
	rows, err := r.pool.Query(ctx, selectPaymentsQuery)
	if err != nil {
		return nil, errors.Wrap(err, "query payments")
	}
	defer rows.Close()

	var out []services.PaymentRow
	for rows.Next() {
		var contract, counterparty, planned, actual string
		if err := rows.Scan(&contract, &counterparty, &planned, &actual); err != nil {
			return nil, errors.Wrap(err, "scan payment")
		}
		plannedDec, err := decimal.NewFromString(planned)
		if err != nil {
			return nil, errors.Wrapf(err, "parse planned amount for %s", contract)
		}
		actualDec, err := decimal.NewFromString(actual)
		if err != nil {
			return nil, errors.Wrapf(err, "parse actual amount for %s", contract)
		}
		out = append(out, services.PaymentRow{
			Contract:     contract,
			Counterparty: counterparty,
			Planned:      plannedDec,
			Actual:       actualDec,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate payments")
	}
	return out, nil
}
