package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"

	"github.com/deskflow/deskflow/modules/core/domain/aggregates/user"
	"github.com/deskflow/deskflow/modules/core/domain/entities/permission"
)

var ErrUserNotFound = errors.New("user not found")

const (
	selectUserQuery = `
		SELECT role, is_admin
		FROM users
		WHERE id = $1`
	selectPermissionsQuery = `
		SELECT p.object, p.action
		FROM permissions p
		JOIN user_permissions up ON up.permission_id = p.id
		WHERE up.user_id = $1
		ORDER BY p.object, p.action`
)

// PgUserContextRepository loads the permission context a filter pass runs
// against. The context is read fresh per login/reload event; rows with
// malformed role or permission values are skipped rather than failing the
// whole load.
type PgUserContextRepository struct {
	pool *pgxpool.Pool
}

func NewPgUserContextRepository(pool *pgxpool.Pool) *PgUserContextRepository {
	return &PgUserContextRepository{pool: pool}
}

func (r *PgUserContextRepository) UserContext(ctx context.Context, userID uuid.UUID) (user.User, error) {
	var rawRole string
	var isAdmin bool
	if err := r.pool.QueryRow(ctx, selectUserQuery, userID).Scan(&rawRole, &isAdmin); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.Wrapf(ErrUserNotFound, "id %s", userID)
		}
		return nil, errors.Wrap(err, "query user")
	}

	role, err := user.NewRole(rawRole)
	if err != nil {
		role = user.RoleUnverified
	}

	rows, err := r.pool.Query(ctx, selectPermissionsQuery, userID)
	if err != nil {
		return nil, errors.Wrap(err, "query permissions")
	}
	defer rows.Close()

	var perms []*permission.Permission
	for rows.Next() {
		var object, action string
		if err := rows.Scan(&object, &action); err != nil {
			return nil, errors.Wrap(err, "scan permission")
		}
		perms = append(perms, permission.New(object, action))
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate permissions")
	}

	opts := []user.Option{user.WithPermissions(perms...)}
	if isAdmin {
		opts = append(opts, user.WithAdmin())
	}
	return user.New(userID, role, opts...), nil
}
