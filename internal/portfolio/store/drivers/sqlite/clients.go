package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/walletworks/portfolio/internal/portfolio/domain"
)

type clientsRepo struct {
	db dbtx
}

const clientColumns = `id, name, email, status, created_at, updated_at`

func scanClient(row interface{ Scan(...any) error }) (domain.Client, error) {
	var c domain.Client
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func (r *clientsRepo) GetClientByID(ctx context.Context, id int64) (domain.Client, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+clientColumns+` FROM clients WHERE id = ?`, id)

	c, err := scanClient(row)
	if err != nil {
		return domain.Client{}, mapNotFound(err)
	}
	return c, nil
}

func (r *clientsRepo) GetClientByEmail(ctx context.Context, email string) (domain.Client, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+clientColumns+` FROM clients WHERE email = ?`, email)

	c, err := scanClient(row)
	if err != nil {
		return domain.Client{}, mapNotFound(err)
	}
	return c, nil
}

func (r *clientsRepo) ClientExists(ctx context.Context, id int64) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx,
		`SELECT 1 FROM clients WHERE id = ?`, id).Scan(&one)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *clientsRepo) ListClients(ctx context.Context) ([]domain.Client, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+clientColumns+` FROM clients ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clients := make([]domain.Client, 0)
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

func (r *clientsRepo) CreateClient(ctx context.Context, c domain.Client) (domain.Client, error) {
	now := time.Now().UTC()
	row := r.db.QueryRowContext(ctx,
		`INSERT INTO clients (name, email, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 RETURNING `+clientColumns,
		c.Name, c.Email, c.Status, now, now)

	created, err := scanClient(row)
	if err != nil {
		return domain.Client{}, mapConstraint(err)
	}
	return created, nil
}

func (r *clientsRepo) UpdateClient(ctx context.Context, id int64, p domain.ClientPatch) (domain.Client, error) {
	if p.IsEmpty() {
		// Nothing to change; still report ErrNotFound for unknown ids.
		return r.GetClientByID(ctx, id)
	}

	sets := make([]string, 0, 4)
	args := make([]any, 0, 5)

	if p.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *p.Name)
	}
	if p.Email != nil {
		sets = append(sets, "email = ?")
		args = append(args, *p.Email)
	}
	if p.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, *p.Status)
	}
	sets = append(sets, "updated_at = ?")
	args = append(args, time.Now().UTC())
	args = append(args, id)

	row := r.db.QueryRowContext(ctx,
		`UPDATE clients SET `+strings.Join(sets, ", ")+` WHERE id = ?
		 RETURNING `+clientColumns, args...)

	updated, err := scanClient(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.Client{}, mapNotFound(err)
		}
		return domain.Client{}, mapConstraint(err)
	}
	return updated, nil
}

func (r *clientsRepo) UpsertClientByEmail(ctx context.Context, c domain.Client, setStatus bool) (domain.Client, bool, error) {
	now := time.Now().UTC()
	row := r.db.QueryRowContext(ctx,
		`INSERT INTO clients (name, email, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT (email) DO UPDATE SET
		     name = excluded.name,
		     status = CASE WHEN ? THEN excluded.status ELSE clients.status END,
		     updated_at = excluded.updated_at
		 RETURNING `+clientColumns,
		c.Name, c.Email, c.Status, now, now, setStatus)

	stored, err := scanClient(row)
	if err != nil {
		return domain.Client{}, false, err
	}

	// A fresh insert carries identical timestamps; an update keeps the
	// original created_at.
	return stored, stored.CreatedAt.Equal(stored.UpdatedAt), nil
}
