package reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	// Create runs the conflict check and insert in a single transaction.
	// Concurrent writers for the same resource serialize on the resource row.
	Create(ctx context.Context, rsv *Reservation) error
	GetByID(ctx context.Context, id string) (*Reservation, error)
	List(ctx context.Context, filter Filter) ([]*Reservation, int, error)
	ListForResource(ctx context.Context, resourceID string) ([]*Reservation, error)

	// Update re-runs the conflict check excluding the reservation itself and
	// writes the row only if its version is unchanged since the caller read it.
	Update(ctx context.Context, rsv *Reservation) error
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

// NewPgxRepository builds a Postgres-backed repository. Every operation is
// bounded by the given timeout; a deadline hit surfaces as ErrStorageTimeout.
func NewPgxRepository(pool *pgxpool.Pool, timeout time.Duration) Repository {
	return &pgxRepository{pool: pool, timeout: timeout}
}

func (r *pgxRepository) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

// mapPgError translates driver-level failures into the package sentinels.
// The exclusion constraint on (resource_id, interval) is the commit-time
// backstop behind the in-transaction conflict check.
func mapPgError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.ExclusionViolation:
			return ErrConflict
		case pgerrcode.ForeignKeyViolation:
			return ErrResourceNotFound
		}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrStorageTimeout
	}
	return fmt.Errorf("%s failed: %w", op, err)
}

// lockResource takes a row lock on the owning resource for the duration of
// the transaction and returns its name and availability flag.
func lockResource(ctx context.Context, tx pgx.Tx, resourceID string) (name string, available bool, err error) {
	const query = `SELECT name, is_available FROM public.resources WHERE id = $1 FOR UPDATE`
	err = tx.QueryRow(ctx, query, resourceID).Scan(&name, &available)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, ErrResourceNotFound
		}
		return "", false, mapPgError("lock resource", err)
	}
	return name, available, nil
}

// bookedIntervals reads all intervals for a resource inside the transaction,
// giving the conflict check a consistent snapshot.
func bookedIntervals(ctx context.Context, tx pgx.Tx, resourceID string) ([]Booked, error) {
	const query = `
		SELECT id, start_time, end_time
		FROM public.reservations
		WHERE resource_id = $1
	`
	rows, err := tx.Query(ctx, query, resourceID)
	if err != nil {
		return nil, mapPgError("read booked intervals", err)
	}
	defer rows.Close()

	var booked []Booked
	for rows.Next() {
		var b Booked
		if err := rows.Scan(&b.ID, &b.Start, &b.End); err != nil {
			return nil, fmt.Errorf("scan booked interval failed: %w", err)
		}
		booked = append(booked, b)
	}
	if err := rows.Err(); err != nil {
		return nil, mapPgError("read booked intervals", err)
	}
	return booked, nil
}

func (r *pgxRepository) Create(ctx context.Context, rsv *Reservation) error {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return mapPgError("begin create reservation", err)
	}
	defer tx.Rollback(ctx)

	name, available, err := lockResource(ctx, tx, rsv.ResourceID)
	if err != nil {
		return err
	}
	if !available {
		return ErrResourceUnavailable
	}

	booked, err := bookedIntervals(ctx, tx, rsv.ResourceID)
	if err != nil {
		return err
	}
	if HasConflict(Interval{Start: rsv.StartTime, End: rsv.EndTime}, booked, "") {
		return ErrConflict
	}

	const query = `
		INSERT INTO public.reservations (id, resource_id, start_time, end_time, booked_by, purpose)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING version, created_at, updated_at
	`
	id := uuid.NewString()
	err = tx.QueryRow(ctx, query,
		id, rsv.ResourceID, rsv.StartTime, rsv.EndTime, rsv.BookedBy, rsv.Purpose).
		Scan(&rsv.Version, &rsv.CreatedAt, &rsv.UpdatedAt)
	if err != nil {
		return mapPgError("create reservation", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return mapPgError("commit create reservation", err)
	}

	rsv.ID = id
	rsv.ResourceName = name
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Reservation, error) {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	const query = `
		SELECT rv.id, rv.resource_id, r.name, rv.start_time, rv.end_time,
		       rv.booked_by, rv.purpose, rv.version, rv.created_at, rv.updated_at
		FROM public.reservations rv
		JOIN public.resources r ON rv.resource_id = r.id
		WHERE rv.id = $1
	`
	row := r.pool.QueryRow(ctx, query, id)

	var rsv Reservation
	if err := row.Scan(
		&rsv.ID, &rsv.ResourceID, &rsv.ResourceName, &rsv.StartTime, &rsv.EndTime,
		&rsv.BookedBy, &rsv.Purpose, &rsv.Version, &rsv.CreatedAt, &rsv.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, mapPgError("get reservation", err)
	}
	return &rsv, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Reservation, int, error) {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"rv.id", "rv.resource_id", "r.name", "rv.start_time", "rv.end_time",
		"rv.booked_by", "rv.purpose", "rv.version", "rv.created_at", "rv.updated_at",
		"count(*) OVER() as total_count",
	).
		From("public.reservations rv").
		Join("public.resources r ON rv.resource_id = r.id")

	if filter.ResourceID != "" {
		query = query.Where(squirrel.Eq{"rv.resource_id": filter.ResourceID})
	}
	if filter.BookedBy != "" {
		query = query.Where(squirrel.ILike{"rv.booked_by": "%" + filter.BookedBy + "%"})
	}
	if filter.OnDate != nil {
		// Start-date match: the reservation starts on this calendar day (UTC).
		day := filter.OnDate.UTC().Truncate(24 * time.Hour)
		query = query.
			Where(squirrel.GtOrEq{"rv.start_time": day}).
			Where(squirrel.Lt{"rv.start_time": day.Add(24 * time.Hour)})
	}
	if filter.StartFrom != nil {
		query = query.Where(squirrel.GtOrEq{"rv.start_time": *filter.StartFrom})
	}
	if filter.Overlapping != nil {
		// Half-open intersection: catches reservations spanning into the
		// window, which a start-time filter would miss.
		query = query.
			Where(squirrel.Lt{"rv.start_time": filter.Overlapping.End}).
			Where(squirrel.Gt{"rv.end_time": filter.Overlapping.Start})
	}

	query = query.OrderBy("rv.start_time ASC")

	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	} else {
		if filter.Page < 1 {
			filter.Page = 1
		}
		if filter.PageSize < 1 {
			filter.PageSize = 20
		}
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Limit(uint64(filter.PageSize)).Offset(uint64(offset))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list reservations query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, mapPgError("list reservations", err)
	}
	defer rows.Close()

	var reservations []*Reservation
	var total int

	for rows.Next() {
		var rsv Reservation
		if err := rows.Scan(
			&rsv.ID, &rsv.ResourceID, &rsv.ResourceName, &rsv.StartTime, &rsv.EndTime,
			&rsv.BookedBy, &rsv.Purpose, &rsv.Version, &rsv.CreatedAt, &rsv.UpdatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan reservation failed: %w", err)
		}
		reservations = append(reservations, &rsv)
	}

	return reservations, total, nil
}

func (r *pgxRepository) ListForResource(ctx context.Context, resourceID string) ([]*Reservation, error) {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	const query = `
		SELECT rv.id, rv.resource_id, r.name, rv.start_time, rv.end_time,
		       rv.booked_by, rv.purpose, rv.version, rv.created_at, rv.updated_at
		FROM public.reservations rv
		JOIN public.resources r ON rv.resource_id = r.id
		WHERE rv.resource_id = $1
		ORDER BY rv.start_time ASC
	`
	rows, err := r.pool.Query(ctx, query, resourceID)
	if err != nil {
		return nil, mapPgError("list reservations for resource", err)
	}
	defer rows.Close()

	var reservations []*Reservation
	for rows.Next() {
		var rsv Reservation
		if err := rows.Scan(
			&rsv.ID, &rsv.ResourceID, &rsv.ResourceName, &rsv.StartTime, &rsv.EndTime,
			&rsv.BookedBy, &rsv.Purpose, &rsv.Version, &rsv.CreatedAt, &rsv.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan reservation failed: %w", err)
		}
		reservations = append(reservations, &rsv)
	}
	if err := rows.Err(); err != nil {
		return nil, mapPgError("list reservations for resource", err)
	}

	return reservations, nil
}

func (r *pgxRepository) Update(ctx context.Context, rsv *Reservation) error {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return mapPgError("begin update reservation", err)
	}
	defer tx.Rollback(ctx)

	name, _, err := lockResource(ctx, tx, rsv.ResourceID)
	if err != nil {
		return err
	}

	booked, err := bookedIntervals(ctx, tx, rsv.ResourceID)
	if err != nil {
		return err
	}
	if HasConflict(Interval{Start: rsv.StartTime, End: rsv.EndTime}, booked, rsv.ID) {
		return ErrConflict
	}

	const query = `
		UPDATE public.reservations
		SET resource_id = $1, start_time = $2, end_time = $3,
		    booked_by = $4, purpose = $5, version = version + 1, updated_at = now()
		WHERE id = $6 AND version = $7
		RETURNING version, created_at, updated_at
	`
	err = tx.QueryRow(ctx, query,
		rsv.ResourceID, rsv.StartTime, rsv.EndTime, rsv.BookedBy, rsv.Purpose,
		rsv.ID, rsv.Version).
		Scan(&rsv.Version, &rsv.CreatedAt, &rsv.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return r.versionMismatch(ctx, tx, rsv.ID)
		}
		return mapPgError("update reservation", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return mapPgError("commit update reservation", err)
	}

	rsv.ResourceName = name
	return nil
}

// versionMismatch distinguishes a lost update from a deleted reservation.
func (r *pgxRepository) versionMismatch(ctx context.Context, tx pgx.Tx, id string) error {
	var exists bool
	err := tx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM public.reservations WHERE id = $1)`, id).
		Scan(&exists)
	if err != nil {
		return mapPgError("check reservation exists", err)
	}
	if exists {
		return ErrVersionConflict
	}
	return ErrNotFound
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	const query = `DELETE FROM public.reservations WHERE id = $1`
	ct, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return mapPgError("delete reservation", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
