// Package sqlite provides the SQLite-backed property and bid stores.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"property-bidding/internal/bidderrors"
	model "property-bidding/internal/models"
	"property-bidding/internal/repository"
	"property-bidding/internal/repository/sqlite/migrations"
)

// Store persists properties and bids in SQLite. It implements both
// repository.PropertyStore and repository.BidStore.
type Store struct {
	sqlDB *sql.DB
}

var (
	_ repository.PropertyStore = (*Store)(nil)
	_ repository.BidStore      = (*Store)(nil)
)

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite store at path and applies embedded migrations.
// Pragmas use the driver's _pragma DSN form so they run on every pooled
// connection, not just the first; foreign keys in particular must hold
// on all connections or property deletion stops cascading to bids.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) +
		"?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(sqlDB); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// applyMigrations executes each embedded .sql file at most once,
// tracked in schema_migrations, in lexical order.
func applyMigrations(sqlDB *sql.DB) error {
	if _, err := sqlDB.Exec(`CREATE TABLE IF NOT EXISTS schema_migrations (
		name TEXT PRIMARY KEY,
		applied_at INTEGER NOT NULL
	)`); err != nil {
		return fmt.Errorf("ensure migration table: %w", err)
	}

	entries, err := fs.ReadDir(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("read migrations dir: %w", err)
	}
	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		var applied int
		err := sqlDB.QueryRow("SELECT COUNT(1) FROM schema_migrations WHERE name = ?", name).Scan(&applied)
		if err != nil {
			return fmt.Errorf("check migration %s: %w", name, err)
		}
		if applied > 0 {
			continue
		}
		body, err := fs.ReadFile(migrations.FS, name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}
		if _, err := sqlDB.Exec(string(body)); err != nil {
			return fmt.Errorf("apply migration %s: %w", name, err)
		}
		if _, err := sqlDB.Exec("INSERT INTO schema_migrations (name, applied_at) VALUES (?, ?)",
			name, time.Now().UTC().UnixMilli()); err != nil {
			return fmt.Errorf("record migration %s: %w", name, err)
		}
	}
	return nil
}

// AddProperty inserts one property record and returns it with its
// assigned id.
func (s *Store) AddProperty(ctx context.Context, p model.Property) (model.Property, error) {
	res, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO properties (name, address, price, video_url, bidding_start_time, bidding_end_time, owner_id)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.Name, p.Address, p.Price.String(), p.VideoURL,
		toMillis(p.BiddingStartTime), toMillis(p.BiddingEndTime), p.OwnerID)
	if err != nil {
		return model.Property{}, fmt.Errorf("insert property: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Property{}, fmt.Errorf("insert property id: %w", err)
	}
	p.ID = id
	return p, nil
}

// GetProperty returns the property with the given id.
func (s *Store) GetProperty(ctx context.Context, id int64) (model.Property, error) {
	row := s.sqlDB.QueryRowContext(ctx,
		`SELECT id, name, address, price, video_url, bidding_start_time, bidding_end_time, owner_id
		 FROM properties WHERE id = ?`, id)
	p, err := scanProperty(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Property{}, fmt.Errorf("get property %d: %w", id, bidderrors.ErrPropertyNotFound)
	}
	if err != nil {
		return model.Property{}, fmt.Errorf("get property %d: %w", id, err)
	}
	return p, nil
}

// ListPropertiesByOwner returns all properties created by ownerID.
func (s *Store) ListPropertiesByOwner(ctx context.Context, ownerID string) ([]model.Property, error) {
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT id, name, address, price, video_url, bidding_start_time, bidding_end_time, owner_id
		 FROM properties WHERE owner_id = ? ORDER BY id`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list properties for owner %s: %w", ownerID, err)
	}
	defer rows.Close()
	return collectProperties(rows, "list properties")
}

// UpdateProperty overwrites an existing property.
func (s *Store) UpdateProperty(ctx context.Context, p model.Property) error {
	res, err := s.sqlDB.ExecContext(ctx,
		`UPDATE properties SET name = ?, address = ?, price = ?, video_url = ?,
		 bidding_start_time = ?, bidding_end_time = ?, owner_id = ? WHERE id = ?`,
		p.Name, p.Address, p.Price.String(), p.VideoURL,
		toMillis(p.BiddingStartTime), toMillis(p.BiddingEndTime), p.OwnerID, p.ID)
	if err != nil {
		return fmt.Errorf("update property %d: %w", p.ID, err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return fmt.Errorf("update property %d: %w", p.ID, bidderrors.ErrPropertyNotFound)
	}
	return nil
}

// RemoveProperty deletes a property; its bids go with it via the
// foreign-key cascade.
func (s *Store) RemoveProperty(ctx context.Context, id int64) error {
	res, err := s.sqlDB.ExecContext(ctx, "DELETE FROM properties WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("remove property %d: %w", id, err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return fmt.Errorf("remove property %d: %w", id, bidderrors.ErrPropertyNotFound)
	}
	return nil
}

// ListUnresolved returns closed-window properties with at least one
// active bid and no winning bid.
func (s *Store) ListUnresolved(ctx context.Context, closedBefore time.Time) ([]model.Property, error) {
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT p.id, p.name, p.address, p.price, p.video_url, p.bidding_start_time, p.bidding_end_time, p.owner_id
		 FROM properties p
		 WHERE p.bidding_end_time < ?
		   AND EXISTS (SELECT 1 FROM bids b WHERE b.property_id = p.id AND b.is_active = 1)
		   AND NOT EXISTS (SELECT 1 FROM bids b WHERE b.property_id = p.id AND b.is_winning_bid = 1)
		 ORDER BY p.id`, toMillis(closedBefore))
	if err != nil {
		return nil, fmt.Errorf("list unresolved properties: %w", err)
	}
	defer rows.Close()
	return collectProperties(rows, "list unresolved properties")
}

// AddBid inserts one bid. The partial unique index enforces the
// one-active-bid-per-bidder rule inside the insert itself, and the
// foreign key rejects bids for missing properties, so the
// check-then-insert sequence cannot race.
func (s *Store) AddBid(ctx context.Context, b model.Bid) (model.Bid, error) {
	res, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO bids (property_id, bidder_id, bidder_name, amount, time_placed, is_active, is_winning_bid)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		b.PropertyID, b.BidderID, b.BidderName, b.Amount.String(),
		toMillis(b.TimePlaced), boolToInt(b.IsActive), boolToInt(b.IsWinningBid))
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return model.Bid{}, fmt.Errorf("add bid for property %d: %w", b.PropertyID, bidderrors.ErrDuplicateActiveBid)
		case isForeignKeyViolation(err):
			return model.Bid{}, fmt.Errorf("add bid for property %d: %w", b.PropertyID, bidderrors.ErrPropertyNotFound)
		default:
			return model.Bid{}, fmt.Errorf("insert bid: %w", err)
		}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Bid{}, fmt.Errorf("insert bid id: %w", err)
	}
	b.ID = id
	return b, nil
}

// GetBid returns the bid with the given id.
func (s *Store) GetBid(ctx context.Context, id int64) (model.Bid, error) {
	row := s.sqlDB.QueryRowContext(ctx,
		`SELECT id, property_id, bidder_id, bidder_name, amount, time_placed, is_active, is_winning_bid
		 FROM bids WHERE id = ?`, id)
	b, err := scanBid(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Bid{}, fmt.Errorf("get bid %d: %w", id, bidderrors.ErrBidNotFound)
	}
	if err != nil {
		return model.Bid{}, fmt.Errorf("get bid %d: %w", id, err)
	}
	return b, nil
}

// ListBidsByProperty returns all bids, active and inactive, for a
// property in insertion order.
func (s *Store) ListBidsByProperty(ctx context.Context, propertyID int64) ([]model.Bid, error) {
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT id, property_id, bidder_id, bidder_name, amount, time_placed, is_active, is_winning_bid
		 FROM bids WHERE property_id = ? ORDER BY id`, propertyID)
	if err != nil {
		return nil, fmt.Errorf("list bids for property %d: %w", propertyID, err)
	}
	defer rows.Close()

	var out []model.Bid
	for rows.Next() {
		b, err := scanBid(rows)
		if err != nil {
			return nil, fmt.Errorf("list bids for property %d: %w", propertyID, err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list bids for property %d: %w", propertyID, err)
	}
	return out, nil
}

// UpdateBid overwrites an existing bid.
func (s *Store) UpdateBid(ctx context.Context, b model.Bid) error {
	res, err := s.sqlDB.ExecContext(ctx,
		`UPDATE bids SET amount = ?, time_placed = ?, is_active = ?, is_winning_bid = ? WHERE id = ?`,
		b.Amount.String(), toMillis(b.TimePlaced), boolToInt(b.IsActive), boolToInt(b.IsWinningBid), b.ID)
	if err != nil {
		return fmt.Errorf("update bid %d: %w", b.ID, err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return fmt.Errorf("update bid %d: %w", b.ID, bidderrors.ErrBidNotFound)
	}
	return nil
}

// MarkWinningBid clears any stale winning flag on the property and sets
// it on bidID within one transaction.
func (s *Store) MarkWinningBid(ctx context.Context, propertyID, bidID int64) error {
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("mark winning bid: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`UPDATE bids SET is_winning_bid = 0 WHERE property_id = ? AND is_winning_bid = 1 AND id <> ?`,
		propertyID, bidID); err != nil {
		return fmt.Errorf("mark winning bid: clear stale flags: %w", err)
	}

	res, err := tx.ExecContext(ctx,
		`UPDATE bids SET is_winning_bid = 1 WHERE id = ? AND property_id = ? AND is_active = 1`,
		bidID, propertyID)
	if err != nil {
		return fmt.Errorf("mark winning bid %d: %w", bidID, err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return fmt.Errorf("mark winning bid %d for property %d: %w", bidID, propertyID, bidderrors.ErrBidNotFound)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("mark winning bid: commit: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProperty(row rowScanner) (model.Property, error) {
	var (
		p          model.Property
		price      string
		start, end int64
	)
	if err := row.Scan(&p.ID, &p.Name, &p.Address, &price, &p.VideoURL, &start, &end, &p.OwnerID); err != nil {
		return model.Property{}, err
	}
	dec, err := decimal.NewFromString(price)
	if err != nil {
		return model.Property{}, fmt.Errorf("parse stored price %q: %w", price, err)
	}
	p.Price = dec
	p.BiddingStartTime = fromMillis(start)
	p.BiddingEndTime = fromMillis(end)
	return p, nil
}

func scanBid(row rowScanner) (model.Bid, error) {
	var (
		b               model.Bid
		amount          string
		placed          int64
		active, winning int
	)
	if err := row.Scan(&b.ID, &b.PropertyID, &b.BidderID, &b.BidderName, &amount, &placed, &active, &winning); err != nil {
		return model.Bid{}, err
	}
	dec, err := decimal.NewFromString(amount)
	if err != nil {
		return model.Bid{}, fmt.Errorf("parse stored amount %q: %w", amount, err)
	}
	b.Amount = dec
	b.TimePlaced = fromMillis(placed)
	b.IsActive = active != 0
	b.IsWinningBid = winning != 0
	return b, nil
}

func collectProperties(rows *sql.Rows, op string) ([]model.Property, error) {
	var out []model.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return out, nil
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}

func isForeignKeyViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code() == sqlite3lib.SQLITE_CONSTRAINT_FOREIGNKEY
	}
	return strings.Contains(strings.ToLower(err.Error()), "foreign key constraint failed")
}
