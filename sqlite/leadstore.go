package sqlite

import (
	"context"
	"encoding/json"
	"regexp"

	"github.com/fwojciec/leadgen"
)

// Ensure Store implements the LeadStore interface.
var _ leadgen.LeadStore = (*Store)(nil)

var ownerKeyRe = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)

// Store persists lead collections in a SQLite database. Each collection
// is keyed by owner and stored as position-ordered JSON rows.
type Store struct {
	db *DB
}

// NewStore creates a new Store backed by the given database.
func NewStore(db *DB) *Store {
	return &Store{db: db}
}

// Load returns the lead collection for ownerKey in saved order.
// A missing collection returns an empty slice, not an error.
func (s *Store) Load(ctx context.Context, ownerKey string) ([]*leadgen.Lead, error) {
	if !ownerKeyRe.MatchString(ownerKey) {
		return nil, leadgen.Errorf(leadgen.EINVALID, "invalid owner key: %q", ownerKey)
	}

	rows, err := s.db.QueryContext(ctx, `SELECT data FROM leads WHERE owner_key = ? ORDER BY position`, ownerKey)
	if err != nil {
		return nil, leadgen.Errorf(leadgen.EINTERNAL, "failed to query leads: %v", err)
	}
	defer rows.Close()

	var leads []*leadgen.Lead
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, leadgen.Errorf(leadgen.EINTERNAL, "failed to scan lead: %v", err)
		}
		var lead leadgen.Lead
		if err := json.Unmarshal([]byte(data), &lead); err != nil {
			return nil, leadgen.Errorf(leadgen.EINTERNAL, "failed to decode lead: %v", err)
		}
		leads = append(leads, &lead)
	}
	if err := rows.Err(); err != nil {
		return nil, leadgen.Errorf(leadgen.EINTERNAL, "failed to read leads: %v", err)
	}
	return leads, nil
}

// Save replaces the lead collection for ownerKey. The whole collection is
// rewritten in a single transaction so a partial write never survives.
func (s *Store) Save(ctx context.Context, ownerKey string, leads []*leadgen.Lead) error {
	if !ownerKeyRe.MatchString(ownerKey) {
		return leadgen.Errorf(leadgen.EINVALID, "invalid owner key: %q", ownerKey)
	}
	for _, lead := range leads {
		if err := lead.Validate(); err != nil {
			return err
		}
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return leadgen.Errorf(leadgen.EINTERNAL, "failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM leads WHERE owner_key = ?`, ownerKey); err != nil {
		return leadgen.Errorf(leadgen.EINTERNAL, "failed to clear leads: %v", err)
	}

	for i, lead := range leads {
		data, err := json.Marshal(lead)
		if err != nil {
			return leadgen.Errorf(leadgen.EINTERNAL, "failed to encode lead: %v", err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO leads (owner_key, position, data) VALUES (?, ?, ?)`,
			ownerKey, i, string(data),
		); err != nil {
			return leadgen.Errorf(leadgen.EINTERNAL, "failed to insert lead: %v", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return leadgen.Errorf(leadgen.EINTERNAL, "failed to commit transaction: %v", err)
	}
	return nil
}
