package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"

	"github.com/vaultpass/passgen-go/internal/model"
)

// mysqlDuplicateEntry is the server error number for unique key violations.
const mysqlDuplicateEntry = 1062

var (
	ErrPresetNotFound  = errors.New("preset not found")
	ErrDuplicatePreset = errors.New("preset name already exists")
)

// PresetRepository handles preset persistence operations.
type PresetRepository struct {
	db *sql.DB
}

// NewPresetRepository creates a new PresetRepository.
func NewPresetRepository(db *sql.DB) *PresetRepository {
	return &PresetRepository{db: db}
}

// Create inserts p. The caller assigns p.ID.
func (r *PresetRepository) Create(ctx context.Context, p *model.Preset) error {
	query := `INSERT INTO presets (id, client_id, name, kind, options) VALUES (?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query, p.ID, p.ClientID, p.Name, p.Kind, []byte(p.Options))
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrDuplicatePreset
		}
		return err
	}
	return nil
}

// GetByID retrieves a preset owned by clientID.
func (r *PresetRepository) GetByID(ctx context.Context, clientID, id string) (*model.Preset, error) {
	query := `SELECT id, client_id, name, kind, options, created_at, updated_at
		FROM presets WHERE client_id = ? AND id = ?`

	p := &model.Preset{}
	var options []byte
	err := r.db.QueryRowContext(ctx, query, clientID, id).Scan(
		&p.ID, &p.ClientID, &p.Name, &p.Kind, &options, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPresetNotFound
		}
		return nil, err
	}
	p.Options = options

	return p, nil
}

// ListByClient retrieves every preset owned by clientID, ordered by name.
func (r *PresetRepository) ListByClient(ctx context.Context, clientID string) ([]model.Preset, error) {
	query := `SELECT id, client_id, name, kind, options, created_at, updated_at
		FROM presets WHERE client_id = ? ORDER BY name ASC`

	rows, err := r.db.QueryContext(ctx, query, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var presets []model.Preset
	for rows.Next() {
		var p model.Preset
		var options []byte
		if err := rows.Scan(
			&p.ID, &p.ClientID, &p.Name, &p.Kind, &options, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		p.Options = options
		presets = append(presets, p)
	}

	return presets, rows.Err()
}

// Delete removes a preset owned by clientID.
func (r *PresetRepository) Delete(ctx context.Context, clientID, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM presets WHERE client_id = ? AND id = ?`, clientID, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrPresetNotFound
	}
	return nil
}

func isDuplicateEntryError(err error) bool {
	var myErr *mysql.MySQLError
	return errors.As(err, &myErr) && myErr.Number == mysqlDuplicateEntry
}
