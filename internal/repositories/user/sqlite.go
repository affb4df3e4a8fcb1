package user

import (
	"context"
	"database/sql"
	stderrors "errors"
	"log/slog"
	"path/filepath"
	"strings"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/KirkDiggler/rpg-arena/internal/entities"
	"github.com/KirkDiggler/rpg-arena/internal/errors"
	"github.com/KirkDiggler/rpg-arena/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-arena/internal/pkg/sqlitemigrate"
	"github.com/KirkDiggler/rpg-arena/internal/repositories/user/migrations"
)

const (
	userColumns = `id, name, email, credits, role, created_at, updated_at`

	errUserNil     = "user cannot be nil"
	errUserIDEmpty = "user ID cannot be empty"
)

// OpenSQLite opens the database file at path in WAL mode with foreign keys on
func OpenSQLite(ctx context.Context, path string) (*sql.DB, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.InvalidArgument("sqlite path is required")
	}

	dsn := "file:" + filepath.Clean(path) +
		"?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open sqlite db")
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to ping sqlite db")
	}
	return db, nil
}

type sqliteRepository struct {
	db    *sql.DB
	clock clock.Clock
}

// SQLiteConfig contains configuration for the SQLite user repository.
type SQLiteConfig struct {
	DB    *sql.DB
	Clock clock.Clock
}

// Validate validates the SQLiteConfig.
func (cfg *SQLiteConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.DB == nil {
		return errors.InvalidArgument("db cannot be nil")
	}
	return nil
}

// NewSQLite migrates the schema and returns a SQLite-backed user repository
func NewSQLite(ctx context.Context, cfg *SQLiteConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	applied, err := sqlitemigrate.Apply(ctx, &sqlitemigrate.Config{
		DB:    cfg.DB,
		FS:    migrations.FS,
		Clock: c,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to migrate user store")
	}
	if len(applied) > 0 {
		slog.InfoContext(ctx, "Applied user store migrations", "migrations", applied)
	}

	return &sqliteRepository{
		db:    cfg.DB,
		clock: c,
	}, nil
}

func validateUser(u *entities.User) error {
	if u == nil {
		return errors.InvalidArgument(errUserNil)
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", u.ID, vb)
	errors.ValidateRequired("name", u.Name, vb)
	if u.Credits < 0 {
		vb.InvalidField("credits", "cannot be negative")
	}
	if !u.Role.IsValid() {
		vb.InvalidField("role", "unknown role")
	}
	return vb.Build()
}

func (r *sqliteRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateUser(input.User); err != nil {
		return nil, err
	}

	stored := input.User.Clone()
	now := r.clock.Now().Unix()
	stored.CreatedAt = now
	stored.UpdatedAt = now
	if stored.CharacterIDs == nil {
		stored.CharacterIDs = []string{}
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to begin transaction")
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO users (`+userColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		stored.ID, stored.Name, stored.Email, stored.Credits, string(stored.Role), stored.CreatedAt, stored.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, errors.AlreadyExistsf("user %s already exists", stored.Name).
				WithMeta("user_id", stored.ID)
		}
		return nil, errors.Wrap(err, "failed to create user")
	}

	if err := writeCharacters(ctx, tx, stored.ID, stored.CharacterIDs); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, errors.Wrap(err, "failed to commit user")
	}

	return &CreateOutput{User: stored}, nil
}

func (r *sqliteRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}

	u, err := r.load(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, input.ID)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.NotFoundf("user %s not found", input.ID)
		}
		return nil, err
	}
	return &GetOutput{User: u}, nil
}

func (r *sqliteRepository) GetByName(ctx context.Context, input GetByNameInput) (*GetByNameOutput, error) {
	if input.Name == "" {
		return nil, errors.InvalidArgument("name cannot be empty")
	}

	u, err := r.load(ctx, `SELECT `+userColumns+` FROM users WHERE name = ?`, input.Name)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.NotFoundf("user %q not found", input.Name)
		}
		return nil, err
	}
	return &GetByNameOutput{User: u}, nil
}

func (r *sqliteRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateUser(input.User); err != nil {
		return nil, err
	}

	stored := input.User.Clone()
	stored.UpdatedAt = r.clock.Now().Unix()
	if stored.CharacterIDs == nil {
		stored.CharacterIDs = []string{}
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to begin transaction")
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx,
		`UPDATE users SET name = ?, email = ?, credits = ?, role = ?, updated_at = ? WHERE id = ?`,
		stored.Name, stored.Email, stored.Credits, string(stored.Role), stored.UpdatedAt, stored.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, errors.AlreadyExistsf("user name %s is taken", stored.Name)
		}
		return nil, errors.Wrap(err, "failed to update user")
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read update result")
	}
	if rows == 0 {
		return nil, errors.NotFoundf("user %s not found", stored.ID)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM user_characters WHERE user_id = ?`, stored.ID); err != nil {
		return nil, errors.Wrap(err, "failed to clear ownership list")
	}
	if err := writeCharacters(ctx, tx, stored.ID, stored.CharacterIDs); err != nil {
		return nil, err
	}

	// created_at is owned by the row
	if err := tx.QueryRowContext(ctx, `SELECT created_at FROM users WHERE id = ?`, stored.ID).
		Scan(&stored.CreatedAt); err != nil {
		return nil, errors.Wrap(err, "failed to read user")
	}

	if err := tx.Commit(); err != nil {
		return nil, errors.Wrap(err, "failed to commit user")
	}

	return &UpdateOutput{User: stored}, nil
}

func writeCharacters(ctx context.Context, tx *sql.Tx, userID string, characterIDs []string) error {
	for pos, characterID := range characterIDs {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO user_characters (user_id, character_id, position) VALUES (?, ?, ?)`,
			userID, characterID, pos,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return errors.AlreadyExistsf("character %s is already owned", characterID).
					WithMeta("character_id", characterID)
			}
			return errors.Wrap(err, "failed to write ownership list")
		}
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*entities.User, error) {
	var (
		u    entities.User
		role string
	)
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Credits, &role, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	u.Role = entities.UserRole(role)
	return &u, nil
}

func (r *sqliteRepository) load(ctx context.Context, query string, arg string) (*entities.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFound("user not found")
		}
		return nil, errors.Wrap(err, "failed to get user")
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT character_id FROM user_characters WHERE user_id = ? ORDER BY position`, u.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get ownership list")
	}
	defer func() { _ = rows.Close() }()

	u.CharacterIDs = []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, errors.Wrap(err, "failed to scan ownership list")
		}
		u.CharacterIDs = append(u.CharacterIDs, id)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate ownership list")
	}

	if !u.Role.IsValid() {
		return nil, errors.CorruptStatef("user %s has unknown role %q", u.ID, u.Role)
	}
	return u, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if stderrors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}
