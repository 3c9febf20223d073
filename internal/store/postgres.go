package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/yourorg/housing-site/catalog"
)

type Store struct{ DB *sql.DB }

func Open(dsn string) (*Store, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)
	return &Store{DB: db}, nil
}

func (s *Store) Ping(ctx context.Context) error { return s.DB.PingContext(ctx) }

func (s *Store) Migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS properties (
			id          INTEGER PRIMARY KEY,
			position    INTEGER NOT NULL,
			name        TEXT NOT NULL,
			location    TEXT NOT NULL,
			price       TEXT NOT NULL,
			image       TEXT NOT NULL,
			description TEXT NOT NULL,
			updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
		);`,
		`CREATE INDEX IF NOT EXISTS idx_properties_position ON properties(position);`,
		`CREATE TABLE IF NOT EXISTS property_tags (
			property_id INTEGER NOT NULL REFERENCES properties(id) ON DELETE CASCADE,
			position    INTEGER NOT NULL,
			label       TEXT NOT NULL,
			variant     TEXT NOT NULL DEFAULT 'default',
			PRIMARY KEY (property_id, position)
		);`,
		`CREATE TABLE IF NOT EXISTS property_amenities (
			property_id INTEGER NOT NULL REFERENCES properties(id) ON DELETE CASCADE,
			position    INTEGER NOT NULL,
			icon        TEXT NOT NULL DEFAULT '',
			label       TEXT NOT NULL,
			PRIMARY KEY (property_id, position)
		);`,
	}
	for _, q := range stmts {
		if _, err := s.DB.ExecContext(ctx, q); err != nil {
			return err
		}
	}
	return nil
}

// ReplaceCatalog swaps the stored catalog for c in one transaction.
func (s *Store) ReplaceCatalog(ctx context.Context, c *catalog.Catalog) (err error) {
	if s.DB == nil {
		return errors.New("nil db")
	}
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM properties`); err != nil {
		return err
	}
	for pos, p := range c.All() {
		if _, err = tx.ExecContext(ctx, `
			INSERT INTO properties (id, position, name, location, price, image, description)
			VALUES ($1,$2,$3,$4,$5,$6,$7)`,
			p.ID, pos, p.Name, p.Location, p.Price, p.Image, p.Description,
		); err != nil {
			return fmt.Errorf("insert property %d: %w", p.ID, err)
		}
		for i, t := range p.Tags {
			if _, err = tx.ExecContext(ctx, `INSERT INTO property_tags (property_id, position, label, variant) VALUES ($1,$2,$3,$4)`, p.ID, i, t.Label, string(t.Variant)); err != nil {
				return fmt.Errorf("insert tag for %d: %w", p.ID, err)
			}
		}
		for i, a := range p.Amenities {
			if _, err = tx.ExecContext(ctx, `INSERT INTO property_amenities (property_id, position, icon, label) VALUES ($1,$2,$3,$4)`, p.ID, i, string(a.Icon), a.Label); err != nil {
				return fmt.Errorf("insert amenity for %d: %w", p.ID, err)
			}
		}
	}
	return tx.Commit()
}

// LoadCatalog reads every stored property in position order and validates
// the result.
func (s *Store) LoadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, name, location, price, image, description
		FROM properties ORDER BY position, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var props []catalog.Property
	index := map[int]int{}
	for rows.Next() {
		var p catalog.Property
		if err := rows.Scan(&p.ID, &p.Name, &p.Location, &p.Price, &p.Image, &p.Description); err != nil {
			return nil, err
		}
		index[p.ID] = len(props)
		props = append(props, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	tagRows, err := s.DB.QueryContext(ctx, `SELECT property_id, label, variant FROM property_tags ORDER BY property_id, position`)
	if err != nil {
		return nil, err
	}
	defer tagRows.Close()
	for tagRows.Next() {
		var id int
		var t catalog.Tag
		if err := tagRows.Scan(&id, &t.Label, &t.Variant); err != nil {
			return nil, err
		}
		if i, ok := index[id]; ok {
			props[i].Tags = append(props[i].Tags, t)
		}
	}
	if err := tagRows.Err(); err != nil {
		return nil, err
	}

	amenityRows, err := s.DB.QueryContext(ctx, `SELECT property_id, icon, label FROM property_amenities ORDER BY property_id, position`)
	if err != nil {
		return nil, err
	}
	defer amenityRows.Close()
	for amenityRows.Next() {
		var id int
		var a catalog.Amenity
		if err := amenityRows.Scan(&id, &a.Icon, &a.Label); err != nil {
			return nil, err
		}
		if i, ok := index[id]; ok {
			props[i].Amenities = append(props[i].Amenities, a)
		}
	}
	if err := amenityRows.Err(); err != nil {
		return nil, err
	}

	return catalog.New(props)
}
