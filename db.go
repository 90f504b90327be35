package snespal

import (
	"bytes"
	"crypto/sha1"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bodgit/snespal/palette"
	"github.com/bodgit/snespal/tpl"
	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
)

// ErrNotFound is returned when no palette is stored under a name.
var ErrNotFound = errors.New("snespal: palette not found")

// PaletteDB is a library of named palettes kept in an SQLite database.
// Identical palettes stored under different names share one row.
type PaletteDB struct {
	db     *sql.DB
	logger logrus.FieldLogger
}

// NewPaletteDB opens or creates the database in file.
func NewPaletteDB(file string, logger logrus.FieldLogger) (*PaletteDB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS palette (id INTEGER PRIMARY KEY NOT NULL, sha1 TEXT NOT NULL UNIQUE, data BLOB NOT NULL)"); err != nil {
		db.Close()
		return nil, err
	}

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS entry (id INTEGER PRIMARY KEY NOT NULL, name STRING NOT NULL UNIQUE, palette_id INTEGER NOT NULL, FOREIGN KEY(palette_id) REFERENCES palette(id))"); err != nil {
		db.Close()
		return nil, err
	}

	return &PaletteDB{
		db:     db,
		logger: newLogger(logger, "db"),
	}, nil
}

// Close closes the database.
func (db *PaletteDB) Close() error {
	return db.db.Close()
}

func (db *PaletteDB) addPalette(t *palette.Table) (int64, error) {
	b := new(bytes.Buffer)
	if err := tpl.Encode(b, t); err != nil {
		return 0, err
	}
	sum := sha1.Sum(b.Bytes())
	sha := fmt.Sprintf("%X", sum[:])

	var id int64
	switch err := db.db.QueryRow("SELECT id FROM palette WHERE sha1 = ?", sha).Scan(&id); err {
	case sql.ErrNoRows:
		result, err := db.db.Exec("INSERT INTO palette (sha1, data) VALUES (?, ?)", sha, b.Bytes())
		if err != nil {
			return 0, err
		}
		return result.LastInsertId()
	case nil:
		return id, nil
	default:
		return 0, err
	}
}

// Store saves t under name, replacing any palette already stored under it.
func (db *PaletteDB) Store(name string, t *palette.Table) error {
	id, err := db.addPalette(t)
	if err != nil {
		return err
	}

	if _, err := db.db.Exec("INSERT OR REPLACE INTO entry (name, palette_id) VALUES (?, ?)", name, id); err != nil {
		return err
	}
	db.logger.WithFields(logrus.Fields{"name": name, "palette": id}).Debug("stored palette")

	return db.prune()
}

// Fetch returns the palette stored under name.
func (db *PaletteDB) Fetch(name string) (*palette.Table, error) {
	var data []byte
	switch err := db.db.QueryRow("SELECT p.data FROM entry AS e JOIN palette AS p ON e.palette_id = p.id WHERE e.name = ?", name).Scan(&data); err {
	case sql.ErrNoRows:
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	case nil:
		return tpl.Decode(bytes.NewReader(data))
	default:
		return nil, err
	}
}

// List returns the names of all stored palettes in alphabetical order.
func (db *PaletteDB) List() ([]string, error) {
	rows, err := db.db.Query("SELECT name FROM entry ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Delete removes the palette stored under name.
func (db *PaletteDB) Delete(name string) error {
	result, err := db.db.Exec("DELETE FROM entry WHERE name = ?", name)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return db.prune()
}

// Remove any palette no longer referenced by name
func (db *PaletteDB) prune() error {
	_, err := db.db.Exec("DELETE FROM palette WHERE id NOT IN (SELECT palette_id FROM entry)")
	return err
}
