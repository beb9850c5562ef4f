// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package kg

import (
	"context"
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// Load reads the triple source at path and builds an index. The format is
// chosen by extension: .db/.sqlite/.sqlite3 opens a SQLite database,
// anything else is read as CSV. A missing file is not an error: the index
// degrades to empty and recall proceeds without expansion.
func Load(ctx context.Context, path string) (*Index, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return NewIndex(nil), nil
	}

	var (
		triples []Triple
		err     error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		triples, err = LoadSQLite(ctx, path)
	default:
		triples, err = LoadCSV(path)
	}
	if err != nil {
		return nil, err
	}
	return NewIndex(triples), nil
}

// LoadSQLite reads all rows from the triples table of a SQLite database.
// Expected schema: triples(subject, relation, object, paper_id).
func LoadSQLite(ctx context.Context, path string) ([]Triple, error) {
	db, err := sql.Open("sqlite3", path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("opening triple database: %w", err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx,
		`SELECT subject, relation, object, paper_id FROM triples`)
	if err != nil {
		return nil, fmt.Errorf("querying triples: %w", err)
	}
	defer rows.Close()

	var triples []Triple
	for rows.Next() {
		var t Triple
		if err := rows.Scan(&t.Subject, &t.Relation, &t.Object, &t.PaperID); err != nil {
			return nil, fmt.Errorf("scanning triple: %w", err)
		}
		triples = append(triples, t)
	}
	return triples, rows.Err()
}

// LoadCSV reads triples from a columnar CSV export with header
// subject,relation,object,paperid. Short rows are skipped.
func LoadCSV(path string) ([]Triple, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening triple file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	// Header row.
	if _, err := r.Read(); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("reading triple header: %w", err)
	}

	var triples []Triple
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading triple row: %w", err)
		}
		if len(rec) < 4 {
			continue
		}
		triples = append(triples, Triple{
			Subject:  rec[0],
			Relation: rec[1],
			Object:   rec[2],
			PaperID:  rec[3],
		})
	}
	return triples, nil
}
