// Package store persists saved project snapshots in a local SQLite
// database. Snapshots are stored as JSON documents keyed by project ID so
// the schema never has to track input-field changes.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/iwvelando/project-pricing/pkg/pricing"
	_ "modernc.org/sqlite"
)

// Store wraps the SQLite handle for saved projects.
type Store struct {
	db *sql.DB
}

// SavedProject is one list entry: the identifying metadata without the
// full input document.
type SavedProject struct {
	ProjectID   string    `json:"projectId"`
	ProjectName string    `json:"projectName"`
	ClientName  string    `json:"clientName"`
	SavedDate   time.Time `json:"savedDate"`
}

// Open opens (or creates) the SQLite database at dbPath, sets recommended
// pragmas, and ensures the projects table exists.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if _, err := db.Exec(`
		PRAGMA journal_mode = WAL;
		PRAGMA busy_timeout = 5000;
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("set sqlite pragmas: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS projects (
			project_id   TEXT PRIMARY KEY,
			project_name TEXT NOT NULL,
			client_name  TEXT NOT NULL,
			saved_date   TIMESTAMP NOT NULL,
			document     TEXT NOT NULL
		);
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create projects table: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite database: %w", err)
	}

	return &Store{db: db}, nil
}

// Save upserts the snapshot under its project ID and stamps the saved
// date. An empty project ID is rejected.
func (s *Store) Save(input pricing.ProjectInput) error {
	if input.ProjectID == "" {
		return fmt.Errorf("project id is required")
	}

	now := time.Now().UTC()
	input.SavedDate = &now

	document, err := json.Marshal(input)
	if err != nil {
		return fmt.Errorf("encode project document: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO projects (project_id, project_name, client_name, saved_date, document)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(project_id) DO UPDATE SET
			project_name = excluded.project_name,
			client_name  = excluded.client_name,
			saved_date   = excluded.saved_date,
			document     = excluded.document
	`, input.ProjectID, input.ProjectName, input.ClientName, now, string(document))
	if err != nil {
		return fmt.Errorf("save project %s: %w", input.ProjectID, err)
	}
	return nil
}

// Load returns the saved snapshot for the given project ID.
func (s *Store) Load(projectID string) (pricing.ProjectInput, error) {
	var document string
	err := s.db.QueryRow(
		`SELECT document FROM projects WHERE project_id = ?`, projectID,
	).Scan(&document)
	if err == sql.ErrNoRows {
		return pricing.ProjectInput{}, fmt.Errorf("project %s not found", projectID)
	}
	if err != nil {
		return pricing.ProjectInput{}, fmt.Errorf("load project %s: %w", projectID, err)
	}

	var input pricing.ProjectInput
	if err := json.Unmarshal([]byte(document), &input); err != nil {
		return pricing.ProjectInput{}, fmt.Errorf("decode project document: %w", err)
	}
	return input, nil
}

// List returns the metadata for all saved projects, most recent first.
func (s *Store) List() ([]SavedProject, error) {
	rows, err := s.db.Query(`
		SELECT project_id, project_name, client_name, saved_date
		FROM projects
		ORDER BY saved_date DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var projects []SavedProject
	for rows.Next() {
		var p SavedProject
		if err := rows.Scan(&p.ProjectID, &p.ProjectName, &p.ClientName, &p.SavedDate); err != nil {
			return nil, fmt.Errorf("scan project row: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate project rows: %w", err)
	}
	return projects, nil
}

// Delete removes a saved project. Deleting an absent ID is not an error.
func (s *Store) Delete(projectID string) error {
	if _, err := s.db.Exec(`DELETE FROM projects WHERE project_id = ?`, projectID); err != nil {
		return fmt.Errorf("delete project %s: %w", projectID, err)
	}
	return nil
}

// Close closes the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
