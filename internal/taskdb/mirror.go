package taskdb

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/taskflowhq/taskflow/tracker"
)

const timeFormat = time.RFC3339Nano

// Apply replaces the tables covered by a store change notification.
func (db *DB) Apply(change tracker.Change) error {
	switch change.Collection {
	case tracker.CollectionProjects:
		return db.SaveProjects(change.Projects)
	case tracker.CollectionTasks:
		return db.SaveTasks(change.Tasks)
	default:
		return fmt.Errorf("unknown collection %q", change.Collection)
	}
}

// SaveProjects replaces the projects table with the given snapshot.
func (db *DB) SaveProjects(projects []tracker.Project) error {
	return db.inTx(func(tx *sql.Tx) error {
		if _, err := tx.Exec("DELETE FROM projects"); err != nil {
			return err
		}
		for i := range projects {
			if err := insertProject(tx, &projects[i]); err != nil {
				return fmt.Errorf("insert project %s: %w", projects[i].ID, err)
			}
		}
		return nil
	})
}

// SaveTasks replaces the tasks, comments, and attachments tables with the
// given snapshot.
func (db *DB) SaveTasks(tasks []tracker.Task) error {
	return db.inTx(func(tx *sql.Tx) error {
		for _, table := range []string{"comments", "attachments", "tasks"} {
			if _, err := tx.Exec("DELETE FROM " + table); err != nil {
				return err
			}
		}
		for i := range tasks {
			if err := insertTask(tx, &tasks[i]); err != nil {
				return fmt.Errorf("insert task %s: %w", tasks[i].ID, err)
			}
		}
		return nil
	})
}

// LoadProjects reads every project, ordered by creation time.
func (db *DB) LoadProjects() ([]tracker.Project, error) {
	rows, err := db.Query(`
		SELECT id, name, description, status, priority, start_date, end_date,
		       progress, owner_id, team_members, created_at, updated_at
		FROM projects ORDER BY created_at, id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []tracker.Project
	for rows.Next() {
		var p tracker.Project
		var startDate, createdAt, updatedAt string
		var endDate sql.NullString
		var members string
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Status, &p.Priority,
			&startDate, &endDate, &p.Progress, &p.OwnerID, &members,
			&createdAt, &updatedAt); err != nil {
			return nil, err
		}
		if err := parseTimes(map[*time.Time]string{
			&p.StartDate: startDate,
			&p.CreatedAt: createdAt,
			&p.UpdatedAt: updatedAt,
		}); err != nil {
			return nil, err
		}
		if endDate.Valid {
			parsed, err := time.Parse(timeFormat, endDate.String)
			if err != nil {
				return nil, err
			}
			p.EndDate = &parsed
		}
		if err := json.Unmarshal([]byte(members), &p.TeamMembers); err != nil {
			return nil, fmt.Errorf("parse team members for %s: %w", p.ID, err)
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// LoadTasks reads every task with its comments and attachments, ordered by
// creation time.
func (db *DB) LoadTasks() ([]tracker.Task, error) {
	rows, err := db.Query(`
		SELECT id, title, description, status, priority, assignee_id,
		       project_id, due_date, tags, created_at, updated_at
		FROM tasks ORDER BY created_at, id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []tracker.Task
	for rows.Next() {
		var t tracker.Task
		var createdAt, updatedAt, tags string
		var dueDate sql.NullString
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Status, &t.Priority,
			&t.AssigneeID, &t.ProjectID, &dueDate, &tags, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		if err := parseTimes(map[*time.Time]string{
			&t.CreatedAt: createdAt,
			&t.UpdatedAt: updatedAt,
		}); err != nil {
			return nil, err
		}
		if dueDate.Valid {
			parsed, err := time.Parse(timeFormat, dueDate.String)
			if err != nil {
				return nil, err
			}
			t.DueDate = &parsed
		}
		if err := json.Unmarshal([]byte(tags), &t.Tags); err != nil {
			return nil, fmt.Errorf("parse tags for %s: %w", t.ID, err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range tasks {
		comments, err := db.loadComments(tasks[i].ID)
		if err != nil {
			return nil, err
		}
		tasks[i].Comments = comments

		attachments, err := db.loadAttachments(tasks[i].ID)
		if err != nil {
			return nil, err
		}
		tasks[i].Attachments = attachments
	}

	return tasks, nil
}

func (db *DB) loadComments(taskID string) ([]tracker.Comment, error) {
	rows, err := db.Query(`
		SELECT id, content, author_id, created_at, updated_at
		FROM comments WHERE task_id = ? ORDER BY created_at, id
	`, taskID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []tracker.Comment
	for rows.Next() {
		var c tracker.Comment
		var createdAt, updatedAt string
		if err := rows.Scan(&c.ID, &c.Content, &c.AuthorID, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		if err := parseTimes(map[*time.Time]string{
			&c.CreatedAt: createdAt,
			&c.UpdatedAt: updatedAt,
		}); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func (db *DB) loadAttachments(taskID string) ([]tracker.Attachment, error) {
	rows, err := db.Query(`
		SELECT id, name, size, content_type, url, uploaded_by, uploaded_at
		FROM attachments WHERE task_id = ? ORDER BY uploaded_at, id
	`, taskID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var attachments []tracker.Attachment
	for rows.Next() {
		var a tracker.Attachment
		var uploadedAt string
		if err := rows.Scan(&a.ID, &a.Name, &a.Size, &a.ContentType, &a.URL, &a.UploadedBy, &uploadedAt); err != nil {
			return nil, err
		}
		if err := parseTimes(map[*time.Time]string{&a.UploadedAt: uploadedAt}); err != nil {
			return nil, err
		}
		attachments = append(attachments, a)
	}
	return attachments, rows.Err()
}

func insertProject(tx *sql.Tx, p *tracker.Project) error {
	members, err := json.Marshal(p.TeamMembers)
	if err != nil {
		return err
	}
	var endDate any
	if p.EndDate != nil {
		endDate = p.EndDate.Format(timeFormat)
	}
	_, err = tx.Exec(`
		INSERT INTO projects (id, name, description, status, priority, start_date,
			end_date, progress, owner_id, team_members, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, p.ID, p.Name, p.Description, string(p.Status), string(p.Priority),
		p.StartDate.Format(timeFormat), endDate, p.Progress, p.OwnerID,
		string(members), p.CreatedAt.Format(timeFormat), p.UpdatedAt.Format(timeFormat))
	return err
}

func insertTask(tx *sql.Tx, t *tracker.Task) error {
	tags, err := json.Marshal(t.Tags)
	if err != nil {
		return err
	}
	var dueDate any
	if t.DueDate != nil {
		dueDate = t.DueDate.Format(timeFormat)
	}
	_, err = tx.Exec(`
		INSERT INTO tasks (id, title, description, status, priority, assignee_id,
			project_id, due_date, tags, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, t.ID, t.Title, t.Description, string(t.Status), string(t.Priority),
		t.AssigneeID, t.ProjectID, dueDate, string(tags),
		t.CreatedAt.Format(timeFormat), t.UpdatedAt.Format(timeFormat))
	if err != nil {
		return err
	}

	for i := range t.Comments {
		c := &t.Comments[i]
		if _, err := tx.Exec(`
			INSERT INTO comments (id, task_id, content, author_id, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?)
		`, c.ID, t.ID, c.Content, c.AuthorID,
			c.CreatedAt.Format(timeFormat), c.UpdatedAt.Format(timeFormat)); err != nil {
			return err
		}
	}

	for i := range t.Attachments {
		a := &t.Attachments[i]
		if _, err := tx.Exec(`
			INSERT INTO attachments (id, task_id, name, size, content_type, url, uploaded_by, uploaded_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, a.ID, t.ID, a.Name, a.Size, a.ContentType, a.URL, a.UploadedBy,
			a.UploadedAt.Format(timeFormat)); err != nil {
			return err
		}
	}

	return nil
}

func (db *DB) inTx(fn func(tx *sql.Tx) error) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

func parseTimes(fields map[*time.Time]string) error {
	for dest, value := range fields {
		parsed, err := time.Parse(timeFormat, value)
		if err != nil {
			return err
		}
		*dest = parsed
	}
	return nil
}
