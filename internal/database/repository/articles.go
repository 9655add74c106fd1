package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"marginalia/internal/database"
)

// ArticleRepo handles articles.
type ArticleRepo struct {
	db *sql.DB
}

func NewArticleRepo(db *sql.DB) *ArticleRepo {
	return &ArticleRepo{db: db}
}

const articleColumns = `id, url, title, site_name, summary, notes, status, added_at, read_at`

func (r *ArticleRepo) Insert(ctx context.Context, a Article) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO articles(id, url, title, site_name, summary, notes, status, added_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP);
	`, a.ID, a.URL, a.Title, a.SiteName, a.Summary, a.Notes, a.Status)
	return err
}

// InsertWithTags saves the article and attaches the named tags in one
// transaction, creating tags that do not exist yet. A failed tag leaves
// no partial article behind.
func (r *ArticleRepo) InsertWithTags(ctx context.Context, a Article, tagNames []string) error {
	return database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
		INSERT INTO articles(id, url, title, site_name, summary, notes, status, added_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP);
		`, a.ID, a.URL, a.Title, a.SiteName, a.Summary, a.Notes, a.Status); err != nil {
			return err
		}
		for _, name := range tagNames {
			var tagID string
			err := tx.QueryRowContext(ctx, `SELECT id FROM tags WHERE name = ?`, name).Scan(&tagID)
			if err == sql.ErrNoRows {
				tagID = uuid.NewString()
				if _, err := tx.ExecContext(ctx, `INSERT INTO tags(id, name) VALUES (?, ?)`, tagID, name); err != nil {
					return err
				}
			} else if err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx, `
			INSERT OR IGNORE INTO article_tags(article_id, tag_id) VALUES (?, ?)
			`, a.ID, tagID); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *ArticleRepo) Get(ctx context.Context, id string) (*Article, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+articleColumns+` FROM articles WHERE id = ?`, id)
	a, err := scanArticle(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return a, r.loadTags(ctx, a)
}

func (r *ArticleRepo) ByURL(ctx context.Context, url string) (*Article, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+articleColumns+` FROM articles WHERE url = ?`, url)
	a, err := scanArticle(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return a, r.loadTags(ctx, a)
}

// ListByStatus returns articles in the given status, newest first.
func (r *ArticleRepo) ListByStatus(ctx context.Context, status string) ([]Article, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT `+articleColumns+` FROM articles WHERE status = ? ORDER BY added_at DESC, id
	`, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	return out, rows.Err()
}

// ListActive returns unread and reading articles, newest first.
func (r *ArticleRepo) ListActive(ctx context.Context) ([]Article, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT `+articleColumns+` FROM articles WHERE status != ? ORDER BY added_at DESC, id
	`, StatusArchived)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	return out, rows.Err()
}

// ListByTag returns non-archived articles carrying the given tag, newest
// first.
func (r *ArticleRepo) ListByTag(ctx context.Context, tagName string) ([]Article, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT a.id, a.url, a.title, a.site_name, a.summary, a.notes, a.status, a.added_at, a.read_at
	FROM articles a
	JOIN article_tags at ON at.article_id = a.id
	JOIN tags t ON t.id = at.tag_id
	WHERE t.name = ? AND a.status != ?
	ORDER BY a.added_at DESC, a.id
	`, tagName, StatusArchived)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	return out, rows.Err()
}

func (r *ArticleRepo) UpdateMetadata(ctx context.Context, id, title, siteName, summary string) error {
	_, err := r.db.ExecContext(ctx, `
	UPDATE articles SET title = ?, site_name = ?, summary = ? WHERE id = ?
	`, title, siteName, summary, id)
	return err
}

func (r *ArticleRepo) UpdateNotes(ctx context.Context, id, notes string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE articles SET notes = ? WHERE id = ?`, notes, id)
	return err
}

// SetStatus moves an article between unread/reading/archived. Archiving
// stamps read_at; leaving archived clears it.
func (r *ArticleRepo) SetStatus(ctx context.Context, id, status string) error {
	switch status {
	case StatusUnread, StatusReading, StatusArchived:
	default:
		return fmt.Errorf("invalid article status %q", status)
	}
	if status == StatusArchived {
		_, err := r.db.ExecContext(ctx, `
		UPDATE articles SET status = ?, read_at = CURRENT_TIMESTAMP WHERE id = ?
		`, status, id)
		return err
	}
	_, err := r.db.ExecContext(ctx, `
	UPDATE articles SET status = ?, read_at = NULL WHERE id = ?
	`, status, id)
	return err
}

func (r *ArticleRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM articles WHERE id = ?`, id)
	return err
}

// Titles returns id/title pairs for every non-archived article. The dedup
// service uses this without paying for full rows.
func (r *ArticleRepo) Titles(ctx context.Context) (map[string]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, title FROM articles WHERE status != ?`, StatusArchived)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := map[string]string{}
	for rows.Next() {
		var id, title string
		if err := rows.Scan(&id, &title); err != nil {
			return nil, err
		}
		out[id] = title
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanArticle(row rowScanner) (*Article, error) {
	var a Article
	if err := row.Scan(&a.ID, &a.URL, &a.Title, &a.SiteName, &a.Summary, &a.Notes, &a.Status, &a.AddedAt, &a.ReadAt); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *ArticleRepo) loadTags(ctx context.Context, a *Article) error {
	rows, err := r.db.QueryContext(ctx, `
	SELECT t.id, t.name FROM tags t
	JOIN article_tags at ON at.tag_id = t.id
	WHERE at.article_id = ?
	ORDER BY t.name
	`, a.ID)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var t Tag
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return err
		}
		a.Tags = append(a.Tags, t)
	}
	return rows.Err()
}
