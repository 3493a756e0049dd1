package repository

import (
	"database/sql"

	"thaovyxe/internal/db"
)

const postSelect = `
	SELECT p.post_id, p.title, p.content, p.image, p.category,
	       p.created_by, u.username AS author, p.created_at, p.updated_at
	FROM posts p
	LEFT JOIN users u ON u.user_id = p.created_by`

type PostRepository interface {
	ListLatest(limit int) ([]db.Post, error)
	ListAll() ([]db.Post, error)
	GetByID(id int) (*db.Post, error)
	Create(p *db.Post) (int, error)
	Update(id int, p *db.Post) (bool, error)
	Delete(id int) (bool, error)
}

type postRepository struct {
	DB *sql.DB
}

func NewPostRepository(database *sql.DB) PostRepository {
	return &postRepository{DB: database}
}

func (r *postRepository) ListLatest(limit int) ([]db.Post, error) {
	rows, err := r.DB.Query(postSelect+" ORDER BY p.created_at DESC LIMIT $1", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPosts(rows)
}

func (r *postRepository) ListAll() ([]db.Post, error) {
	rows, err := r.DB.Query(postSelect + " ORDER BY p.created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPosts(rows)
}

func collectPosts(rows *sql.Rows) ([]db.Post, error) {
	var posts []db.Post
	for rows.Next() {
		var p db.Post
		err := rows.Scan(&p.ID, &p.Title, &p.Content, &p.Image, &p.Category,
			&p.CreatedBy, &p.Author, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func (r *postRepository) GetByID(id int) (*db.Post, error) {
	var p db.Post
	err := r.DB.QueryRow(postSelect+" WHERE p.post_id = $1", id).Scan(
		&p.ID, &p.Title, &p.Content, &p.Image, &p.Category,
		&p.CreatedBy, &p.Author, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *postRepository) Create(p *db.Post) (int, error) {
	err := r.DB.QueryRow(
		`INSERT INTO posts (title, content, image, category, created_by) VALUES ($1, $2, $3, $4, $5) RETURNING post_id`,
		p.Title, p.Content, p.Image, p.Category, p.CreatedBy).Scan(&p.ID)
	if err != nil {
		return 0, err
	}
	return p.ID, nil
}

func (r *postRepository) Update(id int, p *db.Post) (bool, error) {
	res, err := r.DB.Exec(
		`UPDATE posts SET title = $1, content = $2, image = $3, category = $4, updated_at = NOW() WHERE post_id = $5`,
		p.Title, p.Content, p.Image, p.Category, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	return affected > 0, err
}

func (r *postRepository) Delete(id int) (bool, error) {
	res, err := r.DB.Exec(`DELETE FROM posts WHERE post_id = $1`, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	return affected > 0, err
}
