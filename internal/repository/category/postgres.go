package category

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"storefront/internal/domain"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Category, error) {
	const q = `
SELECT id, name, COALESCE(image, '')
FROM categories
ORDER BY position ASC, name ASC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Category{}
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Image); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

// Upsert keeps the position of an existing category; new ones go last.
func (r *postgresRepo) Upsert(ctx context.Context, c domain.Category) (*domain.Category, error) {
	const q = `
INSERT INTO categories (id, name, image, position)
VALUES ($1, $2, NULLIF($3, ''), (SELECT COALESCE(MAX(position), 0) + 1 FROM categories))
ON CONFLICT (id) DO UPDATE SET
    name = EXCLUDED.name,
    image = EXCLUDED.image
RETURNING id, name, COALESCE(image, '')
`
	var out domain.Category
	if err := r.pool.QueryRow(ctx, q, c.ID, c.Name, c.Image).Scan(&out.ID, &out.Name, &out.Image); err != nil {
		return nil, err
	}
	return &out, nil
}
