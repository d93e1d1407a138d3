package localrepo_repository

import (
	"context"
	"errors"

	"gh-pr-mirror/internal/domain/models"
	ports "gh-pr-mirror/internal/domain/ports/output"
	repository_port "gh-pr-mirror/internal/domain/ports/output/repository"
	"gh-pr-mirror/internal/infrastructure/persistence/postgres"
	ghrepo_repository "gh-pr-mirror/internal/infrastructure/persistence/postgres/ghrepo"
	"gh-pr-mirror/internal/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

type RepositoryRepository struct {
	querier postgres.Querier
	log     ports.Logger
}

func NewRepositoryRepository(querier postgres.Querier, log ports.Logger) repository_port.RepositoryRepository {
	return &RepositoryRepository{querier: querier, log: log}
}

const selectColumns = `id, name, path, is_missing, github_repository_id, created_at, updated_at`

func (r *RepositoryRepository) CreateRepository(ctx context.Context, repo *models.Repository) error {
	if repo.Name == "" || repo.Path == "" {
		return utils.ErrInvalidArgument
	}
	if repo.ID == uuid.Nil {
		repo.ID = uuid.New()
	}
	var ghID pgtype.UUID
	if repo.GitHubRepository != nil {
		ghID = postgres.NullUUID(&repo.GitHubRepository.ID)
	}
	const q = `
		INSERT INTO repositories (id, name, path, is_missing, github_repository_id, created_at, updated_at)
		VALUES (@id, @name, @path, @is_missing, @github_repository_id, now(), now())
		RETURNING created_at, updated_at;
	`
	row := r.querier.QueryRow(ctx, q, pgx.NamedArgs{
		"id":                   repo.ID,
		"name":                 repo.Name,
		"path":                 repo.Path,
		"is_missing":           repo.IsMissing,
		"github_repository_id": ghID,
	})
	if err := row.Scan(&repo.CreatedAt, &repo.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == postgres.CodeUniqueViolation {
			return utils.ErrAlreadyExists
		}
		r.log.Error("CreateRepository failed", "name", repo.Name, "path", repo.Path, "err", err)
		return err
	}
	return nil
}

func (r *RepositoryRepository) GetRepositoryByID(ctx context.Context, id uuid.UUID) (*models.Repository, error) {
	q := `SELECT ` + selectColumns + ` FROM repositories WHERE id = @id;`
	return r.getOne(ctx, q, pgx.NamedArgs{"id": id})
}

func (r *RepositoryRepository) GetRepositoryByPath(ctx context.Context, path string) (*models.Repository, error) {
	q := `SELECT ` + selectColumns + ` FROM repositories WHERE path = @path ORDER BY created_at LIMIT 1;`
	return r.getOne(ctx, q, pgx.NamedArgs{"path": path})
}

func (r *RepositoryRepository) GetRepository(ctx context.Context, name string, path string) (*models.Repository, error) {
	q := `SELECT ` + selectColumns + ` FROM repositories WHERE name = @name AND path = @path;`
	return r.getOne(ctx, q, pgx.NamedArgs{"name": name, "path": path})
}

func (r *RepositoryRepository) ListRepositories(ctx context.Context) ([]*models.Repository, error) {
	q := `SELECT ` + selectColumns + ` FROM repositories ORDER BY name, path;`
	rows, err := r.querier.Query(ctx, q)
	if err != nil {
		r.log.Error("ListRepositories query failed", "err", err)
		return nil, err
	}
	var res []*models.Repository
	var ghIDs []pgtype.UUID
	for rows.Next() {
		repo, ghID, err := scanRepository(rows)
		if err != nil {
			rows.Close()
			r.log.Error("ListRepositories scan failed", "err", err)
			return nil, err
		}
		res = append(res, repo)
		ghIDs = append(ghIDs, ghID)
	}
	rows.Close()
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	for i, repo := range res {
		if err := r.attachGitHubRepository(ctx, repo, ghIDs[i]); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func (r *RepositoryRepository) UpdateMissing(ctx context.Context, name string, path string, missing bool) error {
	const q = `
		UPDATE repositories
		SET is_missing = @missing,
			updated_at = now()
		WHERE name = @name AND path = @path;
	`
	return r.exec(ctx, "UpdateMissing", q, pgx.NamedArgs{"name": name, "path": path, "missing": missing})
}

func (r *RepositoryRepository) UpdatePath(ctx context.Context, name string, path string, newPath string) error {
	if newPath == "" {
		return utils.ErrInvalidArgument
	}
	const q = `
		UPDATE repositories
		SET path = @new_path,
			is_missing = false,
			updated_at = now()
		WHERE name = @name AND path = @path;
	`
	return r.exec(ctx, "UpdatePath", q, pgx.NamedArgs{"name": name, "path": path, "new_path": newPath})
}

func (r *RepositoryRepository) LinkGitHubRepository(ctx context.Context, name string, path string, githubRepositoryID uuid.UUID) error {
	const q = `
		UPDATE repositories
		SET github_repository_id = @github_repository_id,
			updated_at = now()
		WHERE name = @name AND path = @path;
	`
	return r.exec(ctx, "LinkGitHubRepository", q, pgx.NamedArgs{"name": name, "path": path, "github_repository_id": githubRepositoryID})
}

func (r *RepositoryRepository) exec(ctx context.Context, op string, q string, args pgx.NamedArgs) error {
	tag, err := r.querier.Exec(ctx, q, args)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case postgres.CodeUniqueViolation:
				return utils.ErrAlreadyExists
			case postgres.CodeForeignKeyViolation:
				return utils.ErrGitHubRepositoryNotFound
			}
		}
		r.log.Error(op+" failed", "name", args["name"], "path", args["path"], "err", err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return utils.ErrRepositoryNotFound
	}
	return nil
}

func (r *RepositoryRepository) getOne(ctx context.Context, q string, args pgx.NamedArgs) (*models.Repository, error) {
	repo, ghID, err := scanRepository(r.querier.QueryRow(ctx, q, args))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, utils.ErrRepositoryNotFound
		}
		r.log.Error("get repository failed", "args", args, "err", err)
		return nil, err
	}
	if err := r.attachGitHubRepository(ctx, repo, ghID); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *RepositoryRepository) attachGitHubRepository(ctx context.Context, repo *models.Repository, ghID pgtype.UUID) error {
	if !ghID.Valid {
		return nil
	}
	gh, err := ghrepo_repository.Load(ctx, r.querier, r.log, uuid.UUID(ghID.Bytes))
	if err != nil {
		return err
	}
	repo.GitHubRepository = gh
	return nil
}

func scanRepository(row pgx.Row) (*models.Repository, pgtype.UUID, error) {
	var repo models.Repository
	var ghID pgtype.UUID
	if err := row.Scan(&repo.ID, &repo.Name, &repo.Path, &repo.IsMissing, &ghID, &repo.CreatedAt, &repo.UpdatedAt); err != nil {
		return nil, ghID, err
	}
	return &repo, ghID, nil
}
