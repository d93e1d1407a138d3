package ghrepo_repository

import (
	"context"
	"errors"

	"gh-pr-mirror/internal/domain/models"
	ports "gh-pr-mirror/internal/domain/ports/output"
	ghrepo_port "gh-pr-mirror/internal/domain/ports/output/ghrepository"
	"gh-pr-mirror/internal/infrastructure/persistence/postgres"
	"gh-pr-mirror/internal/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

type GitHubRepositoryRepository struct {
	querier postgres.Querier
	log     ports.Logger
}

func NewGitHubRepositoryRepository(querier postgres.Querier, log ports.Logger) ghrepo_port.GitHubRepositoryRepository {
	return &GitHubRepositoryRepository{querier: querier, log: log}
}

const selectColumns = `id, name, owner_login, owner_name, owner_email, owner_endpoint, owner_avatar_url,
	default_branch, is_private, clone_url, html_url, parent_id, created_at, updated_at`

func (r *GitHubRepositoryRepository) UpsertGitHubRepository(ctx context.Context, repo *models.GitHubRepository) error {
	if repo == nil || repo.Name == "" || repo.Owner.Login == "" {
		return utils.ErrInvalidArgument
	}
	if repo.ID == uuid.Nil {
		repo.ID = uuid.New()
	}
	// A PR head repository carries no lineage; keep the stored parent then.
	const q = `
		INSERT INTO github_repositories (id, name, owner_login, owner_name, owner_email, owner_endpoint, owner_avatar_url,
			default_branch, is_private, clone_url, html_url, parent_id, created_at, updated_at)
		VALUES (@id, @name, @owner_login, @owner_name, @owner_email, @owner_endpoint, @owner_avatar_url,
			@default_branch, @is_private, @clone_url, @html_url, @parent_id, now(), now())
		ON CONFLICT (owner_endpoint, owner_login, name) DO UPDATE
		SET owner_name = EXCLUDED.owner_name,
			owner_email = EXCLUDED.owner_email,
			owner_avatar_url = EXCLUDED.owner_avatar_url,
			default_branch = EXCLUDED.default_branch,
			is_private = EXCLUDED.is_private,
			clone_url = EXCLUDED.clone_url,
			html_url = EXCLUDED.html_url,
			parent_id = COALESCE(EXCLUDED.parent_id, github_repositories.parent_id),
			updated_at = now()
		RETURNING id, parent_id, created_at, updated_at;
	`
	args := pgx.NamedArgs{
		"id":               repo.ID,
		"name":             repo.Name,
		"owner_login":      repo.Owner.Login,
		"owner_name":       repo.Owner.Name,
		"owner_email":      repo.Owner.Email,
		"owner_endpoint":   repo.Owner.Endpoint,
		"owner_avatar_url": repo.Owner.AvatarURL,
		"default_branch":   repo.DefaultBranch,
		"is_private":       repo.IsPrivate,
		"clone_url":        repo.CloneURL,
		"html_url":         repo.HTMLURL,
		"parent_id":        postgres.NullUUID(repo.ParentID),
	}
	var parentID pgtype.UUID
	row := r.querier.QueryRow(ctx, q, args)
	if err := row.Scan(&repo.ID, &parentID, &repo.CreatedAt, &repo.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == postgres.CodeForeignKeyViolation {
			r.log.Error("UpsertGitHubRepository unknown parent", "name", repo.FullName(), "parent_id", repo.ParentID)
			return utils.ErrGitHubRepositoryNotFound
		}
		r.log.Error("UpsertGitHubRepository failed", "name", repo.FullName(), "err", err)
		return err
	}
	repo.ParentID = postgres.UUIDPtr(parentID)
	return nil
}

// GetGitHubRepositoryByID loads the record and resolves its parent chain.
func (r *GitHubRepositoryRepository) GetGitHubRepositoryByID(ctx context.Context, id uuid.UUID) (*models.GitHubRepository, error) {
	return Load(ctx, r.querier, r.log, id)
}

// Load reads the record with the given id and follows parent ids until the
// chain ends or a record repeats.
func Load(ctx context.Context, q postgres.Querier, log ports.Logger, id uuid.UUID) (*models.GitHubRepository, error) {
	root, err := loadOne(ctx, q, log, id)
	if err != nil {
		return nil, err
	}
	seen := map[uuid.UUID]*models.GitHubRepository{root.ID: root}
	cur := root
	for cur.ParentID != nil {
		if p, ok := seen[*cur.ParentID]; ok {
			cur.Parent = p
			break
		}
		p, err := loadOne(ctx, q, log, *cur.ParentID)
		if errors.Is(err, utils.ErrGitHubRepositoryNotFound) {
			break
		}
		if err != nil {
			return nil, err
		}
		seen[p.ID] = p
		cur.Parent = p
		cur = p
	}
	return root, nil
}

func loadOne(ctx context.Context, q postgres.Querier, log ports.Logger, id uuid.UUID) (*models.GitHubRepository, error) {
	query := `SELECT ` + selectColumns + ` FROM github_repositories WHERE id = @id;`
	var g models.GitHubRepository
	var parentID pgtype.UUID
	err := q.QueryRow(ctx, query, pgx.NamedArgs{"id": id}).Scan(
		&g.ID, &g.Name, &g.Owner.Login, &g.Owner.Name, &g.Owner.Email, &g.Owner.Endpoint, &g.Owner.AvatarURL,
		&g.DefaultBranch, &g.IsPrivate, &g.CloneURL, &g.HTMLURL, &parentID, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, utils.ErrGitHubRepositoryNotFound
		}
		log.Error("GetGitHubRepositoryByID failed", "id", id, "err", err)
		return nil, err
	}
	g.ParentID = postgres.UUIDPtr(parentID)
	return &g, nil
}
