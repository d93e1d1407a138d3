package pullrequest_repository

import (
	"context"
	"errors"

	"gh-pr-mirror/internal/domain/models"
	ports "gh-pr-mirror/internal/domain/ports/output"
	pullrequest_port "gh-pr-mirror/internal/domain/ports/output/pullrequest"
	"gh-pr-mirror/internal/infrastructure/persistence/postgres"
	"gh-pr-mirror/internal/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

type PullRequestRepository struct {
	querier postgres.Querier
	log     ports.Logger
}

func NewPullRequestRepository(querier postgres.Querier, log ports.Logger) pullrequest_port.PullRequestRepository {
	return &PullRequestRepository{querier: querier, log: log}
}

func (r *PullRequestRepository) UpsertPullRequest(ctx context.Context, pr *models.PullRequest) error {
	if pr == nil || pr.Base.RepositoryID == nil || pr.Number <= 0 {
		return utils.ErrInvalidArgument
	}
	if pr.ID == uuid.Nil {
		pr.ID = uuid.New()
	}
	const q = `
		INSERT INTO pull_requests (id, github_repository_id, number, title, author, created_at,
			head_ref, head_sha, head_github_repository_id, base_ref, base_sha, updated_at)
		VALUES (@id, @github_repository_id, @number, @title, @author, @created_at,
			@head_ref, @head_sha, @head_github_repository_id, @base_ref, @base_sha, now())
		ON CONFLICT (github_repository_id, number) DO UPDATE
		SET title = EXCLUDED.title,
			author = EXCLUDED.author,
			created_at = EXCLUDED.created_at,
			head_ref = EXCLUDED.head_ref,
			head_sha = EXCLUDED.head_sha,
			head_github_repository_id = EXCLUDED.head_github_repository_id,
			base_ref = EXCLUDED.base_ref,
			base_sha = EXCLUDED.base_sha,
			updated_at = now()
		RETURNING id;
	`
	row := r.querier.QueryRow(ctx, q, pgx.NamedArgs{
		"id":                        pr.ID,
		"github_repository_id":      *pr.Base.RepositoryID,
		"number":                    pr.Number,
		"title":                     pr.Title,
		"author":                    pr.Author,
		"created_at":                pr.CreatedAt,
		"head_ref":                  pr.Head.Ref,
		"head_sha":                  pr.Head.SHA,
		"head_github_repository_id": postgres.NullUUID(pr.Head.RepositoryID),
		"base_ref":                  pr.Base.Ref,
		"base_sha":                  pr.Base.SHA,
	})
	if err := row.Scan(&pr.ID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == postgres.CodeForeignKeyViolation {
			r.log.Error("UpsertPullRequest unknown repository", "number", pr.Number, "constraint", pgErr.ConstraintName)
			return utils.ErrGitHubRepositoryNotFound
		}
		r.log.Error("UpsertPullRequest failed", "number", pr.Number, "err", err)
		return err
	}
	return nil
}

func (r *PullRequestRepository) DeletePullRequest(ctx context.Context, repositoryID uuid.UUID, number int) (bool, error) {
	const q = `
		DELETE FROM pull_requests
		WHERE github_repository_id = @github_repository_id AND number = @number;
	`
	tag, err := r.querier.Exec(ctx, q, pgx.NamedArgs{"github_repository_id": repositoryID, "number": number})
	if err != nil {
		r.log.Error("DeletePullRequest failed", "repository_id", repositoryID, "number", number, "err", err)
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *PullRequestRepository) DeletePullRequestsExcept(ctx context.Context, repositoryID uuid.UUID, numbers []int) (int64, error) {
	keep := utils.UniqueInts(numbers)
	const q = `
		DELETE FROM pull_requests
		WHERE github_repository_id = @github_repository_id AND NOT (number = ANY(@numbers));
	`
	tag, err := r.querier.Exec(ctx, q, pgx.NamedArgs{"github_repository_id": repositoryID, "numbers": keep})
	if err != nil {
		r.log.Error("DeletePullRequestsExcept failed", "repository_id", repositoryID, "err", err)
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// ListPullRequestsByRepository returns the cached pull requests targeting
// the repository, highest number first. Refs carry repository ids only.
func (r *PullRequestRepository) ListPullRequestsByRepository(ctx context.Context, repositoryID uuid.UUID) ([]*models.PullRequest, error) {
	const q = `
		SELECT id, github_repository_id, number, title, author, created_at,
			head_ref, head_sha, head_github_repository_id, base_ref, base_sha
		FROM pull_requests
		WHERE github_repository_id = @github_repository_id
		ORDER BY number DESC;
	`
	rows, err := r.querier.Query(ctx, q, pgx.NamedArgs{"github_repository_id": repositoryID})
	if err != nil {
		r.log.Error("ListPullRequestsByRepository query failed", "repository_id", repositoryID, "err", err)
		return nil, err
	}
	defer rows.Close()

	res := make([]*models.PullRequest, 0)
	for rows.Next() {
		var pr models.PullRequest
		var baseID uuid.UUID
		var headID pgtype.UUID
		if err := rows.Scan(&pr.ID, &baseID, &pr.Number, &pr.Title, &pr.Author, &pr.CreatedAt,
			&pr.Head.Ref, &pr.Head.SHA, &headID, &pr.Base.Ref, &pr.Base.SHA); err != nil {
			r.log.Error("ListPullRequestsByRepository scan failed", "err", err)
			return nil, err
		}
		pr.Base.RepositoryID = &baseID
		pr.Head.RepositoryID = postgres.UUIDPtr(headID)
		res = append(res, &pr)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return res, nil
}

func (r *PullRequestRepository) UpsertPullRequestStatus(ctx context.Context, status *models.PullRequestStatus) error {
	if status == nil || status.SHA == "" || status.PullRequestID == uuid.Nil {
		return utils.ErrInvalidArgument
	}
	if status.ID == uuid.Nil {
		status.ID = uuid.New()
	}
	checks := status.Statuses
	if checks == nil {
		checks = []models.StatusCheck{}
	}
	const q = `
		INSERT INTO pull_request_statuses (id, pull_request_id, sha, state, total_count, statuses, updated_at)
		VALUES (@id, @pull_request_id, @sha, @state, @total_count, @statuses, now())
		ON CONFLICT (sha, pull_request_id) DO UPDATE
		SET state = EXCLUDED.state,
			total_count = EXCLUDED.total_count,
			statuses = EXCLUDED.statuses,
			updated_at = now()
		RETURNING id, updated_at;
	`
	row := r.querier.QueryRow(ctx, q, pgx.NamedArgs{
		"id":              status.ID,
		"pull_request_id": status.PullRequestID,
		"sha":             status.SHA,
		"state":           string(status.State),
		"total_count":     status.TotalCount,
		"statuses":        checks,
	})
	if err := row.Scan(&status.ID, &status.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == postgres.CodeForeignKeyViolation {
			return utils.ErrPullRequestNotFound
		}
		r.log.Error("UpsertPullRequestStatus failed", "sha", status.SHA, "pull_request_id", status.PullRequestID, "err", err)
		return err
	}
	return nil
}

func (r *PullRequestRepository) FindPullRequestStatus(ctx context.Context, sha string, pullRequestID uuid.UUID) (*models.PullRequestStatus, error) {
	const q = `
		SELECT id, pull_request_id, sha, state, total_count, statuses, updated_at
		FROM pull_request_statuses
		WHERE sha = @sha AND pull_request_id = @pull_request_id
		LIMIT 1;
	`
	var st models.PullRequestStatus
	var state string
	row := r.querier.QueryRow(ctx, q, pgx.NamedArgs{"sha": sha, "pull_request_id": pullRequestID})
	if err := row.Scan(&st.ID, &st.PullRequestID, &st.SHA, &state, &st.TotalCount, &st.Statuses, &st.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, utils.ErrStatusNotFound
		}
		r.log.Error("FindPullRequestStatus failed", "sha", sha, "pull_request_id", pullRequestID, "err", err)
		return nil, err
	}
	st.State = models.StatusState(state)
	return &st, nil
}
