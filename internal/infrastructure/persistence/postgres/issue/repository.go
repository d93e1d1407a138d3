package issue_repository

import (
	"context"
	"errors"
	"time"

	"gh-pr-mirror/internal/domain/models"
	ports "gh-pr-mirror/internal/domain/ports/output"
	issue_port "gh-pr-mirror/internal/domain/ports/output/issue"
	"gh-pr-mirror/internal/infrastructure/persistence/postgres"
	"gh-pr-mirror/internal/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

type IssueRepository struct {
	querier postgres.Querier
	log     ports.Logger
}

func NewIssueRepository(querier postgres.Querier, log ports.Logger) issue_port.IssueRepository {
	return &IssueRepository{querier: querier, log: log}
}

func (r *IssueRepository) UpsertIssue(ctx context.Context, repositoryID uuid.UUID, issue *models.Issue) error {
	if issue == nil || issue.Number <= 0 {
		return utils.ErrInvalidArgument
	}
	if issue.ID == uuid.Nil {
		issue.ID = uuid.New()
	}
	const q = `
		INSERT INTO issues (id, github_repository_id, number, title, updated_at)
		VALUES (@id, @github_repository_id, @number, @title, @updated_at)
		ON CONFLICT (github_repository_id, number) DO UPDATE
		SET title = EXCLUDED.title,
			updated_at = EXCLUDED.updated_at
		RETURNING id;
	`
	row := r.querier.QueryRow(ctx, q, pgx.NamedArgs{
		"id":                   issue.ID,
		"github_repository_id": repositoryID,
		"number":               issue.Number,
		"title":                issue.Title,
		"updated_at":           issue.UpdatedAt,
	})
	if err := row.Scan(&issue.ID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == postgres.CodeForeignKeyViolation {
			return utils.ErrGitHubRepositoryNotFound
		}
		r.log.Error("UpsertIssue failed", "repository_id", repositoryID, "number", issue.Number, "err", err)
		return err
	}
	return nil
}

func (r *IssueRepository) DeleteIssue(ctx context.Context, repositoryID uuid.UUID, number int) (bool, error) {
	const q = `
		DELETE FROM issues
		WHERE github_repository_id = @github_repository_id AND number = @number;
	`
	tag, err := r.querier.Exec(ctx, q, pgx.NamedArgs{"github_repository_id": repositoryID, "number": number})
	if err != nil {
		r.log.Error("DeleteIssue failed", "repository_id", repositoryID, "number", number, "err", err)
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *IssueRepository) ListIssuesByRepository(ctx context.Context, repositoryID uuid.UUID) ([]*models.Issue, error) {
	const q = `
		SELECT id, number, title, updated_at
		FROM issues
		WHERE github_repository_id = @github_repository_id
		ORDER BY number;
	`
	rows, err := r.querier.Query(ctx, q, pgx.NamedArgs{"github_repository_id": repositoryID})
	if err != nil {
		r.log.Error("ListIssuesByRepository query failed", "repository_id", repositoryID, "err", err)
		return nil, err
	}
	defer rows.Close()

	res := make([]*models.Issue, 0)
	for rows.Next() {
		var is models.Issue
		if err := rows.Scan(&is.ID, &is.Number, &is.Title, &is.UpdatedAt); err != nil {
			r.log.Error("ListIssuesByRepository scan failed", "err", err)
			return nil, err
		}
		res = append(res, &is)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return res, nil
}

func (r *IssueRepository) LatestUpdatedAt(ctx context.Context, repositoryID uuid.UUID) (*time.Time, error) {
	const q = `
		SELECT max(updated_at)
		FROM issues
		WHERE github_repository_id = @github_repository_id;
	`
	var latest pgtype.Timestamptz
	if err := r.querier.QueryRow(ctx, q, pgx.NamedArgs{"github_repository_id": repositoryID}).Scan(&latest); err != nil {
		r.log.Error("LatestUpdatedAt failed", "repository_id", repositoryID, "err", err)
		return nil, err
	}
	if !latest.Valid {
		return nil, nil
	}
	t := latest.Time
	return &t, nil
}
