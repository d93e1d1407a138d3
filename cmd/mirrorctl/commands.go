package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"gh-pr-mirror/internal/domain/models"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type appKey struct{}

// newRootCmd returns the command tree and a func releasing the app the run
// opened. Call release after Execute, including when it fails.
func newRootCmd() (*cobra.Command, func()) {
	var configDir string
	var opened *app
	release := func() {
		if opened != nil {
			opened.Close()
			opened = nil
		}
	}
	root := &cobra.Command{
		Use:   "mirrorctl",
		Short: "Mirror GitHub pull requests and issues for local repositories",
		Long: `mirrorctl keeps a local cache of open pull requests, their commit statuses
and issues for the GitHub repositories backing your local clones. It also
removes fork remotes that no longer back an open pull request.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), configDir)
			if err != nil {
				return err
			}
			opened = a
			cmd.SetContext(context.WithValue(cmd.Context(), appKey{}, a))
			return nil
		},
	}
	root.PersistentFlags().StringVar(&configDir, "config", "./config", "directory holding config.yaml")

	root.AddCommand(
		newAddCmd(),
		newListCmd(),
		newRefreshCmd(),
		newPRsCmd(),
		newIssuesCmd(),
		newPruneCmd(),
		newUpstreamCmd(),
	)
	return root, release
}

func appFrom(cmd *cobra.Command) *app {
	a, _ := cmd.Context().Value(appKey{}).(*app)
	return a
}

func newAddCmd() *cobra.Command {
	var gh string
	cmd := &cobra.Command{
		Use:   "add <path>",
		Short: "Track a local repository",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := appFrom(cmd)
			abs, err := filepath.Abs(args[0])
			if err != nil {
				return err
			}
			repo, err := a.repos.AddRepository(cmd.Context(), abs)
			if err != nil {
				return err
			}
			if gh != "" {
				owner, name, ok := strings.Cut(gh, "/")
				if !ok || owner == "" || name == "" {
					return fmt.Errorf("--github must be owner/name, got %q", gh)
				}
				if repo, err = a.repos.LinkGitHubRepository(cmd.Context(), repo, a.account, owner, name); err != nil {
					return err
				}
			}
			color.New(color.FgGreen).Printf("✅ Tracking %s at %s\n", repo.FullName(), repo.Path)
			return nil
		},
	}
	cmd.Flags().StringVar(&gh, "github", "", "link to the GitHub repository owner/name")
	return cmd
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tracked repositories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := appFrom(cmd)
			repos, err := a.repos.GetAll(cmd.Context())
			if err != nil {
				return err
			}
			if len(repos) == 0 {
				fmt.Println("No repositories tracked.")
				return nil
			}
			for _, r := range repos {
				color.New(color.FgGreen, color.Bold).Printf("📂 %s\n", r.FullName())
				fmt.Printf("   %s\n", r.Path)
				if r.IsMissing {
					color.New(color.FgRed).Println("   missing on disk")
				}
				if gh := r.GitHubRepository; gh != nil && gh.Parent != nil {
					color.New(color.FgBlue).Printf("   🔄 Forked from: %s\n", gh.Parent.FullName())
				}
			}
			return nil
		},
	}
}

func newRefreshCmd() *cobra.Command {
	var withIssues bool
	cmd := &cobra.Command{
		Use:   "refresh <path>",
		Short: "Fetch repository metadata and open pull requests",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := appFrom(cmd)
			ctx := cmd.Context()
			repo, err := a.lookup(ctx, args[0])
			if err != nil {
				return err
			}
			color.New(color.FgBlue).Printf("Refreshing %s...\n", repo.FullName())
			if repo, err = a.repos.RefreshGitHubRepository(ctx, repo, a.account); err != nil {
				return err
			}
			if err := a.prs.RefreshPullRequests(ctx, repo, a.account); err != nil {
				return err
			}
			if withIssues {
				if err := a.issues.RefreshIssues(ctx, repo, a.account); err != nil {
					return err
				}
			}
			prs, err := a.prs.GetPullRequests(ctx, repo)
			if err != nil {
				return err
			}
			printPullRequests(prs)
			return nil
		},
	}
	cmd.Flags().BoolVar(&withIssues, "issues", false, "refresh issues too")
	return cmd
}

func newPRsCmd() *cobra.Command {
	var query string
	cmd := &cobra.Command{
		Use:   "prs <path>",
		Short: "Show cached open pull requests",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := appFrom(cmd)
			repo, err := a.lookup(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			prs, err := a.prs.FindMatchingPullRequests(cmd.Context(), repo, query)
			if err != nil {
				return err
			}
			printPullRequests(prs)
			return nil
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "filter by number prefix or title")
	return cmd
}

func newIssuesCmd() *cobra.Command {
	var (
		query   string
		refresh bool
	)
	cmd := &cobra.Command{
		Use:   "issues <path>",
		Short: "Show cached open issues",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := appFrom(cmd)
			ctx := cmd.Context()
			repo, err := a.lookup(ctx, args[0])
			if err != nil {
				return err
			}
			if refresh {
				if err := a.issues.RefreshIssues(ctx, repo, a.account); err != nil {
					return err
				}
			}
			issues, err := a.issues.FindMatchingIssues(ctx, repo, query)
			if err != nil {
				return err
			}
			if len(issues) == 0 {
				fmt.Println("No open issues.")
				return nil
			}
			for _, i := range issues {
				color.New(color.FgYellow).Printf("#%d", i.Number)
				fmt.Printf(" %s\n", i.Title)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "filter by number prefix or title")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "fetch from GitHub first")
	return cmd
}

func newPruneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prune <path>",
		Short: "Remove fork remotes no longer backing an open pull request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := appFrom(cmd)
			ctx := cmd.Context()
			repo, err := a.lookup(ctx, args[0])
			if err != nil {
				return err
			}
			open, err := a.prs.GetPullRequests(ctx, repo)
			if err != nil {
				return err
			}
			removed, err := a.remotes.PruneStaleForkRemotes(ctx, repo, open)
			for _, r := range removed {
				color.New(color.FgRed).Printf("🗑️  Removed %s (%s)\n", r.Name, r.URL)
			}
			if err != nil {
				return err
			}
			if len(removed) == 0 {
				fmt.Println("No stale fork remotes.")
			}
			return nil
		},
	}
}

func newUpstreamCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upstream <path>",
		Short: "Add the parent repository of a fork as the upstream remote",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := appFrom(cmd)
			repo, err := a.lookup(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			r, err := a.remotes.AddUpstreamRemote(cmd.Context(), repo)
			if err != nil {
				return err
			}
			color.New(color.FgGreen).Printf("✅ %s -> %s\n", r.Name, r.URL)
			return nil
		},
	}
}

func printPullRequests(prs []*models.PullRequest) {
	if len(prs) == 0 {
		fmt.Println("No open pull requests.")
		return
	}
	color.New(color.FgCyan, color.Bold).Printf("📦 %d open pull request(s)\n", len(prs))
	for _, pr := range prs {
		color.New(color.FgYellow).Printf("#%d", pr.Number)
		fmt.Printf(" %s ", pr.Title)
		statusColor(pr.Status).Println(statusLabel(pr.Status))
		head := pr.Head.Ref
		if pr.Head.Repository != nil {
			head = pr.Head.Repository.Owner.Login + ":" + head
		}
		fmt.Printf("   %s by %s\n", head, pr.Author)
	}
}

func statusLabel(st *models.PullRequestStatus) string {
	if st == nil || st.State == "" {
		return "[no status]"
	}
	return fmt.Sprintf("[%s %d]", st.State, st.TotalCount)
}

func statusColor(st *models.PullRequestStatus) *color.Color {
	if st == nil {
		return color.New(color.Faint)
	}
	switch st.State {
	case models.StatusSuccess:
		return color.New(color.FgGreen)
	case models.StatusPending:
		return color.New(color.FgYellow)
	case models.StatusFailure, models.StatusError:
		return color.New(color.FgRed)
	default:
		return color.New(color.Faint)
	}
}
