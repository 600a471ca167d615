package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/careerhub/jobboard-client/internal/boardapi"
	"github.com/careerhub/jobboard-client/internal/core/domain"
	"github.com/careerhub/jobboard-client/internal/routing"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Browse and manage job postings",
}

var jobsListFlags struct {
	category string
	location string
	search   string
	page     int
}

// jobs list and jobs get are public routes: no guard.
var jobsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List postings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		list, err := app.API.ListJobs(cmd.Context(), boardapi.ListJobsInput{
			Category: jobsListFlags.category,
			Location: jobsListFlags.location,
			Search:   jobsListFlags.search,
			Page:     jobsListFlags.page,
		})
		if err != nil {
			return err
		}
		for _, j := range list.Items {
			fmt.Printf("%d\t%s\t%s\t%s\n", j.ID, j.Title, j.CompanyName, j.Location)
		}
		fmt.Printf("%d posting(s)\n", list.Total)
		return nil
	},
}

var jobsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one posting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid job id %q", args[0])
		}
		j, err := app.API.GetJob(cmd.Context(), id)
		if err != nil {
			return err
		}
		fmt.Printf("%s at %s (%s)\n\n%s\n", j.Title, j.CompanyName, j.Location, j.Description)
		return nil
	},
}

var jobsPostFlags struct {
	description string
	category    string
	location    string
}

var jobsPostCmd = &cobra.Command{
	Use:   "post <title>",
	Short: "Post a new job (employers)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.requireAccess(routing.AllowRoles(domain.RoleEmployer)); err != nil {
			return err
		}
		j, err := app.API.CreateJob(cmd.Context(), boardapi.CreateJobInput{
			Title:       args[0],
			Description: jobsPostFlags.description,
			Category:    jobsPostFlags.category,
			Location:    jobsPostFlags.location,
		})
		if err != nil {
			return err
		}
		fmt.Printf("posted job %d: %s\n", j.ID, j.Title)
		return nil
	},
}

var jobsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove a posting (employers and admins)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.requireAccess(routing.AllowRoles(domain.RoleEmployer, domain.RoleAdmin)); err != nil {
			return err
		}
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid job id %q", args[0])
		}
		if err := app.API.DeleteJob(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Printf("deleted job %d\n", id)
		return nil
	},
}

func init() {
	jobsListCmd.Flags().StringVar(&jobsListFlags.category, "category", "", "filter by category")
	jobsListCmd.Flags().StringVar(&jobsListFlags.location, "location", "", "filter by location")
	jobsListCmd.Flags().StringVar(&jobsListFlags.search, "search", "", "full-text filter")
	jobsListCmd.Flags().IntVar(&jobsListFlags.page, "page", 0, "result page")

	jobsPostCmd.Flags().StringVar(&jobsPostFlags.description, "description", "", "posting description")
	jobsPostCmd.Flags().StringVar(&jobsPostFlags.category, "category", "", "posting category")
	jobsPostCmd.Flags().StringVar(&jobsPostFlags.location, "location", "", "posting location")

	jobsCmd.AddCommand(jobsListCmd, jobsGetCmd, jobsPostCmd, jobsDeleteCmd)
	rootCmd.AddCommand(jobsCmd)
}
