package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/careerhub/jobboard-client/internal/boardapi"
	"github.com/careerhub/jobboard-client/internal/core/domain"
	"github.com/careerhub/jobboard-client/internal/routing"
)

var applyFlags struct {
	coverLetter string
}

var applyCmd = &cobra.Command{
	Use:   "apply <job-id>",
	Short: "Apply to a posting (job seekers)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.requireAccess(routing.AllowRoles(domain.RoleEmployee)); err != nil {
			return err
		}
		jobID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid job id %q", args[0])
		}
		a, err := app.API.Apply(cmd.Context(), boardapi.ApplyInput{
			JobID:       jobID,
			CoverLetter: applyFlags.coverLetter,
		})
		if err != nil {
			return err
		}
		fmt.Printf("application %d submitted (%s)\n", a.ID, a.Status)
		return nil
	},
}

var applicationsCmd = &cobra.Command{
	Use:   "applications",
	Short: "Review applications",
}

var applicationsMineCmd = &cobra.Command{
	Use:   "mine",
	Short: "List your submissions (job seekers)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.requireAccess(routing.AllowRoles(domain.RoleEmployee)); err != nil {
			return err
		}
		apps, err := app.API.MyApplications(cmd.Context())
		if err != nil {
			return err
		}
		for _, a := range apps {
			fmt.Printf("%d\tjob %d\t%s\n", a.ID, a.JobID, a.Status)
		}
		return nil
	},
}

var applicationsForJobCmd = &cobra.Command{
	Use:   "for-job <job-id>",
	Short: "List applicants for one of your postings (employers)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.requireAccess(routing.AllowRoles(domain.RoleEmployer)); err != nil {
			return err
		}
		jobID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid job id %q", args[0])
		}
		apps, err := app.API.JobApplications(cmd.Context(), jobID)
		if err != nil {
			return err
		}
		for _, a := range apps {
			fmt.Printf("%d\t%s\t%s\n", a.ID, a.Applicant, a.Status)
		}
		return nil
	},
}

var applicationsDecideCmd = &cobra.Command{
	Use:   "decide <application-id> <ACCEPTED|REJECTED>",
	Short: "Accept or reject an application (employers)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.requireAccess(routing.AllowRoles(domain.RoleEmployer)); err != nil {
			return err
		}
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid application id %q", args[0])
		}
		status := args[1]
		if status != boardapi.ApplicationAccepted && status != boardapi.ApplicationRejected {
			return fmt.Errorf("status must be %s or %s", boardapi.ApplicationAccepted, boardapi.ApplicationRejected)
		}
		if err := app.API.SetApplicationStatus(cmd.Context(), id, status); err != nil {
			return err
		}
		fmt.Printf("application %d → %s\n", id, status)
		return nil
	},
}

func init() {
	applyCmd.Flags().StringVar(&applyFlags.coverLetter, "cover-letter", "", "optional cover letter text")

	applicationsCmd.AddCommand(applicationsMineCmd, applicationsForJobCmd, applicationsDecideCmd)
	rootCmd.AddCommand(applyCmd, applicationsCmd)
}
