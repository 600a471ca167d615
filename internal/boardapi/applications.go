package boardapi

import (
	"context"
	"fmt"
	"net/http"
)

// Application statuses as the backend reports them.
const (
	ApplicationPending  = "PENDING"
	ApplicationAccepted = "ACCEPTED"
	ApplicationRejected = "REJECTED"
)

type Application struct {
	ID          int    `json:"id"`
	JobID       int    `json:"jobId"`
	JobTitle    string `json:"jobTitle"`
	ApplicantID int    `json:"applicantId"`
	Applicant   string `json:"applicant"`
	Status      string `json:"status"`
	CoverLetter string `json:"coverLetter"`
	AppliedAt   string `json:"appliedAt"`
}

type ApplyInput struct {
	JobID       int    `json:"jobId"`
	CoverLetter string `json:"coverLetter,omitempty"`
	ResumeID    int    `json:"resumeId,omitempty"`
}

// Apply submits an application for a posting.
func (c *Client) Apply(ctx context.Context, input ApplyInput) (*Application, error) {
	var app Application
	if err := c.send(ctx, http.MethodPost, "/applications", input, &app); err != nil {
		return nil, err
	}
	return &app, nil
}

// MyApplications lists the authenticated applicant's submissions.
func (c *Client) MyApplications(ctx context.Context) ([]Application, error) {
	var apps []Application
	if err := c.get(ctx, "/applications/mine", &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

// JobApplications lists applicants for one of the employer's postings.
func (c *Client) JobApplications(ctx context.Context, jobID int) ([]Application, error) {
	var apps []Application
	if err := c.get(ctx, fmt.Sprintf("/jobs/%d/applications", jobID), &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

// SetApplicationStatus accepts or rejects an application.
func (c *Client) SetApplicationStatus(ctx context.Context, id int, status string) error {
	body := map[string]string{"status": status}
	return c.send(ctx, http.MethodPatch, fmt.Sprintf("/applications/%d", id), body, nil)
}

// WithdrawApplication removes the applicant's own submission.
func (c *Client) WithdrawApplication(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/applications/%d", id))
}
