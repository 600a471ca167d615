package boardapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// Job is a posting as the backend returns it.
type Job struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Location    string `json:"location"`
	SalaryMin   int    `json:"salaryMin"`
	SalaryMax   int    `json:"salaryMax"`
	CompanyName string `json:"companyName"`
	EmployerID  int    `json:"employerId"`
	PostedAt    string `json:"postedAt"`
	Active      bool   `json:"active"`
}

// ListJobsInput carries the browse filters. Zero values are omitted from the
// query string.
type ListJobsInput struct {
	Category string
	Location string
	Search   string
	Page     int
	Limit    int
}

// JobList is a paginated listing.
type JobList struct {
	Items      []Job `json:"items"`
	Total      int   `json:"total"`
	Page       int   `json:"page"`
	TotalPages int   `json:"totalPages"`
}

// CreateJobInput carries a new or updated posting.
type CreateJobInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Location    string `json:"location"`
	SalaryMin   int    `json:"salaryMin,omitempty"`
	SalaryMax   int    `json:"salaryMax,omitempty"`
}

func (c *Client) ListJobs(ctx context.Context, input ListJobsInput) (*JobList, error) {
	query := url.Values{}
	if input.Category != "" {
		query.Set("category", input.Category)
	}
	if input.Location != "" {
		query.Set("location", input.Location)
	}
	if input.Search != "" {
		query.Set("q", input.Search)
	}
	if input.Page > 0 {
		query.Set("page", strconv.Itoa(input.Page))
	}
	if input.Limit > 0 {
		query.Set("limit", strconv.Itoa(input.Limit))
	}

	path := "/jobs"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var list JobList
	if err := c.get(ctx, path, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (c *Client) GetJob(ctx context.Context, id int) (*Job, error) {
	var job Job
	if err := c.get(ctx, fmt.Sprintf("/jobs/%d", id), &job); err != nil {
		return nil, err
	}
	return &job, nil
}

func (c *Client) CreateJob(ctx context.Context, input CreateJobInput) (*Job, error) {
	var job Job
	if err := c.send(ctx, http.MethodPost, "/jobs", input, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

func (c *Client) UpdateJob(ctx context.Context, id int, input CreateJobInput) (*Job, error) {
	var job Job
	if err := c.send(ctx, http.MethodPut, fmt.Sprintf("/jobs/%d", id), input, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

func (c *Client) DeleteJob(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/jobs/%d", id))
}
