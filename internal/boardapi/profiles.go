package boardapi

import (
	"context"
	"net/http"
)

// Profile is the account record behind the authenticated Identity.
type Profile struct {
	ID          int    `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`
	CompanyName string `json:"companyName,omitempty"`
}

type UpdateProfileInput struct {
	FirstName   string `json:"firstName,omitempty"`
	LastName    string `json:"lastName,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`
	CompanyName string `json:"companyName,omitempty"`
}

// Resume is the stored resume's metadata; the file itself lives in the
// backend's file storage.
type Resume struct {
	ID       int    `json:"id"`
	FileName string `json:"fileName"`
	URL      string `json:"url"`
	Uploaded string `json:"uploadedAt"`
}

// Me fetches the authenticated account's profile.
func (c *Client) Me(ctx context.Context) (*Profile, error) {
	var p Profile
	if err := c.get(ctx, "/users/me", &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) UpdateMe(ctx context.Context, input UpdateProfileInput) (*Profile, error) {
	var p Profile
	if err := c.send(ctx, http.MethodPut, "/users/me", input, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// MyResume fetches the applicant's stored resume metadata.
func (c *Client) MyResume(ctx context.Context) (*Resume, error) {
	var r Resume
	if err := c.get(ctx, "/users/me/resume", &r); err != nil {
		return nil, err
	}
	return &r, nil
}
