// Package clients talks to the external users/organizations service to
// enrich responses with profile data. Enrichment is strictly best-effort:
// every failure is logged and surfaces as a nil profile, never as an error,
// so an outage there cannot fail a lifecycle operation.
package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// User is the profile the users service exposes for a responsible user.
type User struct {
	ID           string        `json:"id"`
	FullName     string        `json:"full_name"`
	Email        string        `json:"email"`
	Phone        string        `json:"phone"`
	Organization *Organization `json:"organization,omitempty"`
}

// Organization is the descriptive profile of a community organization.
type Organization struct {
	OrganizationID   string `json:"organization_id"`
	OrganizationName string `json:"organization_name"`
	Address          string `json:"address"`
	Phone            string `json:"phone"`
}

// Client is a thin JSON client over the users service.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// GetUserByID fetches one user profile. Returns nil on any failure.
func (c *Client) GetUserByID(ctx context.Context, userID string) *User {
	if c == nil || userID == "" {
		return nil
	}
	var envelope struct {
		Data *User `json:"data"`
	}
	if err := c.getJSON(ctx, fmt.Sprintf("%s/api/users/%s", c.baseURL, userID), &envelope); err != nil {
		logrus.WithError(err).WithField("user_id", userID).Warn("enrichment: user fetch failed")
		return nil
	}
	return envelope.Data
}

// GetAdminsByOrganization fetches the organization's admin users.
// Returns an empty slice on any failure.
func (c *Client) GetAdminsByOrganization(ctx context.Context, organizationID string) []User {
	if c == nil || organizationID == "" {
		return nil
	}
	var envelope struct {
		Data []User `json:"data"`
	}
	url := fmt.Sprintf("%s/internal/organizations/%s/admins", c.baseURL, organizationID)
	if err := c.getJSON(ctx, url, &envelope); err != nil {
		logrus.WithError(err).WithField("organization_id", organizationID).Warn("enrichment: admins fetch failed")
		return nil
	}
	return envelope.Data
}

// GetOrganizationByID resolves an organization profile through its admin
// users; the users service embeds the organization on each admin. Returns
// nil when no admin carries one.
func (c *Client) GetOrganizationByID(ctx context.Context, organizationID string) *Organization {
	for _, admin := range c.GetAdminsByOrganization(ctx, organizationID) {
		if admin.Organization != nil {
			return admin.Organization
		}
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, url string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}
	return json.NewDecoder(resp.Body).Decode(dest)
}
