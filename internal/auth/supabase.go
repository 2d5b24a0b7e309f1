package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/lshigami/devprep/config"
)

// SupabaseIdentity validates tokens against the GoTrue user endpoint of a
// Supabase project.
type SupabaseIdentity struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewSupabaseIdentity(cfg *config.Config) IdentityProvider {
	timeout := cfg.Supabase.HTTPTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &SupabaseIdentity{
		baseURL: cfg.Supabase.URL,
		apiKey:  cfg.Supabase.Key,
		client:  &http.Client{Timeout: timeout},
	}
}

type supabaseUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

func (s *SupabaseIdentity) GetUser(ctx context.Context, token string) (*Principal, error) {
	if s.baseURL == "" || s.apiKey == "" {
		return nil, ErrIdentityNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/auth/v1/user", nil)
	if err != nil {
		return nil, fmt.Errorf("build identity request: %w", err)
	}
	req.Header.Set("apikey", s.apiKey)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("identity request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, nil
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("identity service returned status %d: %s", resp.StatusCode, string(body))
	}

	var user supabaseUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("decode identity response: %w", err)
	}
	if user.ID == "" {
		return nil, nil
	}
	return &Principal{ID: user.ID, Email: user.Email}, nil
}
