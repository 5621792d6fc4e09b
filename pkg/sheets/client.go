// Package sheets provides a Google Sheets client with OAuth2
// authentication for reading bank-export spreadsheets.
package sheets

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Config holds OAuth2 configuration paths.
type Config struct {
	CredentialsPath string // credentials.json from Google Cloud Console
	TokenPath       string // where the OAuth2 token is cached
}

// Client wraps the Sheets API service with authentication.
type Client struct {
	service *sheets.Service
}

// NewClient creates an authenticated Sheets API client. The first run
// walks the user through the browser consent flow and caches the token;
// later runs reuse the cached token.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	credBytes, err := os.ReadFile(cfg.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("unable to read credentials file: %w", err)
	}

	oauthConfig, err := google.ConfigFromJSON(credBytes, sheets.SpreadsheetsReadonlyScope)
	if err != nil {
		return nil, fmt.Errorf("unable to parse credentials: %w", err)
	}

	token, err := getToken(ctx, oauthConfig, cfg.TokenPath)
	if err != nil {
		return nil, fmt.Errorf("unable to get token: %w", err)
	}

	httpClient := oauthConfig.Client(ctx, token)
	service, err := sheets.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("unable to create Sheets service: %w", err)
	}

	return &Client{service: service}, nil
}

// FetchRows reads the transaction range of one sheet (columns A:P) and
// returns the raw cell values, header row included.
func (c *Client) FetchRows(ctx context.Context, spreadsheetID, sheetName string) ([][]any, error) {
	readRange := fmt.Sprintf("%s!A:P", sheetName)

	resp, err := c.service.Spreadsheets.Values.Get(spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("unable to read sheet %q: %w", sheetName, err)
	}

	rows := make([][]any, len(resp.Values))
	for i, row := range resp.Values {
		rows[i] = row
	}

	return rows, nil
}

// getToken retrieves the OAuth2 token from the cache file or initiates the
// consent flow.
func getToken(ctx context.Context, config *oauth2.Config, tokenPath string) (*oauth2.Token, error) {
	token, err := loadToken(tokenPath)
	if err == nil {
		return token, nil
	}

	token, err = getTokenFromWeb(ctx, config)
	if err != nil {
		return nil, err
	}

	if err := saveToken(tokenPath, token); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: unable to save token: %v\n", err)
	}

	return token, nil
}
