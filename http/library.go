package http

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/fwojciec/litmap"
)

// SearchBooks asks the LibrarianAgent to search Open Library by title.
// A zero limit uses litmap.DefaultSearchLimit.
func (c *Client) SearchBooks(ctx context.Context, query string, limit int) (*litmap.BookSearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, litmap.Errorf(litmap.EINVALID, "query is required")
	}
	if limit == 0 {
		limit = litmap.DefaultSearchLimit
	}
	if limit < 1 || limit > litmap.MaxSearchLimit {
		return nil, litmap.Errorf(litmap.EINVALID, "limit must be between 1 and %d", litmap.MaxSearchLimit)
	}

	body := struct {
		Query string `json:"query"`
		Limit int    `json:"limit"`
	}{query, limit}

	var result litmap.BookSearchResult
	if err := c.postJSON(ctx, litmap.AgentLibrarian, "/tools/librarian/search", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// VibeSearch matches landmarks against a free-form mood description.
func (c *Client) VibeSearch(ctx context.Context, query string) (*litmap.VibeSearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, litmap.Errorf(litmap.EINVALID, "query is required")
	}

	var result litmap.VibeSearchResult
	if err := c.postJSON(ctx, "Vibe search", "/search", map[string]string{"query": query}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// UploadBook sends a PDF as multipart form data and returns the extracted
// locations. An empty title lets the backend derive one from the file name.
func (c *Client) UploadBook(ctx context.Context, filename string, r io.Reader, title string) (*litmap.BookLocations, error) {
	if !strings.EqualFold(filepath.Ext(filename), ".pdf") {
		return nil, litmap.Errorf(litmap.EINVALID, "only PDF files are supported")
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filepath.Base(filename))
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, fmt.Errorf("read %s: %w", filename, err)
	}
	if title = strings.TrimSpace(title); title != "" {
		if err := w.WriteField("title", title); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	var result litmap.BookLocations
	if err := c.do(ctx, "PDF upload", "/upload-book", w.FormDataContentType(), &buf, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ExtractFromTitle asks the backend to recall notable locations of a book.
func (c *Client) ExtractFromTitle(ctx context.Context, req litmap.TitleRequest) (*litmap.BookLocations, error) {
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return nil, litmap.Errorf(litmap.EINVALID, "title is required")
	}

	var result litmap.BookLocations
	if err := c.postJSON(ctx, "Title extraction", "/extract-from-title", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
