package report

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/friendsofgo/errors"

	pkgLog "notification-enricher/pkg/log"
)

const catalogRequestTimeout = 5 * time.Second

// CatalogConfig points at the reporting backend that owns workbooks and
// views.
type CatalogConfig struct {
	BaseURL string
}

// httpCatalog resolves workbook/view display data from the reporting
// backend.
type httpCatalog struct {
	l      pkgLog.Logger
	cfg    CatalogConfig
	client *http.Client
}

var _ Catalog = &httpCatalog{}

// NewCatalog creates the HTTP-backed report catalog.
func NewCatalog(l pkgLog.Logger, cfg CatalogConfig) *httpCatalog {
	return &httpCatalog{
		l:      l,
		cfg:    cfg,
		client: &http.Client{Timeout: catalogRequestTimeout},
	}
}

type workbookResponse struct {
	WorkbookName string `json:"workbook_name"`
	ViewName     string `json:"view_name"`
	EmbedURL     string `json:"embed_url"`
	ContentURL   string `json:"content_url"`
}

func (c *httpCatalog) Workbook(ctx context.Context, siteID, workbookID, viewID string) (Workbook, error) {
	url := fmt.Sprintf("%s/v1/sites/%s/workbooks/%s/views/%s", c.cfg.BaseURL, siteID, workbookID, viewID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Workbook{}, errors.Wrap(err, "build workbook request")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return Workbook{}, errors.Wrap(ErrCatalogDown, err.Error())
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return Workbook{}, ErrWorkbookNotFound
	default:
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return Workbook{}, errors.Errorf("catalog returned status %d", resp.StatusCode)
	}

	var out workbookResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Workbook{}, errors.Wrap(err, "decode workbook response")
	}

	return Workbook{
		WorkbookName: out.WorkbookName,
		ViewName:     out.ViewName,
		EmbedURL:     out.EmbedURL,
		ContentURL:   out.ContentURL,
	}, nil
}
