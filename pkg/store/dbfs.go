package store

import (
	"context"
	"encoding/base64"
	"strings"

	breverrors "github.com/brevdev/kusto-init/pkg/errors"
	resty "github.com/go-resty/resty/v2"
)

const dbfsPutPath = "/api/2.0/dbfs/put"

// DBFSClient talks to a workspace's DBFS REST api with a personal access token.
type DBFSClient struct {
	restyClient *resty.Client
}

func NewDBFSClient(host string, token string) *DBFSClient {
	restyClient := resty.New()
	restyClient.SetAuthToken(token)
	restyClient.SetBaseURL(normalizeHost(host))
	return &DBFSClient{restyClient}
}

func normalizeHost(host string) string {
	host = strings.TrimRight(host, "/")
	if host != "" && !strings.Contains(host, "://") {
		host = "https://" + host
	}
	return host
}

type DBFSStore struct {
	client *DBFSClient
}

func (b *BasicStore) WithDBFSClient(c *DBFSClient) *DBFSStore {
	c.restyClient.SetDebug(b.config.GetDebugHTTP())
	return &DBFSStore{client: c}
}

type dbfsPutRequest struct {
	Path      string `json:"path"`
	Contents  string `json:"contents"`
	Overwrite bool   `json:"overwrite"`
}

type dbfsErrorResponse struct {
	ErrorCode string `json:"error_code"`
	Message   string `json:"message"`
}

// PutFile is the REST equivalent of dbutils.fs.put. path is a dbfs absolute
// path without the dbfs: scheme.
func (s DBFSStore) PutFile(ctx context.Context, path, content string, overwrite bool) error {
	var apiErr dbfsErrorResponse
	res, err := s.client.restyClient.R().
		SetContext(ctx).
		SetBody(dbfsPutRequest{
			Path:      path,
			Contents:  base64.StdEncoding.EncodeToString([]byte(content)),
			Overwrite: overwrite,
		}).
		SetError(&apiErr).
		Post(dbfsPutPath)
	if err != nil {
		return breverrors.WrapAndTrace(err, breverrors.NetworkErrorMessage)
	}
	if res.IsError() {
		if apiErr.ErrorCode != "" {
			return breverrors.WrapAndTrace(NewHTTPResponseError(res), apiErr.ErrorCode, apiErr.Message)
		}
		return NewHTTPResponseError(res)
	}
	return nil
}
