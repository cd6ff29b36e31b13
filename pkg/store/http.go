package store

import (
	"context"
	"fmt"
	"io"

	breverrors "github.com/brevdev/kusto-init/pkg/errors"
	resty "github.com/go-resty/resty/v2"
)

type NoAuthHTTPStore struct {
	FileStore
	noAuthHTTPClient *NoAuthHTTPClient
	progress         io.Writer
}

func (f *FileStore) WithNoAuthHTTPClient(c *NoAuthHTTPClient) *NoAuthHTTPStore {
	c.client().SetDebug(f.config.GetDebugHTTP())
	return &NoAuthHTTPStore{*f, c, nil}
}

// WithProgress mirrors downloaded bytes to w.
func (n *NoAuthHTTPStore) WithProgress(w io.Writer) *NoAuthHTTPStore {
	n.progress = w
	return n
}

type NoAuthHTTPClient resty.Client

func NewNoAuthHTTPClient() *NoAuthHTTPClient {
	return (*NoAuthHTTPClient)(resty.New())
}

func (c *NoAuthHTTPClient) client() *resty.Client {
	return (*resty.Client)(c)
}

type HTTPResponseError struct {
	response *resty.Response
}

func NewHTTPResponseError(response *resty.Response) *HTTPResponseError {
	return &HTTPResponseError{
		response: response,
	}
}

func (e HTTPResponseError) Error() string {
	return fmt.Sprintf("%s %s", e.response.Request.URL, e.response.Status())
}

func (e HTTPResponseError) StatusCode() int {
	return e.response.StatusCode()
}

// DownloadToFile streams url into target, replacing whatever was there.
func (n NoAuthHTTPStore) DownloadToFile(ctx context.Context, url, target string) error {
	res, err := n.noAuthHTTPClient.client().R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(url)
	if err != nil {
		return breverrors.WrapAndTrace(err, breverrors.NetworkErrorMessage)
	}
	body := res.RawBody()
	defer body.Close() //nolint:errcheck // response body
	if res.IsError() {
		return NewHTTPResponseError(res)
	}

	file, err := n.createTruncated(target, configFileMode)
	if err != nil {
		return breverrors.WrapAndTrace(err)
	}
	var w io.Writer = file
	if n.progress != nil {
		w = io.MultiWriter(file, n.progress)
	}
	_, err = io.Copy(w, body)
	if err != nil {
		_ = file.Close()
		return breverrors.WrapAndTrace(err)
	}
	err = file.Close()
	if err != nil {
		return breverrors.WrapAndTrace(err)
	}
	return nil
}
