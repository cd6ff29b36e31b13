package store

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"

	breverrors "github.com/brevdev/kusto-init/pkg/errors"
)

type blobUploader interface {
	UploadBuffer(ctx context.Context, containerName string, blobName string, buffer []byte, o *azblob.UploadBufferOptions) (azblob.UploadBufferResponse, error)
}

type BlobStore struct {
	client blobUploader
}

// NewBlobClient authenticates with the default azure credential chain (env,
// managed identity, az cli).
func NewBlobClient(serviceURL string) (*azblob.Client, error) {
	cred, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, breverrors.WrapAndTrace(err)
	}
	client, err := azblob.NewClient(serviceURL, cred, nil)
	if err != nil {
		return nil, breverrors.WrapAndTrace(err)
	}
	return client, nil
}

func (b *BasicStore) WithBlobClient(c blobUploader) *BlobStore {
	return &BlobStore{client: c}
}

// PutFile uploads content as a block blob. path is "<container>/<blob>".
func (s BlobStore) PutFile(ctx context.Context, path, content string, overwrite bool) error {
	container, name, err := splitBlobPath(path)
	if err != nil {
		return breverrors.WrapAndTrace(err)
	}
	opts := &azblob.UploadBufferOptions{
		HTTPHeaders: &blob.HTTPHeaders{BlobContentType: to.Ptr("text/x-shellscript")},
	}
	if !overwrite {
		opts.AccessConditions = &blob.AccessConditions{
			ModifiedAccessConditions: &blob.ModifiedAccessConditions{IfNoneMatch: to.Ptr(azcore.ETagAny)},
		}
	}
	_, err = s.client.UploadBuffer(ctx, container, name, []byte(content), opts)
	if err != nil {
		return breverrors.WrapAndTrace(err)
	}
	return nil
}
