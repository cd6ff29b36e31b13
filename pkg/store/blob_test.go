package store

import (
	"context"
	"errors"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUploader struct {
	container string
	name      string
	body      string
	opts      *azblob.UploadBufferOptions
	err       error
}

func (f *fakeUploader) UploadBuffer(_ context.Context, containerName string, blobName string, buffer []byte, o *azblob.UploadBufferOptions) (azblob.UploadBufferResponse, error) {
	f.container = containerName
	f.name = blobName
	f.body = string(buffer)
	f.opts = o
	return azblob.UploadBufferResponse{}, f.err
}

func TestBlobStore_PutFile(t *testing.T) {
	up := &fakeUploader{}
	s := MakeMockBasicStore().WithBlobClient(up)

	err := s.PutFile(context.Background(), "init-scripts/kusto/init-log4j-kusto-logging.sh", "#!/bin/bash\n", true)
	require.NoError(t, err)

	assert.Equal(t, "init-scripts", up.container)
	assert.Equal(t, "kusto/init-log4j-kusto-logging.sh", up.name)
	assert.Equal(t, "#!/bin/bash\n", up.body)
	assert.Nil(t, up.opts.AccessConditions)
}

func TestBlobStore_PutFileNoOverwrite(t *testing.T) {
	up := &fakeUploader{}
	s := MakeMockBasicStore().WithBlobClient(up)

	require.NoError(t, s.PutFile(context.Background(), "c/init.sh", "x", false))
	require.NotNil(t, up.opts.AccessConditions)
	assert.Equal(t, azcore.ETagAny, *up.opts.AccessConditions.ModifiedAccessConditions.IfNoneMatch)
}

func TestBlobStore_PutFileErrors(t *testing.T) {
	up := &fakeUploader{err: errors.New("403 AuthorizationFailure")}
	s := MakeMockBasicStore().WithBlobClient(up)

	assert.Error(t, s.PutFile(context.Background(), "c/init.sh", "x", true))
	assert.Error(t, s.PutFile(context.Background(), "no-blob-name", "x", true))
}
