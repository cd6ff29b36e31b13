package initscript

import (
	"context"
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/brevdev/kusto-init/pkg/store"
)

var errInjected = errors.New("injected failure")

// applyTestStore is a memory backed store where any path can be made to fail.
type applyTestStore struct {
	*store.FileStore
	failDownload bool
	failWrite    bool
	failCopy     map[string]bool
	calls        []string
}

func newApplyTestStore() *applyTestStore {
	return &applyTestStore{
		FileStore: store.NewBasicStore().WithFileSystem(afero.NewMemMapFs()),
		failCopy:  map[string]bool{},
	}
}

func (s *applyTestStore) DownloadToFile(_ context.Context, _ string, target string) error {
	s.calls = append(s.calls, "download "+target)
	if s.failDownload {
		return errInjected
	}
	return s.FileStore.WriteString(target, "jar")
}

func (s *applyTestStore) WriteString(path, data string) error {
	s.calls = append(s.calls, "write "+path)
	if s.failWrite {
		return errInjected
	}
	return s.FileStore.WriteString(path, data)
}

func (s *applyTestStore) CopyFile(src, dst string) error {
	s.calls = append(s.calls, "copy "+dst)
	if s.failCopy[dst] {
		return errInjected
	}
	return s.FileStore.CopyFile(src, dst)
}

func TestApply_Success(t *testing.T) {
	gen := makeTestGenerator(BestEffort)
	s := newApplyTestStore()
	a := NewApplier(gen, s, zaptest.NewLogger(t))

	report, err := a.Apply(context.Background(), fooParams)
	require.NoError(t, err)
	assert.True(t, report.Succeeded())
	assert.NoError(t, report.Err())

	want, err := gen.RenderProperties(fooParams)
	require.NoError(t, err)
	for _, target := range gen.Targets() {
		got, err := s.ReadString(target.Path)
		require.NoError(t, err)
		assert.Equal(t, want, got, target.Role)
	}

	assert.Equal(t, []string{
		"download " + gen.Layout().JarPath,
		"write " + gen.Layout().TempPath,
		"copy /databricks/spark/dbconf/log4j/executor/log4j2.properties",
		"copy /databricks/spark/dbconf/log4j/driver/log4j2.properties",
		"copy /databricks/spark/dbconf/log4j/master-worker/log4j2.properties",
	}, s.calls)
}

func TestApply_OverwritesPreviousRun(t *testing.T) {
	gen := makeTestGenerator(BestEffort)
	s := newApplyTestStore()
	for _, target := range gen.Targets() {
		require.NoError(t, s.FileStore.WriteString(target.Path, "log4j.rootLogger=INFO, console\n# pre-existing config that is longer\n"))
	}

	first := Params{IngestURL: "https://ingest-first.kusto.windows.net", AppID: "first-app", AppKey: "first-key", TenantID: "first-tenant", DBName: "firstDB"}
	_, err := NewApplier(gen, s, nil).Apply(context.Background(), first)
	require.NoError(t, err)
	_, err = NewApplier(gen, s, nil).Apply(context.Background(), fooParams)
	require.NoError(t, err)

	want, err := gen.RenderProperties(fooParams)
	require.NoError(t, err)
	for _, target := range gen.Targets() {
		got, err := s.ReadString(target.Path)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.NotContains(t, got, "first")
		assert.NotContains(t, got, "pre-existing")
	}
	tmp, err := s.ReadString(gen.Layout().TempPath)
	require.NoError(t, err)
	assert.Equal(t, want, tmp)
}

func TestApply_BestEffortContinues(t *testing.T) {
	gen := makeTestGenerator(BestEffort)
	s := newApplyTestStore()
	s.failDownload = true
	driver := gen.Targets()[1].Path
	s.failCopy[driver] = true

	report, err := NewApplier(gen, s, nil).Apply(context.Background(), fooParams)
	require.NoError(t, err)
	assert.False(t, report.Succeeded())

	assert.ErrorIs(t, report.Download.Err, errInjected)
	assert.NoError(t, report.Properties.Err)
	require.Len(t, report.Targets, 3)
	assert.NoError(t, report.Targets[0].Err)
	assert.ErrorIs(t, report.Targets[1].Err, errInjected)
	assert.NoError(t, report.Targets[2].Err)
	for _, tr := range report.Targets {
		assert.False(t, tr.Skipped)
	}

	assert.Len(t, report.Failed(), 2)
	assert.Len(t, s.calls, 5)
	assert.ErrorIs(t, report.Err(), errInjected)

	exists, err := s.FileExists(gen.Targets()[2].Path)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestApply_BestEffortCopiesAfterWriteFailure(t *testing.T) {
	gen := makeTestGenerator(BestEffort)
	s := newApplyTestStore()
	s.failWrite = true

	report, err := NewApplier(gen, s, nil).Apply(context.Background(), fooParams)
	require.NoError(t, err)

	assert.ErrorIs(t, report.Properties.Err, errInjected)
	// no temp file, so every copy fails on its own
	for _, tr := range report.Targets {
		assert.Error(t, tr.Err)
	}
	assert.Len(t, report.Failed(), 4)
}

func TestApply_FailFastStops(t *testing.T) {
	gen := makeTestGenerator(FailFast)
	s := newApplyTestStore()
	executor := gen.Targets()[0].Path
	s.failCopy[executor] = true

	report, err := NewApplier(gen, s, nil).Apply(context.Background(), fooParams)
	require.Error(t, err)
	assert.ErrorIs(t, err, errInjected)
	assert.False(t, report.Succeeded())

	assert.NoError(t, report.Download.Err)
	assert.NoError(t, report.Properties.Err)
	assert.ErrorIs(t, report.Targets[0].Err, errInjected)
	assert.True(t, report.Targets[1].Skipped)
	assert.True(t, report.Targets[2].Skipped)
	assert.Len(t, s.calls, 3)
}

func TestApply_FailFastDownload(t *testing.T) {
	gen := makeTestGenerator(FailFast)
	s := newApplyTestStore()
	s.failDownload = true

	report, err := NewApplier(gen, s, nil).Apply(context.Background(), fooParams)
	require.Error(t, err)
	assert.True(t, report.Properties.Skipped)
	for _, tr := range report.Targets {
		assert.True(t, tr.Skipped)
	}
	assert.Equal(t, []string{"download " + gen.Layout().JarPath}, s.calls)
}

func TestApply_Cancelled(t *testing.T) {
	gen := makeTestGenerator(BestEffort)
	s := newApplyTestStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := NewApplier(gen, s, nil).Apply(ctx, fooParams)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, report.Download.Err, context.Canceled)
	assert.True(t, report.Properties.Skipped)
	for _, tr := range report.Targets {
		assert.True(t, tr.Skipped)
	}
	assert.Empty(t, s.calls)
}

// cancellingStore cancels the run while the jar is downloading.
type cancellingStore struct {
	*applyTestStore
	cancel context.CancelFunc
}

func (s cancellingStore) DownloadToFile(ctx context.Context, url, target string) error {
	s.calls = append(s.calls, "download "+target)
	s.cancel()
	return ctx.Err()
}

func TestApply_CancelledDuringDownload(t *testing.T) {
	gen := makeTestGenerator(BestEffort)
	inner := newApplyTestStore()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	report, err := NewApplier(gen, cancellingStore{inner, cancel}, nil).Apply(ctx, fooParams)
	require.Error(t, err)
	assert.ErrorIs(t, report.Download.Err, context.Canceled)
	assert.ErrorIs(t, report.Properties.Err, context.Canceled)
	for _, tr := range report.Targets {
		assert.True(t, tr.Skipped)
	}
	assert.Equal(t, []string{"download " + gen.Layout().JarPath}, inner.calls)

	exists, err := inner.FileExists(gen.Layout().TempPath)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestPolicyFor(t *testing.T) {
	assert.Equal(t, FailFast, PolicyFor(true))
	assert.Equal(t, BestEffort, PolicyFor(false))
}
