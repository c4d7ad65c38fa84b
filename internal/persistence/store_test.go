package persistence

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(t.TempDir(), zap.NewNop())
}

func rawRecords(values ...string) []json.RawMessage {
	records := make([]json.RawMessage, 0, len(values))
	for _, v := range values {
		records = append(records, json.RawMessage(v))
	}
	return records
}

func TestStoreReadMissingTable(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)

	records, err := store.Read(TableEmployees)
	require.NoError(t, err)
	require.Empty(t, records)
}

func TestStoreRoundTrip(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	written := rawRecords(`{"id":"EMP1"}`, `{"id":"EMP2"}`, `{"id":"EMP3"}`)

	require.NoError(t, store.Write(TableEmployees, written))

	read, err := store.Read(TableEmployees)
	require.NoError(t, err)
	require.Len(t, read, 3)
	for i := range written {
		require.JSONEq(t, string(written[i]), string(read[i]))
	}
}

func TestStoreWriteReplacesContents(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	require.NoError(t, store.Write(TableJobs, rawRecords(`{"id":"JOB1"}`, `{"id":"JOB2"}`)))
	require.NoError(t, store.Write(TableJobs, rawRecords(`{"id":"JOB3"}`)))

	read, err := store.Read(TableJobs)
	require.NoError(t, err)
	require.Len(t, read, 1)
	require.JSONEq(t, `{"id":"JOB3"}`, string(read[0]))
}

func TestStoreUpdateAppliesFn(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	require.NoError(t, store.Write(TableSchedule, rawRecords(`{"id":"A1"}`)))

	err := store.Update(TableSchedule, func(records []json.RawMessage) ([]json.RawMessage, error) {
		return append(records, json.RawMessage(`{"id":"A2"}`)), nil
	})
	require.NoError(t, err)

	read, err := store.Read(TableSchedule)
	require.NoError(t, err)
	require.Len(t, read, 2)
}

func TestStoreUpdateErrorLeavesTableIntact(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	require.NoError(t, store.Write(TableSchedule, rawRecords(`{"id":"A1"}`)))

	wantErr := fmt.Errorf("no change wanted")
	err := store.Update(TableSchedule, func(records []json.RawMessage) ([]json.RawMessage, error) {
		return nil, wantErr
	})
	require.ErrorIs(t, err, wantErr)

	read, err := store.Read(TableSchedule)
	require.NoError(t, err)
	require.Len(t, read, 1)
}

func TestStoreCorruptTableSurfacesStorageError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store := NewStore(dir, zap.NewNop())
	require.NoError(t, os.WriteFile(filepath.Join(dir, "employees.json"), []byte("not json"), 0o644))

	_, err := store.Read(TableEmployees)
	require.Error(t, err)

	var se *StorageError
	require.ErrorAs(t, err, &se)
	require.Equal(t, TableEmployees, se.Table)
}

func TestStoreFileStaysValidJSON(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store := NewStore(dir, zap.NewNop())
	require.NoError(t, store.Write(TableJobs, rawRecords(`{"id":"JOB1"}`)))

	// The on-disk file is a complete JSON array, written via temp-file swap.
	data, err := os.ReadFile(filepath.Join(dir, "jobs.json"))
	require.NoError(t, err)

	var parsed []map[string]any
	require.NoError(t, json.Unmarshal(data, &parsed))
	require.Len(t, parsed, 1)
}

func TestStoreConcurrentUpdatesLoseNothing(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	const writers = 20

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			err := store.Update(TableSchedule, func(records []json.RawMessage) ([]json.RawMessage, error) {
				record := json.RawMessage(fmt.Sprintf(`{"id":"A%d"}`, n))
				return append(records, record), nil
			})
			require.NoError(t, err)
		}(i)
	}
	wg.Wait()

	read, err := store.Read(TableSchedule)
	require.NoError(t, err)
	require.Len(t, read, writers)
}
