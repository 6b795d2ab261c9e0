package main_test

import (
	"bytes"
	"context"
	"testing"

	"brandsight"
	main "brandsight/cmd/brandsight"
	"brandsight/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("requires --force", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
		}

		cmd := &main.DeleteCmd{ID: "snap-123"}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, brandsight.EINVALID, brandsight.ErrorCode(err))
		assert.Contains(t, stderr.String(), "--force")
	})

	t.Run("deletes with --force", func(t *testing.T) {
		t.Parallel()

		var deletedID string
		store := &mock.InsightStore{
			DeleteInsightFn: func(_ context.Context, id string) error {
				deletedID = id
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   stderr,
			Insights: store,
		}

		cmd := &main.DeleteCmd{ID: "snap-123", Force: true}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "snap-123", deletedID)
		assert.Contains(t, stdout.String(), `Deleted insight "snap-123"`)
	})

	t.Run("reports unknown ID", func(t *testing.T) {
		t.Parallel()

		store := &mock.InsightStore{
			DeleteInsightFn: func(_ context.Context, id string) error {
				return brandsight.Errorf(brandsight.ENOTFOUND, "insight not found")
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   stderr,
			Insights: store,
		}

		cmd := &main.DeleteCmd{ID: "missing", Force: true}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, brandsight.ENOTFOUND, brandsight.ErrorCode(err))
		assert.Contains(t, stderr.String(), "not found")
	})
}
