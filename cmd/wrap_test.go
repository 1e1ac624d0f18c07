package cmd

import (
	"errors"
	"testing"

	"github.com/mouse-blink/splice/internal/domain"
	m "github.com/mouse-blink/splice/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOpenCmd(t *testing.T) {
	t.Run("opens the configured document", func(t *testing.T) {
		cmd, mockWorkflow := newTestRoot(t, newOpenCmd())

		mockWorkflow.EXPECT().Open(mock.MatchedBy(func(args domain.WrapArgs) bool {
			return args.Document == m.Path("scaffold.sh") && !args.DryRun
		})).Return(m.OpResult{Count: 2}, nil)

		cmd.SetArgs([]string{"open"})
		require.NoError(t, cmd.Execute())
	})

	t.Run("dry run is passed through", func(t *testing.T) {
		cmd, mockWorkflow := newTestRoot(t, newOpenCmd())

		mockWorkflow.EXPECT().Open(mock.MatchedBy(func(args domain.WrapArgs) bool {
			return args.DryRun
		})).Return(m.OpResult{}, nil)

		cmd.SetArgs([]string{"open", "--dry-run"})
		require.NoError(t, cmd.Execute())
	})

	t.Run("workflow errors are returned", func(t *testing.T) {
		cmd, mockWorkflow := newTestRoot(t, newOpenCmd())

		mockWorkflow.EXPECT().Open(mock.Anything).Return(m.OpResult{}, errors.New("boom"))

		cmd.SetArgs([]string{"open"})
		require.EqualError(t, cmd.Execute(), "boom")
	})

	t.Run("positional args are rejected", func(t *testing.T) {
		cmd, _ := newTestRoot(t, newOpenCmd())

		cmd.SetArgs([]string{"open", "extra"})
		require.Error(t, cmd.Execute())
	})
}

func TestCloseCmd(t *testing.T) {
	t.Run("lenient by default", func(t *testing.T) {
		cmd, mockWorkflow := newTestRoot(t, newCloseCmd())

		mockWorkflow.EXPECT().Close(mock.MatchedBy(func(args domain.WrapArgs) bool {
			return !args.Strict && !args.DryRun
		})).Return(m.OpResult{Count: 1}, nil)

		cmd.SetArgs([]string{"close"})
		require.NoError(t, cmd.Execute())
	})

	t.Run("strict and dry run flags", func(t *testing.T) {
		cmd, mockWorkflow := newTestRoot(t, newCloseCmd())

		mockWorkflow.EXPECT().Close(mock.MatchedBy(func(args domain.WrapArgs) bool {
			return args.Strict && args.DryRun
		})).Return(m.OpResult{}, nil)

		cmd.SetArgs([]string{"close", "--strict", "-n"})
		require.NoError(t, cmd.Execute())
	})

	t.Run("missing artifact error in strict mode", func(t *testing.T) {
		cmd, mockWorkflow := newTestRoot(t, newCloseCmd())

		mockWorkflow.EXPECT().Close(mock.Anything).Return(m.OpResult{}, domain.ErrMissingArtifact)

		cmd.SetArgs([]string{"close", "--strict"})

		err := cmd.Execute()
		assert.ErrorIs(t, err, domain.ErrMissingArtifact)
	})
}

func TestStatusCmd(t *testing.T) {
	cmd, mockWorkflow := newTestRoot(t, newStatusCmd())

	mockWorkflow.EXPECT().Status(mock.MatchedBy(func(args domain.WrapArgs) bool {
		return args.Document == m.Path("docs/setup.sh")
	})).Return([]m.SectionStatus{{QualifiedName: "install", State: m.StateInline}}, nil)

	cmd.SetArgs([]string{"-d", "docs/setup.sh", "status"})
	require.NoError(t, cmd.Execute())
}
