package cmd

import (
	"testing"

	"github.com/mouse-blink/splice/internal/domain"
	"github.com/mouse-blink/splice/internal/domain/span"
	m "github.com/mouse-blink/splice/internal/model"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestExtractCmd(t *testing.T) {
	t.Run("file and name are passed through", func(t *testing.T) {
		cmd, mockWorkflow := newTestRoot(t, newExtractCmd())

		mockWorkflow.EXPECT().Extract(mock.MatchedBy(func(args domain.ExtractArgs) bool {
			return args.Source == m.Path("app.js") && args.Name == "route" && args.Lookback == span.DefaultLookback
		})).Return(m.Span{Text: "function route() {}"}, true, nil)

		cmd.SetArgs([]string{"extract", "app.js", "route"})
		require.NoError(t, cmd.Execute())
	})

	t.Run("not found is not an error", func(t *testing.T) {
		cmd, mockWorkflow := newTestRoot(t, newExtractCmd())

		mockWorkflow.EXPECT().Extract(mock.Anything).Return(m.Span{}, false, nil)

		cmd.SetArgs([]string{"extract", "app.js", "missing"})
		require.NoError(t, cmd.Execute())
	})

	t.Run("lookback flag wins", func(t *testing.T) {
		cmd, mockWorkflow := newTestRoot(t, newExtractCmd())

		mockWorkflow.EXPECT().Extract(mock.MatchedBy(func(args domain.ExtractArgs) bool {
			return args.Lookback == 200
		})).Return(m.Span{}, false, nil)

		cmd.SetArgs([]string{"extract", "--lookback", "200", "app.js", "route"})
		require.NoError(t, cmd.Execute())
	})

	t.Run("requires file and name", func(t *testing.T) {
		cmd, _ := newTestRoot(t, newExtractCmd())

		cmd.SetArgs([]string{"extract", "app.js"})
		require.Error(t, cmd.Execute())
	})
}
