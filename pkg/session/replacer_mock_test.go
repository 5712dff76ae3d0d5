package session

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/walteh/changer/pkg/text"
	"github.com/walteh/changer/pkg/vocab"
)

// mockReplacer is a testify mock of text.TextReplacer
type mockReplacer struct {
	mock.Mock
}

var _ text.TextReplacer = (*mockReplacer)(nil)

func (m *mockReplacer) ReplaceText(ctx context.Context, content io.Reader, rules []text.ReplacementRule) (*text.ReplacementResult, error) {
	args := m.Called(ctx, content, rules)
	res, _ := args.Get(0).(*text.ReplacementResult)
	return res, args.Error(1)
}

func (m *mockReplacer) Replace(s string, rules []text.ReplacementRule) *text.ReplacementResult {
	args := m.Called(s, rules)
	res, _ := args.Get(0).(*text.ReplacementResult)
	return res
}

func (m *mockReplacer) ValidateRules(rules []text.ReplacementRule) error {
	return m.Called(rules).Error(0)
}

func TestSessionUsesInjectedReplacer(t *testing.T) {
	ctx := testContext(t)
	r := &mockReplacer{}
	r.On("Replace", "a", []text.ReplacementRule{{FromText: "a", ToText: "b", Lines: text.AllLines()}}).
		Return(&text.ReplacementResult{
			WasModified:      true,
			ReplacementCount: 7,
			OriginalContent:  []byte("a"),
			ModifiedContent:  []byte("replaced"),
		}).Once()

	s := New(vocab.Default(), WithReplacer(r))
	o := s.Execute(ctx, "replace a to b", "a")

	assert.Equal(t, "replaced", o.Text)
	assert.Equal(t, 7, o.Replacements)
	assert.True(t, s.CanUndo())
	r.AssertExpectations(t)
}

func TestSessionSkipsReplacerForUnresolvedInput(t *testing.T) {
	r := &mockReplacer{}
	s := New(vocab.Default(), WithReplacer(r))

	assert.Equal(t, "a", s.Run(testContext(t), "hello there", "a"))
	r.AssertNotCalled(t, "Replace", mock.Anything, mock.Anything)
}
