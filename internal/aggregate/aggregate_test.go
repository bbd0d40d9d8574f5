package aggregate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/treeweight/internal/builder"
	"github.com/vk/treeweight/internal/tree"
)

func TestTotalWeight_OrderInvariant(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  int64
	}{
		{name: "single", input: "0, -1, 5", want: 5},
		{name: "chain", input: "0, -1, 0, 5\n1, 0, 0, 5\n2, 1, 0, 5\n3, 2, 0, 5\n4, 3, 5", want: 25},
		{name: "shallow", input: "0, -1, 0, 0, 0\n1, 0, 2\n2, 0, 0, 1\n3, 0\n4, 2, 1", want: 4},
		{name: "nested", input: "0, -1, 0, 2\n1, 0, 0, 0\n2, 1, 10\n3, 1, 11", want: 23},
		{name: "negative values", input: "0, -1, -5\n1, 0, 3, -1", want: -3},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tr, _, err := builder.Build(context.Background(), tc.input, builder.DefaultPolicy())
			require.NoError(t, err)

			assert.Equal(t, tc.want, TotalWeight(tr))
			assert.Equal(t, tc.want, TotalWeightOrder(tr, tree.PreOrder))
			assert.Equal(t, tc.want, TotalWeightOrder(tr, tree.PostOrder))
		})
	}
}

func TestTotalWeight_EmptyTree(t *testing.T) {
	assert.Zero(t, TotalWeight(tree.New(nil)))
	assert.Equal(t, Summary{}, Summarize(tree.New(nil), tree.PostOrder))
}

func TestSummarize(t *testing.T) {
	tr, _, err := builder.Build(context.Background(), "0, -1, 0, 2\n1, 0, 0, 0\n2, 1, 10\n3, 1, 11", builder.DefaultPolicy())
	require.NoError(t, err)

	got := Summarize(tr, tree.PostOrder)
	assert.Equal(t, Summary{Total: 23, Nodes: 4, Depth: 3}, got)
}
