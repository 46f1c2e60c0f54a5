package content_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/foliate-press/foliate/internal/adapters/content"
)

func TestDraftSections(t *testing.T) {
	source, err := content.NewTemplateSource()
	require.NoError(t, err)

	body, err := source.Draft(context.Background(), "How does a load balancer distribute traffic?")
	require.NoError(t, err)

	for _, section := range []string{
		"# The Question: How does a load balancer distribute traffic?",
		"## 1. Key Concepts",
		"## 2. Topic Tag",
		"## 3. Real World Story",
		"## 4. Bottlenecks",
		"## 5. Resolutions",
		"## 6. Technologies",
		"## 7. Learn Next",
	} {
		require.Contains(t, body, section)
	}

	require.Contains(t, body, "**Topic:** #Networking")
}

func TestDraftDeterministic(t *testing.T) {
	source, err := content.NewTemplateSource()
	require.NoError(t, err)

	first, err := source.Draft(context.Background(), "What is sharding?")
	require.NoError(t, err)
	second, err := source.Draft(context.Background(), "What is sharding?")
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestTopicInference(t *testing.T) {
	source, err := content.NewTemplateSource()
	require.NoError(t, err)

	cases := map[string]string{
		"How does a load balancer work?":       "Networking",
		"What is a cache stampede?":            "Caching",
		"How does consistent hashing work?":    "Distributed Systems",
		"Why use a message queue?":             "Messaging",
		"How do database indexes speed reads?": "Databases",
		"What color should the bikeshed be?":   "Systems",
	}

	for question, want := range cases {
		require.Equal(t, want, source.Topic(question), "question: %s", question)
	}
}
