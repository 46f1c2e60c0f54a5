// Package content drafts the markdown body of a study post for a queued
// question.
package content

import (
	"context"
	"fmt"
	"strings"
	"text/template"
)

// The original blog drafted these seven sections for every question; the
// template keeps the layout identical so existing posts and generated
// posts read the same.
const draftTemplate = `# The Question: {{.Question}}

## 1. Key Concepts

{{.Question}} This entry breaks the question down into the smallest
pieces a working engineer needs: what the mechanism is, where it sits in
a request path, and what guarantees it does and does not make.

## 2. Topic Tag

**Topic:** #{{topic .Question}}

## 3. Real World Story

A team shipping a read-heavy service hit this exact question in
production. Their first answer worked at launch traffic and fell over at
ten times that, which is where the details below start to matter.

## 4. Bottlenecks

The failure modes cluster around saturation: a single component absorbs
more load than it was sized for, and latency climbs long before anything
crashes outright.

## 5. Resolutions

The standard fixes trade simplicity for headroom. Start with the
cheapest change that removes the hotspot, measure, and only then reach
for the heavier machinery.

## 6. Technologies

Common tools in this area: {{tools .Question}}.

## 7. Learn Next

Adjacent questions worth queueing: how this behaves under partial
failure, and what operating it looks like at 10x the load.
`

var topicKeywords = []struct {
	keyword string
	topic   string
	tools   string
}{
	{"load balanc", "Networking", "nginx, HAProxy, Envoy"},
	{"dns", "Networking", "BIND, CoreDNS, Route 53"},
	{"cdn", "Networking", "CloudFront, Fastly, Varnish"},
	{"cach", "Caching", "Redis, Memcached, groupcache"},
	{"hash", "Distributed Systems", "Riak, Cassandra, Dynamo-style rings"},
	{"queue", "Messaging", "Kafka, RabbitMQ, NATS"},
	{"message", "Messaging", "Kafka, RabbitMQ, NATS"},
	{"shard", "Databases", "Vitess, Citus, MongoDB"},
	{"database", "Databases", "PostgreSQL, MySQL, sqlite"},
	{"sql", "Databases", "PostgreSQL, MySQL, sqlite"},
	{"index", "Databases", "PostgreSQL, Elasticsearch, Lucene"},
	{"replicat", "Distributed Systems", "PostgreSQL streaming replication, Raft, etcd"},
	{"consensus", "Distributed Systems", "Raft, Paxos, etcd"},
}

const (
	defaultTopic = "Systems"
	defaultTools = "whatever profiler and load generator the team already trusts"
)

// TemplateSource drafts post bodies from a fixed template. It is
// deterministic: the same question always yields the same body.
type TemplateSource struct {
	tmpl *template.Template
}

func NewTemplateSource() (*TemplateSource, error) {
	tmpl, err := template.New("draft").Funcs(template.FuncMap{
		"topic": inferTopic,
		"tools": inferTools,
	}).Parse(draftTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse draft template: %w", err)
	}
	return &TemplateSource{tmpl: tmpl}, nil
}

func (s *TemplateSource) Draft(_ context.Context, question string) (string, error) {
	var b strings.Builder
	err := s.tmpl.Execute(&b, struct{ Question string }{Question: question})
	if err != nil {
		return "", fmt.Errorf("draft post for %q: %w", question, err)
	}
	return b.String(), nil
}

func (s *TemplateSource) Topic(question string) string {
	return inferTopic(question)
}

func inferTopic(question string) string {
	q := strings.ToLower(question)
	for _, entry := range topicKeywords {
		if strings.Contains(q, entry.keyword) {
			return entry.topic
		}
	}
	return defaultTopic
}

func inferTools(question string) string {
	q := strings.ToLower(question)
	for _, entry := range topicKeywords {
		if strings.Contains(q, entry.keyword) {
			return entry.tools
		}
	}
	return defaultTools
}
