package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/foliate-press/foliate/internal/core"
)

type GenerateInput struct {
	PostsDir string
	Layout   string
}

type GenerateOutput struct {
	Target    int
	Generated int
	Pending   int
	Error     error
}

// GenerateService drains the question queue into dated post files. A
// failed draft is logged and skipped so one bad question never blocks
// the rest of the day's batch.
type GenerateService struct {
	store  QuestionStore
	source ContentSource
	fs     FileSystem
	log    *slog.Logger
	now    func() time.Time
}

func NewGenerateService(store QuestionStore, source ContentSource, fs FileSystem, log *slog.Logger) *GenerateService {
	return &GenerateService{
		store:  store,
		source: source,
		fs:     fs,
		log:    log,
		now:    time.Now,
	}
}

// SetClock overrides the service clock. Tests use it to pin the daily
// target and post dates.
func (s *GenerateService) SetClock(now func() time.Time) {
	s.now = now
}

func (s *GenerateService) GeneratePosts(ctx context.Context, input GenerateInput) GenerateOutput {
	today := s.now()
	target := core.DailyTarget(today)

	layout := input.Layout
	if layout == "" {
		layout = "post"
	}

	pending, err := s.store.Pending(ctx)
	if err != nil {
		return GenerateOutput{Error: fmt.Errorf("load question queue: %w", err)}
	}

	out := GenerateOutput{Target: target, Pending: len(pending)}
	if len(pending) == 0 {
		s.log.Info("question queue is empty")
		return out
	}

	if err := s.fs.MkdirAll(input.PostsDir, 0755); err != nil {
		return GenerateOutput{Error: fmt.Errorf("create posts dir: %w", err)}
	}

	s.log.Info("generating posts", slog.Int("target", target), slog.Int("pending", len(pending)))

	for _, question := range pending {
		if out.Generated >= target {
			break
		}

		select {
		case <-ctx.Done():
			out.Error = ctx.Err()
			return out
		default:
		}

		body, err := s.source.Draft(ctx, question.Text)
		if err != nil {
			s.log.Warn("draft failed, skipping question",
				slog.String("question", question.Text), slog.Any("err", err))
			continue
		}

		meta := core.PostMeta{
			Layout: layout,
			Title:  "Daily Learning: " + question.Text,
			Date:   today.Format(core.DateStampLayout),
			Topic:  s.source.Topic(question.Text),
		}

		doc, err := core.ComposePost(meta, body)
		if err != nil {
			s.log.Warn("compose failed, skipping question",
				slog.String("question", question.Text), slog.Any("err", err))
			continue
		}

		filename := core.PostFilename(today, question.Text)
		path := filepath.Join(input.PostsDir, filename)
		if err := s.fs.WriteFile(path, doc, 0644); err != nil {
			s.log.Warn("write failed, skipping question",
				slog.String("path", path), slog.Any("err", err))
			continue
		}

		// The post file exists at this point, but an unmarked question
		// just gets drafted again next run onto the same filename.
		if err := s.store.MarkPublished(ctx, question.ID); err != nil {
			s.log.Warn("mark published failed, question stays queued",
				slog.String("question", question.Text), slog.Any("err", err))
			continue
		}

		s.log.Info("post generated", slog.String("file", filename))
		out.Generated++
	}

	return out
}
