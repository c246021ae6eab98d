package api

import (
	"context"
	"fmt"

	"college-portal/internal/common/config"
	"college-portal/internal/common/logger"
	"college-portal/internal/common/observability"
	"college-portal/internal/common/storage"
	"college-portal/internal/common/validation"
	applicationform "college-portal/internal/features/application/application-form"
	applicationviews "college-portal/internal/features/application/application-views"
	draftstore "college-portal/internal/features/application/draft-store"
	chatassistant "college-portal/internal/features/assistant/chat-assistant"
	keywordsearch "college-portal/internal/features/search/keyword-search"
	videonotes "college-portal/internal/features/tutorials/video-notes"
	"college-portal/pkg/catalog"
)

// Build wires every feature over one storage backend. The registry starts
// with the drafts already in storage.
func Build(ctx context.Context, cfg *config.Config, store storage.Storage, log logger.Logger, obs *observability.Observability) (Dependencies, error) {
	if log == nil {
		log = logger.NewNoOpLogger()
	}

	drafts, err := draftstore.NewStore(draftstore.StoreDependencies{Storage: store, Logger: log}, draftstore.DefaultConfig())
	if err != nil {
		return Dependencies{}, fmt.Errorf("draft store: %w", err)
	}

	forms := applicationform.NewSessions(
		applicationform.FormDependencies{Drafts: drafts, Logger: log},
		&applicationform.Config{UserID: cfg.Form.UserID},
	)

	registry := applicationviews.NewRegistry(log)
	registry.ReplaceDrafts(drafts.LoadAllDrafts(ctx))

	cat, err := catalog.LoadOrDefault(cfg.Search.CatalogPath)
	if err != nil {
		return Dependencies{}, fmt.Errorf("catalog: %w", err)
	}

	search := keywordsearch.NewService(keywordsearch.ServiceDependencies{
		Logger:    log,
		Videos:    cat.VideoItems(),
		Documents: cat.DocumentItems(),
	}, keywordsearch.DefaultConfig())

	chat, err := chatassistant.NewSessions(
		chatassistant.ChatDependencies{Logger: log},
		&chatassistant.Config{TypingDelay: config.GetDuration(cfg.Chat.TypingDelay)},
	)
	if err != nil {
		return Dependencies{}, fmt.Errorf("chat assistant: %w", err)
	}

	notes, err := videonotes.NewNoteStore(videonotes.NoteDependencies{Storage: store, Logger: log}, videonotes.DefaultConfig())
	if err != nil {
		return Dependencies{}, fmt.Errorf("video notes: %w", err)
	}

	schemas, err := validation.NewRegistry(validation.RequestSchemas)
	if err != nil {
		return Dependencies{}, fmt.Errorf("request schemas: %w", err)
	}

	return Dependencies{
		Logger:        log,
		Drafts:        drafts,
		Forms:         forms,
		Registry:      registry,
		Search:        search,
		Chat:          chat,
		Notes:         notes,
		Catalog:       cat,
		Schemas:       schemas,
		Observability: obs,
	}, nil
}
