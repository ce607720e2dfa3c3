package commands

import (
	"context"
	"errors"
	"net/http"

	"github.com/newsai/newsreels/pkg/newsreels"
	"github.com/newsai/newsreels/pkg/newsreels/config"
	"github.com/newsai/newsreels/pkg/newsreels/deck"
	"github.com/newsai/newsreels/pkg/newsreels/router"
	"github.com/newsai/newsreels/pkg/newsreels/source"
)

const (
	screenReels router.Screen = iota
	screenArticle
)

type reelsInput struct {
	resume newsreels.ReelsResume
}

type articleInput struct {
	route router.Route
	item  deck.Item
}

func runReels(ctx context.Context, cfg config.Config, open string) error {
	var start router.Screen = screenReels
	var input any = reelsInput{}
	if open != "" {
		route, err := router.ParseRoute(open)
		if err != nil {
			return err
		}
		start, input = screenArticle, articleInput{route: route}
	}

	httpClient := &http.Client{Timeout: cfg.FetchTimeout}

	err := newsreels.Init(newsreels.Options{
		WindowTitle:    cfg.Window.Title,
		Fullscreen:     cfg.Window.Fullscreen,
		Borderless:     cfg.Window.Borderless,
		FontPath:       cfg.Theme.FontPath,
		BackgroundPath: cfg.Theme.BackgroundPath,
		AccentColorHex: cfg.Theme.AccentColor,
		LogPath:        cfg.LogPath,
		LogLevel:       cfg.LogLevel,
		Language:       cfg.Language,
		HTTPClient:     httpClient,
	})
	if err != nil {
		return err
	}
	defer newsreels.Close()

	logger := newsreels.GetLogger()
	client := source.NewClient(httpClient, cfg.APIBaseURL, cfg.Category, logger)
	resolver := deck.ImageResolver{BaseURL: cfg.APIBaseURL, AssetsDir: cfg.AssetsDir}

	r := router.New(logger)

	r.Register(screenReels, "reels", func(ctx context.Context, input any) (any, error) {
		in := input.(reelsInput)
		return newsreels.ReelsScreen(ctx, newsreels.ReelsOptions{
			Items:         in.resume.Items,
			Source:        client,
			StartIndex:    in.resume.Index,
			ImageResolver: resolver,
			Spring:        deck.SpringConfig{Tension: cfg.Swipe.Tension, Friction: cfg.Swipe.Friction},
			TriggerRatio:  cfg.Swipe.TriggerRatio,
			TouchDevice:   cfg.Touch.Device,
		})
	})

	r.Register(screenArticle, "article", func(ctx context.Context, input any) (any, error) {
		in := input.(articleInput)
		item := in.item
		if item.ID == "" {
			fetched, err := client.FetchItem(ctx, in.route.ID)
			if err != nil {
				logger.Error("Failed to load article", "route", in.route.Path(), "error", err)
				return &newsreels.ArticleResult{Action: newsreels.ArticleActionBack}, nil
			}
			item = fetched
		}
		return newsreels.ArticleScreen(ctx, item, newsreels.ArticleOptions{
			ImageResolver: resolver,
			TriggerRatio:  cfg.Swipe.TriggerRatio,
		})
	})

	r.OnTransition(func(from router.Screen, result any, stack *router.Stack) (router.Screen, any) {
		switch from {
		case screenReels:
			res := result.(*newsreels.ReelsResult)
			stack.Push(screenReels, reelsInput{}, res.Resume)
			return screenArticle, articleInput{route: res.Route, item: res.Item}

		case screenArticle:
			if entry := stack.Pop(); entry != nil {
				return entry.Screen, reelsInput{resume: entry.Resume.(newsreels.ReelsResume)}
			}
			// Opened directly; going back lands on a fresh deck.
			return screenReels, reelsInput{}
		}
		return router.ScreenExit, nil
	})

	err = r.Run(ctx, start, input)
	if newsreels.IsCancelled(err) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
