package router_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/newsai/newsreels/pkg/newsreels/router"
)

const (
	ScreenReels router.Screen = iota
	ScreenArticle
)

type ReelsAction int

const (
	ReelsActionOpened ReelsAction = iota
	ReelsActionQuit
)

type ReelsInput struct {
	Resume *ReelsResume
}

type ReelsResume struct {
	Index int
}

type ReelsResult struct {
	Action ReelsAction
	Route  router.Route
	Resume *ReelsResume
}

type ArticleInput struct {
	Route router.Route
}

type ArticleResult struct{}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Example opens an article from the reels and comes back to the same card.
func Example() {
	r := router.New(quietLogger())

	visits := 0
	r.Register(ScreenReels, "reels", func(_ context.Context, input any) (any, error) {
		in := input.(ReelsInput)
		visits++

		if visits == 1 {
			nav := &router.Navigator{}
			nav.Navigate("spor", "42")
			route, _ := nav.Take()
			fmt.Println("Reels: opening", route.Path())
			return ReelsResult{Action: ReelsActionOpened, Route: route, Resume: &ReelsResume{Index: 3}}, nil
		}

		fmt.Printf("Reels: back on card %d\n", in.Resume.Index)
		return ReelsResult{Action: ReelsActionQuit}, nil
	})

	r.Register(ScreenArticle, "article", func(_ context.Context, input any) (any, error) {
		in := input.(ArticleInput)
		fmt.Printf("Article: %s/%s\n", in.Route.Category, in.Route.ID)
		return ArticleResult{}, nil
	})

	r.OnTransition(func(from router.Screen, result any, stack *router.Stack) (router.Screen, any) {
		switch from {
		case ScreenReels:
			res := result.(ReelsResult)
			if res.Action == ReelsActionOpened {
				stack.Push(from, ReelsInput{}, res.Resume)
				return ScreenArticle, ArticleInput{Route: res.Route}
			}
		case ScreenArticle:
			if entry := stack.Pop(); entry != nil {
				in := entry.Input.(ReelsInput)
				in.Resume = entry.Resume.(*ReelsResume)
				return entry.Screen, in
			}
		}
		return router.ScreenExit, nil
	})

	_ = r.Run(context.Background(), ScreenReels, ReelsInput{})

	// Output:
	// Reels: opening /spor/42
	// Article: spor/42
	// Reels: back on card 3
}

// ExampleParseRoute shows the article path format.
func ExampleParseRoute() {
	route, err := router.ParseRoute("/teknoloji/1001")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(route.Category, route.ID)
	fmt.Println(router.Route{Category: "dünya", ID: "7"}.Path())

	// Output:
	// teknoloji 1001
	// /d%C3%BCnya/7
}
